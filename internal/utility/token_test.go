package utility

import (
	"errors"
	"testing"
	"time"

	"github.com/kavish224/Backend/internal/common"
)

func TestCreateAndParseToken(t *testing.T) {
	secret := "test-secret-key"
	userID := "64f0a1b2c3d4e5f6a7b8c9d0"

	token, err := CreateToken(secret, userID, time.Hour)
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}
	if token == "" {
		t.Fatal("Token rỗng")
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("ParseToken lỗi: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID không khớp: muốn %s, nhận %s", userID, claims.UserID)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := CreateToken("secret-a", "user1", time.Hour)
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}

	_, err = ParseToken("secret-b", token)
	if !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("Muốn ErrTokenInvalid khi sai secret, nhận: %v", err)
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, err := CreateToken("secret", "user1", -time.Minute)
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}

	_, err = ParseToken("secret", token)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Errorf("Muốn ErrTokenExpired với token hết hạn, nhận: %v", err)
	}
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("secret", "không.phải.jwt")
	if !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("Muốn ErrTokenInvalid với chuỗi rác, nhận: %v", err)
	}
}
