package utility

import (
	"errors"
	"testing"

	"github.com/kavish224/Backend/internal/common"
)

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("MatKhau@123")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	if hashed == "MatKhau@123" {
		t.Fatal("Hash không được trùng với mật khẩu gốc")
	}

	if err := ComparePassword(hashed, "MatKhau@123"); err != nil {
		t.Errorf("ComparePassword sai với mật khẩu đúng: %v", err)
	}
}

func TestComparePasswordWrong(t *testing.T) {
	hashed, err := HashPassword("MatKhau@123")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}

	err = ComparePassword(hashed, "MatKhauSai")
	if !errors.Is(err, common.ErrInvalidCredentials) {
		t.Errorf("Muốn ErrInvalidCredentials với mật khẩu sai, nhận: %v", err)
	}
}

func TestHashPasswordUnique(t *testing.T) {
	// bcrypt sinh salt ngẫu nhiên, hai lần băm phải khác nhau
	h1, err := HashPassword("MatKhau@123")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	h2, err := HashPassword("MatKhau@123")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	if h1 == h2 {
		t.Error("Hai lần băm cùng mật khẩu không được cho ra hash giống nhau")
	}
}
