package utility

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/kavish224/Backend/internal/common"
)

// HashPassword băm mật khẩu bằng bcrypt với cost mặc định.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Không thể băm mật khẩu", common.StatusInternalServerError, err)
	}
	return string(hashed), nil
}

// ComparePassword so sánh mật khẩu với hash đã lưu.
// Trả về common.ErrInvalidCredentials nếu không khớp.
func ComparePassword(hashed string, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)); err != nil {
		return common.ErrInvalidCredentials
	}
	return nil
}
