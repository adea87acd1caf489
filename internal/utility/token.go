package utility

import (
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/kavish224/Backend/internal/common"
)

// TokenClaims chứa data được mã hóa trong JWT token.
type TokenClaims struct {
	UserID string `json:"userId"`
	jwt.StandardClaims
}

// CreateToken tạo một JWT token ký HMAC cho userID với thời gian sống ttl.
func CreateToken(secret string, userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", common.NewError(common.ErrCodeAuthToken, "Không thể tạo token", common.StatusInternalServerError, err)
	}
	return signed, nil
}

// ParseToken xác thực chữ ký và thời hạn của token, trả về claims.
// Trả về common.ErrTokenExpired nếu token hết hạn, common.ErrTokenInvalid cho các lỗi còn lại.
func ParseToken(secret string, tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}
