package middleware

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/kavish224/Backend/internal/api/auth/models"
	authsvc "github.com/kavish224/Backend/internal/api/auth/service"
	"github.com/kavish224/Backend/internal/common"
	"github.com/kavish224/Backend/internal/global"
	"github.com/kavish224/Backend/internal/logger"
	"github.com/kavish224/Backend/internal/utility"
)

// AuthManager quản lý xác thực người dùng
type AuthManager struct {
	UserCRUD *authsvc.UserService
	Cache    *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}

	return &AuthManager{
		UserCRUD: userService,
		// Cache user theo token trong 5 phút, dọn dẹp mỗi 10 phút
		Cache: utility.NewCache(5*time.Minute, 10*time.Minute),
	}, nil
}

// extractAccessToken lấy access token từ cookie "accessToken" hoặc header Authorization: Bearer.
func extractAccessToken(c fiber.Ctx) string {
	if token := c.Cookies("accessToken"); token != "" {
		return token
	}

	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// resolveUser xác thực access token và trả về user tương ứng.
func (am *AuthManager) resolveUser(c fiber.Ctx, token string) (*models.User, error) {
	claims, err := utility.ParseToken(global.MongoDB_ServerConfig.AccessTokenSecret, token)
	if err != nil {
		return nil, err
	}

	cacheKey := "auth_user:" + claims.UserID
	if cached, found := am.Cache.Get(cacheKey); found {
		user := cached.(models.User)
		return &user, nil
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, common.ErrTokenInvalid
	}

	user, err := am.UserCRUD.FindOneById(context.Background(), userID)
	if err != nil {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"path":    c.Path(),
			"user_id": claims.UserID,
		}).Warn("[AUTH] Token hợp lệ nhưng không tìm thấy user")
		return nil, common.ErrTokenInvalid
	}

	am.Cache.Set(cacheKey, user)
	return &user, nil
}

// AuthMiddleware middleware xác thực bắt buộc cho Fiber.
// Đọc access token từ cookie hoặc Bearer header, xác thực chữ ký và
// sự tồn tại của user, lưu user vào context.
func AuthMiddleware() fiber.Handler {
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		token := extractAccessToken(c)
		if token == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("[AUTH] Thiếu access token")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		user, err := authManager.resolveUser(c, token)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", *user)
		return c.Next()
	}
}

// OptionalAuthMiddleware xác thực nếu có token, không chặn request khi thiếu.
// Dùng cho các endpoint public có dữ liệu tùy người xem (isLiked, isSubscribed).
func OptionalAuthMiddleware() fiber.Handler {
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		token := extractAccessToken(c)
		if token == "" {
			return c.Next()
		}

		user, err := authManager.resolveUser(c, token)
		if err != nil {
			// Token hỏng trên endpoint public: coi như khách
			return c.Next()
		}

		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", *user)
		return c.Next()
	}
}
