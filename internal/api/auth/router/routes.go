// Package router đăng ký các route thuộc domain auth: đăng ký, đăng nhập,
// phiên làm việc và hồ sơ người dùng.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "github.com/kavish224/Backend/internal/api/auth/handler"
	"github.com/kavish224/Backend/internal/api/middleware"
	apirouter "github.com/kavish224/Backend/internal/api/router"
)

// Register đăng ký tất cả route người dùng lên v1.
func Register(v1 fiber.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	v1.Post("/users/register", userHandler.HandleRegister)
	v1.Post("/users/login", userHandler.HandleLogin)
	v1.Post("/users/refresh-token", userHandler.HandleRefreshToken)

	authMiddleware := middleware.AuthMiddleware()
	optionalAuthMiddleware := middleware.OptionalAuthMiddleware()

	// Route public đăng ký trước: middleware chặn trên group /users phía dưới
	// match mọi path con, kể cả /users/c/:username
	apirouter.RegisterRouteWithMiddleware(v1, "/users/c", "GET", "/:username", []fiber.Handler{optionalAuthMiddleware}, userHandler.HandleChannelProfile)

	apirouter.RegisterRouteWithMiddleware(v1, "/users", "POST", "/logout", []fiber.Handler{authMiddleware}, userHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "POST", "/change-password", []fiber.Handler{authMiddleware}, userHandler.HandleChangePassword)
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "GET", "/current-user", []fiber.Handler{authMiddleware}, userHandler.HandleCurrentUser)
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "PATCH", "/update-account", []fiber.Handler{authMiddleware}, userHandler.HandleUpdateAccount)
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "PATCH", "/avatar", []fiber.Handler{authMiddleware}, userHandler.HandleUpdateAvatar)
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "PATCH", "/cover-image", []fiber.Handler{authMiddleware}, userHandler.HandleUpdateCoverImage)
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "GET", "/history", []fiber.Handler{authMiddleware}, userHandler.HandleWatchHistory)

	return nil
}
