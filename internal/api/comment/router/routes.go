// Package router đăng ký các route thuộc domain comment.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	commenthdl "github.com/kavish224/Backend/internal/api/comment/handler"
	"github.com/kavish224/Backend/internal/api/middleware"
	apirouter "github.com/kavish224/Backend/internal/api/router"
)

// Register đăng ký tất cả route bình luận lên v1.
func Register(v1 fiber.Router) error {
	commentHandler, err := commenthdl.NewCommentHandler()
	if err != nil {
		return fmt.Errorf("failed to create comment handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	optionalAuthMiddleware := middleware.OptionalAuthMiddleware()

	// Prefix tách riêng để middleware bắt buộc không chặn route public cùng path
	apirouter.RegisterRouteWithMiddleware(v1, "/comments/video", "GET", "/:videoId", []fiber.Handler{optionalAuthMiddleware}, commentHandler.HandleListByVideo)
	apirouter.RegisterRouteWithMiddleware(v1, "/comments/add", "POST", "/:videoId", []fiber.Handler{authMiddleware}, commentHandler.HandleAdd)
	apirouter.RegisterRouteWithMiddleware(v1, "/comments/manage", "PATCH", "/:commentId", []fiber.Handler{authMiddleware}, commentHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/comments/manage", "DELETE", "/:commentId", []fiber.Handler{authMiddleware}, commentHandler.HandleDelete)

	return nil
}
