// Package router đăng ký các route thuộc domain video.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/kavish224/Backend/internal/api/middleware"
	apirouter "github.com/kavish224/Backend/internal/api/router"
	videohdl "github.com/kavish224/Backend/internal/api/video/handler"
)

// Register đăng ký tất cả route video lên v1.
func Register(v1 fiber.Router) error {
	videoHandler, err := videohdl.NewVideoHandler()
	if err != nil {
		return fmt.Errorf("failed to create video handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	optionalAuthMiddleware := middleware.OptionalAuthMiddleware()

	// Route public đăng ký trước, middleware chặn chỉ nằm dưới prefix /videos/manage
	apirouter.RegisterRouteWithMiddleware(v1, "/videos", "GET", "/", []fiber.Handler{optionalAuthMiddleware}, videoHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, "/videos/watch", "GET", "/:videoId", []fiber.Handler{optionalAuthMiddleware}, videoHandler.HandleGetByID)
	apirouter.RegisterRouteWithMiddleware(v1, "/videos/manage", "POST", "/", []fiber.Handler{authMiddleware}, videoHandler.HandlePublish)
	apirouter.RegisterRouteWithMiddleware(v1, "/videos/manage", "PATCH", "/:videoId", []fiber.Handler{authMiddleware}, videoHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/videos/manage", "DELETE", "/:videoId", []fiber.Handler{authMiddleware}, videoHandler.HandleDelete)
	apirouter.RegisterRouteWithMiddleware(v1, "/videos/manage/toggle-publish", "PATCH", "/:videoId", []fiber.Handler{authMiddleware}, videoHandler.HandleTogglePublish)

	return nil
}
