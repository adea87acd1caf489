// Package router đăng ký các route thuộc domain playlist.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/kavish224/Backend/internal/api/middleware"
	playlisthdl "github.com/kavish224/Backend/internal/api/playlist/handler"
	apirouter "github.com/kavish224/Backend/internal/api/router"
)

// Register đăng ký tất cả route playlist lên v1.
func Register(v1 fiber.Router) error {
	playlistHandler, err := playlisthdl.NewPlaylistHandler()
	if err != nil {
		return fmt.Errorf("failed to create playlist handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()

	// Đọc playlist là public, còn lại yêu cầu đăng nhập
	v1.Get("/playlists/user/:userId", playlistHandler.HandleGetUserPlaylists)
	v1.Get("/playlists/view/:playlistId", playlistHandler.HandleGetByID)

	apirouter.RegisterRouteWithMiddleware(v1, "/playlists/manage", "POST", "/", []fiber.Handler{authMiddleware}, playlistHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlists/manage", "PATCH", "/:playlistId", []fiber.Handler{authMiddleware}, playlistHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlists/manage", "DELETE", "/:playlistId", []fiber.Handler{authMiddleware}, playlistHandler.HandleDelete)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlists/manage/add", "PATCH", "/:videoId/:playlistId", []fiber.Handler{authMiddleware}, playlistHandler.HandleAddVideo)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlists/manage/remove", "PATCH", "/:videoId/:playlistId", []fiber.Handler{authMiddleware}, playlistHandler.HandleRemoveVideo)

	return nil
}
