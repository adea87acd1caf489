// Package router đăng ký các route thuộc domain dashboard.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	dashboardhdl "github.com/kavish224/Backend/internal/api/dashboard/handler"
	"github.com/kavish224/Backend/internal/api/middleware"
	apirouter "github.com/kavish224/Backend/internal/api/router"
)

// Register đăng ký tất cả route dashboard lên v1.
func Register(v1 fiber.Router) error {
	dashboardHandler, err := dashboardhdl.NewDashboardHandler()
	if err != nil {
		return fmt.Errorf("failed to create dashboard handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()

	apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/stats", []fiber.Handler{authMiddleware}, dashboardHandler.HandleChannelStats)
	apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/videos", []fiber.Handler{authMiddleware}, dashboardHandler.HandleChannelVideos)

	return nil
}
