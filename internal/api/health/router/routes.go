// Package router đăng ký route kiểm tra tình trạng hệ thống.
package router

import (
	"github.com/gofiber/fiber/v3"

	healthhdl "github.com/kavish224/Backend/internal/api/health/handler"
)

// Register đăng ký route healthcheck lên v1, không yêu cầu đăng nhập.
func Register(v1 fiber.Router) error {
	healthHandler := healthhdl.NewHealthHandler()
	v1.Get("/healthcheck", healthHandler.HandleHealthCheck)
	return nil
}
