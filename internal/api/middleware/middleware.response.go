package middleware

import (
	"errors"

	"github.com/kavish224/Backend/internal/common"

	"github.com/gofiber/fiber/v3"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// Helper function này đảm bảo tất cả JSON responses đều có charset=utf-8 để hỗ trợ UTF-8 encoding đúng cách
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// HandleErrorResponse xử lý và trả về error response cho client
// Tách riêng để tránh import cycle với handler package
func HandleErrorResponse(c fiber.Ctx, err error) {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		details := customErr.Details
		if details == nil {
			details = []interface{}{}
		}
		JSONResponse(c, customErr.StatusCode, fiber.Map{
			"statusCode": customErr.StatusCode,
			"message":    customErr.Message,
			"success":    false,
			"errors":     details,
		})
		return
	}
	JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"statusCode": common.StatusInternalServerError,
		"message":    err.Error(),
		"success":    false,
		"errors":     []interface{}{},
	})
}
