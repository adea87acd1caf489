package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/kavish224/Backend/internal/common"

	"github.com/gofiber/fiber/v3"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// Helper function này đảm bảo tất cả JSON responses đều có charset=utf-8 để hỗ trợ UTF-8 encoding đúng cách
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// SafeHandler bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Hàm này đảm bảo rằng server luôn trả về response cho client, kể cả khi có panic xảy ra.
func (h *BaseHandler) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			// Log stack trace để debug
			debug.PrintStack()

			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// HandleResponse xử lý và chuẩn hóa response trả về cho client.
// Phương thức này đảm bảo format response thống nhất trong toàn bộ ứng dụng:
//   - Thành công: {statusCode, data, message, success: true}
//   - Lỗi:        {statusCode, message, success: false, errors: []}
func (h *BaseHandler) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	h.HandleResponseWithStatus(c, common.StatusOK, common.MsgSuccess, data, err)
}

// HandleCreated trả về response 201 cho các thao tác tạo mới thành công.
func (h *BaseHandler) HandleCreated(c fiber.Ctx, data interface{}, message string, err error) {
	h.HandleResponseWithStatus(c, common.StatusCreated, message, data, err)
}

// HandleResponseWithStatus giống HandleResponse nhưng cho phép tùy biến
// status code và message khi thành công.
func (h *BaseHandler) HandleResponseWithStatus(c fiber.Ctx, statusCode int, message string, data interface{}, err error) {
	if err != nil {
		var customErr *common.Error
		if errors.As(err, &customErr) {
			JSONResponse(c, customErr.StatusCode, fiber.Map{
				"statusCode": customErr.StatusCode,
				"message":    customErr.Message,
				"success":    false,
				"errors":     errorDetails(customErr),
			})
			return
		}
		// Lỗi không xác định được coi là lỗi hệ thống
		JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"statusCode": common.StatusInternalServerError,
			"message":    err.Error(),
			"success":    false,
			"errors":     []interface{}{},
		})
		return
	}

	if message == "" {
		message = common.MsgSuccess
	}
	JSONResponse(c, statusCode, fiber.Map{
		"statusCode": statusCode,
		"data":       data,
		"message":    message,
		"success":    true,
	})
}

// errorDetails chuẩn hóa phần details của lỗi thành mảng.
func errorDetails(err *common.Error) []interface{} {
	if err.Details == nil {
		return []interface{}{}
	}
	if list, ok := err.Details.([]interface{}); ok {
		return list
	}
	return []interface{}{err.Details}
}
