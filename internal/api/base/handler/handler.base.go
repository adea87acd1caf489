// Package basehdl cung cấp các tiện ích dùng chung cho handler HTTP:
// parse/validate request, chuẩn hóa response và các helper lấy thông tin
// người dùng đã xác thực từ context.
package basehdl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/kavish224/Backend/internal/common"
	"github.com/kavish224/Backend/internal/global"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BaseHandler chứa các hàm xử lý request/response dùng chung.
// Các domain handler nhúng struct này để dùng SafeHandler/HandleResponse.
type BaseHandler struct{}

// ParseRequestBody parse và validate dữ liệu từ request body.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số.
func (h *BaseHandler) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	reader := bytes.NewReader(body)
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}

	return h.ValidateInput(input)
}

// ValidateInput validate input theo struct tag (validate, oneof, ...).
// Trả về lỗi với danh sách field vi phạm trong Details.
func (h *BaseHandler) ValidateInput(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			details := make([]interface{}, 0, len(validationErrs))
			for _, fieldErr := range validationErrs {
				details = append(details, fmt.Sprintf("Trường %s không hợp lệ (rule: %s)", fieldErr.Field(), fieldErr.Tag()))
			}
			return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, details)
		}
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}
	return nil
}

// GetUserID lấy ObjectId của người dùng đã xác thực từ context.
// Middleware auth phải chạy trước và set "user_id" vào Locals.
func (h *BaseHandler) GetUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok || userIDStr == "" {
		return primitive.NilObjectID, common.ErrTokenMissing
	}
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}
	return userID, nil
}

// OptionalUserID lấy ObjectId người dùng nếu đã đăng nhập, NilObjectID nếu chưa.
// Dùng cho các endpoint public có trường isLiked/isSubscribed tùy người xem.
func (h *BaseHandler) OptionalUserID(c fiber.Ctx) primitive.ObjectID {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok || userIDStr == "" {
		return primitive.NilObjectID
	}
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return primitive.NilObjectID
	}
	return userID
}

// ObjectIDParam lấy và validate một ObjectId từ URI params.
func (h *BaseHandler) ObjectIDParam(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	raw := c.Params(name)
	if raw == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Thiếu tham số %s trong URL", name),
			common.StatusBadRequest,
			nil,
		)
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Tham số %s '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", name, raw),
			common.StatusBadRequest,
			nil,
		)
	}
	return id, nil
}

// PaginationParams lấy page và limit từ query string với giá trị mặc định 1/10.
func (h *BaseHandler) PaginationParams(c fiber.Ctx) (page int64, limit int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 10
	}
	return page, limit
}
