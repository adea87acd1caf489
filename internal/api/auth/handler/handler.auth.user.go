package authhdl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	authdto "github.com/kavish224/Backend/internal/api/auth/dto"
	models "github.com/kavish224/Backend/internal/api/auth/models"
	authsvc "github.com/kavish224/Backend/internal/api/auth/service"
	basehdl "github.com/kavish224/Backend/internal/api/base/handler"
	"github.com/kavish224/Backend/internal/common"
	"github.com/kavish224/Backend/internal/global"
	"github.com/kavish224/Backend/internal/logger"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserHandler xử lý các request xác thực và quản lý người dùng
type UserHandler struct {
	basehdl.BaseHandler
	userService *authsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	return &UserHandler{
		userService: userService,
	}, nil
}

// saveUploadedFile lưu file multipart vào thư mục tạm, trả về đường dẫn local.
// Trả về chuỗi rỗng nếu field không có file (cho các field optional).
func (h *UserHandler) saveUploadedFile(c fiber.Ctx, field string) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}

	localPath := filepath.Join(os.TempDir(), fmt.Sprintf("%s_%s_%s", field, primitive.NewObjectID().Hex(), filepath.Base(fileHeader.Filename)))
	if err := c.SaveFile(fileHeader, localPath); err != nil {
		return "", common.NewError(common.ErrCodeMedia, "Không thể lưu file upload", common.StatusBadRequest, err)
	}
	return localPath, nil
}

// setAuthCookies gắn cặp token vào cookie httpOnly.
func setAuthCookies(c fiber.Ctx, pair *authsvc.TokenPair) {
	cfg := global.MongoDB_ServerConfig
	c.Cookie(&fiber.Cookie{
		Name:     "accessToken",
		Value:    pair.AccessToken,
		HTTPOnly: true,
		Secure:   cfg.CookieSecure,
		Expires:  time.Now().Add(time.Duration(cfg.AccessTokenTTL) * time.Second),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refreshToken",
		Value:    pair.RefreshToken,
		HTTPOnly: true,
		Secure:   cfg.CookieSecure,
		Expires:  time.Now().Add(time.Duration(cfg.RefreshTokenTTL) * time.Second),
	})
}

// clearAuthCookies xóa cặp cookie token khỏi client.
func clearAuthCookies(c fiber.Ctx) {
	cfg := global.MongoDB_ServerConfig
	for _, name := range []string{"accessToken", "refreshToken"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Secure:   cfg.CookieSecure,
			Expires:  time.Now().Add(-time.Hour),
		})
	}
}

// HandleRegister đăng ký người dùng mới (multipart form: các field text + avatar bắt buộc, coverImage optional)
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := authdto.UserRegisterInput{
			Username: c.FormValue("username"),
			Email:    c.FormValue("email"),
			FullName: c.FormValue("fullName"),
			Password: c.FormValue("password"),
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		avatarPath, err := h.saveUploadedFile(c, "avatar")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if avatarPath == "" {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu file avatar", common.StatusBadRequest, nil))
			return nil
		}
		defer os.Remove(avatarPath)

		coverPath, err := h.saveUploadedFile(c, "coverImage")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if coverPath != "" {
			defer os.Remove(coverPath)
		}

		user, err := h.userService.Register(c.Context(), &input, avatarPath, coverPath)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogAuth("register", c, map[string]interface{}{"username": user.Username})
		h.HandleCreated(c, user, "Đăng ký thành công", nil)
		return nil
	})
}

// HandleLogin đăng nhập bằng username hoặc email + mật khẩu
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, pair, err := h.userService.Login(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		setAuthCookies(c, pair)
		logger.LogAuth("login", c, map[string]interface{}{"username": user.Username})
		h.HandleResponse(c, fiber.Map{
			"user":         user,
			"accessToken":  pair.AccessToken,
			"refreshToken": pair.RefreshToken,
		}, nil)
		return nil
	})
}

// HandleLogout đăng xuất: xóa refresh token đã lưu và cả hai cookie
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.GetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.userService.Logout(c.Context(), userID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		clearAuthCookies(c)
		logger.LogAuth("logout", c, nil)
		h.HandleResponseWithStatus(c, common.StatusOK, "Đăng xuất thành công", nil, nil)
		return nil
	})
}

// HandleRefreshToken cấp lại cặp token từ refresh token (body hoặc cookie)
func (h *UserHandler) HandleRefreshToken(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.RefreshTokenInput
		// Body optional: cookie là nguồn thay thế
		if len(c.Body()) > 0 {
			if err := h.ParseRequestBody(c, &input); err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
		}
		refreshToken := input.RefreshToken
		if refreshToken == "" {
			refreshToken = c.Cookies("refreshToken")
		}

		_, pair, err := h.userService.RefreshTokens(c.Context(), refreshToken)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		setAuthCookies(c, pair)
		h.HandleResponse(c, fiber.Map{
			"accessToken":  pair.AccessToken,
			"refreshToken": pair.RefreshToken,
		}, nil)
		return nil
	})
}

// HandleChangePassword đổi mật khẩu của người dùng hiện tại
func (h *UserHandler) HandleChangePassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.GetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.ChangePasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.userService.ChangePassword(c.Context(), userID, &input)
		h.HandleResponseWithStatus(c, common.StatusOK, "Đổi mật khẩu thành công", nil, err)
		return nil
	})
}

// HandleCurrentUser trả về thông tin người dùng hiện tại
func (h *UserHandler) HandleCurrentUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.GetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.FindOneById(c.Context(), userID)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleUpdateAccount cập nhật fullName và email
func (h *UserHandler) HandleUpdateAccount(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.GetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.UpdateAccountInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.UpdateAccount(c.Context(), userID, &input)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleUpdateAvatar thay avatar (multipart field "avatar")
func (h *UserHandler) HandleUpdateAvatar(c fiber.Ctx) error {
	return h.handleReplaceImage(c, "avatar", h.userService.UpdateAvatar)
}

// HandleUpdateCoverImage thay cover image (multipart field "coverImage")
func (h *UserHandler) HandleUpdateCoverImage(c fiber.Ctx) error {
	return h.handleReplaceImage(c, "coverImage", h.userService.UpdateCoverImage)
}

// handleReplaceImage nhận file upload cho field chỉ định và gọi hàm thay ảnh tương ứng.
func (h *UserHandler) handleReplaceImage(c fiber.Ctx, field string, replace func(ctx context.Context, userID primitive.ObjectID, localPath string) (models.User, error)) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.GetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		localPath, err := h.saveUploadedFile(c, field)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if localPath == "" {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Thiếu file %s", field), common.StatusBadRequest, nil))
			return nil
		}
		defer os.Remove(localPath)

		user, err := replace(c.Context(), userID, localPath)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleChannelProfile trả về trang kênh theo username (auth optional)
func (h *UserHandler) HandleChannelProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		username := c.Params("username")
		viewerID := h.OptionalUserID(c)

		profile, err := h.userService.GetChannelProfile(c.Context(), username, viewerID)
		h.HandleResponse(c, profile, err)
		return nil
	})
}

// HandleWatchHistory trả về lịch sử xem của người dùng hiện tại
func (h *UserHandler) HandleWatchHistory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.GetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		history, err := h.userService.GetWatchHistory(c.Context(), userID)
		h.HandleResponse(c, history, err)
		return nil
	})
}
