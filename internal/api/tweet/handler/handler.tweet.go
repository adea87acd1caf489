package tweethdl

import (
	"fmt"

	basehdl "github.com/kavish224/Backend/internal/api/base/handler"
	tweetdto "github.com/kavish224/Backend/internal/api/tweet/dto"
	tweetsvc "github.com/kavish224/Backend/internal/api/tweet/service"
	"github.com/kavish224/Backend/internal/common"

	"github.com/gofiber/fiber/v3"
)

// TweetHandler xử lý các request tweet
type TweetHandler struct {
	basehdl.BaseHandler
	tweetService *tweetsvc.TweetService
}

// NewTweetHandler tạo instance mới của TweetHandler
func NewTweetHandler() (*TweetHandler, error) {
	tweetService, err := tweetsvc.NewTweetService()
	if err != nil {
		return nil, fmt.Errorf("failed to create tweet service: %v", err)
	}
	return &TweetHandler{
		tweetService: tweetService,
	}, nil
}

// HandleCreate tạo tweet mới
func (h *TweetHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := h.GetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input tweetdto.TweetCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		tweet, err := h.tweetService.Create(c.Context(), ownerID, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleCreated(c, tweet, "Đăng tweet thành công", nil)
		return nil
	})
}

// HandleGetUserTweets liệt kê tweet của một người dùng
func (h *TweetHandler) HandleGetUserTweets(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.ObjectIDParam(c, "userId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		viewerID := h.OptionalUserID(c)

		tweets, err := h.tweetService.GetUserTweets(c.Context(), userID, viewerID)
		h.HandleResponse(c, tweets, err)
		return nil
	})
}

// HandleUpdate sửa tweet (chỉ người đăng)
func (h *TweetHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := h.GetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		tweetID, err := h.ObjectIDParam(c, "tweetId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input tweetdto.TweetUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		tweet, err := h.tweetService.Update(c.Context(), tweetID, ownerID, &input)
		h.HandleResponse(c, tweet, err)
		return nil
	})
}

// HandleDelete xóa tweet (chỉ người đăng)
func (h *TweetHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := h.GetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		tweetID, err := h.ObjectIDParam(c, "tweetId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.tweetService.Delete(c.Context(), tweetID, ownerID)
		h.HandleResponseWithStatus(c, common.StatusOK, "Xóa tweet thành công", nil, err)
		return nil
	})
}
