package likehdl

import (
	"fmt"

	basehdl "github.com/kavish224/Backend/internal/api/base/handler"
	likesvc "github.com/kavish224/Backend/internal/api/like/service"

	"github.com/gofiber/fiber/v3"
)

// LikeHandler xử lý các request lượt thích
type LikeHandler struct {
	basehdl.BaseHandler
	likeService *likesvc.LikeService
}

// NewLikeHandler tạo instance mới của LikeHandler
func NewLikeHandler() (*LikeHandler, error) {
	likeService, err := likesvc.NewLikeService()
	if err != nil {
		return nil, fmt.Errorf("failed to create like service: %v", err)
	}
	return &LikeHandler{
		likeService: likeService,
	}, nil
}

// HandleToggleVideoLike bật/tắt lượt thích trên video
func (h *LikeHandler) HandleToggleVideoLike(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.GetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		videoID, err := h.ObjectIDParam(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.likeService.ToggleVideoLike(c.Context(), videoID, userID)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleToggleCommentLike bật/tắt lượt thích trên bình luận
func (h *LikeHandler) HandleToggleCommentLike(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.GetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		commentID, err := h.ObjectIDParam(c, "commentId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.likeService.ToggleCommentLike(c.Context(), commentID, userID)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleToggleTweetLike bật/tắt lượt thích trên tweet
func (h *LikeHandler) HandleToggleTweetLike(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.GetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		tweetID, err := h.ObjectIDParam(c, "tweetId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.likeService.ToggleTweetLike(c.Context(), tweetID, userID)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetLikedVideos liệt kê video người dùng đã thích
func (h *LikeHandler) HandleGetLikedVideos(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.GetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		videos, err := h.likeService.GetLikedVideos(c.Context(), userID)
		h.HandleResponse(c, videos, err)
		return nil
	})
}
