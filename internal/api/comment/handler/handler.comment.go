package commenthdl

import (
	"fmt"

	basehdl "github.com/kavish224/Backend/internal/api/base/handler"
	commentdto "github.com/kavish224/Backend/internal/api/comment/dto"
	commentsvc "github.com/kavish224/Backend/internal/api/comment/service"
	"github.com/kavish224/Backend/internal/common"

	"github.com/gofiber/fiber/v3"
)

// CommentHandler xử lý các request bình luận
type CommentHandler struct {
	basehdl.BaseHandler
	commentService *commentsvc.CommentService
}

// NewCommentHandler tạo instance mới của CommentHandler
func NewCommentHandler() (*CommentHandler, error) {
	commentService, err := commentsvc.NewCommentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create comment service: %v", err)
	}
	return &CommentHandler{
		commentService: commentService,
	}, nil
}

// HandleListByVideo liệt kê bình luận của một video (phân trang, mới nhất trước)
func (h *CommentHandler) HandleListByVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		videoID, err := h.ObjectIDParam(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		viewerID := h.OptionalUserID(c)
		page, limit := h.PaginationParams(c)

		result, err := h.commentService.ListByVideo(c.Context(), videoID, viewerID, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleAdd thêm bình luận vào video
func (h *CommentHandler) HandleAdd(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := h.GetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		videoID, err := h.ObjectIDParam(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input commentdto.CommentCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		comment, err := h.commentService.Add(c.Context(), videoID, ownerID, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleCreated(c, comment, "Thêm bình luận thành công", nil)
		return nil
	})
}

// HandleUpdate sửa bình luận (chỉ người viết)
func (h *CommentHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := h.GetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		commentID, err := h.ObjectIDParam(c, "commentId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input commentdto.CommentUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		comment, err := h.commentService.Update(c.Context(), commentID, ownerID, &input)
		h.HandleResponse(c, comment, err)
		return nil
	})
}

// HandleDelete xóa bình luận (chỉ người viết)
func (h *CommentHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := h.GetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		commentID, err := h.ObjectIDParam(c, "commentId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.commentService.Delete(c.Context(), commentID, ownerID)
		h.HandleResponseWithStatus(c, common.StatusOK, "Xóa bình luận thành công", nil, err)
		return nil
	})
}
