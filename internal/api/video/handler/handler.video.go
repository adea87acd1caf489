package videohdl

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	basehdl "github.com/kavish224/Backend/internal/api/base/handler"
	videodto "github.com/kavish224/Backend/internal/api/video/dto"
	videosvc "github.com/kavish224/Backend/internal/api/video/service"
	"github.com/kavish224/Backend/internal/common"
	"github.com/kavish224/Backend/internal/logger"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VideoHandler xử lý các request video
type VideoHandler struct {
	basehdl.BaseHandler
	videoService *videosvc.VideoService
}

// NewVideoHandler tạo instance mới của VideoHandler
func NewVideoHandler() (*VideoHandler, error) {
	videoService, err := videosvc.NewVideoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create video service: %v", err)
	}
	return &VideoHandler{
		videoService: videoService,
	}, nil
}

// saveUploadedFile lưu file multipart vào thư mục tạm. Rỗng nếu field không có file.
func (h *VideoHandler) saveUploadedFile(c fiber.Ctx, field string) (string, error) {
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

// HandlePublish đăng video mới (multipart: videoFile + thumbnail + metadata)
func (h *VideoHandler) HandlePublish(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := h.GetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		duration, _ := strconv.ParseFloat(c.FormValue("duration"), 64)
		input := videodto.VideoPublishInput{
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
			Duration:    duration,
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		videoPath, err := h.saveUploadedFile(c, "videoFile")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		thumbnailPath, err := h.saveUploadedFile(c, "thumbnail")
		if err != nil {
			if videoPath != "" {
				os.Remove(videoPath)
			}
			h.HandleResponse(c, nil, err)
			return nil
		}
		if videoPath == "" || thumbnailPath == "" {
			if videoPath != "" {
				os.Remove(videoPath)
			}
			if thumbnailPath != "" {
				os.Remove(thumbnailPath)
			}
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Cần cả file video và thumbnail", common.StatusBadRequest, nil))
			return nil
		}
		defer os.Remove(videoPath)
		defer os.Remove(thumbnailPath)

		video, err := h.videoService.Publish(c.Context(), ownerID, &input, videoPath, thumbnailPath)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleCreated(c, video, "Đăng video thành công", nil)
		return nil
	})
}

// HandleList liệt kê video đã publish (query, userId, sortBy, sortType, page, limit)
func (h *VideoHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.PaginationParams(c)
		q := videodto.VideoListQuery{
			Query:    c.Query("query"),
			UserID:   c.Query("userId"),
			SortBy:   c.Query("sortBy"),
			SortType: c.Query("sortType"),
			Page:     page,
			Limit:    limit,
		}

		result, err := h.videoService.List(c.Context(), &q)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetByID trả về chi tiết video và ghi nhận lượt xem
func (h *VideoHandler) HandleGetByID(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		videoID, err := h.ObjectIDParam(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		viewerID := h.OptionalUserID(c)

		detail, err := h.videoService.Detail(c.Context(), videoID, viewerID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.videoService.RecordView(c.Context(), videoID, viewerID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, detail, nil)
		return nil
	})
}

// HandleUpdate cập nhật title/description/thumbnail (chỉ chủ sở hữu)
func (h *VideoHandler) HandleUpdate(c fiber.Ctx) error {
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

		input := videodto.VideoUpdateInput{
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		thumbnailPath, err := h.saveUploadedFile(c, "thumbnail")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if thumbnailPath != "" {
			defer os.Remove(thumbnailPath)
		}

		video, err := h.videoService.Update(c.Context(), videoID, ownerID, &input, thumbnailPath)
		h.HandleResponse(c, video, err)
		return nil
	})
}

// HandleDelete xóa video (chỉ chủ sở hữu, kéo theo like và comment)
func (h *VideoHandler) HandleDelete(c fiber.Ctx) error {
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

		err = h.videoService.Delete(c.Context(), videoID, ownerID)
		if err == nil {
			logger.LogCRUD("delete", "video", videoID.Hex(), c, nil)
		}
		h.HandleResponseWithStatus(c, common.StatusOK, "Xóa video thành công", nil, err)
		return nil
	})
}

// HandleTogglePublish đảo trạng thái publish (chỉ chủ sở hữu)
func (h *VideoHandler) HandleTogglePublish(c fiber.Ctx) error {
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

		video, err := h.videoService.TogglePublish(c.Context(), videoID, ownerID)
		h.HandleResponse(c, video, err)
		return nil
	})
}
