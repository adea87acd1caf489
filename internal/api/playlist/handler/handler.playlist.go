package playlisthdl

import (
	"fmt"

	basehdl "github.com/kavish224/Backend/internal/api/base/handler"
	playlistdto "github.com/kavish224/Backend/internal/api/playlist/dto"
	playlistsvc "github.com/kavish224/Backend/internal/api/playlist/service"
	"github.com/kavish224/Backend/internal/common"

	"github.com/gofiber/fiber/v3"
)

// PlaylistHandler xử lý các request playlist
type PlaylistHandler struct {
	basehdl.BaseHandler
	playlistService *playlistsvc.PlaylistService
}

// NewPlaylistHandler tạo instance mới của PlaylistHandler
func NewPlaylistHandler() (*PlaylistHandler, error) {
	playlistService, err := playlistsvc.NewPlaylistService()
	if err != nil {
		return nil, fmt.Errorf("failed to create playlist service: %v", err)
	}
	return &PlaylistHandler{
		playlistService: playlistService,
	}, nil
}

// HandleCreate tạo playlist mới
func (h *PlaylistHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := h.GetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input playlistdto.PlaylistCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := h.playlistService.Create(c.Context(), ownerID, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleCreated(c, playlist, "Tạo playlist thành công", nil)
		return nil
	})
}

// HandleGetUserPlaylists liệt kê playlist của một người dùng
func (h *PlaylistHandler) HandleGetUserPlaylists(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.ObjectIDParam(c, "userId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlists, err := h.playlistService.GetUserPlaylists(c.Context(), userID)
		h.HandleResponse(c, playlists, err)
		return nil
	})
}

// HandleGetByID trả về chi tiết một playlist
func (h *PlaylistHandler) HandleGetByID(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		playlistID, err := h.ObjectIDParam(c, "playlistId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		detail, err := h.playlistService.GetByID(c.Context(), playlistID)
		h.HandleResponse(c, detail, err)
		return nil
	})
}

// HandleAddVideo thêm video vào playlist
func (h *PlaylistHandler) HandleAddVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := h.GetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		playlistID, err := h.ObjectIDParam(c, "playlistId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		videoID, err := h.ObjectIDParam(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := h.playlistService.AddVideo(c.Context(), playlistID, videoID, ownerID)
		h.HandleResponse(c, playlist, err)
		return nil
	})
}

// HandleRemoveVideo gỡ video khỏi playlist
func (h *PlaylistHandler) HandleRemoveVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := h.GetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		playlistID, err := h.ObjectIDParam(c, "playlistId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		videoID, err := h.ObjectIDParam(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := h.playlistService.RemoveVideo(c.Context(), playlistID, videoID, ownerID)
		h.HandleResponse(c, playlist, err)
		return nil
	})
}

// HandleUpdate sửa tên hoặc mô tả playlist
func (h *PlaylistHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := h.GetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		playlistID, err := h.ObjectIDParam(c, "playlistId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input playlistdto.PlaylistUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := h.playlistService.Update(c.Context(), playlistID, ownerID, &input)
		h.HandleResponse(c, playlist, err)
		return nil
	})
}

// HandleDelete xóa playlist
func (h *PlaylistHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := h.GetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		playlistID, err := h.ObjectIDParam(c, "playlistId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.playlistService.Delete(c.Context(), playlistID, ownerID)
		h.HandleResponseWithStatus(c, common.StatusOK, "Xóa playlist thành công", nil, err)
		return nil
	})
}
