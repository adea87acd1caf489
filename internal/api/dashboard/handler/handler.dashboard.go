package dashboardhdl

import (
	"fmt"

	basehdl "github.com/kavish224/Backend/internal/api/base/handler"
	dashboardsvc "github.com/kavish224/Backend/internal/api/dashboard/service"

	"github.com/gofiber/fiber/v3"
)

// DashboardHandler xử lý các request số liệu kênh
type DashboardHandler struct {
	basehdl.BaseHandler
	dashboardService *dashboardsvc.DashboardService
}

// NewDashboardHandler tạo instance mới của DashboardHandler
func NewDashboardHandler() (*DashboardHandler, error) {
	dashboardService, err := dashboardsvc.NewDashboardService()
	if err != nil {
		return nil, fmt.Errorf("failed to create dashboard service: %v", err)
	}
	return &DashboardHandler{
		dashboardService: dashboardService,
	}, nil
}

// HandleChannelStats trả về số liệu tổng hợp kênh của người dùng hiện tại
func (h *DashboardHandler) HandleChannelStats(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		channelID, err := h.GetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		stats, err := h.dashboardService.GetChannelStats(c.Context(), channelID)
		h.HandleResponse(c, stats, err)
		return nil
	})
}

// HandleChannelVideos liệt kê video của kênh, kể cả video chưa xuất bản
func (h *DashboardHandler) HandleChannelVideos(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		channelID, err := h.GetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		videos, err := h.dashboardService.GetChannelVideos(c.Context(), channelID)
		h.HandleResponse(c, videos, err)
		return nil
	})
}
