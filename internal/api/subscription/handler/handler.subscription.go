package subscriptionhdl

import (
	"fmt"

	basehdl "github.com/kavish224/Backend/internal/api/base/handler"
	subscriptionsvc "github.com/kavish224/Backend/internal/api/subscription/service"

	"github.com/gofiber/fiber/v3"
)

// SubscriptionHandler xử lý các request đăng ký kênh
type SubscriptionHandler struct {
	basehdl.BaseHandler
	subscriptionService *subscriptionsvc.SubscriptionService
}

// NewSubscriptionHandler tạo instance mới của SubscriptionHandler
func NewSubscriptionHandler() (*SubscriptionHandler, error) {
	subscriptionService, err := subscriptionsvc.NewSubscriptionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription service: %v", err)
	}
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
	}, nil
}

// HandleToggle bật/tắt đăng ký một kênh
func (h *SubscriptionHandler) HandleToggle(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		subscriberID, err := h.GetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		channelID, err := h.ObjectIDParam(c, "channelId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.subscriptionService.Toggle(c.Context(), channelID, subscriberID)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleChannelSubscribers liệt kê người đã đăng ký một kênh
func (h *SubscriptionHandler) HandleChannelSubscribers(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		channelID, err := h.ObjectIDParam(c, "channelId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		subscribers, err := h.subscriptionService.GetChannelSubscribers(c.Context(), channelID)
		h.HandleResponse(c, subscribers, err)
		return nil
	})
}

// HandleSubscribedChannels liệt kê kênh người dùng hiện tại đã đăng ký
func (h *SubscriptionHandler) HandleSubscribedChannels(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		subscriberID, err := h.GetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		channels, err := h.subscriptionService.GetSubscribedChannels(c.Context(), subscriberID)
		h.HandleResponse(c, channels, err)
		return nil
	})
}
