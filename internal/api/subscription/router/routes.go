// Package router đăng ký các route thuộc domain subscription.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/kavish224/Backend/internal/api/middleware"
	apirouter "github.com/kavish224/Backend/internal/api/router"
	subscriptionhdl "github.com/kavish224/Backend/internal/api/subscription/handler"
)

// Register đăng ký tất cả route đăng ký kênh lên v1.
func Register(v1 fiber.Router) error {
	subscriptionHandler, err := subscriptionhdl.NewSubscriptionHandler()
	if err != nil {
		return fmt.Errorf("failed to create subscription handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()

	apirouter.RegisterRouteWithMiddleware(v1, "/subscriptions", "POST", "/c/:channelId", []fiber.Handler{authMiddleware}, subscriptionHandler.HandleToggle)
	apirouter.RegisterRouteWithMiddleware(v1, "/subscriptions", "GET", "/c/:channelId", []fiber.Handler{authMiddleware}, subscriptionHandler.HandleChannelSubscribers)
	apirouter.RegisterRouteWithMiddleware(v1, "/subscriptions", "GET", "/me/channels", []fiber.Handler{authMiddleware}, subscriptionHandler.HandleSubscribedChannels)

	return nil
}
