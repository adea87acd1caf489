// Package router đăng ký các route thuộc domain tweet.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/kavish224/Backend/internal/api/middleware"
	apirouter "github.com/kavish224/Backend/internal/api/router"
	tweethdl "github.com/kavish224/Backend/internal/api/tweet/handler"
)

// Register đăng ký tất cả route tweet lên v1.
func Register(v1 fiber.Router) error {
	tweetHandler, err := tweethdl.NewTweetHandler()
	if err != nil {
		return fmt.Errorf("failed to create tweet handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	optionalAuthMiddleware := middleware.OptionalAuthMiddleware()

	// Prefix tách riêng để middleware bắt buộc không chặn route public cùng path
	apirouter.RegisterRouteWithMiddleware(v1, "/tweets/user", "GET", "/:userId", []fiber.Handler{optionalAuthMiddleware}, tweetHandler.HandleGetUserTweets)
	apirouter.RegisterRouteWithMiddleware(v1, "/tweets/manage", "POST", "/", []fiber.Handler{authMiddleware}, tweetHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/tweets/manage", "PATCH", "/:tweetId", []fiber.Handler{authMiddleware}, tweetHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/tweets/manage", "DELETE", "/:tweetId", []fiber.Handler{authMiddleware}, tweetHandler.HandleDelete)

	return nil
}
