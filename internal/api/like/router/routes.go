// Package router đăng ký các route thuộc domain like.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	likehdl "github.com/kavish224/Backend/internal/api/like/handler"
	"github.com/kavish224/Backend/internal/api/middleware"
	apirouter "github.com/kavish224/Backend/internal/api/router"
)

// Register đăng ký tất cả route lượt thích lên v1.
func Register(v1 fiber.Router) error {
	likeHandler, err := likehdl.NewLikeHandler()
	if err != nil {
		return fmt.Errorf("failed to create like handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()

	apirouter.RegisterRouteWithMiddleware(v1, "/likes", "POST", "/toggle/v/:videoId", []fiber.Handler{authMiddleware}, likeHandler.HandleToggleVideoLike)
	apirouter.RegisterRouteWithMiddleware(v1, "/likes", "POST", "/toggle/c/:commentId", []fiber.Handler{authMiddleware}, likeHandler.HandleToggleCommentLike)
	apirouter.RegisterRouteWithMiddleware(v1, "/likes", "POST", "/toggle/t/:tweetId", []fiber.Handler{authMiddleware}, likeHandler.HandleToggleTweetLike)
	apirouter.RegisterRouteWithMiddleware(v1, "/likes", "GET", "/videos", []fiber.Handler{authMiddleware}, likeHandler.HandleGetLikedVideos)

	return nil
}
