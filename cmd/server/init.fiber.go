package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	authrouter "github.com/kavish224/Backend/internal/api/auth/router"
	commentrouter "github.com/kavish224/Backend/internal/api/comment/router"
	dashboardrouter "github.com/kavish224/Backend/internal/api/dashboard/router"
	healthrouter "github.com/kavish224/Backend/internal/api/health/router"
	likerouter "github.com/kavish224/Backend/internal/api/like/router"
	playlistrouter "github.com/kavish224/Backend/internal/api/playlist/router"
	"github.com/kavish224/Backend/internal/api/router"
	subscriptionrouter "github.com/kavish224/Backend/internal/api/subscription/router"
	tweetrouter "github.com/kavish224/Backend/internal/api/tweet/router"
	videorouter "github.com/kavish224/Backend/internal/api/video/router"
	"github.com/kavish224/Backend/internal/common"
	"github.com/kavish224/Backend/internal/global"
	"github.com/kavish224/Backend/internal/logger"
)

// InitFiberApp khởi tạo ứng dụng Fiber với các middleware cần thiết
func InitFiberApp() *fiber.App {
	// Khởi tạo app với cấu hình nâng cao
	app := fiber.New(fiber.Config{
		// =========================================
		// 1. CẤU HÌNH CƠ BẢN
		// =========================================
		AppName:       "VideoTube API", // Tên ứng dụng hiển thị
		ServerHeader:  "VideoTube API", // Header server trong response
		StrictRouting: true,            // /foo và /foo/ là khác nhau
		CaseSensitive: true,            // /Foo và /foo là khác nhau
		UnescapePath:  true,            // Tự động decode URL-encoded paths
		Immutable:     false,           // Tính năng immutable cho ctx

		// =========================================
		// 2. CẤU HÌNH PERFORMANCE
		// =========================================
		BodyLimit:       200 * 1024 * 1024, // Max size của request body, video upload cần lớn (200MB)
		Concurrency:     256 * 1024,        // Số lượng goroutines tối đa
		ReadBufferSize:  4096,              // Buffer size cho request reading
		WriteBufferSize: 4096,              // Buffer size cho response writing

		// =========================================
		// 3. CẤU HÌNH TIMEOUT
		// =========================================
		ReadTimeout:  120 * time.Second, // Timeout đọc request, đủ cho upload video
		WriteTimeout: 30 * time.Second,  // Timeout ghi response
		IdleTimeout:  120 * time.Second, // Timeout cho idle connections

		// =========================================
		// 4. CẤU HÌNH ERROR HANDLING
		// =========================================
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			}

			// Lỗi TLS handshake (client gọi HTTPS vào HTTP server) không cần log
			errMsg := err.Error()
			isTLSHandshake := strings.Contains(errMsg, "unsupported http request method") &&
				(strings.Contains(errMsg, "\\x16\\x03\\x01") ||
					strings.Contains(errMsg, "\x16\x03\x01") ||
					strings.Contains(errMsg, "error when reading request headers"))

			if isTLSHandshake {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"statusCode": fiber.StatusBadRequest,
					"message":    "Server chỉ hỗ trợ HTTP. Vui lòng sử dụng http:// thay vì https://",
					"success":    false,
					"errors":     []interface{}{},
				})
			}

			logger.WithRequest(c).WithFields(map[string]interface{}{
				"code":    code,
				"message": message,
			}).Error("Request error")

			return c.Status(code).JSON(fiber.Map{
				"statusCode": code,
				"message":    message,
				"success":    false,
				"errors":     []interface{}{},
			})
		},
	})

	// =========================================
	// MIDDLEWARE STACK
	// =========================================

	// 1. Request ID Middleware - Tạo ID duy nhất cho mỗi request để trace
	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return fmt.Sprintf("%d", time.Now().UnixNano())
		},
	}))

	// 2. CORS Middleware - PHẢI ĐẶT Ở ĐẦU để xử lý preflight requests trước các middleware khác
	corsOrigins := global.MongoDB_ServerConfig.CORS_Origins
	var allowOrigins []string
	if corsOrigins == "*" {
		// Development mode: cho phép tất cả
		allowOrigins = []string{"*"}
	} else {
		// Production mode: chỉ cho phép các origins cụ thể
		allowOrigins = strings.Split(corsOrigins, ",")
		for i, origin := range allowOrigins {
			allowOrigins[i] = strings.TrimSpace(origin)
		}
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Request-ID",
			"X-Requested-With",
		},
		AllowCredentials: global.MongoDB_ServerConfig.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "Content-Range", "X-Request-ID"},
		MaxAge:           24 * 60 * 60, // Thời gian cache preflight requests (24 giờ)
	}))

	// 3. Security Headers Middleware
	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	})

	// 4. Rate Limiting Middleware - Giới hạn số request
	// Chỉ bật rate limit nếu được enable và Max > 0
	if global.MongoDB_ServerConfig.RateLimit_Enabled && global.MongoDB_ServerConfig.RateLimit_Max > 0 {
		rateLimitMax := global.MongoDB_ServerConfig.RateLimit_Max
		rateLimitWindow := time.Duration(global.MongoDB_ServerConfig.RateLimit_Window) * time.Second
		app.Use(limiter.New(limiter.Config{
			Max:        rateLimitMax,
			Expiration: rateLimitWindow,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP() // Giới hạn theo IP
			},
			LimitReached: func(c fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"statusCode": fiber.StatusTooManyRequests,
					"message":    common.MsgTooManyRequests,
					"success":    false,
					"errors":     []interface{}{},
				})
			},
			SkipFailedRequests:     false,
			SkipSuccessfulRequests: false,
			Next: func(c fiber.Ctx) bool {
				// Bỏ qua rate limit cho healthcheck và OPTIONS requests (preflight)
				return c.Path() == "/api/v1/healthcheck" || c.Method() == "OPTIONS"
			},
		}))
		log := logger.GetAppLogger()
		log.Infof("Rate limiting enabled: %d requests per %d seconds", rateLimitMax, global.MongoDB_ServerConfig.RateLimit_Window)
	} else {
		log := logger.GetAppLogger()
		log.Info("Rate limiting disabled")
	}

	// 5. Recover Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			// Log panic với stack trace
			logger.WithRequest(c).WithFields(map[string]interface{}{
				"panic": e,
			}).Error("Panic recovered")

			c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"statusCode": fiber.StatusInternalServerError,
				"message":    common.MsgInternalError,
				"success":    false,
				"errors":     []interface{}{},
			})
		},
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/api/v1/healthcheck"
		},
	}))

	// Đăng ký routes của từng domain
	if err := router.SetupRoutes(app,
		healthrouter.Register,
		authrouter.Register,
		videorouter.Register,
		commentrouter.Register,
		likerouter.Register,
		subscriptionrouter.Register,
		tweetrouter.Register,
		playlistrouter.Register,
		dashboardrouter.Register,
	); err != nil {
		logger.GetAppLogger().Fatalf("Failed to setup routes: %v", err)
	}

	return app
}
