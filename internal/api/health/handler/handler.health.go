package healthhdl

import (
	"context"
	"time"

	basehdl "github.com/kavish224/Backend/internal/api/base/handler"
	"github.com/kavish224/Backend/internal/common"
	"github.com/kavish224/Backend/internal/global"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var startTime = time.Now()

// HealthHandler xử lý request kiểm tra tình trạng hệ thống
type HealthHandler struct {
	basehdl.BaseHandler
}

// NewHealthHandler tạo instance mới của HealthHandler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HandleHealthCheck kiểm tra kết nối MongoDB và trả về thời gian hoạt động
func (h *HealthHandler) HandleHealthCheck(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		database := "ok"
		if global.MongoDB_Session == nil {
			database = "down"
		} else if err := global.MongoDB_Session.Ping(ctx, readpref.Primary()); err != nil {
			database = "down"
		}

		data := fiber.Map{
			"status":   "ok",
			"database": database,
			"uptime":   time.Since(startTime).String(),
			"time":     time.Now().UTC().Format(time.RFC3339),
		}

		if database != "ok" {
			h.HandleResponseWithStatus(c, common.StatusServiceUnavailable, "Hệ thống không sẵn sàng",
				nil, common.ErrConnection)
			return nil
		}

		h.HandleResponse(c, data, nil)
		return nil
	})
}
