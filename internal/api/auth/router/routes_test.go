package router

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apirouter "github.com/kavish224/Backend/internal/api/router"
	"github.com/kavish224/Backend/internal/common"
	"github.com/kavish224/Backend/internal/global"
)

// newTestApp dựng app với route người dùng thật nhưng trỏ vào một client
// Mongo không kết nối được (timeout rất ngắn), đủ để kiểm tra tầng routing
// và phạm vi middleware mà không cần cơ sở dữ liệu.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Videos = "videos"
	global.MongoDB_ColNames.Subscriptions = "subscriptions"

	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(50*time.Millisecond).
		SetConnectTimeout(50*time.Millisecond))
	if err != nil {
		t.Fatalf("Không tạo được mongo client: %v", err)
	}

	db := client.Database("videotube_test")
	if _, err := global.RegistryCollections.Register(global.MongoDB_ColNames.Users, db.Collection(global.MongoDB_ColNames.Users)); err != nil {
		t.Fatalf("Không đăng ký được collection users: %v", err)
	}

	app := fiber.New()
	if err := apirouter.SetupRoutes(app, Register); err != nil {
		t.Fatalf("Không đăng ký được route người dùng: %v", err)
	}
	return app
}

func TestChannelProfileReachableWithoutLogin(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/v1/users/c/alice", nil)
	resp, err := app.Test(req, 5*time.Second)
	if err != nil {
		t.Fatalf("Request thất bại: %v", err)
	}
	defer resp.Body.Close()

	// Khách xem kênh phải đi qua được tầng middleware; database không có
	// nên kết quả là lỗi server, nhưng tuyệt đối không phải 401
	if resp.StatusCode == common.StatusUnauthorized {
		t.Fatalf("Route public /users/c/:username bị middleware xác thực chặn (status %d)", resp.StatusCode)
	}
}

func TestGuardedUserRoutesRequireLogin(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		method string
		path   string
	}{
		{"GET", "/api/v1/users/current-user"},
		{"GET", "/api/v1/users/history"},
		{"POST", "/api/v1/users/logout"},
		{"POST", "/api/v1/users/change-password"},
		{"PATCH", "/api/v1/users/update-account"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		resp, err := app.Test(req, 5*time.Second)
		if err != nil {
			t.Fatalf("%s %s: request thất bại: %v", tc.method, tc.path, err)
		}
		resp.Body.Close()

		if resp.StatusCode != common.StatusUnauthorized {
			t.Errorf("%s %s: muốn 401 khi chưa đăng nhập, nhận %d", tc.method, tc.path, resp.StatusCode)
		}
	}
}
