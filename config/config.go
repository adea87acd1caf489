package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":8000"`                // Địa chỉ server
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URI kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"videotube"`     // Tên cơ sở dữ liệu
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting
	// JWT Configuration
	AccessTokenSecret  string `env:"ACCESS_TOKEN_SECRET,required"`           // Bí mật ký access token
	RefreshTokenSecret string `env:"REFRESH_TOKEN_SECRET,required"`          // Bí mật ký refresh token
	AccessTokenTTL     int    `env:"ACCESS_TOKEN_TTL" envDefault:"86400"`    // Thời gian sống access token (giây)
	RefreshTokenTTL    int    `env:"REFRESH_TOKEN_TTL" envDefault:"864000"`  // Thời gian sống refresh token (giây)
	CookieSecure       bool   `env:"COOKIE_SECURE" envDefault:"true"`        // Cookie chỉ gửi qua HTTPS
	// Media Storage Configuration
	MediaEndpoint  string `env:"MEDIA_ENDPOINT,required"`          // Endpoint object storage (host:port)
	MediaAccessKey string `env:"MEDIA_ACCESS_KEY,required"`        // Access key object storage
	MediaSecretKey string `env:"MEDIA_SECRET_KEY,required"`        // Secret key object storage
	MediaBucket    string `env:"MEDIA_BUCKET" envDefault:"media"`  // Bucket chứa media
	MediaUseSSL    bool   `env:"MEDIA_USE_SSL" envDefault:"false"` // Kết nối SSL tới object storage
	MediaPublicURL string `env:"MEDIA_PUBLIC_URL"`                 // Base URL public của media (mặc định suy ra từ endpoint)
	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn đến file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn đến file private key (.key)
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env, đi lên dần từ thư mục hiện tại
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env được cung cấp
func NewConfig(files ...string) *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
