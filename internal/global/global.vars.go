package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kavish224/Backend/config"
	"github.com/kavish224/Backend/internal/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users         string // Tên collection cho người dùng
	Videos        string // Tên collection cho video
	Comments      string // Tên collection cho bình luận
	Likes         string // Tên collection cho lượt thích
	Subscriptions string // Tên collection cho đăng ký kênh
	Tweets        string // Tên collection cho tweet
	Playlists     string // Tên collection cho playlist
}

// Các biến toàn cục
var Validate *validator.Validate                                       // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                      // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                         // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = MongoDB_CollectionName{} // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
