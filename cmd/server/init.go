package main

import (
	"context"

	"github.com/kavish224/Backend/config"
	authmodels "github.com/kavish224/Backend/internal/api/auth/models"
	commentmodels "github.com/kavish224/Backend/internal/api/comment/models"
	likemodels "github.com/kavish224/Backend/internal/api/like/models"
	playlistmodels "github.com/kavish224/Backend/internal/api/playlist/models"
	submodels "github.com/kavish224/Backend/internal/api/subscription/models"
	tweetmodels "github.com/kavish224/Backend/internal/api/tweet/models"
	videomodels "github.com/kavish224/Backend/internal/api/video/models"
	"github.com/kavish224/Backend/internal/database"
	"github.com/kavish224/Backend/internal/global"
	"github.com/kavish224/Backend/internal/storage"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initStorage()          // Khởi tạo kết nối object storage
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Videos = "videos"
	global.MongoDB_ColNames.Comments = "comments"
	global.MongoDB_ColNames.Likes = "likes"
	global.MongoDB_ColNames.Subscriptions = "subscriptions"
	global.MongoDB_ColNames.Tweets = "tweets"
	global.MongoDB_ColNames.Playlists = "playlists"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, strong_password, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.Users), authmodels.User{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.Videos), videomodels.Video{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.Comments), commentmodels.Comment{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.Likes), likemodels.Like{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.Subscriptions), submodels.Subscription{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.Tweets), tweetmodels.Tweet{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.Playlists), playlistmodels.Playlist{})
}

// initStorage khởi tạo kết nối tới object storage chứa media
func initStorage() {
	if err := storage.Init(global.MongoDB_ServerConfig); err != nil {
		logrus.Fatalf("Failed to initialize media storage: %v", err)
	}
	logrus.Info("Initialized media storage")
}
