package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/kavish224/Backend/internal/api/auth/models"
)

// Playlist là danh sách phát video do một người dùng sở hữu.
// Videos lưu tham chiếu, video bị xóa sau đó chỉ đơn giản không
// xuất hiện khi đọc danh sách.
type Playlist struct {
	ID          primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string               `json:"name" bson:"name"`
	Description string               `json:"description" bson:"description"`
	Owner       primitive.ObjectID   `json:"owner" bson:"owner" index:"single"`
	Videos      []primitive.ObjectID `json:"videos" bson:"videos"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// PlaylistSummary là một playlist trong danh sách playlist của người dùng,
// kèm tổng số video và tổng lượt xem.
type PlaylistSummary struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	TotalVideos int64              `json:"totalVideos" bson:"totalVideos"`
	TotalViews  int64              `json:"totalViews" bson:"totalViews"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// PlaylistVideo là một video trong chi tiết playlist.
type PlaylistVideo struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	VideoFile string             `json:"videoFile" bson:"videoFile"`
	Thumbnail string             `json:"thumbnail" bson:"thumbnail"`
	Title     string             `json:"title" bson:"title"`
	Duration  float64            `json:"duration" bson:"duration"`
	Views     int64              `json:"views" bson:"views"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
}

// PlaylistDetail là chi tiết playlist kèm video đã xuất bản và chủ sở hữu.
type PlaylistDetail struct {
	ID          primitive.ObjectID    `json:"id" bson:"_id"`
	Name        string                `json:"name" bson:"name"`
	Description string                `json:"description" bson:"description"`
	Owner       authmodels.VideoOwner `json:"owner" bson:"owner"`
	Videos      []PlaylistVideo       `json:"videos" bson:"videos"`
	TotalVideos int64                 `json:"totalVideos" bson:"totalVideos"`
	TotalViews  int64                 `json:"totalViews" bson:"totalViews"`
	CreatedAt   int64                 `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64                 `json:"updatedAt" bson:"updatedAt"`
}
