// Package models - model video thuộc domain video.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/kavish224/Backend/internal/api/auth/models"
)

// Video định nghĩa mô hình video
// VideoFileID/ThumbnailID là định danh trên object storage, dùng khi cần xóa media
type Video struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Owner       primitive.ObjectID `json:"owner" bson:"owner" index:"single"`
	VideoFile   string             `json:"videoFile" bson:"videoFile"`
	VideoFileID string             `json:"-" bson:"videoFileId,omitempty"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	ThumbnailID string             `json:"-" bson:"thumbnailId,omitempty"`
	Title       string             `json:"title" bson:"title" index:"compound:title_description_text"`
	Description string             `json:"description" bson:"description" index:"compound:title_description_text"`
	Duration    float64            `json:"duration" bson:"duration"`
	Views       int64              `json:"views" bson:"views"`
	IsPublished bool               `json:"isPublished" bson:"isPublished"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// VideoListItem là read model một video trong danh sách công khai
type VideoListItem struct {
	ID          primitive.ObjectID    `json:"id" bson:"_id"`
	Title       string                `json:"title" bson:"title"`
	Description string                `json:"description" bson:"description"`
	VideoFile   string                `json:"videoFile" bson:"videoFile"`
	Thumbnail   string                `json:"thumbnail" bson:"thumbnail"`
	Duration    float64               `json:"duration" bson:"duration"`
	Views       int64                 `json:"views" bson:"views"`
	Owner       authmodels.VideoOwner `json:"owner" bson:"owner"`
	CreatedAt   int64                 `json:"createdAt" bson:"createdAt"`
}

// VideoDetailOwner là chủ video trong read model chi tiết, kèm số liệu kênh
type VideoDetailOwner struct {
	ID               primitive.ObjectID `json:"id" bson:"_id"`
	Username         string             `json:"username" bson:"username"`
	FullName         string             `json:"fullName" bson:"fullName"`
	Avatar           string             `json:"avatar" bson:"avatar"`
	SubscribersCount int64              `json:"subscribersCount" bson:"subscribersCount"`
	IsSubscribed     bool               `json:"isSubscribed" bson:"isSubscribed"`
}

// VideoDetail là read model chi tiết video theo góc nhìn của người xem
type VideoDetail struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	VideoFile   string             `json:"videoFile" bson:"videoFile"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	Duration    float64            `json:"duration" bson:"duration"`
	Views       int64              `json:"views" bson:"views"`
	IsPublished bool               `json:"isPublished" bson:"isPublished"`
	Owner       VideoDetailOwner   `json:"owner" bson:"owner"`
	LikesCount  int64              `json:"likesCount" bson:"likesCount"`
	IsLiked     bool               `json:"isLiked" bson:"isLiked"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
}
