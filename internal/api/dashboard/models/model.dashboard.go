package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChannelStats là số liệu tổng hợp kênh của người dùng hiện tại.
type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos" bson:"totalVideos"`
	TotalViews       int64 `json:"totalViews" bson:"totalViews"`
	TotalLikes       int64 `json:"totalLikes" bson:"totalLikes"`
	TotalSubscribers int64 `json:"totalSubscribers" bson:"totalSubscribers"`
}

// ChannelVideo là một video trong trang quản lý kênh,
// bao gồm cả video chưa xuất bản.
type ChannelVideo struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	VideoFile   string             `json:"videoFile" bson:"videoFile"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Duration    float64            `json:"duration" bson:"duration"`
	Views       int64              `json:"views" bson:"views"`
	IsPublished bool               `json:"isPublished" bson:"isPublished"`
	LikesCount  int64              `json:"likesCount" bson:"likesCount"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
