// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User định nghĩa mô hình người dùng
// RefreshToken chứa refresh token mới nhất, được thay thế mỗi lần login/refresh
// WatchHistory chứa danh sách id video đã xem, video mới xem được thêm vào cuối
type User struct {
	ID           primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Username     string               `json:"username" bson:"username" index:"unique"`
	Email        string               `json:"email" bson:"email" index:"unique"`
	FullName     string               `json:"fullName" bson:"fullName"`
	Avatar       string               `json:"avatar" bson:"avatar"`
	AvatarID     string               `json:"-" bson:"avatarId,omitempty"`
	CoverImage   string               `json:"coverImage,omitempty" bson:"coverImage,omitempty"`
	CoverImageID string               `json:"-" bson:"coverImageId,omitempty"`
	Password     string               `json:"-" bson:"password,omitempty"`
	RefreshToken string               `json:"-" bson:"refreshToken,omitempty"`
	WatchHistory []primitive.ObjectID `json:"watchHistory" bson:"watchHistory"`
	CreatedAt    int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64                `json:"updatedAt" bson:"updatedAt"`
}

// ChannelProfile là read model trang kênh của một user
type ChannelProfile struct {
	ID                        primitive.ObjectID `json:"id" bson:"_id"`
	Username                  string             `json:"username" bson:"username"`
	Email                     string             `json:"email" bson:"email"`
	FullName                  string             `json:"fullName" bson:"fullName"`
	Avatar                    string             `json:"avatar" bson:"avatar"`
	CoverImage                string             `json:"coverImage,omitempty" bson:"coverImage,omitempty"`
	SubscribersCount          int64              `json:"subscribersCount" bson:"subscribersCount"`
	ChannelsSubscribedToCount int64              `json:"channelsSubscribedToCount" bson:"channelsSubscribedToCount"`
	IsSubscribed              bool               `json:"isSubscribed" bson:"isSubscribed"`
}

// VideoOwner là projection rút gọn của chủ video trong các read model
type VideoOwner struct {
	ID       primitive.ObjectID `json:"id" bson:"_id"`
	Username string             `json:"username" bson:"username"`
	FullName string             `json:"fullName" bson:"fullName"`
	Avatar   string             `json:"avatar" bson:"avatar"`
}

// WatchHistoryVideo là read model một video trong lịch sử xem
type WatchHistoryVideo struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	VideoFile   string             `json:"videoFile" bson:"videoFile"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	Duration    float64            `json:"duration" bson:"duration"`
	Views       int64              `json:"views" bson:"views"`
	Owner       VideoOwner         `json:"owner" bson:"owner"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
}
