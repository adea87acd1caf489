package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/kavish224/Backend/internal/api/auth/models"
)

// Tweet là bài đăng văn bản ngắn của một người dùng.
type Tweet struct {
	ID      primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Content string             `json:"content" bson:"content"`
	Owner   primitive.ObjectID `json:"owner" bson:"owner" index:"single"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// TweetListItem là một tweet trong danh sách tweet của người dùng,
// kèm thông tin người đăng và số lượt thích.
type TweetListItem struct {
	ID         primitive.ObjectID    `json:"id" bson:"_id"`
	Content    string                `json:"content" bson:"content"`
	Owner      authmodels.VideoOwner `json:"owner" bson:"owner"`
	LikesCount int64                 `json:"likesCount" bson:"likesCount"`
	IsLiked    bool                  `json:"isLiked" bson:"isLiked"`
	CreatedAt  int64                 `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64                 `json:"updatedAt" bson:"updatedAt"`
}
