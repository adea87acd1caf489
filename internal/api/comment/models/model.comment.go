// Package models - model bình luận (Comment) thuộc domain comment.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/kavish224/Backend/internal/api/auth/models"
)

// Comment định nghĩa mô hình bình luận trên một video
type Comment struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Content   string             `json:"content" bson:"content"`
	Video     primitive.ObjectID `json:"video" bson:"video" index:"single"`
	Owner     primitive.ObjectID `json:"owner" bson:"owner"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// CommentListItem là read model một bình luận trong danh sách theo video
type CommentListItem struct {
	ID         primitive.ObjectID    `json:"id" bson:"_id"`
	Content    string                `json:"content" bson:"content"`
	Owner      authmodels.VideoOwner `json:"owner" bson:"owner"`
	LikesCount int64                 `json:"likesCount" bson:"likesCount"`
	IsLiked    bool                  `json:"isLiked" bson:"isLiked"`
	CreatedAt  int64                 `json:"createdAt" bson:"createdAt"`
}
