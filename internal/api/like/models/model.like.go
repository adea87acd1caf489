package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/kavish224/Backend/internal/api/auth/models"
)

// Like là một lượt thích của người dùng trên đúng một đối tượng:
// video, comment hoặc tweet. Chỉ một trong ba field đối tượng được set.
// Index unique partial trên từng cặp (đối tượng, likedBy) đảm bảo
// mỗi người dùng chỉ thích một đối tượng một lần.
type Like struct {
	ID      primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Video   primitive.ObjectID `json:"video,omitempty" bson:"video,omitempty" index:"compound:video_likedBy_unique,partial"`
	Comment primitive.ObjectID `json:"comment,omitempty" bson:"comment,omitempty" index:"compound:comment_likedBy_unique,partial"`
	Tweet   primitive.ObjectID `json:"tweet,omitempty" bson:"tweet,omitempty" index:"compound:tweet_likedBy_unique,partial"`
	LikedBy primitive.ObjectID `json:"likedBy" bson:"likedBy" index:"compound:video_likedBy_unique;compound:comment_likedBy_unique;compound:tweet_likedBy_unique"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// LikedVideo là một video trong danh sách video người dùng đã thích.
type LikedVideo struct {
	ID          primitive.ObjectID    `json:"id" bson:"_id"`
	VideoFile   string                `json:"videoFile" bson:"videoFile"`
	Thumbnail   string                `json:"thumbnail" bson:"thumbnail"`
	Title       string                `json:"title" bson:"title"`
	Description string                `json:"description" bson:"description"`
	Duration    float64               `json:"duration" bson:"duration"`
	Views       int64                 `json:"views" bson:"views"`
	Owner       authmodels.VideoOwner `json:"owner" bson:"owner"`
	CreatedAt   int64                 `json:"createdAt" bson:"createdAt"`
}

// ToggleResult cho client biết trạng thái sau khi bật/tắt lượt thích.
type ToggleResult struct {
	Liked bool `json:"liked"`
}
