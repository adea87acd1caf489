// Package likesvc - service lượt thích trên video, bình luận và tweet.
package likesvc

import (
	"context"
	"fmt"

	basesvc "github.com/kavish224/Backend/internal/api/base/service"
	likemodels "github.com/kavish224/Backend/internal/api/like/models"
	"github.com/kavish224/Backend/internal/common"
	"github.com/kavish224/Backend/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// LikeService là cấu trúc chứa các phương thức liên quan đến lượt thích
type LikeService struct {
	*basesvc.BaseServiceMongoImpl[likemodels.Like]
	videoCollection   *mongo.Collection
	commentCollection *mongo.Collection
	tweetCollection   *mongo.Collection
}

// NewLikeService tạo mới LikeService
func NewLikeService() (*LikeService, error) {
	likeCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes)
	if !exist {
		return nil, fmt.Errorf("failed to get likes collection: %v", common.ErrNotFound)
	}
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}
	commentCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Comments)
	if !exist {
		return nil, fmt.Errorf("failed to get comments collection: %v", common.ErrNotFound)
	}
	tweetCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Tweets)
	if !exist {
		return nil, fmt.Errorf("failed to get tweets collection: %v", common.ErrNotFound)
	}

	return &LikeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[likemodels.Like](likeCollection),
		videoCollection:      videoCollection,
		commentCollection:    commentCollection,
		tweetCollection:      tweetCollection,
	}, nil
}

// targetExists kiểm tra đối tượng được thích còn tồn tại.
func (s *LikeService) targetExists(ctx context.Context, collection *mongo.Collection, id primitive.ObjectID, label string) error {
	err := collection.FindOne(ctx, bson.M{"_id": id}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy "+label, common.StatusNotFound, nil)
		}
		return common.ConvertMongoError(err)
	}
	return nil
}

// toggle bật/tắt lượt thích: đã có thì xóa, chưa có thì thêm.
// Index unique trên (đối tượng, likedBy) chặn ghi trùng khi hai request đua nhau.
func (s *LikeService) toggle(ctx context.Context, filter bson.M, like likemodels.Like) (*likemodels.ToggleResult, error) {
	_, err := s.DeleteOne(ctx, filter)
	if err == nil {
		return &likemodels.ToggleResult{Liked: false}, nil
	}
	if customErr, ok := err.(*common.Error); !ok || customErr.StatusCode != common.StatusNotFound {
		return nil, err
	}

	if _, err := s.InsertOne(ctx, like); err != nil {
		// Request song song đã thêm trước, coi như đã thích
		if customErr, ok := err.(*common.Error); ok && customErr.StatusCode == common.StatusConflict {
			return &likemodels.ToggleResult{Liked: true}, nil
		}
		return nil, err
	}
	return &likemodels.ToggleResult{Liked: true}, nil
}

// ToggleVideoLike bật/tắt lượt thích trên video.
func (s *LikeService) ToggleVideoLike(ctx context.Context, videoID primitive.ObjectID, userID primitive.ObjectID) (*likemodels.ToggleResult, error) {
	if err := s.targetExists(ctx, s.videoCollection, videoID, "video"); err != nil {
		return nil, err
	}
	filter := bson.M{"video": videoID, "likedBy": userID}
	return s.toggle(ctx, filter, likemodels.Like{Video: videoID, LikedBy: userID})
}

// ToggleCommentLike bật/tắt lượt thích trên bình luận.
func (s *LikeService) ToggleCommentLike(ctx context.Context, commentID primitive.ObjectID, userID primitive.ObjectID) (*likemodels.ToggleResult, error) {
	if err := s.targetExists(ctx, s.commentCollection, commentID, "bình luận"); err != nil {
		return nil, err
	}
	filter := bson.M{"comment": commentID, "likedBy": userID}
	return s.toggle(ctx, filter, likemodels.Like{Comment: commentID, LikedBy: userID})
}

// ToggleTweetLike bật/tắt lượt thích trên tweet.
func (s *LikeService) ToggleTweetLike(ctx context.Context, tweetID primitive.ObjectID, userID primitive.ObjectID) (*likemodels.ToggleResult, error) {
	if err := s.targetExists(ctx, s.tweetCollection, tweetID, "tweet"); err != nil {
		return nil, err
	}
	filter := bson.M{"tweet": tweetID, "likedBy": userID}
	return s.toggle(ctx, filter, likemodels.Like{Tweet: tweetID, LikedBy: userID})
}

// GetLikedVideos trả về danh sách video người dùng đã thích, mới thích trước.
// Video đã bị xóa sau khi thích sẽ không xuất hiện trong danh sách.
func (s *LikeService) GetLikedVideos(ctx context.Context, userID primitive.ObjectID) ([]likemodels.LikedVideo, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"likedBy": userID,
			"video":   bson.M{"$exists": true},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Videos,
			"localField":   "video",
			"foreignField": "_id",
			"as":           "video",
			"pipeline": bson.A{
				bson.M{"$lookup": bson.M{
					"from":         global.MongoDB_ColNames.Users,
					"localField":   "owner",
					"foreignField": "_id",
					"as":           "owner",
					"pipeline": bson.A{
						bson.M{"$project": bson.M{"username": 1, "fullName": 1, "avatar": 1}},
					},
				}},
				bson.M{"$addFields": bson.M{"owner": bson.M{"$first": "$owner"}}},
			},
		}}},
		bson.D{{Key: "$unwind", Value: "$video"}},
		bson.D{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$video"}}},
	}

	videos := []likemodels.LikedVideo{}
	if err := s.Aggregate(ctx, pipeline, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}
