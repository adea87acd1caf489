// Package commentsvc - service bình luận video.
package commentsvc

import (
	"context"
	"fmt"

	basemodels "github.com/kavish224/Backend/internal/api/base/models"
	basesvc "github.com/kavish224/Backend/internal/api/base/service"
	commentdto "github.com/kavish224/Backend/internal/api/comment/dto"
	models "github.com/kavish224/Backend/internal/api/comment/models"
	"github.com/kavish224/Backend/internal/common"
	"github.com/kavish224/Backend/internal/global"
	"github.com/kavish224/Backend/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CommentService là cấu trúc chứa các phương thức liên quan đến bình luận
type CommentService struct {
	*basesvc.BaseServiceMongoImpl[models.Comment]
	videoCollection *mongo.Collection
	likeCollection  *mongo.Collection
}

// NewCommentService tạo mới CommentService
func NewCommentService() (*CommentService, error) {
	commentCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Comments)
	if !exist {
		return nil, fmt.Errorf("failed to get comments collection: %v", common.ErrNotFound)
	}
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}
	likeCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes)
	if !exist {
		return nil, fmt.Errorf("failed to get likes collection: %v", common.ErrNotFound)
	}

	return &CommentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Comment](commentCollection),
		videoCollection:      videoCollection,
		likeCollection:       likeCollection,
	}, nil
}

// videoExists kiểm tra video còn tồn tại trước khi thao tác bình luận.
func (s *CommentService) videoExists(ctx context.Context, videoID primitive.ObjectID) error {
	err := s.videoCollection.FindOne(ctx, bson.M{"_id": videoID}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy video", common.StatusNotFound, nil)
		}
		return common.ConvertMongoError(err)
	}
	return nil
}

// ListByVideo trả về danh sách bình luận của một video, mới nhất trước,
// kèm thông tin người viết, số like và cờ isLiked của người xem.
func (s *CommentService) ListByVideo(ctx context.Context, videoID primitive.ObjectID, viewerID primitive.ObjectID, page int64, limit int64) (*basemodels.PaginateResult[models.CommentListItem], error) {
	if err := s.videoExists(ctx, videoID); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	total, err := s.CountDocuments(ctx, bson.M{"video": videoID})
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"video": videoID}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$skip", Value: (page - 1) * limit}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Users,
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "owner",
			"pipeline": bson.A{
				bson.M{"$project": bson.M{"username": 1, "fullName": 1, "avatar": 1}},
			},
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Likes,
			"localField":   "_id",
			"foreignField": "comment",
			"as":           "likes",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"owner":      bson.M{"$first": "$owner"},
			"likesCount": bson.M{"$size": "$likes"},
			"isLiked": bson.M{"$cond": bson.M{
				"if":   bson.M{"$in": bson.A{viewerID, "$likes.likedBy"}},
				"then": true,
				"else": false,
			}},
		}}},
		bson.D{{Key: "$project", Value: bson.M{"likes": 0, "video": 0, "updatedAt": 0}}},
	}

	items := []models.CommentListItem{}
	if err := s.Aggregate(ctx, pipeline, &items); err != nil {
		return nil, err
	}

	return &basemodels.PaginateResult[models.CommentListItem]{
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(items)),
		Items:     items,
		Total:     total,
		TotalPage: (total + limit - 1) / limit,
	}, nil
}

// Add thêm bình luận mới vào một video còn tồn tại.
func (s *CommentService) Add(ctx context.Context, videoID primitive.ObjectID, ownerID primitive.ObjectID, input *commentdto.CommentCreateInput) (models.Comment, error) {
	var zero models.Comment

	if err := s.videoExists(ctx, videoID); err != nil {
		return zero, err
	}

	comment := models.Comment{
		Content: input.Content,
		Video:   videoID,
		Owner:   ownerID,
	}
	return s.InsertOne(ctx, comment)
}

// Update sửa nội dung bình luận (chỉ người viết).
func (s *CommentService) Update(ctx context.Context, commentID primitive.ObjectID, ownerID primitive.ObjectID, input *commentdto.CommentUpdateInput) (models.Comment, error) {
	var zero models.Comment

	comment, err := s.FindOneById(ctx, commentID)
	if err != nil {
		return zero, err
	}
	if comment.Owner != ownerID {
		return zero, common.ErrNotOwner
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"content": input.Content},
	}
	return s.UpdateById(ctx, commentID, update)
}

// Delete xóa bình luận (chỉ người viết), kéo theo like của bình luận đó.
func (s *CommentService) Delete(ctx context.Context, commentID primitive.ObjectID, ownerID primitive.ObjectID) error {
	comment, err := s.FindOneById(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.Owner != ownerID {
		return common.ErrNotOwner
	}

	if err := s.DeleteById(ctx, commentID); err != nil {
		return err
	}

	if _, err := s.likeCollection.DeleteMany(ctx, bson.M{"comment": commentID}); err != nil {
		utility.LogWarning("Delete: Không xóa được like của bình luận", "error", err, "comment_id", commentID.Hex())
	}
	return nil
}
