// Package videosvc - service video: đăng, liệt kê, xem, cập nhật, xóa.
package videosvc

import (
	"context"
	"fmt"

	basemodels "github.com/kavish224/Backend/internal/api/base/models"
	basesvc "github.com/kavish224/Backend/internal/api/base/service"
	videodto "github.com/kavish224/Backend/internal/api/video/dto"
	models "github.com/kavish224/Backend/internal/api/video/models"
	"github.com/kavish224/Backend/internal/common"
	"github.com/kavish224/Backend/internal/global"
	"github.com/kavish224/Backend/internal/storage"
	"github.com/kavish224/Backend/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// VideoService là cấu trúc chứa các phương thức liên quan đến video
type VideoService struct {
	*basesvc.BaseServiceMongoImpl[models.Video]
	likeCollection    *mongo.Collection
	commentCollection *mongo.Collection
	userCollection    *mongo.Collection
}

// NewVideoService tạo mới VideoService
func NewVideoService() (*VideoService, error) {
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}
	likeCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes)
	if !exist {
		return nil, fmt.Errorf("failed to get likes collection: %v", common.ErrNotFound)
	}
	commentCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Comments)
	if !exist {
		return nil, fmt.Errorf("failed to get comments collection: %v", common.ErrNotFound)
	}
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &VideoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Video](videoCollection),
		likeCollection:       likeCollection,
		commentCollection:    commentCollection,
		userCollection:       userCollection,
	}, nil
}

// Publish upload file video + thumbnail và tạo document video mới.
func (s *VideoService) Publish(ctx context.Context, ownerID primitive.ObjectID, input *videodto.VideoPublishInput, videoPath string, thumbnailPath string) (models.Video, error) {
	var zero models.Video

	videoFile, err := storage.Get().Upload(ctx, videoPath, "video")
	if err != nil {
		return zero, err
	}
	thumbnail, err := storage.Get().Upload(ctx, thumbnailPath, "thumbnail")
	if err != nil {
		storage.Get().Delete(ctx, videoFile.PublicID)
		return zero, err
	}

	video := models.Video{
		Owner:       ownerID,
		VideoFile:   videoFile.URL,
		VideoFileID: videoFile.PublicID,
		Thumbnail:   thumbnail.URL,
		ThumbnailID: thumbnail.PublicID,
		Title:       input.Title,
		Description: input.Description,
		Duration:    input.Duration,
		IsPublished: true,
	}

	created, err := s.InsertOne(ctx, video)
	if err != nil {
		storage.Get().Delete(ctx, videoFile.PublicID)
		storage.Get().Delete(ctx, thumbnail.PublicID)
		return zero, err
	}

	logrus.WithFields(logrus.Fields{
		"video_id": created.ID.Hex(),
		"owner":    ownerID.Hex(),
	}).Info("Publish: Đã đăng video mới")
	return created, nil
}

// List trả về danh sách video đã publish, hỗ trợ tìm kiếm text,
// lọc theo chủ kênh, sắp xếp và phân trang.
func (s *VideoService) List(ctx context.Context, q *videodto.VideoListQuery) (*basemodels.PaginateResult[models.VideoListItem], error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 10
	}

	match := bson.M{"isPublished": true}
	if q.Query != "" {
		match["$text"] = bson.M{"$search": q.Query}
	}
	if q.UserID != "" {
		ownerID, err := primitive.ObjectIDFromHex(q.UserID)
		if err != nil {
			return nil, common.ErrInvalidID
		}
		match["owner"] = ownerID
	}

	sortField := "createdAt"
	switch q.SortBy {
	case "views":
		sortField = "views"
	case "duration":
		sortField = "duration"
	case "title":
		sortField = "title"
	}
	sortOrder := -1
	if q.SortType == "asc" {
		sortOrder = 1
	}

	total, err := s.CountDocuments(ctx, match)
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: sortField, Value: sortOrder}}}},
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
		bson.D{{Key: "$addFields", Value: bson.M{"owner": bson.M{"$first": "$owner"}}}},
	}

	items := []models.VideoListItem{}
	if err := s.Aggregate(ctx, pipeline, &items); err != nil {
		return nil, err
	}

	return &basemodels.PaginateResult[models.VideoListItem]{
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(items)),
		Items:     items,
		Total:     total,
		TotalPage: (total + limit - 1) / limit,
	}, nil
}

// Detail trả về read model chi tiết video theo góc nhìn của viewerID
// (likesCount, isLiked, số liệu kênh của chủ video).
func (s *VideoService) Detail(ctx context.Context, videoID primitive.ObjectID, viewerID primitive.ObjectID) (*models.VideoDetail, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": videoID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Likes,
			"localField":   "_id",
			"foreignField": "video",
			"as":           "likes",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Users,
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "owner",
			"pipeline": bson.A{
				bson.M{"$lookup": bson.M{
					"from":         global.MongoDB_ColNames.Subscriptions,
					"localField":   "_id",
					"foreignField": "channel",
					"as":           "subscribers",
				}},
				bson.M{"$addFields": bson.M{
					"subscribersCount": bson.M{"$size": "$subscribers"},
					"isSubscribed": bson.M{"$cond": bson.M{
						"if":   bson.M{"$in": bson.A{viewerID, "$subscribers.subscriber"}},
						"then": true,
						"else": false,
					}},
				}},
				bson.M{"$project": bson.M{
					"username":         1,
					"fullName":         1,
					"avatar":           1,
					"subscribersCount": 1,
					"isSubscribed":     1,
				}},
			},
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"likesCount": bson.M{"$size": "$likes"},
			"owner":      bson.M{"$first": "$owner"},
			"isLiked": bson.M{"$cond": bson.M{
				"if":   bson.M{"$in": bson.A{viewerID, "$likes.likedBy"}},
				"then": true,
				"else": false,
			}},
		}}},
		bson.D{{Key: "$project", Value: bson.M{"likes": 0}}},
	}

	var results []models.VideoDetail
	if err := s.Aggregate(ctx, pipeline, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, common.ErrNotFound
	}
	return &results[0], nil
}

// RecordView tăng lượt xem và thêm video vào lịch sử xem của người xem.
// viewerID NilObjectID (khách) chỉ tăng lượt xem.
func (s *VideoService) RecordView(ctx context.Context, videoID primitive.ObjectID, viewerID primitive.ObjectID) error {
	update := &basesvc.UpdateData{
		Inc: map[string]interface{}{"views": 1},
	}
	if _, err := s.UpdateById(ctx, videoID, update); err != nil {
		return err
	}

	if viewerID.IsZero() {
		return nil
	}
	_, err := s.userCollection.UpdateOne(ctx,
		bson.M{"_id": viewerID},
		bson.M{"$addToSet": bson.M{"watchHistory": videoID}},
	)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}

// Update cập nhật title/description và thay thumbnail nếu có file mới.
// Thumbnail cũ chỉ bị xóa sau khi bản ghi mới đã được lưu.
func (s *VideoService) Update(ctx context.Context, videoID primitive.ObjectID, ownerID primitive.ObjectID, input *videodto.VideoUpdateInput, thumbnailPath string) (models.Video, error) {
	var zero models.Video

	video, err := s.FindOneById(ctx, videoID)
	if err != nil {
		return zero, err
	}
	if video.Owner != ownerID {
		return zero, common.ErrNotOwner
	}

	set := map[string]interface{}{}
	if input.Title != "" {
		set["title"] = input.Title
	}
	if input.Description != "" {
		set["description"] = input.Description
	}

	var newThumbnailID string
	if thumbnailPath != "" {
		uploaded, err := storage.Get().Upload(ctx, thumbnailPath, "thumbnail")
		if err != nil {
			return zero, err
		}
		set["thumbnail"] = uploaded.URL
		set["thumbnailId"] = uploaded.PublicID
		newThumbnailID = uploaded.PublicID
	}

	if len(set) == 0 {
		return zero, common.NewError(common.ErrCodeValidationInput, "Không có thông tin nào để cập nhật", common.StatusBadRequest, nil)
	}

	updated, err := s.UpdateById(ctx, videoID, &basesvc.UpdateData{Set: set})
	if err != nil {
		if newThumbnailID != "" {
			storage.Get().Delete(ctx, newThumbnailID)
		}
		return zero, err
	}

	if newThumbnailID != "" && video.ThumbnailID != "" {
		storage.Get().Delete(ctx, video.ThumbnailID)
	}
	return updated, nil
}

// Delete xóa video của chủ sở hữu, kéo theo like và comment của video
// (và like của các comment đó). Media trên storage xóa best effort.
func (s *VideoService) Delete(ctx context.Context, videoID primitive.ObjectID, ownerID primitive.ObjectID) error {
	video, err := s.FindOneById(ctx, videoID)
	if err != nil {
		return err
	}
	if video.Owner != ownerID {
		return common.ErrNotOwner
	}

	if err := s.DeleteById(ctx, videoID); err != nil {
		return err
	}

	// Gom id comment trước khi xóa để dọn like của chúng
	cursor, err := s.commentCollection.Find(ctx, bson.M{"video": videoID})
	if err == nil {
		var comments []struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.All(ctx, &comments); err == nil && len(comments) > 0 {
			commentIDs := make([]primitive.ObjectID, len(comments))
			for i, c := range comments {
				commentIDs[i] = c.ID
			}
			if _, err := s.likeCollection.DeleteMany(ctx, bson.M{"comment": bson.M{"$in": commentIDs}}); err != nil {
				utility.LogWarning("Delete: Không xóa được like của các comment", "error", err, "video_id", videoID.Hex())
			}
		}
	}

	if _, err := s.likeCollection.DeleteMany(ctx, bson.M{"video": videoID}); err != nil {
		utility.LogWarning("Delete: Không xóa được like của video", "error", err, "video_id", videoID.Hex())
	}
	if _, err := s.commentCollection.DeleteMany(ctx, bson.M{"video": videoID}); err != nil {
		utility.LogWarning("Delete: Không xóa được comment của video", "error", err, "video_id", videoID.Hex())
	}

	if video.VideoFileID != "" {
		storage.Get().Delete(ctx, video.VideoFileID)
	}
	if video.ThumbnailID != "" {
		storage.Get().Delete(ctx, video.ThumbnailID)
	}

	logrus.WithFields(logrus.Fields{
		"video_id": videoID.Hex(),
		"owner":    ownerID.Hex(),
	}).Info("Delete: Đã xóa video và dữ liệu liên quan")
	return nil
}

// TogglePublish đảo trạng thái publish của video (chỉ chủ sở hữu).
func (s *VideoService) TogglePublish(ctx context.Context, videoID primitive.ObjectID, ownerID primitive.ObjectID) (models.Video, error) {
	var zero models.Video

	video, err := s.FindOneById(ctx, videoID)
	if err != nil {
		return zero, err
	}
	if video.Owner != ownerID {
		return zero, common.ErrNotOwner
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"isPublished": !video.IsPublished},
	}
	// Owner nằm trong filter: đổi chủ giữa chừng thì thao tác không khớp nữa
	return s.FindOneAndUpdate(ctx, bson.M{"_id": videoID, "owner": ownerID}, update, nil)
}
