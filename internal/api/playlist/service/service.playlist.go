// Package playlistsvc - service danh sách phát video.
package playlistsvc

import (
	"context"
	"fmt"

	basesvc "github.com/kavish224/Backend/internal/api/base/service"
	playlistdto "github.com/kavish224/Backend/internal/api/playlist/dto"
	models "github.com/kavish224/Backend/internal/api/playlist/models"
	"github.com/kavish224/Backend/internal/common"
	"github.com/kavish224/Backend/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PlaylistService là cấu trúc chứa các phương thức liên quan đến playlist
type PlaylistService struct {
	*basesvc.BaseServiceMongoImpl[models.Playlist]
	videoCollection *mongo.Collection
}

// NewPlaylistService tạo mới PlaylistService
func NewPlaylistService() (*PlaylistService, error) {
	playlistCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Playlists)
	if !exist {
		return nil, fmt.Errorf("failed to get playlists collection: %v", common.ErrNotFound)
	}
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}

	return &PlaylistService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Playlist](playlistCollection),
		videoCollection:      videoCollection,
	}, nil
}

// findOwned đọc playlist và kiểm tra quyền sở hữu.
func (s *PlaylistService) findOwned(ctx context.Context, playlistID primitive.ObjectID, ownerID primitive.ObjectID) (models.Playlist, error) {
	playlist, err := s.FindOneById(ctx, playlistID)
	if err != nil {
		return playlist, err
	}
	if playlist.Owner != ownerID {
		return playlist, common.ErrNotOwner
	}
	return playlist, nil
}

// Create tạo playlist mới, danh sách video ban đầu rỗng.
func (s *PlaylistService) Create(ctx context.Context, ownerID primitive.ObjectID, input *playlistdto.PlaylistCreateInput) (models.Playlist, error) {
	playlist := models.Playlist{
		Name:        input.Name,
		Description: input.Description,
		Owner:       ownerID,
		Videos:      []primitive.ObjectID{},
	}
	return s.InsertOne(ctx, playlist)
}

// GetUserPlaylists trả về playlist của một người dùng kèm tổng số video
// và tổng lượt xem, tính trên các video còn tồn tại.
func (s *PlaylistService) GetUserPlaylists(ctx context.Context, userID primitive.ObjectID) ([]models.PlaylistSummary, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"owner": userID}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "updatedAt", Value: -1}}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Videos,
			"localField":   "videos",
			"foreignField": "_id",
			"as":           "videoDocs",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"totalVideos": bson.M{"$size": "$videoDocs"},
			"totalViews":  bson.M{"$sum": "$videoDocs.views"},
		}}},
		bson.D{{Key: "$project", Value: bson.M{"videos": 0, "videoDocs": 0, "owner": 0, "createdAt": 0}}},
	}

	playlists := []models.PlaylistSummary{}
	if err := s.Aggregate(ctx, pipeline, &playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}

// GetByID trả về chi tiết playlist, chỉ gồm các video đã xuất bản.
func (s *PlaylistService) GetByID(ctx context.Context, playlistID primitive.ObjectID) (*models.PlaylistDetail, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": playlistID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Videos,
			"localField":   "videos",
			"foreignField": "_id",
			"as":           "videos",
			"pipeline": bson.A{
				bson.M{"$match": bson.M{"isPublished": true}},
				bson.M{"$project": bson.M{
					"videoFile": 1, "thumbnail": 1, "title": 1,
					"duration": 1, "views": 1, "createdAt": 1,
				}},
			},
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Users,
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "owner",
			"pipeline": bson.A{
				bson.M{"$project": bson.M{"username": 1, "fullName": 1, "avatar": 1}},
			},
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"owner":       bson.M{"$first": "$owner"},
			"totalVideos": bson.M{"$size": "$videos"},
			"totalViews":  bson.M{"$sum": "$videos.views"},
		}}},
	}

	details := []models.PlaylistDetail{}
	if err := s.Aggregate(ctx, pipeline, &details); err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy playlist", common.StatusNotFound, nil)
	}
	return &details[0], nil
}

// AddVideo thêm video vào playlist (chỉ chủ sở hữu). Thêm lại video
// đã có trong playlist không tạo bản ghi trùng.
func (s *PlaylistService) AddVideo(ctx context.Context, playlistID primitive.ObjectID, videoID primitive.ObjectID, ownerID primitive.ObjectID) (models.Playlist, error) {
	var zero models.Playlist

	if _, err := s.findOwned(ctx, playlistID, ownerID); err != nil {
		return zero, err
	}

	err := s.videoCollection.FindOne(ctx, bson.M{"_id": videoID}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return zero, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy video", common.StatusNotFound, nil)
		}
		return zero, common.ConvertMongoError(err)
	}

	update := &basesvc.UpdateData{
		AddToSet: map[string]interface{}{"videos": videoID},
	}
	return s.UpdateById(ctx, playlistID, update)
}

// RemoveVideo gỡ video khỏi playlist (chỉ chủ sở hữu).
func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistID primitive.ObjectID, videoID primitive.ObjectID, ownerID primitive.ObjectID) (models.Playlist, error) {
	var zero models.Playlist

	if _, err := s.findOwned(ctx, playlistID, ownerID); err != nil {
		return zero, err
	}

	update := &basesvc.UpdateData{
		Pull: map[string]interface{}{"videos": videoID},
	}
	return s.UpdateById(ctx, playlistID, update)
}

// Update sửa tên hoặc mô tả playlist (chỉ chủ sở hữu).
func (s *PlaylistService) Update(ctx context.Context, playlistID primitive.ObjectID, ownerID primitive.ObjectID, input *playlistdto.PlaylistUpdateInput) (models.Playlist, error) {
	var zero models.Playlist

	if _, err := s.findOwned(ctx, playlistID, ownerID); err != nil {
		return zero, err
	}

	set := map[string]interface{}{}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Description != "" {
		set["description"] = input.Description
	}
	if len(set) == 0 {
		return zero, common.NewError(common.ErrCodeValidationInput, "Không có thông tin nào để cập nhật", common.StatusBadRequest, nil)
	}

	return s.UpdateById(ctx, playlistID, &basesvc.UpdateData{Set: set})
}

// Delete xóa playlist (chỉ chủ sở hữu). Video trong playlist không bị ảnh hưởng.
func (s *PlaylistService) Delete(ctx context.Context, playlistID primitive.ObjectID, ownerID primitive.ObjectID) error {
	if _, err := s.findOwned(ctx, playlistID, ownerID); err != nil {
		return err
	}
	return s.DeleteById(ctx, playlistID)
}
