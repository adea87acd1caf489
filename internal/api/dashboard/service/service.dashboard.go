// Package dashboardsvc - service số liệu kênh cho người dùng hiện tại.
package dashboardsvc

import (
	"context"
	"fmt"

	basesvc "github.com/kavish224/Backend/internal/api/base/service"
	dashmodels "github.com/kavish224/Backend/internal/api/dashboard/models"
	videomodels "github.com/kavish224/Backend/internal/api/video/models"
	"github.com/kavish224/Backend/internal/common"
	"github.com/kavish224/Backend/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DashboardService đọc số liệu kênh trên collection videos.
type DashboardService struct {
	*basesvc.BaseServiceMongoImpl[videomodels.Video]
	subscriptionCollection *mongo.Collection
}

// NewDashboardService tạo mới DashboardService
func NewDashboardService() (*DashboardService, error) {
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}
	subscriptionCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Subscriptions)
	if !exist {
		return nil, fmt.Errorf("failed to get subscriptions collection: %v", common.ErrNotFound)
	}

	return &DashboardService{
		BaseServiceMongoImpl:   basesvc.NewBaseServiceMongo[videomodels.Video](videoCollection),
		subscriptionCollection: subscriptionCollection,
	}, nil
}

// GetChannelStats tổng hợp số video, lượt xem, lượt thích và người đăng ký
// của kênh. Kênh chưa có video nào vẫn trả về số liệu với giá trị 0.
func (s *DashboardService) GetChannelStats(ctx context.Context, channelID primitive.ObjectID) (*dashmodels.ChannelStats, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"owner": channelID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Likes,
			"localField":   "_id",
			"foreignField": "video",
			"as":           "likes",
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":         nil,
			"totalVideos": bson.M{"$sum": 1},
			"totalViews":  bson.M{"$sum": "$views"},
			"totalLikes":  bson.M{"$sum": bson.M{"$size": "$likes"}},
		}}},
	}

	results := []dashmodels.ChannelStats{}
	if err := s.Aggregate(ctx, pipeline, &results); err != nil {
		return nil, err
	}

	stats := &dashmodels.ChannelStats{}
	if len(results) > 0 {
		stats = &results[0]
	}

	totalSubscribers, err := s.subscriptionCollection.CountDocuments(ctx, bson.M{"channel": channelID})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	stats.TotalSubscribers = totalSubscribers

	return stats, nil
}

// GetChannelVideos trả về toàn bộ video của kênh, kể cả video chưa
// xuất bản, kèm số lượt thích từng video.
func (s *DashboardService) GetChannelVideos(ctx context.Context, channelID primitive.ObjectID) ([]dashmodels.ChannelVideo, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"owner": channelID}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Likes,
			"localField":   "_id",
			"foreignField": "video",
			"as":           "likes",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"likesCount": bson.M{"$size": "$likes"},
		}}},
		bson.D{{Key: "$project", Value: bson.M{"likes": 0, "owner": 0}}},
	}

	videos := []dashmodels.ChannelVideo{}
	if err := s.Aggregate(ctx, pipeline, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}
