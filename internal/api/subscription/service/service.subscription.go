// Package subscriptionsvc - service đăng ký theo dõi kênh.
package subscriptionsvc

import (
	"context"
	"fmt"

	basesvc "github.com/kavish224/Backend/internal/api/base/service"
	submodels "github.com/kavish224/Backend/internal/api/subscription/models"
	"github.com/kavish224/Backend/internal/common"
	"github.com/kavish224/Backend/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SubscriptionService là cấu trúc chứa các phương thức liên quan đến đăng ký kênh
type SubscriptionService struct {
	*basesvc.BaseServiceMongoImpl[submodels.Subscription]
	userCollection *mongo.Collection
}

// NewSubscriptionService tạo mới SubscriptionService
func NewSubscriptionService() (*SubscriptionService, error) {
	subscriptionCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Subscriptions)
	if !exist {
		return nil, fmt.Errorf("failed to get subscriptions collection: %v", common.ErrNotFound)
	}
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &SubscriptionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[submodels.Subscription](subscriptionCollection),
		userCollection:       userCollection,
	}, nil
}

// channelExists kiểm tra kênh (user) còn tồn tại.
func (s *SubscriptionService) channelExists(ctx context.Context, channelID primitive.ObjectID) error {
	err := s.userCollection.FindOne(ctx, bson.M{"_id": channelID}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy kênh", common.StatusNotFound, nil)
		}
		return common.ConvertMongoError(err)
	}
	return nil
}

// Toggle bật/tắt đăng ký kênh. Không cho phép tự đăng ký kênh của chính mình.
func (s *SubscriptionService) Toggle(ctx context.Context, channelID primitive.ObjectID, subscriberID primitive.ObjectID) (*submodels.ToggleResult, error) {
	if channelID == subscriberID {
		return nil, common.NewError(common.ErrCodeValidationInput, "Không thể tự đăng ký kênh của chính mình", common.StatusBadRequest, nil)
	}
	if err := s.channelExists(ctx, channelID); err != nil {
		return nil, err
	}

	filter := bson.M{"subscriber": subscriberID, "channel": channelID}
	_, err := s.DeleteOne(ctx, filter)
	if err == nil {
		return &submodels.ToggleResult{Subscribed: false}, nil
	}
	if customErr, ok := err.(*common.Error); !ok || customErr.StatusCode != common.StatusNotFound {
		return nil, err
	}

	subscription := submodels.Subscription{
		Subscriber: subscriberID,
		Channel:    channelID,
	}
	if _, err := s.InsertOne(ctx, subscription); err != nil {
		// Request song song đã đăng ký trước, coi như đã đăng ký
		if customErr, ok := err.(*common.Error); ok && customErr.StatusCode == common.StatusConflict {
			return &submodels.ToggleResult{Subscribed: true}, nil
		}
		return nil, err
	}
	return &submodels.ToggleResult{Subscribed: true}, nil
}

// GetChannelSubscribers trả về danh sách người đã đăng ký một kênh.
func (s *SubscriptionService) GetChannelSubscribers(ctx context.Context, channelID primitive.ObjectID) ([]submodels.ChannelSubscriber, error) {
	if err := s.channelExists(ctx, channelID); err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"channel": channelID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Users,
			"localField":   "subscriber",
			"foreignField": "_id",
			"as":           "subscriber",
			"pipeline": bson.A{
				bson.M{"$project": bson.M{"username": 1, "fullName": 1, "avatar": 1}},
			},
		}}},
		bson.D{{Key: "$unwind", Value: "$subscriber"}},
		bson.D{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$subscriber"}}},
	}

	subscribers := []submodels.ChannelSubscriber{}
	if err := s.Aggregate(ctx, pipeline, &subscribers); err != nil {
		return nil, err
	}
	return subscribers, nil
}

// GetSubscribedChannels trả về danh sách kênh một người dùng đã đăng ký,
// kèm tổng số người đăng ký của từng kênh.
func (s *SubscriptionService) GetSubscribedChannels(ctx context.Context, subscriberID primitive.ObjectID) ([]submodels.SubscribedChannel, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"subscriber": subscriberID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Users,
			"localField":   "channel",
			"foreignField": "_id",
			"as":           "channel",
			"pipeline": bson.A{
				bson.M{"$lookup": bson.M{
					"from":         global.MongoDB_ColNames.Subscriptions,
					"localField":   "_id",
					"foreignField": "channel",
					"as":           "subscribers",
				}},
				bson.M{"$addFields": bson.M{"subscribersCount": bson.M{"$size": "$subscribers"}}},
				bson.M{"$project": bson.M{"username": 1, "fullName": 1, "avatar": 1, "subscribersCount": 1}},
			},
		}}},
		bson.D{{Key: "$unwind", Value: "$channel"}},
		bson.D{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$channel"}}},
	}

	channels := []submodels.SubscribedChannel{}
	if err := s.Aggregate(ctx, pipeline, &channels); err != nil {
		return nil, err
	}
	return channels, nil
}
