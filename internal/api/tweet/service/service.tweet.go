// Package tweetsvc - service bài đăng tweet.
package tweetsvc

import (
	"context"
	"fmt"

	basesvc "github.com/kavish224/Backend/internal/api/base/service"
	tweetdto "github.com/kavish224/Backend/internal/api/tweet/dto"
	models "github.com/kavish224/Backend/internal/api/tweet/models"
	"github.com/kavish224/Backend/internal/common"
	"github.com/kavish224/Backend/internal/global"
	"github.com/kavish224/Backend/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// TweetService là cấu trúc chứa các phương thức liên quan đến tweet
type TweetService struct {
	*basesvc.BaseServiceMongoImpl[models.Tweet]
	userCollection *mongo.Collection
	likeCollection *mongo.Collection
}

// NewTweetService tạo mới TweetService
func NewTweetService() (*TweetService, error) {
	tweetCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Tweets)
	if !exist {
		return nil, fmt.Errorf("failed to get tweets collection: %v", common.ErrNotFound)
	}
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	likeCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes)
	if !exist {
		return nil, fmt.Errorf("failed to get likes collection: %v", common.ErrNotFound)
	}

	return &TweetService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Tweet](tweetCollection),
		userCollection:       userCollection,
		likeCollection:       likeCollection,
	}, nil
}

// Create tạo tweet mới.
func (s *TweetService) Create(ctx context.Context, ownerID primitive.ObjectID, input *tweetdto.TweetCreateInput) (models.Tweet, error) {
	tweet := models.Tweet{
		Content: input.Content,
		Owner:   ownerID,
	}
	return s.InsertOne(ctx, tweet)
}

// GetUserTweets trả về tweet của một người dùng, mới nhất trước,
// kèm thông tin người đăng, số like và cờ isLiked của người xem.
func (s *TweetService) GetUserTweets(ctx context.Context, userID primitive.ObjectID, viewerID primitive.ObjectID) ([]models.TweetListItem, error) {
	err := s.userCollection.FindOne(ctx, bson.M{"_id": userID}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, common.ErrUserNotFound
		}
		return nil, common.ConvertMongoError(err)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"owner": userID}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
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
			"foreignField": "tweet",
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
		bson.D{{Key: "$project", Value: bson.M{"likes": 0}}},
	}

	tweets := []models.TweetListItem{}
	if err := s.Aggregate(ctx, pipeline, &tweets); err != nil {
		return nil, err
	}
	return tweets, nil
}

// Update sửa nội dung tweet (chỉ người đăng).
func (s *TweetService) Update(ctx context.Context, tweetID primitive.ObjectID, ownerID primitive.ObjectID, input *tweetdto.TweetUpdateInput) (models.Tweet, error) {
	var zero models.Tweet

	tweet, err := s.FindOneById(ctx, tweetID)
	if err != nil {
		return zero, err
	}
	if tweet.Owner != ownerID {
		return zero, common.ErrNotOwner
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"content": input.Content},
	}
	return s.UpdateById(ctx, tweetID, update)
}

// Delete xóa tweet (chỉ người đăng), kéo theo like của tweet đó.
func (s *TweetService) Delete(ctx context.Context, tweetID primitive.ObjectID, ownerID primitive.ObjectID) error {
	tweet, err := s.FindOneById(ctx, tweetID)
	if err != nil {
		return err
	}
	if tweet.Owner != ownerID {
		return common.ErrNotOwner
	}

	if err := s.DeleteById(ctx, tweetID); err != nil {
		return err
	}

	if _, err := s.likeCollection.DeleteMany(ctx, bson.M{"tweet": tweetID}); err != nil {
		utility.LogWarning("Delete: Không xóa được like của tweet", "error", err, "tweet_id", tweetID.Hex())
	}
	return nil
}
