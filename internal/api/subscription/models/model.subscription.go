package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscription ghi nhận người dùng Subscriber đăng ký theo dõi kênh Channel.
// Index unique trên cặp (subscriber, channel) chặn đăng ký trùng.
type Subscription struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Subscriber primitive.ObjectID `json:"subscriber" bson:"subscriber" index:"compound:subscriber_channel_unique"`
	Channel    primitive.ObjectID `json:"channel" bson:"channel" index:"compound:subscriber_channel_unique;single"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// ChannelSubscriber là một người đăng ký trong danh sách subscriber của kênh.
type ChannelSubscriber struct {
	ID       primitive.ObjectID `json:"id" bson:"_id"`
	Username string             `json:"username" bson:"username"`
	FullName string             `json:"fullName" bson:"fullName"`
	Avatar   string             `json:"avatar" bson:"avatar"`
}

// SubscribedChannel là một kênh trong danh sách kênh người dùng đã đăng ký.
type SubscribedChannel struct {
	ID               primitive.ObjectID `json:"id" bson:"_id"`
	Username         string             `json:"username" bson:"username"`
	FullName         string             `json:"fullName" bson:"fullName"`
	Avatar           string             `json:"avatar" bson:"avatar"`
	SubscribersCount int64              `json:"subscribersCount" bson:"subscribersCount"`
}

// ToggleResult cho client biết trạng thái sau khi bật/tắt đăng ký.
type ToggleResult struct {
	Subscribed bool `json:"subscribed"`
}
