// Package tweetdto - DTO cho các request tweet.
package tweetdto

// TweetCreateInput dữ liệu tạo tweet mới
type TweetCreateInput struct {
	Content string `json:"content" validate:"required,no_xss,max=500"`
}

// TweetUpdateInput dữ liệu sửa tweet
type TweetUpdateInput struct {
	Content string `json:"content" validate:"required,no_xss,max=500"`
}
