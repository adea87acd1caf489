package videodto

// VideoPublishInput đầu vào đăng video mới (multipart form).
// Duration do client cung cấp vì object storage không đọc metadata video.
type VideoPublishInput struct {
	Title       string  `json:"title" form:"title" validate:"required,no_xss"`
	Description string  `json:"description" form:"description" validate:"required,no_xss"`
	Duration    float64 `json:"duration" form:"duration" validate:"gte=0"`
}

// VideoUpdateInput đầu vào cập nhật thông tin video. Thumbnail mới (nếu có) gửi qua multipart.
type VideoUpdateInput struct {
	Title       string `json:"title" form:"title" validate:"omitempty,no_xss"`
	Description string `json:"description" form:"description" validate:"omitempty,no_xss"`
}

// VideoListQuery tham số truy vấn danh sách video công khai.
type VideoListQuery struct {
	Query    string `query:"query"`
	UserID   string `query:"userId"`
	SortBy   string `query:"sortBy"`
	SortType string `query:"sortType"`
	Page     int64  `query:"page"`
	Limit    int64  `query:"limit"`
}
