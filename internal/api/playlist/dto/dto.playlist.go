// Package playlistdto - DTO cho các request playlist.
package playlistdto

// PlaylistCreateInput dữ liệu tạo playlist mới
type PlaylistCreateInput struct {
	Name        string `json:"name" validate:"required,no_xss,max=100"`
	Description string `json:"description" validate:"omitempty,no_xss,max=500"`
}

// PlaylistUpdateInput dữ liệu sửa playlist, bỏ trống field nào thì giữ nguyên
type PlaylistUpdateInput struct {
	Name        string `json:"name" validate:"omitempty,no_xss,max=100"`
	Description string `json:"description" validate:"omitempty,no_xss,max=500"`
}
