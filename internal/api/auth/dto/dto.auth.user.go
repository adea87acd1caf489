package authdto

// UserRegisterInput đầu vào đăng ký người dùng.
// Avatar và cover image gửi qua multipart form, không nằm trong struct này.
type UserRegisterInput struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=30,no_xss"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	FullName string `json:"fullName" form:"fullName" validate:"required,no_xss"`
	Password string `json:"password" form:"password" validate:"required,strong_password"`
}

// UserLoginInput đầu vào đăng nhập: chấp nhận username hoặc email.
type UserLoginInput struct {
	Username string `json:"username" validate:"omitempty"`
	Email    string `json:"email" validate:"omitempty"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenInput đầu vào cấp lại cặp token. Token có thể lấy từ cookie thay cho body.
type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken"`
}

// ChangePasswordInput đầu vào đổi mật khẩu.
type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}

// UpdateAccountInput đầu vào cập nhật thông tin tài khoản.
type UpdateAccountInput struct {
	FullName string `json:"fullName" validate:"required,no_xss"`
	Email    string `json:"email" validate:"required,email"`
}
