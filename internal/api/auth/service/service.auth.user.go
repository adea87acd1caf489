// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	authdto "github.com/kavish224/Backend/internal/api/auth/dto"
	models "github.com/kavish224/Backend/internal/api/auth/models"
	basesvc "github.com/kavish224/Backend/internal/api/base/service"
	"github.com/kavish224/Backend/internal/common"
	"github.com/kavish224/Backend/internal/global"
	"github.com/kavish224/Backend/internal/storage"
	"github.com/kavish224/Backend/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// normalizeLoginKey chuẩn hóa username/email trước khi tra cứu,
// cùng quy tắc lowercase + trim với lúc đăng ký.
func normalizeLoginKey(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// TokenPair chứa cặp access + refresh token cấp cho client
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Register đăng ký người dùng mới. Username và email phải chưa tồn tại,
// avatarPath bắt buộc, coverPath có thể rỗng.
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput, avatarPath string, coverPath string) (models.User, error) {
	var zero models.User

	username := strings.ToLower(strings.TrimSpace(input.Username))
	email := strings.ToLower(strings.TrimSpace(input.Email))

	exists, err := s.DocumentExists(ctx, bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.NewError(common.ErrCodeDatabaseQuery, "Username hoặc email đã tồn tại", common.StatusConflict, nil)
	}

	hashed, err := utility.HashPassword(input.Password)
	if err != nil {
		return zero, common.NewError(common.ErrCodeInternalServer, "Không thể băm mật khẩu", common.StatusInternalServerError, err)
	}

	avatar, err := storage.Get().Upload(ctx, avatarPath, "avatar")
	if err != nil {
		return zero, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		FullName:     strings.TrimSpace(input.FullName),
		Password:     hashed,
		Avatar:       avatar.URL,
		AvatarID:     avatar.PublicID,
		WatchHistory: []primitive.ObjectID{},
	}

	if coverPath != "" {
		cover, err := storage.Get().Upload(ctx, coverPath, "cover")
		if err != nil {
			// Avatar đã upload, dọn lại trước khi trả lỗi
			storage.Get().Delete(ctx, avatar.PublicID)
			return zero, err
		}
		user.CoverImage = cover.URL
		user.CoverImageID = cover.PublicID
	}

	created, err := s.InsertOne(ctx, user)
	if err != nil {
		storage.Get().Delete(ctx, avatar.PublicID)
		if user.CoverImageID != "" {
			storage.Get().Delete(ctx, user.CoverImageID)
		}
		return zero, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  created.ID.Hex(),
		"username": created.Username,
	}).Info("Register: Đã tạo người dùng mới")
	return created, nil
}

// Login xác thực bằng username hoặc email + mật khẩu, cấp cặp token mới
// và lưu refresh token vào document người dùng.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (models.User, *TokenPair, error) {
	var zero models.User

	// Chuẩn hóa giống lúc đăng ký, kẻo thừa khoảng trắng là đăng nhập hỏng
	username := normalizeLoginKey(input.Username)
	email := normalizeLoginKey(input.Email)

	if username == "" && email == "" {
		return zero, nil, common.NewError(common.ErrCodeValidationInput, "Cần username hoặc email để đăng nhập", common.StatusBadRequest, nil)
	}

	filter := bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}}
	user, err := s.FindOne(ctx, filter, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return zero, nil, common.ErrUserNotFound
		}
		return zero, nil, err
	}

	if err := utility.ComparePassword(user.Password, input.Password); err != nil {
		return zero, nil, err
	}

	pair, err := s.issueTokenPair(ctx, user.ID)
	if err != nil {
		return zero, nil, err
	}

	// Đọc lại để có refreshToken mới nhất trong bộ nhớ
	user, err = s.FindOneById(ctx, user.ID)
	if err != nil {
		return zero, nil, err
	}
	return user, pair, nil
}

// Logout xóa refresh token đã lưu của người dùng.
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	updateData := &basesvc.UpdateData{
		Unset: map[string]interface{}{"refreshToken": 1},
	}
	_, err := s.UpdateById(ctx, userID, updateData)
	return err
}

// RefreshTokens kiểm tra refresh token (chữ ký, hạn, tồn tại user, trùng khớp
// với token đã lưu) và cấp cặp token mới. Token cũ bị thay thế.
func (s *UserService) RefreshTokens(ctx context.Context, refreshToken string) (models.User, *TokenPair, error) {
	var zero models.User

	if refreshToken == "" {
		return zero, nil, common.ErrTokenMissing
	}

	claims, err := utility.ParseToken(global.MongoDB_ServerConfig.RefreshTokenSecret, refreshToken)
	if err != nil {
		return zero, nil, err
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return zero, nil, common.ErrTokenInvalid
	}

	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return zero, nil, common.ErrTokenInvalid
		}
		return zero, nil, err
	}

	// Chặn reuse: token gửi lên phải là token đang lưu trên user
	if user.RefreshToken != refreshToken {
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID.Hex(),
		}).Warn("RefreshTokens: Refresh token không khớp với token đã lưu")
		return zero, nil, common.ErrTokenMismatch
	}

	pair, err := s.issueTokenPair(ctx, user.ID)
	if err != nil {
		return zero, nil, err
	}
	return user, pair, nil
}

// ChangePassword đổi mật khẩu sau khi kiểm tra mật khẩu cũ.
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, input *authdto.ChangePasswordInput) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if err := utility.ComparePassword(user.Password, input.OldPassword); err != nil {
		return common.NewError(common.ErrCodeAuthCredentials, "Mật khẩu cũ không chính xác", common.StatusBadRequest, nil)
	}

	hashed, err := utility.HashPassword(input.NewPassword)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Không thể băm mật khẩu", common.StatusInternalServerError, err)
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"password": hashed},
	}
	_, err = s.UpdateById(ctx, userID, updateData)
	return err
}

// UpdateAccount cập nhật fullName và email của tài khoản.
func (s *UserService) UpdateAccount(ctx context.Context, userID primitive.ObjectID, input *authdto.UpdateAccountInput) (models.User, error) {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"fullName": strings.TrimSpace(input.FullName),
			"email":    strings.ToLower(strings.TrimSpace(input.Email)),
		},
	}
	return s.UpdateById(ctx, userID, updateData)
}

// UpdateAvatar upload avatar mới, lưu vào DB rồi mới xóa avatar cũ (best effort).
func (s *UserService) UpdateAvatar(ctx context.Context, userID primitive.ObjectID, localPath string) (models.User, error) {
	return s.replaceImage(ctx, userID, localPath, "avatar", "avatar", "avatarId")
}

// UpdateCoverImage upload cover image mới, lưu vào DB rồi mới xóa ảnh cũ (best effort).
func (s *UserService) UpdateCoverImage(ctx context.Context, userID primitive.ObjectID, localPath string) (models.User, error) {
	return s.replaceImage(ctx, userID, localPath, "cover", "coverImage", "coverImageId")
}

// replaceImage thay một ảnh trên user document. Ảnh cũ chỉ bị xóa
// sau khi ảnh mới đã được lưu thành công; nếu lưu thất bại, xóa ảnh mới upload.
func (s *UserService) replaceImage(ctx context.Context, userID primitive.ObjectID, localPath string, resourceType string, urlField string, idField string) (models.User, error) {
	var zero models.User

	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return zero, err
	}

	uploaded, err := storage.Get().Upload(ctx, localPath, resourceType)
	if err != nil {
		return zero, err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			urlField: uploaded.URL,
			idField:  uploaded.PublicID,
		},
	}
	updated, err := s.UpdateById(ctx, userID, updateData)
	if err != nil {
		storage.Get().Delete(ctx, uploaded.PublicID)
		return zero, err
	}

	oldID := user.AvatarID
	if idField == "coverImageId" {
		oldID = user.CoverImageID
	}
	if oldID != "" {
		storage.Get().Delete(ctx, oldID)
	}
	return updated, nil
}

// GetChannelProfile trả về read model trang kênh theo username.
// viewerID dùng để tính cờ isSubscribed, NilObjectID nếu khách chưa đăng nhập.
func (s *UserService) GetChannelProfile(ctx context.Context, username string, viewerID primitive.ObjectID) (*models.ChannelProfile, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, common.NewError(common.ErrCodeValidationInput, "Thiếu username", common.StatusBadRequest, nil)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"username": username}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Subscriptions,
			"localField":   "_id",
			"foreignField": "channel",
			"as":           "subscribers",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Subscriptions,
			"localField":   "_id",
			"foreignField": "subscriber",
			"as":           "subscribedTo",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"subscribersCount":          bson.M{"$size": "$subscribers"},
			"channelsSubscribedToCount": bson.M{"$size": "$subscribedTo"},
			"isSubscribed": bson.M{"$cond": bson.M{
				"if":   bson.M{"$in": bson.A{viewerID, "$subscribers.subscriber"}},
				"then": true,
				"else": false,
			}},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"username":                  1,
			"email":                     1,
			"fullName":                  1,
			"avatar":                    1,
			"coverImage":                1,
			"subscribersCount":          1,
			"channelsSubscribedToCount": 1,
			"isSubscribed":              1,
		}}},
	}

	var results []models.ChannelProfile
	if err := s.Aggregate(ctx, pipeline, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy kênh", common.StatusNotFound, nil)
	}
	return &results[0], nil
}

// GetWatchHistory trả về lịch sử xem của người dùng với thông tin chủ video
// rút gọn, theo đúng thứ tự đã lưu trong watchHistory.
func (s *UserService) GetWatchHistory(ctx context.Context, userID primitive.ObjectID) ([]models.WatchHistoryVideo, error) {
	exists, err := s.DocumentExists(ctx, bson.M{"_id": userID})
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.ErrUserNotFound
	}

	history := []models.WatchHistoryVideo{}
	if err := s.Aggregate(ctx, watchHistoryPipeline(userID), &history); err != nil {
		return nil, err
	}
	return history, nil
}

// watchHistoryPipeline dựng pipeline giữ nguyên thứ tự mảng watchHistory.
// $lookup theo localField dạng mảng không đảm bảo thứ tự kết quả, nên phải
// $unwind kèm chỉ số phần tử rồi sort lại theo chỉ số đó. Video đã bị xóa
// rơi ra khỏi kết quả ở bước $unwind thứ hai.
func watchHistoryPipeline(userID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": userID}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":              "$watchHistory",
			"includeArrayIndex": "watchIndex",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Videos,
			"localField":   "watchHistory",
			"foreignField": "_id",
			"as":           "video",
			"pipeline": bson.A{
				bson.M{"$lookup": bson.M{
					"from":         global.MongoDB_ColNames.Users,
					"localField":   "owner",
					"foreignField": "_id",
					"as":           "owner",
					"pipeline": bson.A{
						bson.M{"$project": bson.M{"username": 1, "fullName": 1, "avatar": 1}},
					},
				}},
				bson.M{"$addFields": bson.M{"owner": bson.M{"$first": "$owner"}}},
			},
		}}},
		bson.D{{Key: "$unwind", Value: "$video"}},
		bson.D{{Key: "$sort", Value: bson.M{"watchIndex": 1}}},
		bson.D{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$video"}}},
	}
}

// AddToWatchHistory thêm một video vào lịch sử xem (bỏ qua nếu đã có).
func (s *UserService) AddToWatchHistory(ctx context.Context, userID primitive.ObjectID, videoID primitive.ObjectID) error {
	updateData := &basesvc.UpdateData{
		AddToSet: map[string]interface{}{"watchHistory": videoID},
	}
	_, err := s.UpdateById(ctx, userID, updateData)
	return err
}

// issueTokenPair tạo cặp token mới và lưu refresh token vào user document.
func (s *UserService) issueTokenPair(ctx context.Context, userID primitive.ObjectID) (*TokenPair, error) {
	cfg := global.MongoDB_ServerConfig

	accessToken, err := utility.CreateToken(cfg.AccessTokenSecret, userID.Hex(), time.Duration(cfg.AccessTokenTTL)*time.Second)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể tạo access token", common.StatusInternalServerError, err)
	}

	refreshToken, err := utility.CreateToken(cfg.RefreshTokenSecret, userID.Hex(), time.Duration(cfg.RefreshTokenTTL)*time.Second)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể tạo refresh token", common.StatusInternalServerError, err)
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"refreshToken": refreshToken},
	}
	if _, err := s.UpdateById(ctx, userID, updateData); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
