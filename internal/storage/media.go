// Package storage cung cấp cầu nối lưu trữ media trên object storage bên ngoài.
// Mọi file nhị phân (video, thumbnail, avatar, cover) đều đi qua package này;
// entity chỉ lưu lại URL public và object ID để xóa về sau.
package storage

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kavish224/Backend/config"
	"github.com/kavish224/Backend/internal/common"
	"github.com/kavish224/Backend/internal/logger"
)

// UploadResult là kết quả trả về sau khi upload thành công
type UploadResult struct {
	URL      string // URL public của object
	PublicID string // Object ID dùng để xóa về sau
}

// MediaStorage quản lý kết nối tới object storage
type MediaStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

var instance *MediaStorage

// Init khởi tạo client object storage và đảm bảo bucket tồn tại
func Init(cfg *config.Configuration) error {
	client, err := minio.New(cfg.MediaEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MediaAccessKey, cfg.MediaSecretKey, ""),
		Secure: cfg.MediaUseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to create media storage client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MediaBucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", cfg.MediaBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MediaBucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", cfg.MediaBucket, err)
		}
		// Bucket media cần public-read để client phát trực tiếp
		policy := fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, cfg.MediaBucket)
		if err := client.SetBucketPolicy(ctx, cfg.MediaBucket, policy); err != nil {
			return fmt.Errorf("failed to set public policy for %s: %w", cfg.MediaBucket, err)
		}
	}

	publicURL := cfg.MediaPublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.MediaUseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.MediaEndpoint, cfg.MediaBucket)
	}

	instance = &MediaStorage{
		client:    client,
		bucket:    cfg.MediaBucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}

	logger.GetAppLogger().Infof("Media storage connected: endpoint=%s bucket=%s", cfg.MediaEndpoint, cfg.MediaBucket)
	return nil
}

// Get trả về instance media storage đã khởi tạo
func Get() *MediaStorage {
	return instance
}

// Upload đẩy file local lên object storage và trả về URL public + object ID.
// resourceType phân vùng object theo thư mục (image, video).
func (s *MediaStorage) Upload(ctx context.Context, localPath string, resourceType string) (*UploadResult, error) {
	if localPath == "" {
		return nil, common.ErrMediaUpload
	}

	file, err := os.Open(localPath)
	if err != nil {
		return nil, common.NewError(common.ErrCodeMedia, "Không thể đọc file upload", common.StatusBadRequest, err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, common.NewError(common.ErrCodeMedia, "Không thể đọc file upload", common.StatusBadRequest, err)
	}

	ext := filepath.Ext(localPath)
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectName := fmt.Sprintf("%s/%s%s", resourceType, primitive.NewObjectID().Hex(), ext)
	if _, err := s.client.PutObject(ctx, s.bucket, objectName, file, stat.Size(), minio.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		logger.GetAppLogger().WithError(err).Error("Upload media thất bại")
		return nil, common.ErrMediaUpload
	}

	return &UploadResult{
		URL:      fmt.Sprintf("%s/%s", s.publicURL, objectName),
		PublicID: objectName,
	}, nil
}

// Delete xóa object theo object ID. Best-effort: caller không rollback khi xóa lỗi,
// chỉ ghi log (tài nguyên mới đã được persist trước khi gọi Delete).
func (s *MediaStorage) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	if err := s.client.RemoveObject(ctx, s.bucket, publicID, minio.RemoveObjectOptions{}); err != nil {
		logger.GetAppLogger().WithError(err).Warnf("Không thể xóa media cũ: %s", publicID)
		return err
	}
	return nil
}
