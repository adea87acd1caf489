// Package basesvc cung cấp service CRUD chung cho tất cả các collection MongoDB.
// Các service domain nhúng BaseServiceMongoImpl và bổ sung nghiệp vụ riêng
// (aggregation pipeline, kiểm tra quyền sở hữu, ...).
package basesvc

import (
	"context"

	"github.com/kavish224/Backend/internal/common"
	"github.com/kavish224/Backend/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ==========================================
// 1. CẤU TRÚC DỮ LIỆU UPDATE
// ==========================================

// UpdateData là cấu trúc chuẩn cho các thao tác update MongoDB.
// Mỗi field tương ứng với một toán tử update, field nil sẽ bị bỏ qua khi marshal.
type UpdateData struct {
	Set         map[string]interface{} `bson:"$set,omitempty"`         // Các field cần cập nhật
	SetOnInsert map[string]interface{} `bson:"$setOnInsert,omitempty"` // Chỉ set khi upsert tạo mới
	Unset       map[string]interface{} `bson:"$unset,omitempty"`       // Các field cần xóa
	Push        map[string]interface{} `bson:"$push,omitempty"`        // Thêm phần tử vào mảng
	AddToSet    map[string]interface{} `bson:"$addToSet,omitempty"`    // Thêm phần tử vào mảng nếu chưa tồn tại
	Pull        map[string]interface{} `bson:"$pull,omitempty"`        // Xóa phần tử khỏi mảng
	Inc         map[string]interface{} `bson:"$inc,omitempty"`         // Tăng/giảm giá trị số
}

// ToUpdateData chuyển một struct hoặc map thành UpdateData với toán tử $set.
// Dùng khi handler nhận DTO và cần update toàn bộ các field có giá trị.
func ToUpdateData(data interface{}) (*UpdateData, error) {
	m, err := utility.ToMap(data)
	if err != nil {
		return nil, err
	}
	return &UpdateData{Set: m}, nil
}

// ==========================================
// 2. INTERFACE VÀ IMPLEMENTATION
// ==========================================

// BaseServiceMongo định nghĩa các thao tác CRUD chuẩn trên một collection.
type BaseServiceMongo[Model any] interface {
	InsertOne(ctx context.Context, data Model) (Model, error)
	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (Model, error)
	FindOneById(ctx context.Context, id primitive.ObjectID) (Model, error)
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]Model, error)
	UpdateOne(ctx context.Context, filter interface{}, update *UpdateData, opts *options.UpdateOptions) (Model, error)
	UpdateById(ctx context.Context, id primitive.ObjectID, update *UpdateData) (Model, error)
	FindOneAndUpdate(ctx context.Context, filter interface{}, update *UpdateData, opts *options.FindOneAndUpdateOptions) (Model, error)
	DeleteOne(ctx context.Context, filter interface{}) (Model, error)
	DeleteById(ctx context.Context, id primitive.ObjectID) error
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	DocumentExists(ctx context.Context, filter interface{}) (bool, error)
	Aggregate(ctx context.Context, pipeline mongo.Pipeline, results interface{}) error
	Collection() *mongo.Collection
}

// BaseServiceMongoImpl là implementation chuẩn của BaseServiceMongo.
type BaseServiceMongoImpl[T any] struct {
	collection *mongo.Collection
}

var _ BaseServiceMongo[struct{}] = (*BaseServiceMongoImpl[struct{}])(nil)

// NewBaseServiceMongo tạo một base service mới trên collection cho trước.
func NewBaseServiceMongo[T any](collection *mongo.Collection) *BaseServiceMongoImpl[T] {
	return &BaseServiceMongoImpl[T]{collection: collection}
}

// Collection trả về collection gốc cho các pipeline aggregation tùy biến.
func (s *BaseServiceMongoImpl[T]) Collection() *mongo.Collection {
	return s.collection
}

// normalizeFilter đảm bảo filter nil hoặc map rỗng trở thành bson.D{} hợp lệ.
func normalizeFilter(filter interface{}) interface{} {
	if filter == nil {
		return bson.D{}
	}
	switch f := filter.(type) {
	case bson.M:
		if len(f) == 0 {
			return bson.D{}
		}
	case bson.D:
		if len(f) == 0 {
			return bson.D{}
		}
	case map[string]interface{}:
		if len(f) == 0 {
			return bson.D{}
		}
	}
	return filter
}

// ==========================================
// 2.1 Các hàm ghi dữ liệu
// ==========================================

// InsertOne thêm một document mới, tự gắn createdAt/updatedAt (Unix milli).
// Các field string rỗng bị loại khỏi document để sparse unique index bỏ qua
// (sparse index không bỏ qua empty string, chỉ bỏ qua field không tồn tại).
func (s *BaseServiceMongoImpl[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T

	doc, err := utility.ToMap(data)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}

	for key, value := range doc {
		if str, ok := value.(string); ok && str == "" {
			delete(doc, key)
		}
	}

	now := utility.CurrentTimeInMilli()
	doc["createdAt"] = now
	doc["updatedAt"] = now

	result, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	var inserted T
	err = s.collection.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&inserted)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return inserted, nil
}

// UpdateOne cập nhật document đầu tiên khớp filter và trả về bản sau khi sửa.
func (s *BaseServiceMongoImpl[T]) UpdateOne(ctx context.Context, filter interface{}, update *UpdateData, opts *options.UpdateOptions) (T, error) {
	var zero T
	if update == nil {
		return zero, common.ErrInvalidInput
	}

	if update.Set == nil {
		update.Set = make(map[string]interface{})
	}
	update.Set["updatedAt"] = utility.CurrentTimeInMilli()

	filter = normalizeFilter(filter)
	result, err := s.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 && result.UpsertedCount == 0 {
		return zero, common.ErrNotFound
	}

	var updated T
	if result.UpsertedID != nil {
		err = s.collection.FindOne(ctx, bson.M{"_id": result.UpsertedID}).Decode(&updated)
	} else {
		err = s.collection.FindOne(ctx, filter).Decode(&updated)
	}
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return updated, nil
}

// UpdateById cập nhật document theo ObjectId.
func (s *BaseServiceMongoImpl[T]) UpdateById(ctx context.Context, id primitive.ObjectID, update *UpdateData) (T, error) {
	return s.UpdateOne(ctx, bson.M{"_id": id}, update, nil)
}

// FindOneAndUpdate cập nhật và trả về document trong một thao tác nguyên tử.
// Mặc định trả về document sau khi update.
func (s *BaseServiceMongoImpl[T]) FindOneAndUpdate(ctx context.Context, filter interface{}, update *UpdateData, opts *options.FindOneAndUpdateOptions) (T, error) {
	var zero T
	if update == nil {
		return zero, common.ErrInvalidInput
	}
	if update.Set == nil {
		update.Set = make(map[string]interface{})
	}
	update.Set["updatedAt"] = utility.CurrentTimeInMilli()

	if opts == nil {
		opts = options.FindOneAndUpdate()
	}
	if opts.ReturnDocument == nil {
		opts.SetReturnDocument(options.After)
	}

	var updated T
	err := s.collection.FindOneAndUpdate(ctx, normalizeFilter(filter), update, opts).Decode(&updated)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return updated, nil
}

// DeleteOne xóa document đầu tiên khớp filter, trả về document đã xóa.
func (s *BaseServiceMongoImpl[T]) DeleteOne(ctx context.Context, filter interface{}) (T, error) {
	var zero T
	filter = normalizeFilter(filter)

	var existing T
	err := s.collection.FindOne(ctx, filter).Decode(&existing)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	result, err := s.collection.DeleteOne(ctx, filter)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	if result.DeletedCount == 0 {
		return zero, common.ErrNotFound
	}
	return existing, nil
}

// DeleteById xóa một document theo ObjectId.
func (s *BaseServiceMongoImpl[T]) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

// DeleteMany xóa tất cả document khớp filter, trả về số document đã xóa.
// Dùng cho các thao tác xóa dây chuyền (like, comment của video bị xóa).
func (s *BaseServiceMongoImpl[T]) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, normalizeFilter(filter))
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.DeletedCount, nil
}

// ==========================================
// 2.2 Các hàm đọc dữ liệu
// ==========================================

// FindOne tìm một document theo filter.
func (s *BaseServiceMongoImpl[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var zero T
	var result T
	err := s.collection.FindOne(ctx, normalizeFilter(filter), opts).Decode(&result)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return result, nil
}

// FindOneById tìm một document theo ObjectId.
func (s *BaseServiceMongoImpl[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	return s.FindOne(ctx, bson.M{"_id": id}, nil)
}

// Find tìm tất cả document khớp filter. Luôn trả về slice khác nil.
func (s *BaseServiceMongoImpl[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	cursor, err := s.collection.Find(ctx, normalizeFilter(filter), opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// CountDocuments đếm số document khớp filter.
func (s *BaseServiceMongoImpl[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	count, err := s.collection.CountDocuments(ctx, normalizeFilter(filter))
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

// DocumentExists kiểm tra sự tồn tại của document khớp filter.
func (s *BaseServiceMongoImpl[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	err := s.collection.FindOne(ctx, normalizeFilter(filter), options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, common.ConvertMongoError(err)
	}
	return true, nil
}

// Aggregate chạy một pipeline aggregation và decode toàn bộ kết quả vào results.
func (s *BaseServiceMongoImpl[T]) Aggregate(ctx context.Context, pipeline mongo.Pipeline, results interface{}) error {
	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"collection": s.collection.Name(),
		}).WithError(err).Error("Aggregate: Lỗi khi chạy pipeline")
		return common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, results); err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}
