package common

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoErrorNil(t *testing.T) {
	if err := ConvertMongoError(nil); err != nil {
		t.Errorf("Muốn nil, nhận: %v", err)
	}
}

func TestConvertMongoErrorNoDocuments(t *testing.T) {
	err := ConvertMongoError(mongo.ErrNoDocuments)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Muốn ErrNotFound, nhận: %v", err)
	}
}

func TestConvertMongoErrorPassthrough(t *testing.T) {
	// Lỗi đã phân loại không được convert lại
	custom := NewError(ErrCodeAuthOwnership, "Chỉ chủ sở hữu mới được thực hiện thao tác này", StatusForbidden, nil)
	if got := ConvertMongoError(custom); got != custom {
		t.Errorf("Lỗi *Error phải được giữ nguyên, nhận: %v", got)
	}
	if got := ConvertMongoError(ErrNotFound); !errors.Is(got, ErrNotFound) {
		t.Errorf("ErrNotFound phải được giữ nguyên, nhận: %v", got)
	}
}

func TestConvertMongoErrorDuplicateKey(t *testing.T) {
	dupErr := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: 11000, Message: "E11000 duplicate key error"},
		},
	}
	err := ConvertMongoError(dupErr)
	if !errors.Is(err, ErrMongoDuplicate) {
		t.Errorf("Muốn ErrMongoDuplicate, nhận: %v", err)
	}

	var customErr *Error
	if !errors.As(err, &customErr) {
		t.Fatal("Kết quả phải là *Error")
	}
	if customErr.StatusCode != StatusConflict {
		t.Errorf("Muốn status 409, nhận: %d", customErr.StatusCode)
	}
}

func TestConvertMongoErrorCommandError(t *testing.T) {
	cases := []struct {
		code int32
		want error
	}{
		{150, ErrMongoConnection},
		{250, ErrMongoAuth},
		{350, ErrMongoQuery},
		{450, ErrMongoWrite},
		{550, ErrMongoSystem},
	}
	for _, tc := range cases {
		err := ConvertMongoError(mongo.CommandError{Code: tc.code, Message: "lỗi thử nghiệm"})
		if !errors.Is(err, tc.want) {
			t.Errorf("Code %d: muốn %v, nhận: %v", tc.code, tc.want, err)
		}
	}
}

func TestConvertMongoErrorGeneric(t *testing.T) {
	err := ConvertMongoError(errors.New("lỗi không xác định"))
	var customErr *Error
	if !errors.As(err, &customErr) {
		t.Fatal("Lỗi generic phải được bọc thành *Error")
	}
	if customErr.StatusCode != StatusInternalServerError {
		t.Errorf("Muốn status 500, nhận: %d", customErr.StatusCode)
	}
	if customErr.Code.Code != ErrCodeDatabase.Code {
		t.Errorf("Muốn mã lỗi %s, nhận: %s", ErrCodeDatabase.Code, customErr.Code.Code)
	}
}

func TestErrorIs(t *testing.T) {
	if !errors.Is(ErrTokenExpired, ErrTokenExpired) {
		t.Error("Sentinel phải khớp với chính nó")
	}
	// Cùng mã AUTH_001 nhưng message khác nhau thì không khớp
	if errors.Is(ErrTokenExpired, ErrTokenInvalid) {
		t.Error("ErrTokenExpired không được khớp ErrTokenInvalid")
	}
	if errors.Is(ErrNotFound, errors.New("Không tìm thấy dữ liệu")) {
		t.Error("*Error không được khớp với lỗi thường cùng message")
	}
}
