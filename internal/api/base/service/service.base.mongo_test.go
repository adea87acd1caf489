package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestUpdateDataMarshalShape(t *testing.T) {
	update := &UpdateData{
		Set: map[string]interface{}{"title": "video mới"},
		Inc: map[string]interface{}{"views": 1},
	}

	raw, err := bson.Marshal(update)
	require.NoError(t, err, "Marshal UpdateData không được lỗi")

	// Chỉ các toán tử có dữ liệu mới xuất hiện trong document
	assert.ElementsMatch(t, []string{"$set", "$inc"}, documentKeys(t, raw))
	assert.Equal(t, "video mới", bson.Raw(raw).Lookup("$set", "title").StringValue())
}

func TestUpdateDataArrayOperators(t *testing.T) {
	update := &UpdateData{
		AddToSet: map[string]interface{}{"videos": "id-1"},
		Pull:     map[string]interface{}{"videos": "id-2"},
	}

	raw, err := bson.Marshal(update)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"$addToSet", "$pull"}, documentKeys(t, raw))
}

// documentKeys trả về danh sách key cấp cao nhất của một document đã marshal.
func documentKeys(t *testing.T, raw []byte) []string {
	t.Helper()
	elements, err := bson.Raw(raw).Elements()
	require.NoError(t, err)
	keys := make([]string, 0, len(elements))
	for _, e := range elements {
		keys = append(keys, e.Key())
	}
	return keys
}

func TestToUpdateData(t *testing.T) {
	type input struct {
		Title       string `bson:"title"`
		Description string `bson:"description,omitempty"`
	}

	update, err := ToUpdateData(input{Title: "tiêu đề"})
	require.NoError(t, err, "ToUpdateData không được lỗi")
	require.NotNil(t, update.Set)

	assert.Equal(t, "tiêu đề", update.Set["title"])
	assert.NotContains(t, update.Set, "description", "Field omitempty rỗng không được vào $set")
	assert.Nil(t, update.Unset)
	assert.Nil(t, update.Inc)
}

func TestNormalizeFilter(t *testing.T) {
	// Filter nil hoặc rỗng phải trở thành bson.D{} hợp lệ
	assert.Equal(t, bson.D{}, normalizeFilter(nil))
	assert.Equal(t, bson.D{}, normalizeFilter(bson.M{}))
	assert.Equal(t, bson.D{}, normalizeFilter(bson.D{}))
	assert.Equal(t, bson.D{}, normalizeFilter(map[string]interface{}{}))

	// Filter có dữ liệu phải được giữ nguyên
	filter := bson.M{"owner": "user1"}
	assert.Equal(t, filter, normalizeFilter(filter))

	dFilter := bson.D{{Key: "owner", Value: "user1"}}
	assert.Equal(t, dFilter, normalizeFilter(dFilter))
}
