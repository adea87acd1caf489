package database

import (
	"reflect"
	"testing"
)

func TestParseIndexTagSingle(t *testing.T) {
	result := parseIndexTag("single")
	if len(result) != 1 {
		t.Fatalf("Muốn 1 cấu hình, nhận %d", len(result))
	}
	if _, ok := result[0]["single"]; !ok {
		t.Error("Thiếu option single")
	}
}

func TestParseIndexTagOptions(t *testing.T) {
	result := parseIndexTag("single,unique,sparse")
	if len(result) != 1 {
		t.Fatalf("Muốn 1 cấu hình, nhận %d", len(result))
	}
	entry := result[0]
	for _, opt := range []string{"single", "unique", "sparse"} {
		if _, ok := entry[opt]; !ok {
			t.Errorf("Thiếu option %s", opt)
		}
	}
}

func TestParseIndexTagCompoundPartial(t *testing.T) {
	result := parseIndexTag("compound:video_likedBy_unique,partial")
	if len(result) != 1 {
		t.Fatalf("Muốn 1 cấu hình, nhận %d", len(result))
	}
	entry := result[0]
	if entry["compound"] != "video_likedBy_unique" {
		t.Errorf("Tên nhóm compound không khớp: nhận %q", entry["compound"])
	}
	if _, ok := entry["partial"]; !ok {
		t.Error("Thiếu option partial")
	}
}

func TestParseIndexTagMultipleConfigs(t *testing.T) {
	result := parseIndexTag("compound:subscriber_channel_unique;single")
	if len(result) != 2 {
		t.Fatalf("Muốn 2 cấu hình, nhận %d", len(result))
	}
	if result[0]["compound"] != "subscriber_channel_unique" {
		t.Errorf("Cấu hình đầu không khớp: %v", result[0])
	}
	if _, ok := result[1]["single"]; !ok {
		t.Errorf("Cấu hình thứ hai không khớp: %v", result[1])
	}
}

func TestParseIndexTagTTL(t *testing.T) {
	result := parseIndexTag("single;ttl:3600")
	if len(result) != 2 {
		t.Fatalf("Muốn 2 cấu hình, nhận %d", len(result))
	}
	if result[1]["ttl"] != "3600" {
		t.Errorf("Giá trị ttl không khớp: %v", result[1])
	}
}

func TestParseOrder(t *testing.T) {
	if got := parseOrder("single"); got != 1 {
		t.Errorf("Mặc định phải là 1, nhận %d", got)
	}
	if got := parseOrder("single,order:-1"); got != -1 {
		t.Errorf("order:-1 phải trả -1, nhận %d", got)
	}
}

func TestBsonFieldName(t *testing.T) {
	type sample struct {
		Title   string `bson:"title"`
		Views   int    `bson:"views,omitempty"`
		NoTag   string
		Ignored string `bson:"-"`
	}

	typ := reflect.TypeOf(sample{})
	cases := []struct {
		field string
		want  string
	}{
		{"Title", "title"},
		{"Views", "views"},
		{"NoTag", ""},
		{"Ignored", ""},
	}
	for _, tc := range cases {
		f, _ := typ.FieldByName(tc.field)
		if got := bsonFieldName(f); got != tc.want {
			t.Errorf("Field %s: muốn %q, nhận %q", tc.field, tc.want, got)
		}
	}
}
