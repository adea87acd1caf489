package utility

import (
	"testing"
)

func TestToMap(t *testing.T) {
	type sample struct {
		Title string `bson:"title"`
		Views int    `bson:"views"`
		Skip  string `bson:"skip,omitempty"`
	}

	m, err := ToMap(sample{Title: "video mới", Views: 7})
	if err != nil {
		t.Fatalf("ToMap lỗi: %v", err)
	}

	if m["title"] != "video mới" {
		t.Errorf("title không khớp: nhận %v", m["title"])
	}
	// bson unmarshal số nguyên về int32
	if views, ok := m["views"].(int32); !ok || views != 7 {
		t.Errorf("views không khớp: nhận %v", m["views"])
	}
	if _, exists := m["skip"]; exists {
		t.Error("Field omitempty rỗng không được xuất hiện trong map")
	}
}

func TestToMapInvalid(t *testing.T) {
	// bson không marshal được giá trị scalar trần
	if _, err := ToMap("chuỗi trần"); err == nil {
		t.Error("Muốn lỗi khi marshal giá trị không phải document")
	}
}
