package authsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeLoginKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Alice", "alice"},
		{"  alice ", "alice"},
		{"Alice@X.COM  ", "alice@x.com"},
		{"   ", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := normalizeLoginKey(tc.in); got != tc.want {
			t.Errorf("normalizeLoginKey(%q): muốn %q, nhận %q", tc.in, tc.want, got)
		}
	}
}

// Lịch sử xem phải trả về theo đúng thứ tự đã lưu: pipeline cần tách từng
// phần tử kèm chỉ số, join video rồi sort lại theo chỉ số đó.
func TestWatchHistoryPipelinePreservesOrder(t *testing.T) {
	pipeline := watchHistoryPipeline(primitive.NewObjectID())

	stages := make([]string, 0, len(pipeline))
	for _, stage := range pipeline {
		if len(stage) == 0 {
			t.Fatal("Stage rỗng trong pipeline")
		}
		stages = append(stages, stage[0].Key)
	}

	want := []string{"$match", "$unwind", "$lookup", "$unwind", "$sort", "$replaceRoot"}
	if len(stages) != len(want) {
		t.Fatalf("Muốn %d stage %v, nhận %d stage %v", len(want), want, len(stages), stages)
	}
	for i := range want {
		if stages[i] != want[i] {
			t.Fatalf("Stage %d: muốn %s, nhận %s (pipeline: %v)", i, want[i], stages[i], stages)
		}
	}

	unwind, ok := pipeline[1][0].Value.(bson.M)
	if !ok {
		t.Fatal("$unwind đầu tiên phải là document")
	}
	if unwind["path"] != "$watchHistory" {
		t.Errorf("$unwind phải tách mảng watchHistory, nhận %v", unwind["path"])
	}
	index, ok := unwind["includeArrayIndex"].(string)
	if !ok || index == "" {
		t.Fatal("$unwind phải kèm includeArrayIndex để giữ thứ tự phần tử")
	}

	sortStage, ok := pipeline[4][0].Value.(bson.M)
	if !ok {
		t.Fatal("$sort phải là document")
	}
	if sortStage[index] != 1 {
		t.Errorf("Phải sort tăng dần theo %s, nhận %v", index, sortStage)
	}
}
