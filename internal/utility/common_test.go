package utility

import (
	"testing"
	"time"
)

func TestGoProtectRecoversPanic(t *testing.T) {
	done := false
	GoProtect(func() {
		done = true
		panic("lỗi giả lập")
	})
	// Đến được đây nghĩa là panic đã bị bắt lại
	if !done {
		t.Fatal("Hàm được bọc phải được gọi")
	}
}

func TestGoProtectRunsFunction(t *testing.T) {
	called := false
	GoProtect(func() { called = true })
	if !called {
		t.Error("GoProtect phải gọi hàm được truyền vào")
	}
}

func TestUnixMilli(t *testing.T) {
	ref := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	if got := UnixMilli(ref); got != ref.UnixNano()/int64(time.Millisecond) {
		t.Errorf("UnixMilli không khớp: nhận %d", got)
	}

	// Làm tròn tới mili giây: 1.4ms lẻ phải bị làm tròn xuống
	refNano := ref.Add(400 * time.Microsecond)
	if UnixMilli(refNano) != UnixMilli(ref) {
		t.Error("UnixMilli phải làm tròn về mili giây gần nhất")
	}
}
