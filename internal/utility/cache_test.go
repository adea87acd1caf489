package utility

import (
	"testing"
	"time"
)

func TestCacheSetGetDelete(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)
	defer cache.Stop()

	cache.Set("key1", "value1")
	value, exists := cache.Get("key1")
	if !exists {
		t.Fatal("Không tìm thấy key vừa set")
	}
	if value != "value1" {
		t.Errorf("Giá trị không khớp: muốn value1, nhận %v", value)
	}

	cache.Delete("key1")
	if _, exists := cache.Get("key1"); exists {
		t.Error("Key vẫn tồn tại sau khi xóa")
	}
}

func TestCacheGetMissing(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)
	defer cache.Stop()

	if _, exists := cache.Get("khong-ton-tai"); exists {
		t.Error("Key chưa set không được tồn tại")
	}
}

func TestCacheCleanup(t *testing.T) {
	cache := NewCache(10*time.Millisecond, 20*time.Millisecond)
	defer cache.Stop()

	cache.Set("key1", "value1")
	time.Sleep(100 * time.Millisecond)

	if _, exists := cache.Get("key1"); exists {
		t.Error("Key vẫn tồn tại sau chu kỳ dọn dẹp")
	}
}
