package registry

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	reg := NewRegistry[string]()

	isNew, err := reg.Register("videos", "collection-videos")
	if err != nil {
		t.Fatalf("Register lỗi: %v", err)
	}
	if !isNew {
		t.Error("Item đầu tiên phải là item mới")
	}

	item, exists := reg.Get("videos")
	if !exists {
		t.Fatal("Không tìm thấy item vừa đăng ký")
	}
	if item != "collection-videos" {
		t.Errorf("Giá trị không khớp: nhận %s", item)
	}

	// Ghi đè item cũ
	isNew, err = reg.Register("videos", "collection-videos-v2")
	if err != nil {
		t.Fatalf("Register lỗi: %v", err)
	}
	if isNew {
		t.Error("Ghi đè item cũ không được báo là item mới")
	}
	item, _ = reg.Get("videos")
	if item != "collection-videos-v2" {
		t.Errorf("Giá trị sau khi ghi đè không khớp: nhận %s", item)
	}
}

func TestRegistryRegisterEmptyName(t *testing.T) {
	reg := NewRegistry[int]()
	if _, err := reg.Register("", 1); err == nil {
		t.Error("Register với name rỗng phải trả lỗi")
	}
}

func TestRegistryGetMissing(t *testing.T) {
	reg := NewRegistry[int]()
	if _, exists := reg.Get("khong-ton-tai"); exists {
		t.Error("Item chưa đăng ký không được tồn tại")
	}
}

func TestRegistryGetOrCreate(t *testing.T) {
	reg := NewRegistry[int]()
	calls := 0
	creator := func() (int, error) {
		calls++
		return 42, nil
	}

	item, err := reg.GetOrCreate("counter", creator)
	if err != nil {
		t.Fatalf("GetOrCreate lỗi: %v", err)
	}
	if item != 42 {
		t.Errorf("Giá trị không khớp: nhận %d", item)
	}

	// Lần thứ hai phải trả item có sẵn, không gọi creator
	if _, err := reg.GetOrCreate("counter", creator); err != nil {
		t.Fatalf("GetOrCreate lỗi: %v", err)
	}
	if calls != 1 {
		t.Errorf("Creator phải được gọi đúng một lần, thực tế %d lần", calls)
	}

	wantErr := errors.New("tạo thất bại")
	if _, err := reg.GetOrCreate("failed", func() (int, error) { return 0, wantErr }); !errors.Is(err, wantErr) {
		t.Errorf("Lỗi creator phải được truyền ra ngoài, nhận: %v", err)
	}
}

func TestRegistryClear(t *testing.T) {
	reg := NewRegistry[string]()
	_, _ = reg.Register("users", "collection-users")

	cleaned := false
	deleted, err := reg.Clear("users", func(item string) error {
		cleaned = true
		return nil
	})
	if err != nil {
		t.Fatalf("Clear lỗi: %v", err)
	}
	if !deleted {
		t.Error("Clear phải báo đã xóa")
	}
	if !cleaned {
		t.Error("Cleanup phải được gọi trước khi xóa")
	}
	if _, exists := reg.Get("users"); exists {
		t.Error("Item vẫn tồn tại sau khi xóa")
	}

	deleted, err = reg.Clear("users", nil)
	if err != nil {
		t.Fatalf("Clear lỗi: %v", err)
	}
	if deleted {
		t.Error("Xóa item không tồn tại phải trả false")
	}
}

func TestRegistryClearAll(t *testing.T) {
	reg := NewRegistry[int]()
	for i := 0; i < 3; i++ {
		_, _ = reg.Register(fmt.Sprintf("item-%d", i), i)
	}

	count, err := reg.ClearAll(nil)
	if err != nil {
		t.Fatalf("ClearAll lỗi: %v", err)
	}
	if count != 3 {
		t.Errorf("Muốn xóa 3 items, thực tế %d", count)
	}
}

func TestRegistryConcurrent(t *testing.T) {
	reg := NewRegistry[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _ = reg.Register(fmt.Sprintf("item-%d", n), n)
			_, _ = reg.Get(fmt.Sprintf("item-%d", n))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		if _, exists := reg.Get(fmt.Sprintf("item-%d", i)); !exists {
			t.Errorf("Thiếu item-%d sau khi đăng ký đồng thời", i)
		}
	}
}
