package global

import "testing"

type noXSSSample struct {
	Content string `validate:"no_xss"`
}

type passwordSample struct {
	Password string `validate:"strong_password"`
}

func TestValidateNoXSS(t *testing.T) {
	InitValidator()

	valid := []string{
		"Bình luận bình thường",
		"Video hay quá!",
		"",
	}
	for _, content := range valid {
		if err := Validate.Struct(noXSSSample{Content: content}); err != nil {
			t.Errorf("Nội dung hợp lệ bị từ chối: %q (%v)", content, err)
		}
	}

	invalid := []string{
		"<script>alert(1)</script>",
		"<SCRIPT>alert(1)</SCRIPT>",
		"javascript:alert(1)",
		"<img onerror=alert(1)>",
		"<iframe src=x>",
		"eval(document.cookie)",
	}
	for _, content := range invalid {
		if err := Validate.Struct(noXSSSample{Content: content}); err == nil {
			t.Errorf("Nội dung nguy hiểm không bị chặn: %q", content)
		}
	}
}

func TestValidateStrongPassword(t *testing.T) {
	InitValidator()

	valid := []string{
		"MatKhau123",  // hoa + thường + số
		"matkhau@123", // thường + số + ký tự đặc biệt
		"MATKHAU@123", // hoa + số + ký tự đặc biệt
	}
	for _, pw := range valid {
		if err := Validate.Struct(passwordSample{Password: pw}); err != nil {
			t.Errorf("Mật khẩu đủ mạnh bị từ chối: %q (%v)", pw, err)
		}
	}

	invalid := []string{
		"Mk@1",         // dưới 8 ký tự
		"matkhaudai",   // chỉ một nhóm ký tự
		"matkhau123",   // chỉ hai nhóm
		"MATKHAUDAI12", // chỉ hai nhóm
	}
	for _, pw := range invalid {
		if err := Validate.Struct(passwordSample{Password: pw}); err == nil {
			t.Errorf("Mật khẩu yếu không bị chặn: %q", pw)
		}
	}
}
