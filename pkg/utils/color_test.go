package utils

import (
	"image/color"
	"testing"
)

// TestParseColor 测试颜色解析
func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{name: "六位十六进制", input: "#c0392b", want: color.RGBA{R: 0xc0, G: 0x39, B: 0x2b, A: 0xff}},
		{name: "三位十六进制", input: "#f0a", want: color.RGBA{R: 0xff, G: 0x00, B: 0xaa, A: 0xff}},
		{name: "八位十六进制带透明度", input: "#11223380", want: color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x80}},
		{name: "颜色名", input: "lightgray", want: color.RGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff}},
		{name: "颜色名大小写不敏感", input: "White", want: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{name: "none 为透明", input: "none", want: color.RGBA{}},
		{name: "空字符串", input: "", wantErr: true},
		{name: "未知颜色名", input: "notacolor", wantErr: true},
		{name: "非法十六进制", input: "#12345", wantErr: true},
		{name: "非十六进制字符", input: "#zzzzzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseColor(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestMustParseColor 测试解析失败时的回退颜色
func TestMustParseColor(t *testing.T) {
	if got := MustParseColor("bogus"); got != (color.RGBA{A: 0xff}) {
		t.Errorf("MustParseColor(bogus) = %v, want opaque black", got)
	}
	if got := MustParseColor("gray"); got != (color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}) {
		t.Errorf("MustParseColor(gray) = %v", got)
	}
}
