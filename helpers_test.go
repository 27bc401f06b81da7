package inkwell

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"  Already trimmed  ", "already-trimmed"},
		{"Symbols & Spaces!", "symbols-spaces"},
		{"MixedCase123", "mixedcase123"},
		{"---", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBuildURL(t *testing.T) {
	if got := BuildURL("https://example.com", "post", "my-slug"); got != "https://example.com/post/my-slug" {
		t.Errorf("BuildURL = %q", got)
	}
	if got := BuildURL("https://example.com/base/", "about"); got != "https://example.com/base/about" {
		t.Errorf("BuildURL with base path = %q", got)
	}
}
