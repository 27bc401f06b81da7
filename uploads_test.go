package inkwell

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"report.pdf", "report.pdf"},
		{"my file.txt", "my_file.txt"},
		{"../../etc/passwd", "passwd"},
		{"..\\..\\shell.png", "shell.png"},
		{"/absolute/path/img.jpg", "img.jpg"},
		{"über.txt", "ber.txt"},
		{"...", ""},
		{"", ""},
		{".hidden", "hidden"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.input); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestUniqueFilenameVersionsCollisions(t *testing.T) {
	dir := t.TempDir()

	if got := uniqueFilename(dir, "notes.txt"); got != "notes.txt" {
		t.Errorf("no collision: got %q, want notes.txt", got)
	}

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := uniqueFilename(dir, "notes.txt"); got != "notes-2.txt" {
		t.Errorf("first collision: got %q, want notes-2.txt", got)
	}

	if err := os.WriteFile(filepath.Join(dir, "notes-2.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := uniqueFilename(dir, "notes.txt"); got != "notes-3.txt" {
		t.Errorf("second collision: got %q, want notes-3.txt", got)
	}
}

func TestDownscaleImageResizesWideImages(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1600, 400))
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	data, ok := downscaleImage(buf.Bytes())
	if !ok {
		t.Fatal("downscaleImage should handle PNG input")
	}
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a JPEG: %v", err)
	}
	if w := img.Bounds().Dx(); w != maxImageWidth {
		t.Errorf("width = %d, want %d", w, maxImageWidth)
	}
	if h := img.Bounds().Dy(); h != 200 {
		t.Errorf("height = %d, want 200 (aspect preserved)", h)
	}
}

func TestDownscaleImageKeepsSmallImages(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 300, 200))
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	data, ok := downscaleImage(buf.Bytes())
	if !ok {
		t.Fatal("downscaleImage should handle PNG input")
	}
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a JPEG: %v", err)
	}
	if w := img.Bounds().Dx(); w != 300 {
		t.Errorf("width = %d, want 300 (no upscaling)", w)
	}
}

func TestDownscaleImageRejectsNonImages(t *testing.T) {
	if _, ok := downscaleImage([]byte("plain text, not an image")); ok {
		t.Error("non-image data should not decode")
	}
}
