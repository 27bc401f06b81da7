package inkwell

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"

	"github.com/ogulcan/inkwell/views"
)

const (
	maxImageWidth = 800
	jpegQuality   = 80
)

// sanitizeFilename reduces an uploaded filename to a safe basename: path
// components are stripped and anything outside [A-Za-z0-9._-] is dropped
// (spaces become underscores). Returns "" when nothing safe remains.
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_', r == '.':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}
	return strings.Trim(b.String(), "._")
}

// uniqueFilename appends a numeric suffix while name collides with a file
// already in dir. Same-named uploads are versioned, never overwritten.
func uniqueFilename(dir, name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	candidate := name
	for counter := 2; ; counter++ {
		if _, err := os.Stat(filepath.Join(dir, candidate)); os.IsNotExist(err) {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d%s", base, counter, ext)
	}
}

// downscaleImage re-encodes an image as JPEG, scaling it down to
// maxImageWidth when wider. Returns false when data is not a decodable
// image, in which case the upload is stored verbatim.
func downscaleImage(data []byte) ([]byte, bool) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxImageWidth {
		newH := h * maxImageWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}

func isImageExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif":
		return true
	}
	return false
}

// handleUploader renders the upload form (GET) or stores a file (POST).
func (a *App) handleUploader(c echo.Context) error {
	if c.Request().Method == http.MethodGet {
		return Render(c, views.Uploader(a.Config.Site, CsrfToken(c)))
	}

	file, err := c.FormFile("file1")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No file provided")
	}
	if file.Size > a.Config.MaxUploadSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "File too large")
	}
	filename := sanitizeFilename(file.Filename)
	if filename == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Unusable filename")
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()
	data, err := io.ReadAll(io.LimitReader(src, a.Config.MaxUploadSize))
	if err != nil {
		return err
	}

	// Image uploads get downscaled and re-encoded; everything else is
	// stored verbatim.
	if isImageExt(filename) {
		if encoded, ok := downscaleImage(data); ok {
			data = encoded
			filename = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".jpg"
		}
	}

	if err := os.MkdirAll(a.Config.UploadDir, 0o755); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}
	filename = uniqueFilename(a.Config.UploadDir, filename)
	if err := os.WriteFile(filepath.Join(a.Config.UploadDir, filename), data, 0o644); err != nil {
		return fmt.Errorf("write upload: %w", err)
	}

	if _, err := a.Store.CreateUpload(views.Upload{
		Filename:   filename,
		UploadedAt: time.Now().UTC(),
	}); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/dashbord?msg=File+uploaded")
}

// handleDeleteFile removes the upload record and, best effort, the file
// itself so no orphan is left on disk.
func (a *App) handleDeleteFile(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	filename, err := a.Store.DeleteUpload(id)
	if err == ErrNotFound {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	if rmErr := os.Remove(filepath.Join(a.Config.UploadDir, filename)); rmErr != nil && !os.IsNotExist(rmErr) {
		c.Logger().Warnf("remove uploaded file %s: %v", filename, rmErr)
	}
	return c.Redirect(http.StatusSeeOther, "/dashbord?msg=File+deleted")
}

// handleFileList is the public uploaded-files listing.
func (a *App) handleFileList(c echo.Context) error {
	files, err := a.Store.ListUploads()
	if err != nil {
		return err
	}
	return Render(c, views.FileList(a.Config.Site, files))
}
