// file: internals/helpers/oss/lesson_asset.go
package oss

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	// Slide/contoh karya di-resize maksimal selebar ini sebelum disimpan.
	maxAssetWidth = 1600

	webpQuality = 85
)

var unsafeFilenameRe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeFilenameRe.ReplaceAllString(filename, "_")
}

// GenerateAssetKey: "<folder>/<yyyymmdd>-<uuid>-<nama-aman>"
func GenerateAssetKey(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	base := sanitizeFilename(strings.TrimSuffix(originalFilename, filepath.Ext(originalFilename)))
	return fmt.Sprintf("%s/%s-%s-%s.webp", folder, timestamp, uuid.New().String(), base)
}

// ConvertImageToWebP membaca gambar (jpeg/png), resize bila terlalu lebar,
// lalu encode ke webp.
func ConvertImageToWebP(fh *multipart.FileHeader) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	raw := new(bytes.Buffer)
	if _, err := io.Copy(raw, src); err != nil {
		return nil, fmt.Errorf("gagal membaca file gambar: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(raw.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("file bukan gambar yang valid: %w", err)
	}

	if img.Bounds().Dx() > maxAssetWidth {
		img = imaging.Resize(img, maxAssetWidth, 0, imaging.Lanczos)
	}

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("gagal encode webp: %w", err)
	}
	return out.Bytes(), nil
}

// UploadLessonAsset: convert ke webp lalu simpan ke OSS.
// Mengembalikan (publicURL, storageKey).
func UploadLessonAsset(folder string, fh *multipart.FileHeader) (string, string, error) {
	data, err := ConvertImageToWebP(fh)
	if err != nil {
		return "", "", err
	}
	key := GenerateAssetKey(folder, fh.Filename)
	url, err := UploadBytes(key, "image/webp", data)
	if err != nil {
		return "", "", err
	}
	return url, key, nil
}
