// Package imaging turns an arbitrary uploaded image into a bounded-size JPEG
// suitable for storage and display.
package imaging

import (
	"errors"
	"path/filepath"
	"strings"
	"time"
)

const (
	MimeJPEG = "image/jpeg"

	// MB is the unit the size target is compared in.
	MB = 1024 * 1024

	DefaultMaxDimension   = 1920
	DefaultTargetMaxBytes = 1 * MB
	// DefaultMaxSourcePixels bounds the decoded size of a source image, which a
	// crafted header could otherwise inflate to gigabytes.
	DefaultMaxSourcePixels = 50_000_000

	startQuality = 90
	qualityStep  = 10
	qualityFloor = 10
	// MaxAttempts is the number of encodes the quality loop can perform.
	MaxAttempts = (startQuality-qualityFloor)/qualityStep + 1
)

var (
	ErrDecode = errors.New("image could not be decoded")
	ErrRender = errors.New("image could not be rendered")
	ErrEncode = errors.New("image could not be encoded")
)

// ImageAsset is a normalized image ready to be uploaded.
type ImageAsset struct {
	Data       []byte
	MimeType   string
	Width      int
	Height     int
	SizeBytes  int64
	Quality    int
	Attempts   int
	Filename   string
	ModifiedAt time.Time
}

// jpegFilename keeps the source base name and swaps the extension.
func jpegFilename(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "image"
	}
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" {
		name = "image"
	}
	return name + ".jpg"
}
