package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"karondoran-server/internal/platform/imaging"
	platformservice "karondoran-server/internal/platform/service"
	"karondoran-server/internal/testutils"
)

// Verifies files at or under the threshold are uploaded byte-for-byte.
func TestPrepare_SmallFilePassesThrough(t *testing.T) {
	s := newTestService(t, imaging.MB)
	data := testutils.PNG(32, 32)

	prepared, err := s.Prepare(context.Background(), testutils.FileHeader(t, "logo.png", data))
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if prepared.Normalized() {
		t.Fatalf("expected no normalization for a small file")
	}
	if !bytes.Equal(prepared.Upload.Data, data) {
		t.Fatalf("expected unmodified bytes")
	}
	if prepared.Upload.Ext != ".png" || prepared.Upload.ContentType != "image/png" {
		t.Fatalf("unexpected upload: ext=%q type=%q", prepared.Upload.Ext, prepared.Upload.ContentType)
	}
}

// Verifies files over the threshold go through the normalizer and become JPEG.
func TestPrepare_LargeFileIsNormalized(t *testing.T) {
	s := newTestService(t, 1024)
	data := testutils.NoisyJPEG(300, 200, 1)
	if int64(len(data)) <= 1024 {
		t.Fatalf("fixture too small: %d", len(data))
	}

	prepared, err := s.Prepare(context.Background(), testutils.FileHeader(t, "sawah.jpg", data))
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if !prepared.Normalized() {
		t.Fatalf("expected normalization")
	}
	if prepared.Upload.Ext != ".jpg" || prepared.Upload.ContentType != imaging.MimeJPEG {
		t.Fatalf("unexpected upload: ext=%q type=%q", prepared.Upload.Ext, prepared.Upload.ContentType)
	}
	if prepared.Image.Width != 300 || prepared.Image.Height != 200 {
		t.Fatalf("unexpected dimensions %dx%d", prepared.Image.Width, prepared.Image.Height)
	}
	if prepared.OriginalSize != int64(len(data)) {
		t.Fatalf("expected original size %d, got %d", len(data), prepared.OriginalSize)
	}
}

// Verifies the extension whitelist and content sniffing reject bad files.
func TestPrepare_RejectsInvalidFiles(t *testing.T) {
	s := newTestService(t, imaging.MB)

	cases := []struct {
		name     string
		filename string
		data     []byte
	}{
		{"no extension", "foto", testutils.MinimalPNG()},
		{"disallowed extension", "notes.txt", []byte("hello")},
		{"content mismatch", "foto.jpg", testutils.MinimalPNG()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Prepare(context.Background(), testutils.FileHeader(t, tc.filename, tc.data))
			serviceErr, ok := platformservice.AsServiceError(err)
			if !ok || serviceErr.Code != platformservice.ErrorCodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

// Verifies an undecodable large file surfaces as a validation error carrying the decode cause.
func TestPrepare_UndecodableLargeFile(t *testing.T) {
	s := newTestService(t, 100)
	// a valid PNG signature followed by garbage passes sniffing but not decoding
	data := append(testutils.MinimalPNG()[:16], bytes.Repeat([]byte{0x42}, 400)...)

	_, err := s.Prepare(context.Background(), testutils.FileHeader(t, "rusak.png", data))
	if !errors.Is(err, imaging.ErrDecode) {
		t.Fatalf("expected ErrDecode cause, got %v", err)
	}
	serviceErr, ok := platformservice.AsServiceError(err)
	if !ok || serviceErr.Code != platformservice.ErrorCodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

// Verifies Preview reports the prepared image with a readable size.
func TestPreview_ReportsMetadata(t *testing.T) {
	s := newTestService(t, 1024)
	data := testutils.PNG(2400, 1200)

	resp, err := s.Preview(context.Background(), testutils.FileHeader(t, "pantai.png", data))
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if !resp.Normalized || resp.Filename != "pantai.jpg" {
		t.Fatalf("unexpected preview: %+v", resp)
	}
	if resp.Width != 1920 || resp.Height != 960 {
		t.Fatalf("expected 1920x960, got %dx%d", resp.Width, resp.Height)
	}
	if resp.Data == "" || resp.ReadableSize == "" {
		t.Fatalf("expected data and readable size")
	}
}
