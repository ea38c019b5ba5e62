package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"karondoran-server/internal/consts"
	"karondoran-server/internal/modules/asset"
	moduledto "karondoran-server/internal/modules/media/dto"
	"karondoran-server/internal/platform/imaging"
	platformservice "karondoran-server/internal/platform/service"
	"karondoran-server/internal/utils"
)

// Prepared is an upload ready for the asset lifecycle, plus what was done to it.
type Prepared struct {
	Upload       *asset.Upload
	OriginalSize int64
	Image        *imaging.ImageAsset
}

func (p *Prepared) Normalized() bool {
	return p.Image != nil
}

// ValidateImageFile checks size, extension and content of file and returns
// its lowercase extension.
func (s *Service) ValidateImageFile(file *multipart.FileHeader) (string, error) {
	maxSizeMB := s.GetInt(consts.ConfigMaxUploadSize)
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	if file.Size > int64(maxSizeMB)*imaging.MB {
		return "", platformservice.NewValidationError(fmt.Sprintf("Ukuran file tidak boleh lebih dari %dMB", maxSizeMB))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		return "", platformservice.NewValidationError("Jenis file tidak dikenali")
	}

	allowed := false
	for _, allowExt := range strings.Split(s.GetString(consts.ConfigAllowFileExtensions), ",") {
		if strings.TrimSpace(strings.ToLower(allowExt)) == ext {
			allowed = true
			break
		}
	}
	if !allowed {
		return ext, platformservice.NewValidationError("Jenis file tidak didukung: " + ext)
	}

	src, err := file.Open()
	if err != nil {
		return ext, platformservice.NewValidationError("Gagal membuka file yang diunggah")
	}
	defer func() { _ = src.Close() }()

	if valid, msg := utils.ValidateImageContent(src, ext); !valid {
		return ext, platformservice.NewValidationError(msg)
	}
	return ext, nil
}

// Prepare validates file and normalizes it when it is larger than the
// compression threshold. Files at or under the threshold pass through
// unmodified.
func (s *Service) Prepare(ctx context.Context, file *multipart.FileHeader) (*Prepared, error) {
	ext, err := s.ValidateImageFile(file)
	if err != nil {
		return nil, err
	}

	data, err := readFile(file)
	if err != nil {
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Gagal membaca file yang diunggah", err)
	}

	prepared := &Prepared{OriginalSize: int64(len(data))}
	if prepared.OriginalSize <= s.upload.CompressThresholdBytes {
		prepared.Upload = &asset.Upload{Data: data, Ext: ext, ContentType: http.DetectContentType(data)}
		return prepared, nil
	}

	img, err := s.normalizer.Normalize(ctx, bytes.NewReader(data), file.Filename, s.upload.TargetMaxBytes)
	if err != nil {
		return nil, normalizeError(err)
	}
	log.Printf("🖼️ normalized %s: %s -> %s (q%d, %d attempts)",
		file.Filename, utils.ReadableFileSize(prepared.OriginalSize), utils.ReadableFileSize(img.SizeBytes), img.Quality, img.Attempts)

	prepared.Image = img
	prepared.Upload = &asset.Upload{Data: img.Data, Ext: filepath.Ext(img.Filename), ContentType: img.MimeType}
	return prepared, nil
}

// Preview runs Prepare without storing anything.
func (s *Service) Preview(ctx context.Context, file *multipart.FileHeader) (*moduledto.PreviewResponse, error) {
	prepared, err := s.Prepare(ctx, file)
	if err != nil {
		return nil, err
	}

	resp := &moduledto.PreviewResponse{
		Filename:     file.Filename,
		MimeType:     prepared.Upload.ContentType,
		Size:         prepared.Upload.Size(),
		ReadableSize: utils.ReadableFileSize(prepared.Upload.Size()),
		OriginalSize: prepared.OriginalSize,
		Normalized:   prepared.Normalized(),
		Data:         base64.StdEncoding.EncodeToString(prepared.Upload.Data),
	}
	if img := prepared.Image; img != nil {
		resp.Filename = img.Filename
		resp.Width = img.Width
		resp.Height = img.Height
		resp.Quality = img.Quality
		resp.Attempts = img.Attempts
	}
	return resp, nil
}

func normalizeError(err error) error {
	switch {
	case errors.Is(err, imaging.ErrDecode):
		return platformservice.WrapServiceError(platformservice.ErrorCodeValidation, "Gambar tidak dapat dibaca, pilih file lain", err)
	case errors.Is(err, imaging.ErrRender), errors.Is(err, imaging.ErrEncode):
		return platformservice.WrapServiceError(platformservice.ErrorCodeValidation, "Gagal memproses gambar", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Permintaan dibatalkan", err)
	default:
		return platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Gagal memproses gambar", err)
	}
}

func readFile(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()
	return io.ReadAll(src)
}
