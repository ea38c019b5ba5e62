package asset

import (
	"errors"

	platformservice "karondoran-server/internal/platform/service"
)

// ServiceError translates a lifecycle error into the error handlers render.
// The original error stays reachable through errors.Is.
func ServiceError(err error, notFoundMessage string) error {
	if err == nil {
		return nil
	}
	if _, ok := platformservice.AsServiceError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return platformservice.WrapServiceError(platformservice.ErrorCodeNotFound, notFoundMessage, err)
	case errors.Is(err, ErrUpload):
		return platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Gagal mengunggah gambar", err)
	case errors.Is(err, ErrRecordWrite):
		return platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Gagal menyimpan data", err)
	case errors.Is(err, ErrRecordDelete):
		return platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Gagal menghapus data", err)
	default:
		return platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Terjadi kesalahan pada server", err)
	}
}
