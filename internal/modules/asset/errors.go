package asset

import (
	"errors"

	"karondoran-server/internal/platform/crud"
)

var (
	ErrUpload       = errors.New("asset upload failed")
	ErrRecordWrite  = errors.New("record write failed")
	ErrRecordDelete = errors.New("record delete failed")
	ErrBlobDelete   = errors.New("blob delete failed")
	// ErrNotFound is what record stores return for a missing id.
	ErrNotFound = crud.ErrNotFound
)
