// Package asset keeps records and the image blobs they reference consistent.
//
// Every operation writes the record before it deletes anything, so a record
// never points at a removed blob. Blob deletions are best-effort: a failure is
// logged, counted and returned as a warning, and the leaked blob is left for
// the Sweeper.
package asset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"karondoran-server/internal/platform/blobstore"
)

// RecordStore is the subset of the record store the lifecycle needs.
type RecordStore[T any] interface {
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, record *T) error
	Update(ctx context.Context, id string, fields map[string]any) (*T, error)
	Delete(ctx context.Context, id string) error
}

// Kind describes how one record type holds its asset reference.
type Kind[T any] struct {
	Name   string
	Bucket string
	// PathPrefix is prepended to every blob path, e.g. "government/".
	PathPrefix string
	// Column is the database column holding the reference.
	Column string
	// Required kinds cannot exist without an asset; a failed upload on create
	// removes the record again.
	Required bool

	ID       func(*T) string
	AssetRef func(*T) string
	// ExtraFields adds columns written together with a new reference, such as
	// the stored size.
	ExtraFields func(u *Upload) map[string]any
}

// Upload is the file attached to a create or update.
type Upload struct {
	Data        []byte
	Ext         string
	ContentType string
}

func (u *Upload) Size() int64 {
	if u == nil {
		return 0
	}
	return int64(len(u.Data))
}

// Result is the outcome of a successful operation. Warnings report
// non-blocking problems such as a stale blob that could not be removed.
type Result[T any] struct {
	Record   *T
	Warnings []string
}

type Lifecycle[T any] struct {
	kind  Kind[T]
	store RecordStore[T]
	blobs blobstore.Store
	now   func() time.Time
}

func NewLifecycle[T any](kind Kind[T], store RecordStore[T], blobs blobstore.Store) *Lifecycle[T] {
	return &Lifecycle[T]{kind: kind, store: store, blobs: blobs, now: time.Now}
}

// blobPath names a blob after its owning record. The timestamp makes every
// upload land on a fresh path, so a replacement never overwrites the blob it
// is about to replace.
func (l *Lifecycle[T]) blobPath(id, ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return fmt.Sprintf("%s%s-%d%s", l.kind.PathPrefix, id, l.now().UnixNano(), strings.ToLower(ext))
}

func (l *Lifecycle[T]) upload(ctx context.Context, id string, u *Upload) (string, error) {
	key, err := l.blobs.Put(ctx, l.kind.Bucket, l.blobPath(id, u.Ext), bytes.NewReader(u.Data), blobstore.PutOptions{
		ContentType: u.ContentType,
		Upsert:      true,
	})
	if err != nil {
		uploadsTotal.WithLabelValues(l.kind.Name, "failed").Inc()
		return "", fmt.Errorf("%w: %s: %v", ErrUpload, l.kind.Bucket, err)
	}
	uploadsTotal.WithLabelValues(l.kind.Name, "ok").Inc()
	return l.blobs.PublicURL(l.kind.Bucket, key), nil
}

// deleteBlob removes ref and turns a failure into a warning.
func (l *Lifecycle[T]) deleteBlob(ctx context.Context, ref string) string {
	if ref == "" {
		return ""
	}
	if err := l.blobs.Delete(ctx, l.kind.Bucket, ref); err != nil {
		blobDeleteFailures.WithLabelValues(l.kind.Name).Inc()
		log.Printf("⚠️ [%s] failed to delete blob %s/%s: %v", l.kind.Name, l.kind.Bucket, ref, err)
		return fmt.Errorf("%w: %s: %v", ErrBlobDelete, ref, err).Error()
	}
	return ""
}

func (l *Lifecycle[T]) refFields(ref string, u *Upload) map[string]any {
	fields := map[string]any{l.kind.Column: ref}
	if l.kind.ExtraFields != nil {
		for k, v := range l.kind.ExtraFields(u) {
			fields[k] = v
		}
	}
	return fields
}

// CreateWithAsset stores record and, when upload is given, its asset. The
// record is created first so the blob can be named after its id.
func (l *Lifecycle[T]) CreateWithAsset(ctx context.Context, record *T, upload *Upload) (*Result[T], error) {
	if err := l.store.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("%w: create %s: %v", ErrRecordWrite, l.kind.Name, err)
	}
	if upload == nil {
		return &Result[T]{Record: record}, nil
	}

	id := l.kind.ID(record)
	ref, err := l.upload(ctx, id, upload)
	if err != nil {
		l.discardUnlinked(ctx, id)
		return nil, err
	}

	updated, err := l.store.Update(ctx, id, l.refFields(ref, upload))
	if err != nil {
		l.deleteBlob(ctx, ref)
		l.discardUnlinked(ctx, id)
		return nil, fmt.Errorf("%w: link asset to %s %s: %v", ErrRecordWrite, l.kind.Name, id, err)
	}
	return &Result[T]{Record: updated}, nil
}

// discardUnlinked removes a just-created record of a kind that cannot exist
// without its asset.
func (l *Lifecycle[T]) discardUnlinked(ctx context.Context, id string) {
	if !l.kind.Required {
		return
	}
	if err := l.store.Delete(ctx, id); err != nil {
		log.Printf("⚠️ [%s] failed to remove %s without asset: %v", l.kind.Name, id, err)
	}
}

// UpdateWithAsset writes fields and, when upload is given, swaps the asset.
// The previous blob is deleted only after the record points at the new one.
func (l *Lifecycle[T]) UpdateWithAsset(ctx context.Context, id string, fields map[string]any, upload *Upload) (*Result[T], error) {
	if upload == nil {
		updated, err := l.store.Update(ctx, id, l.withoutAssetColumn(fields))
		if err != nil {
			return nil, l.wrapLookup(err, "update", id)
		}
		return &Result[T]{Record: updated}, nil
	}

	current, err := l.store.GetByID(ctx, id)
	if err != nil {
		return nil, l.wrapLookup(err, "load", id)
	}
	previous := l.kind.AssetRef(current)

	ref, err := l.upload(ctx, id, upload)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		merged[k] = v
	}
	for k, v := range l.refFields(ref, upload) {
		merged[k] = v
	}

	updated, err := l.store.Update(ctx, id, merged)
	if err != nil {
		l.deleteBlob(ctx, ref)
		return nil, l.wrapLookup(err, "update", id)
	}

	result := &Result[T]{Record: updated}
	if previous != "" && previous != ref {
		if warning := l.deleteBlob(ctx, previous); warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
	}
	return result, nil
}

// DeleteWithAsset removes the record's blob and then the record. A blob that
// cannot be deleted does not stop the record deletion.
func (l *Lifecycle[T]) DeleteWithAsset(ctx context.Context, id string) (*Result[T], error) {
	current, err := l.store.GetByID(ctx, id)
	if err != nil {
		return nil, l.wrapLookup(err, "load", id)
	}

	result := &Result[T]{Record: current}
	if ref := l.kind.AssetRef(current); ref != "" {
		if warning := l.deleteBlob(ctx, ref); warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
	}

	if err := l.store.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s %s: %v", ErrRecordDelete, l.kind.Name, id, err)
	}
	return result, nil
}

// withoutAssetColumn keeps a plain field update from touching the reference.
func (l *Lifecycle[T]) withoutAssetColumn(fields map[string]any) map[string]any {
	if _, ok := fields[l.kind.Column]; !ok {
		return fields
	}
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if k != l.kind.Column {
			out[k] = v
		}
	}
	return out
}

func (l *Lifecycle[T]) wrapLookup(err error, op, id string) error {
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%s %s %s: %w", op, l.kind.Name, id, ErrNotFound)
	}
	return fmt.Errorf("%w: %s %s %s: %v", ErrRecordWrite, op, l.kind.Name, id, err)
}
