package asset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"karondoran-server/internal/platform/blobstore"
)

// callLog records the order of store and blob operations across fakes.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, fmt.Sprintf(format, args...))
}

func (l *callLog) list() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

func (l *callLog) countPrefix(prefix string) int {
	n := 0
	for _, c := range l.list() {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

type fakeBlobs struct {
	log       *callLog
	objects   map[string]blobstore.Object
	putErr    error
	deleteErr error
}

func newFakeBlobs(log *callLog) *fakeBlobs {
	return &fakeBlobs{log: log, objects: map[string]blobstore.Object{}}
}

func (f *fakeBlobs) Put(ctx context.Context, bucket, path string, body io.Reader, opts blobstore.PutOptions) (string, error) {
	f.log.add("blob.put %s/%s", bucket, path)
	if f.putErr != nil {
		return "", f.putErr
	}
	data, _ := io.ReadAll(body)
	f.objects[bucket+"/"+path] = blobstore.Object{Key: path, Size: int64(len(data)), ModTime: time.Now().Add(-time.Hour)}
	return path, nil
}

func (f *fakeBlobs) PublicURL(bucket, path string) string {
	return "/storage/" + bucket + "/" + path
}

func (f *fakeBlobs) ResolvePath(bucket, ref string) (string, error) {
	prefix := "/storage/" + bucket + "/"
	if strings.HasPrefix(ref, "/") {
		if !strings.HasPrefix(ref, prefix) {
			return "", blobstore.ErrUnknownURL
		}
		return strings.TrimPrefix(ref, prefix), nil
	}
	return ref, nil
}

func (f *fakeBlobs) Delete(ctx context.Context, bucket, ref string) error {
	f.log.add("blob.delete %s/%s", bucket, ref)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	key, err := f.ResolvePath(bucket, ref)
	if err != nil {
		return err
	}
	delete(f.objects, bucket+"/"+key)
	return nil
}

func (f *fakeBlobs) List(ctx context.Context, bucket string) ([]blobstore.Object, error) {
	var out []blobstore.Object
	for k, o := range f.objects {
		if strings.HasPrefix(k, bucket+"/") {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeBlobs) has(bucket, key string) bool {
	_, ok := f.objects[bucket+"/"+key]
	return ok
}

// photo is a minimal asset-owning record.
type photo struct {
	ID    string
	Name  string
	Ref   string
	Bytes int64
}

type fakeRecords struct {
	log       *callLog
	rows      map[string]photo
	seq       int
	createErr error
	updateErr error
	deleteErr error
}

func newFakeRecords(log *callLog) *fakeRecords {
	return &fakeRecords{log: log, rows: map[string]photo{}}
}

func (f *fakeRecords) GetByID(ctx context.Context, id string) (*photo, error) {
	f.log.add("record.get %s", id)
	row, ok := f.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &row, nil
}

func (f *fakeRecords) Create(ctx context.Context, record *photo) error {
	f.log.add("record.create")
	if f.createErr != nil {
		return f.createErr
	}
	if record.ID == "" {
		f.seq++
		record.ID = fmt.Sprintf("photo-%d", f.seq)
	}
	f.rows[record.ID] = *record
	return nil
}

func (f *fakeRecords) Update(ctx context.Context, id string, fields map[string]any) (*photo, error) {
	f.log.add("record.update %s", id)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	row, ok := f.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			row.Name = v.(string)
		case "ref":
			row.Ref = v.(string)
		case "bytes":
			row.Bytes = v.(int64)
		default:
			return nil, errors.New("unknown column " + k)
		}
	}
	f.rows[id] = row
	return &row, nil
}

func (f *fakeRecords) Delete(ctx context.Context, id string) error {
	f.log.add("record.delete %s", id)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.rows[id]; !ok {
		return ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func photoKind(required bool) Kind[photo] {
	return Kind[photo]{
		Name:     "photo",
		Bucket:   "photos",
		Column:   "ref",
		Required: required,
		ID:       func(p *photo) string { return p.ID },
		AssetRef: func(p *photo) string { return p.Ref },
		ExtraFields: func(u *Upload) map[string]any {
			return map[string]any{"bytes": u.Size()}
		},
	}
}
