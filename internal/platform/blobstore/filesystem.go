package blobstore

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"karondoran-server/internal/utils"

	"github.com/google/uuid"
)

const tempPrefix = ".tmp-"

var bucketPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// FilesystemStore keeps each bucket as a directory under root. Blobs are
// served by the HTTP server under urlPrefix + bucket + "/".
type FilesystemStore struct {
	root      string
	urlPrefix string
	baseURL   string
}

// NewFilesystemStore creates root and one directory per bucket. baseURL may be
// empty, in which case public URLs are host-relative.
func NewFilesystemStore(root, urlPrefix, baseURL string, buckets ...string) (*FilesystemStore, error) {
	if root == "" {
		root = "uploads"
	}
	if !strings.HasPrefix(urlPrefix, "/") {
		urlPrefix = "/" + urlPrefix
	}
	if !strings.HasSuffix(urlPrefix, "/") {
		urlPrefix += "/"
	}
	if err := utils.EnsurePathNotSymlink(root); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create blob root: %w", err)
	}

	s := &FilesystemStore{
		root:      root,
		urlPrefix: urlPrefix,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
	for _, bucket := range buckets {
		dir, err := s.bucketDir(bucket)
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", bucket, err)
		}
	}
	return s, nil
}

// Root is the directory holding every bucket.
func (s *FilesystemStore) Root() string {
	return s.root
}

// BucketDir is the directory served for bucket.
func (s *FilesystemStore) BucketDir(bucket string) (string, error) {
	return s.bucketDir(bucket)
}

func (s *FilesystemStore) bucketDir(bucket string) (string, error) {
	if !bucketPattern.MatchString(bucket) {
		return "", fmt.Errorf("%w: bucket %q", ErrInvalidPath, bucket)
	}
	return utils.SecureJoin(s.root, bucket)
}

func (s *FilesystemStore) blobPath(bucket, key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" || strings.HasSuffix(key, "/") || strings.Contains(key, "\\") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, key)
	}
	for _, segment := range strings.Split(key, "/") {
		if segment == "" || segment == "." || segment == ".." || strings.HasPrefix(segment, tempPrefix) {
			return "", fmt.Errorf("%w: %q", ErrInvalidPath, key)
		}
	}
	dir, err := s.bucketDir(bucket)
	if err != nil {
		return "", err
	}
	full, err := utils.SecureJoin(dir, key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	return full, nil
}

// Put writes to a temp file in the target directory and renames it into place
// so a reader never sees a partially written blob.
func (s *FilesystemStore) Put(ctx context.Context, bucket, key string, body io.Reader, opts PutOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	full, err := s.blobPath(bucket, key)
	if err != nil {
		return "", err
	}
	if !opts.Upsert {
		if _, err := os.Stat(full); err == nil {
			return "", fmt.Errorf("%w: %s/%s", ErrExists, bucket, key)
		}
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("ensure blob dir: %w", err)
	}

	tmpPath := filepath.Join(filepath.Dir(full), tempPrefix+uuid.NewString())
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create temp blob: %w", err)
	}
	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("write blob: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("close blob: %w", err)
	}
	if err := os.Rename(tmpPath, full); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("rename blob: %w", err)
	}
	return key, nil
}

func (s *FilesystemStore) PublicURL(bucket, key string) string {
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return s.baseURL + s.urlPrefix + bucket + "/" + strings.Join(segments, "/")
}

// ResolvePath maps a public URL (absolute or host-relative) or a plain path
// back to the path inside bucket.
func (s *FilesystemStore) ResolvePath(bucket, pathOrURL string) (string, error) {
	ref := strings.TrimSpace(pathOrURL)
	if ref == "" {
		return "", fmt.Errorf("%w: empty reference", ErrInvalidPath)
	}

	isURL := strings.Contains(ref, "://") || strings.HasPrefix(ref, "/")
	if !isURL {
		return ref, nil
	}

	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnknownURL, err)
	}
	if s.baseURL != "" && u.Host != "" {
		base, err := url.Parse(s.baseURL)
		if err == nil && !strings.EqualFold(base.Host, u.Host) {
			return "", fmt.Errorf("%w: host %s", ErrUnknownURL, u.Host)
		}
	}

	prefix := s.urlPrefix + bucket + "/"
	p := path.Clean(u.Path)
	if !strings.HasPrefix(p, prefix) {
		return "", fmt.Errorf("%w: %s not under %s", ErrUnknownURL, u.Path, prefix)
	}
	return strings.TrimPrefix(p, prefix), nil
}

func (s *FilesystemStore) Delete(ctx context.Context, bucket, pathOrURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key, err := s.ResolvePath(bucket, pathOrURL)
	if err != nil {
		return err
	}
	full, err := s.blobPath(bucket, key)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete blob: %w", err)
	}
	return nil
}

func (s *FilesystemStore) List(ctx context.Context, bucket string) ([]Object, error) {
	dir, err := s.bucketDir(bucket)
	if err != nil {
		return nil, err
	}

	var objects []Object
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if os.IsNotExist(walkErr) && p == dir {
				return filepath.SkipDir
			}
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), tempPrefix) {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		objects = append(objects, Object{Key: filepath.ToSlash(rel), Size: info.Size(), ModTime: info.ModTime()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list bucket %q: %w", bucket, err)
	}
	return objects, nil
}
