package imaging

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"math"
	"time"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Encoder writes img at the given quality (1..100).
type Encoder interface {
	Encode(w io.Writer, img image.Image, quality int) error
}

// EncoderFunc adapts a function to Encoder.
type EncoderFunc func(w io.Writer, img image.Image, quality int) error

func (f EncoderFunc) Encode(w io.Writer, img image.Image, quality int) error {
	return f(w, img, quality)
}

// JPEGEncoder is the standard library JPEG encoder.
var JPEGEncoder Encoder = EncoderFunc(func(w io.Writer, img image.Image, quality int) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
})

// Normalizer turns uploaded images into bounded JPEG assets. It holds no
// per-call state and is safe for concurrent use.
type Normalizer struct {
	maxDimension    int
	maxSourcePixels int64
	encoder         Encoder
	now             func() time.Time
}

// Option configures a Normalizer built by New.
type Option func(*Normalizer)

// WithMaxDimension bounds the longer side of the output, in pixels.
func WithMaxDimension(px int) Option {
	return func(n *Normalizer) {
		if px > 0 {
			n.maxDimension = px
		}
	}
}

// WithMaxSourcePixels refuses sources whose width times height exceeds px.
func WithMaxSourcePixels(px int64) Option {
	return func(n *Normalizer) {
		if px > 0 {
			n.maxSourcePixels = px
		}
	}
}

// WithEncoder replaces the JPEG encoder.
func WithEncoder(enc Encoder) Option {
	return func(n *Normalizer) {
		if enc != nil {
			n.encoder = enc
		}
	}
}

// WithClock sets the time source for the asset modification time.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) {
		if now != nil {
			n.now = now
		}
	}
}

// New returns a Normalizer using the defaults overridden by opts. Zero or nil
// option values are ignored.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		maxDimension:    DefaultMaxDimension,
		maxSourcePixels: DefaultMaxSourcePixels,
		encoder:         JPEGEncoder,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize decodes src, bounds its larger side to the max dimension and
// re-encodes it as JPEG, lowering quality until the output is no larger than
// targetMaxBytes. When the target cannot be reached the smallest encoding is
// returned; an unreachable target is never an error.
func (n *Normalizer) Normalize(ctx context.Context, src io.Reader, filename string, targetMaxBytes int64) (*ImageAsset, error) {
	if targetMaxBytes <= 0 {
		targetMaxBytes = DefaultTargetMaxBytes
	}

	img, err := n.decode(src)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	width, height := TargetDimensions(b.Dx(), b.Dy(), n.maxDimension)

	surface, err := render(img, width, height)
	if err != nil {
		return nil, err
	}

	data, quality, attempts, err := n.encode(ctx, surface, targetMaxBytes)
	normalizeAttempts.Observe(float64(attempts))
	if err != nil {
		return nil, err
	}

	return &ImageAsset{
		Data:       data,
		MimeType:   MimeJPEG,
		Width:      width,
		Height:     height,
		SizeBytes:  int64(len(data)),
		Quality:    quality,
		Attempts:   attempts,
		Filename:   jpegFilename(filename),
		ModifiedAt: n.now(),
	}, nil
}

func (n *Normalizer) decode(src io.Reader) (image.Image, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: no data", ErrDecode)
	}
	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w: read source: %v", ErrDecode, err)
	}

	// Check the header dimensions before allocating the full bitmap.
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: empty image %dx%d", ErrDecode, cfg.Width, cfg.Height)
	}
	if int64(cfg.Width)*int64(cfg.Height) > n.maxSourcePixels {
		return nil, fmt.Errorf("%w: image too large: %dx%d pixels", ErrDecode, cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}

// TargetDimensions scales (w, h) so the larger side equals maxDimension when it
// exceeds it, keeping the aspect ratio. Smaller images are returned unchanged.
func TargetDimensions(w, h, maxDimension int) (int, int) {
	if maxDimension <= 0 || (w <= maxDimension && h <= maxDimension) {
		return w, h
	}
	if w >= h {
		return maxDimension, scaleSide(h, w, maxDimension)
	}
	return scaleSide(w, h, maxDimension), maxDimension
}

func scaleSide(small, large, maxDimension int) int {
	v := int(math.Round(float64(small) * float64(maxDimension) / float64(large)))
	if v < 1 {
		return 1
	}
	return v
}

// render draws img onto a white RGBA surface of the given size. The white
// background matches what a transparent source looks like once flattened to JPEG.
func render(img image.Image, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid surface %dx%d", ErrRender, width, height)
	}
	surface := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(surface, surface.Bounds(), image.White, image.Point{}, draw.Src)

	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		draw.Draw(surface, surface.Bounds(), img, b.Min, draw.Over)
	} else {
		draw.CatmullRom.Scale(surface, surface.Bounds(), img, b, draw.Over, nil)
	}
	return surface, nil
}

// encode runs the quality loop: 90, 80, ... down to 10.
func (n *Normalizer) encode(ctx context.Context, img image.Image, targetMaxBytes int64) ([]byte, int, int, error) {
	var (
		buf      bytes.Buffer
		best     []byte
		bestQ    int
		attempts int
		lastErr  error
	)
	targetMB := float64(targetMaxBytes) / MB

	for quality := startQuality; ; quality -= qualityStep {
		if err := ctx.Err(); err != nil {
			return nil, 0, attempts, err
		}

		attempts++
		buf.Reset()
		if err := n.encoder.Encode(&buf, img, quality); err != nil {
			lastErr = err
		} else if buf.Len() == 0 {
			lastErr = fmt.Errorf("empty output at quality %d", quality)
		} else {
			data := bytes.Clone(buf.Bytes())
			if best == nil || len(data) <= len(best) {
				best, bestQ = data, quality
			}
			if float64(len(data))/MB <= targetMB {
				return data, quality, attempts, nil
			}
		}

		if quality-qualityStep < qualityFloor {
			break
		}
	}

	if best == nil {
		return nil, 0, attempts, fmt.Errorf("%w: %v", ErrEncode, lastErr)
	}
	return best, bestQ, attempts, nil
}
