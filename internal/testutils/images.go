package testutils

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math/rand"
)

// MinimalPNG returns a valid 1x1 PNG.
func MinimalPNG() []byte {
	return PNG(1, 1)
}

// PNG returns a PNG of the given size filled with a gradient.
func PNG(w, h int) []byte {
	var buf bytes.Buffer
	_ = png.Encode(&buf, gradient(w, h))
	return buf.Bytes()
}

// JPEG returns a JPEG of the given size at the given quality.
func JPEG(w, h, quality int) []byte {
	var buf bytes.Buffer
	_ = jpeg.Encode(&buf, gradient(w, h), &jpeg.Options{Quality: quality})
	return buf.Bytes()
}

// NoisyJPEG returns a JPEG full of random noise, which compresses poorly and
// is useful for pushing an encoder past a size target.
func NoisyJPEG(w, h int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	rng.Read(img.Pix)
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	var buf bytes.Buffer
	_ = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95})
	return buf.Bytes()
}

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	return img
}
