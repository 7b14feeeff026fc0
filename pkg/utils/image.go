package utils

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// FrameToImage converts a row major ARGB framebuffer of the given
// width into an image.
func FrameToImage(frame []uint32, width int) *image.RGBA {
	height := len(frame) / width
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := frame[y*width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(c >> 16),
				G: uint8(c >> 8),
				B: uint8(c),
				A: uint8(c >> 24),
			})
		}
	}
	return img
}

// ScaleImage scales img by factor, keeping the pixels sharp.
func ScaleImage(img image.Image, factor int) image.Image {
	factor = Clamp(1, factor, 16)
	if factor == 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// SaveImage encodes img to filename, choosing the format from the
// extension (.png or .bmp).
func SaveImage(img image.Image, filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".png" && ext != ".bmp" {
		return errors.Errorf("unsupported image format %q", ext)
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if ext == ".bmp" {
		err = bmp.Encode(file, img)
	} else {
		err = png.Encode(file, img)
	}
	return errors.Wrapf(err, "encoding %s", filename)
}

// FrameHash returns the xxhash of a framebuffer, used to compare
// rendered frames against known good output.
func FrameHash(frame []uint32) uint64 {
	b := make([]byte, len(frame)*4)
	for i, c := range frame {
		b[i*4] = uint8(c >> 24)
		b[i*4+1] = uint8(c >> 16)
		b[i*4+2] = uint8(c >> 8)
		b[i*4+3] = uint8(c)
	}
	return xxhash.Sum64(b)
}
