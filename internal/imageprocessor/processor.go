package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// ImageSize names a bounding box for resized output.
type ImageSize struct {
	Name   string
	Width  int
	Height int
}

var (
	// SizeAvatar bounds profile pictures.
	SizeAvatar = ImageSize{Name: "avatar", Width: 400, Height: 400}
	// SizePetPhoto bounds pet profile photos.
	SizePetPhoto = ImageSize{Name: "pet_photo", Width: 800, Height: 800}
)

// Processor resizes and re-encodes uploaded images.
type Processor struct {
	quality int // JPEG quality (1-100)
}

func NewProcessor(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{
		quality: quality,
	}
}

// ProcessImage decodes, resizes to fit the size box, and re-encodes.
func (p *Processor) ProcessImage(reader io.Reader, size ImageSize) (io.Reader, string, error) {
	img, imgFormat, err := image.Decode(reader)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	resized := p.resize(img, size.Width, size.Height)

	var buf bytes.Buffer
	switch imgFormat {
	case "png":
		if err := png.Encode(&buf, resized); err != nil {
			return nil, "", fmt.Errorf("failed to encode PNG: %w", err)
		}
		return &buf, "image/png", nil
	default:
		// Everything else is re-encoded as JPEG.
		if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: p.quality}); err != nil {
			return nil, "", fmt.Errorf("failed to encode JPEG: %w", err)
		}
		return &buf, "image/jpeg", nil
	}
}

// resize scales down to fit maxWidth x maxHeight, keeping aspect ratio.
func (p *Processor) resize(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxWidth && height <= maxHeight {
		return img
	}

	ratio := float64(width) / float64(height)
	newWidth := maxWidth
	newHeight := maxHeight

	if float64(maxWidth)/float64(maxHeight) > ratio {
		newWidth = int(float64(maxHeight) * ratio)
	} else {
		newHeight = int(float64(maxWidth) / ratio)
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst
}

// IsValidImage reports whether the reader contains a decodable image.
func IsValidImage(reader io.Reader) bool {
	_, _, err := image.Decode(reader)
	return err == nil
}
