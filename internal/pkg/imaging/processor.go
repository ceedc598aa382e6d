package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// ProcessedImage contains the web and thumbnail variants of a gallery image
type ProcessedImage struct {
	Web         []byte
	Thumbnail   []byte
	ContentType string
	Width       int
	Height      int
}

// Config for gallery image processing
type Config struct {
	MaxWidth    int // Max width for the web variant
	MaxHeight   int // Max height for the web variant
	ThumbWidth  int // Thumbnail width
	ThumbHeight int // Thumbnail height
	Quality     int // JPEG quality 1-100
}

// DefaultConfig returns default processing config
func DefaultConfig() Config {
	return Config{
		MaxWidth:    1920,
		MaxHeight:   1280,
		ThumbWidth:  600,
		ThumbHeight: 400,
		Quality:     85,
	}
}

// Processor resizes gallery uploads and cuts thumbnails
type Processor struct {
	config Config
}

// NewProcessor creates image processor
func NewProcessor(config Config) *Processor {
	return &Processor{config: config}
}

// Process decodes an upload, bounds it to the web size and cuts a thumbnail
func (p *Processor) Process(reader io.Reader) (*ProcessedImage, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	result := &ProcessedImage{
		ContentType: mimeFromFormat(format),
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
	}

	resized := img
	if result.Width > p.config.MaxWidth || result.Height > p.config.MaxHeight {
		resized = imaging.Fit(img, p.config.MaxWidth, p.config.MaxHeight, imaging.Lanczos)
		result.Width = resized.Bounds().Dx()
		result.Height = resized.Bounds().Dy()
	}

	web, err := p.encode(resized, format)
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	result.Web = web

	// Center-cropped thumbnail for the gallery grid
	thumb := imaging.Fill(img, p.config.ThumbWidth, p.config.ThumbHeight, imaging.Center, imaging.Lanczos)

	thumbnail, err := p.encode(thumb, format)
	if err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	result.Thumbnail = thumbnail

	return result, nil
}

// ValidateType checks if a filename carries a supported image extension
func ValidateType(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png":
		return true
	default:
		return false
	}
}

// MaxFileSize in bytes (10MB)
const MaxFileSize int64 = 10 * 1024 * 1024

func (p *Processor) encode(img image.Image, format string) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, err
		}
	default:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.config.Quality}); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

func mimeFromFormat(format string) string {
	switch format {
	case "png":
		return "image/png"
	default:
		return "image/jpeg"
	}
}

// GenerateKeys returns storage keys for the web and thumbnail variants
func GenerateKeys(id, filename string) (web, thumb string) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".png" {
		ext = ".jpg"
	}

	web = fmt.Sprintf("gallery/%s%s", id, ext)
	thumb = fmt.Sprintf("gallery/%s_thumb%s", id, ext)

	return
}
