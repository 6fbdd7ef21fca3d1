package imageproc

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"fitness-platform-api/internal/domain/media"
)

// Constraints bound the output raster. Sharpen is the strength of the
// post-resample sharpening pass; zero disables it.
type Constraints struct {
	MaxWidth  int
	MaxHeight int
	Sharpen   float64
}

type Processor struct {
	log *zap.Logger
}

func NewProcessor(log *zap.Logger) *Processor {
	return &Processor{log: log}
}

// Normalize decodes raw upload bytes and produces a bounded raster.
// Downscale only: an image already within the bounds keeps its dimensions.
// Aspect ratio is preserved; resampling uses Lanczos.
func (p *Processor) Normalize(data []byte, c Constraints) (*image.NRGBA, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", media.ErrDecode, err)
	}
	switch format {
	case "jpeg", "png":
	default:
		return nil, fmt.Errorf("%w: %s", media.ErrUnsupportedFormat, format)
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	var out *image.NRGBA
	if w <= c.MaxWidth && h <= c.MaxHeight {
		out = imaging.Clone(src)
	} else {
		out = imaging.Fit(src, c.MaxWidth, c.MaxHeight, imaging.Lanczos)
	}

	if c.Sharpen > 0 {
		out = imaging.Sharpen(out, c.Sharpen)
	}

	nb := out.Bounds()
	p.log.Debug("image normalized",
		zap.String("format", format),
		zap.Int("src_width", w),
		zap.Int("src_height", h),
		zap.Int("width", nb.Dx()),
		zap.Int("height", nb.Dy()))

	return out, nil
}

// EncodeWebP compresses a normalized raster. Same raster and quality
// always produce the same bytes.
func (p *Processor) EncodeWebP(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: float32(quality)}); err != nil {
		return nil, fmt.Errorf("webp encode: %w", err)
	}
	return buf.Bytes(), nil
}
