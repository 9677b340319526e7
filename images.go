package ghostblog

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
)

const (
	placeholderWidth  = 1200
	placeholderHeight = 675
	jpegQuality       = 80
)

// placeholderJPEG renders the cover used for posts without a feature
// image: a soft diagonal gradient, upscaled from a 2x2 seed.
func placeholderJPEG(w, h int) ([]byte, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid placeholder size %dx%d", w, h)
	}

	seed := image.NewRGBA(image.Rect(0, 0, 2, 2))
	seed.Set(0, 0, color.RGBA{0xf4, 0xf4, 0xf5, 0xff})
	seed.Set(1, 0, color.RGBA{0xe4, 0xe4, 0xe7, 0xff})
	seed.Set(0, 1, color.RGBA{0xe4, 0xe4, 0xe7, 0xff})
	seed.Set(1, 1, color.RGBA{0xd4, 0xd4, 0xd8, 0xff})

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), seed, seed.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func (a *App) handlePlaceholder(c echo.Context) error {
	return c.Blob(http.StatusOK, "image/jpeg", a.placeholder)
}
