package portfolio

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"

	"github.com/eringen/portfolio/probe"
)

const (
	maxImageWidth = 800
	jpegQuality   = 80
)

// MediaCandidates returns the ordered candidate paths for a media slot: the
// banner tries banners in order, the contact picture tries them reversed.
func MediaCandidates(banners []string, slot string) []string {
	switch slot {
	case "banner":
		return banners
	case "contact":
		reversed := make([]string, len(banners))
		for i, p := range banners {
			reversed[len(reversed)-1-i] = p
		}
		return reversed
	default:
		return nil
	}
}

// mediaSource returns the file backing a media slot.
func (a *App) mediaSource(ctx context.Context, slot string) (string, bool) {
	found := probe.FirstExisting(ctx, a.files, MediaCandidates(a.Config.BannerImages, slot), "")
	if found == "" {
		return "", false
	}
	return a.files.Path(found)
}

// processImage decodes an image, flattens it onto white, downscales it to
// maxImageWidth when wider, and encodes it as JPEG.
func processImage(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxImageWidth {
		w, h = maxImageWidth, h*maxImageWidth/w
	}

	// JPEG has no alpha channel; transparent areas would otherwise turn black.
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	if w == bounds.Dx() {
		draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Over)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// handleMedia serves /media/banner.jpg and /media/contact.jpg from the first
// local candidate that exists.
func (a *App) handleMedia(c echo.Context) error {
	slot, ok := strings.CutSuffix(c.Param("slot"), ".jpg")
	if !ok {
		return echo.ErrNotFound
	}
	src, ok := a.mediaSource(c.Request().Context(), slot)
	if !ok {
		return echo.ErrNotFound
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read media: %w", err)
	}
	out, err := processImage(data)
	if err != nil {
		return fmt.Errorf("media %s: %w", slot, err)
	}
	return c.Blob(http.StatusOK, "image/jpeg", out)
}

// handleHeadFile answers HEAD probes for files under /public/.
func (a *App) handleHeadFile(c echo.Context) error {
	if !a.files.Exists(c.Request().Context(), c.Request().URL.Path) {
		return echo.ErrNotFound
	}
	return c.NoContent(http.StatusOK)
}
