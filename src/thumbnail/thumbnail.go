package thumbnail

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/math/fixed"
)

const (
	default_width     = 1280
	default_height    = 720
	default_font_size = 72
	margin            = 64
)

// Renderer draws title cards used as custom video thumbnails.
type Renderer struct {
	Width      int
	Height     int
	FontSize   float64
	Background color.Color
	Foreground color.Color

	ttf *truetype.Font
}

func New() (*Renderer, error) {
	ttf, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		Width:      default_width,
		Height:     default_height,
		FontSize:   default_font_size,
		Background: color.RGBA{24, 24, 24, 255},
		Foreground: color.RGBA{255, 255, 255, 255},
		ttf:        ttf,
	}, nil
}

// Render returns a PNG with title wrapped and centered on a plain background.
func (r *Renderer) Render(title string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)

	face := truetype.NewFace(r.ttf, &truetype.Options{
		Size:    r.FontSize,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	defer face.Close()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(r.Foreground),
		Face: face,
	}

	lines := wrap(d, title, fixed.I(r.Width-2*margin))
	lineHeight := face.Metrics().Height.Ceil()
	top := (r.Height-lineHeight*len(lines))/2 + face.Metrics().Ascent.Ceil()
	for i, line := range lines {
		width := d.MeasureString(line).Ceil()
		d.Dot = fixed.Point26_6{
			X: fixed.I((r.Width - width) / 2),
			Y: fixed.I(top + i*lineHeight),
		}
		d.DrawString(line)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// wrap breaks text into lines no wider than maxWidth. A single word wider
// than maxWidth gets a line of its own.
func wrap(d *font.Drawer, text string, maxWidth fixed.Int26_6) []string {
	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if current != "" && d.MeasureString(candidate) > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
