package picker

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/contrastpick/internal/util"
)

const (
	pngPadding    = 16
	pngLineHeight = 16
	// DefaultPNGWidth is the image width used when none is given.
	DefaultPNGWidth = 480
)

// PNGRenderer draws the preview as a PNG image: the sample text in the
// foreground colour on a background-filled panel with a 1px black border.
type PNGRenderer struct {
	Width int
}

// Render implements Renderer.
func (r *PNGRenderer) Render(w io.Writer, v View, text string) error {
	img, err := r.Image(v, text)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// Image draws the preview without encoding it.
func (r *PNGRenderer) Image(v View, text string) (*image.RGBA, error) {
	width := r.Width
	if width <= 0 {
		width = DefaultPNGWidth
	}

	face := basicfont.Face7x13
	charWidth := face.Advance
	columns := (width - 2*pngPadding) / charWidth
	if columns < 1 {
		return nil, fmt.Errorf("image width %d is too narrow for text", width)
	}

	lines := util.WrapText(text, columns)
	height := 2*pngPadding + len(lines)*pngLineHeight

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(v.Background.RGBA()), image.Point{}, draw.Src)
	drawBorder(img)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(v.Foreground.RGB().RGBA()),
		Face: face,
	}
	for i, line := range lines {
		drawer.Dot = fixed.P(pngPadding, pngPadding+face.Ascent+i*pngLineHeight)
		drawer.DrawString(line)
	}

	return img, nil
}

func drawBorder(img *image.RGBA) {
	b := img.Bounds()
	black := image.Black
	for x := b.Min.X; x < b.Max.X; x++ {
		img.Set(x, b.Min.Y, black)
		img.Set(x, b.Max.Y-1, black)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		img.Set(b.Min.X, y, black)
		img.Set(b.Max.X-1, y, black)
	}
}
