package icondemo

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const fontDPI = 72

// Engine holds the parsed label font and composites demo banners.
type Engine struct {
	fontData []byte

	fontOnce sync.Once
	font     *opentype.Font
	fontErr  error
}

// NewEngine constructs an Engine that lazily parses the Go Bold font.
func NewEngine() *Engine {
	return &Engine{fontData: gobold.TTF}
}

var defaultEngine struct {
	once sync.Once
	eng  *Engine
}

func defaultEngineInstance() *Engine {
	defaultEngine.once.Do(func() {
		defaultEngine.eng = NewEngine()
	})
	return defaultEngine.eng
}

// Render applies the default engine to the provided image.
func Render(img image.Image) (*image.RGBA, error) {
	return defaultEngineInstance().Render(img)
}

// Render composites the demo banner onto img. The band is clipped to the
// source alpha; the label is drawn afterwards and is not. The result has the
// same dimensions as img, anchored at the origin.
func (e *Engine) Render(img image.Image) (*image.RGBA, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image provided", ErrContext)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid image dimensions %dx%d", ErrContext, width, height)
	}

	geom := BannerGeometry(width, height)

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), img, bounds.Min, draw.Src)
	fillBand(canvas, geom)

	out := clipToAlpha(canvas, img)
	if err := e.drawLabel(out, geom); err != nil {
		return nil, err
	}

	return out, nil
}

// fillBand paints the banner across the full width. Fractional band edges
// are anti-aliased.
func fillBand(dst *image.RGBA, geom Geometry) {
	top := float32(geom.BandTop())
	bottom := float32(geom.BandBottom())
	w := float32(geom.Width)

	z := vector.NewRasterizer(geom.Width, geom.Height)
	z.MoveTo(0, top)
	z.LineTo(w, top)
	z.LineTo(w, bottom)
	z.LineTo(0, bottom)
	z.ClosePath()
	z.Draw(dst, dst.Bounds(), image.NewUniform(BannerColor), image.Point{})
}

// clipToAlpha returns canvas with every pixel scaled by the alpha of the
// corresponding pixel in mask.
func clipToAlpha(canvas *image.RGBA, mask image.Image) *image.RGBA {
	out := image.NewRGBA(canvas.Bounds())
	draw.DrawMask(out, out.Bounds(), canvas, image.Point{}, mask, mask.Bounds().Min, draw.Src)
	return out
}

func (e *Engine) drawLabel(dst *image.RGBA, geom Geometry) error {
	f, err := e.labelFont()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrContext, err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    geom.FontSize,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("%w: create font face: %v", ErrContext, err)
	}
	defer face.Close()

	metrics := face.Metrics()
	textWidth := fixedToFloat(font.MeasureString(face, BannerText))
	textHeight := fixedToFloat(metrics.Ascent + metrics.Descent)
	x, y := geom.TextOrigin(textWidth, textHeight)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: face,
		Dot: fixed.Point26_6{
			X: floatToFixed(x),
			Y: floatToFixed(y) + metrics.Ascent,
		},
	}
	d.DrawString(BannerText)

	return nil
}

// labelFont lazily parses and caches the label font.
func (e *Engine) labelFont() (*opentype.Font, error) {
	e.fontOnce.Do(func() {
		e.font, e.fontErr = opentype.Parse(e.fontData)
		if e.fontErr != nil {
			e.fontErr = fmt.Errorf("parse label font: %w", e.fontErr)
		}
	})
	return e.font, e.fontErr
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
