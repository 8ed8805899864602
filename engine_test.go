package icondemo

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"
)

// halfOpaque returns a size x size image whose left half is opaque white and
// whose right half is fully transparent.
func halfOpaque(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, image.Rect(0, 0, size/2, size), image.White, image.Point{}, draw.Src)
	return img
}

func TestRenderPreservesDimensions(t *testing.T) {
	cases := []image.Rectangle{
		image.Rect(0, 0, 16, 16),
		image.Rect(0, 0, 120, 80),
		image.Rect(10, 10, 50, 40),
	}

	engine := NewEngine()
	for _, r := range cases {
		src := image.NewNRGBA(r)
		draw.Draw(src, r, image.White, image.Point{}, draw.Src)

		out, err := engine.Render(src)
		if err != nil {
			t.Fatalf("Render %v: %v", r, err)
		}
		if out.Bounds().Dx() != r.Dx() || out.Bounds().Dy() != r.Dy() {
			t.Fatalf("Render %v: got bounds %v", r, out.Bounds())
		}
	}
}

func TestRenderRejectsDegenerateImage(t *testing.T) {
	_, err := NewEngine().Render(image.NewRGBA(image.Rect(0, 0, 0, 10)))
	if !errors.Is(err, ErrContext) {
		t.Fatalf("expected ErrContext, got %v", err)
	}

	_, err = NewEngine().Render(nil)
	if !errors.Is(err, ErrContext) {
		t.Fatalf("expected ErrContext for nil image, got %v", err)
	}
}

func TestRenderBandIsClippedToSourceAlpha(t *testing.T) {
	const size = 200
	src := halfOpaque(size)

	out, err := NewEngine().Render(src)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	geom := BannerGeometry(size, size)
	bandTop := int(geom.BandTop())
	bandBottom := int(geom.BandBottom()) + 1

	// Outside the band nothing but the source is drawn.
	for y := 0; y < size; y++ {
		if y >= bandTop && y < bandBottom {
			continue
		}
		for x := size / 2; x < size; x++ {
			if a := out.RGBAAt(x, y).A; a != 0 {
				t.Fatalf("pixel (%d,%d) alpha %d outside silhouette", x, y, a)
			}
		}
	}

	// Near the band's top edge the label has not started yet.
	row := bandTop + 2
	for x := size / 2; x < size; x++ {
		if a := out.RGBAAt(x, row).A; a != 0 {
			t.Fatalf("band pixel (%d,%d) alpha %d outside silhouette", x, row, a)
		}
	}

	got := out.RGBAAt(4, row)
	if got.A != 0xff {
		t.Fatalf("band over opaque pixel has alpha %d, want 255", got.A)
	}
	if got.R < 200 || got.G > 80 || got.B > 80 {
		t.Fatalf("band over white = %v, want red tint", got)
	}

	if above := out.RGBAAt(4, bandTop-2); above != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Fatalf("pixel above band = %v, want untouched white", above)
	}
}

func TestRenderDrawsWhiteLabelInBand(t *testing.T) {
	const size = 200
	src := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(src, src.Bounds(), image.NewUniform(color.NRGBA{R: 10, G: 40, B: 90, A: 0xff}), image.Point{}, draw.Src)

	out, err := NewEngine().Render(src)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	geom := BannerGeometry(size, size)
	minX, maxX := size, -1
	for y := int(geom.BandTop()); y < int(geom.BandBottom()); y++ {
		for x := 0; x < size; x++ {
			c := out.RGBAAt(x, y)
			if c.R == 0xff && c.G == 0xff && c.B == 0xff {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
			}
		}
	}

	if maxX < 0 {
		t.Fatalf("no white label pixels found in band")
	}
	// Roughly centered: the ink extents mirror each other within a few pixels.
	if diff := minX - (size - 1 - maxX); diff < -6 || diff > 6 {
		t.Fatalf("label ink spans [%d,%d], not centered", minX, maxX)
	}
}

func TestRenderLabelIsNotClipped(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 64, 64))

	out, err := NewEngine().Render(src)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	visible := 0
	for _, a := range alphaChannel(out) {
		if a != 0 {
			visible++
		}
	}
	if visible == 0 {
		t.Fatalf("expected floating label pixels on a transparent icon")
	}
}

func TestRenderBytesIsDeterministic(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, halfOpaque(96)); err != nil {
		t.Fatalf("encode source: %v", err)
	}

	first, err := RenderBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("RenderBytes: %v", err)
	}
	second, err := RenderBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("RenderBytes: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatalf("RenderBytes output differs between runs")
	}
}

func TestRenderBytesRejectsInvalidInput(t *testing.T) {
	cases := map[string][]byte{
		"empty":   nil,
		"garbage": []byte("not a png at all"),
	}

	for name, data := range cases {
		if _, err := RenderBytes(data); !errors.Is(err, ErrDecode) {
			t.Errorf("%s: expected ErrDecode, got %v", name, err)
		}
	}
}

func alphaChannel(img *image.RGBA) []uint8 {
	alpha := make([]uint8, 0, len(img.Pix)/4)
	for i := 3; i < len(img.Pix); i += 4 {
		alpha = append(alpha, img.Pix[i])
	}
	return alpha
}
