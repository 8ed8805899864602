package icondemo

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
)

var (
	// ErrDecode reports a source that could not be read as a PNG image.
	ErrDecode = errors.New("could not load")
	// ErrContext reports that no drawing surface could be set up for the image.
	ErrContext = errors.New("could not create drawing context")
	// ErrEncode reports a composite that could not be encoded as PNG.
	ErrEncode = errors.New("could not encode")
)

// Decode reads a PNG image from r. Other formats are rejected.
func Decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if format != "png" {
		return nil, fmt.Errorf("%w: unsupported format %q", ErrDecode, format)
	}
	return img, nil
}

// EncodePNG writes the provided image to the writer as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return nil
}

// RenderBytes decodes PNG bytes, applies the demo banner with the default
// engine and returns the result encoded as PNG.
func RenderBytes(data []byte) ([]byte, error) {
	return defaultEngineInstance().RenderBytes(data)
}

// RenderBytes is the byte-slice variant of Render.
func (e *Engine) RenderBytes(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty image data", ErrDecode)
	}

	img, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	out, err := e.Render(img)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
