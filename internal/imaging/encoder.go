package imaging

import (
	"bytes"
	"context"
	"image"
	"image/png"

	ico "github.com/sergeymakinen/go-ico"

	"github.com/ytget/favicon-maker/internal/model"
)

// Encoder serializes a raster surface into one image container
type Encoder interface {
	Format() model.Format
	MIMEType() string
	Encode(img image.Image) ([]byte, error)
}

// PNGEncoder encodes rasters as PNG with the best compression level
type PNGEncoder struct{}

func (e *PNGEncoder) Format() model.Format { return model.FormatRaster }
func (e *PNGEncoder) MIMEType() string     { return model.FormatRaster.MIMEType() }

func (e *PNGEncoder) Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ICOEncoder encodes rasters as single-image .ico files
type ICOEncoder struct{}

func (e *ICOEncoder) Format() model.Format { return model.FormatIcon }
func (e *ICOEncoder) MIMEType() string     { return model.FormatIcon.MIMEType() }

func (e *ICOEncoder) Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := ico.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var encoders = map[model.Format]Encoder{
	model.FormatIcon:   &ICOEncoder{},
	model.FormatRaster: &PNGEncoder{},
}

// EncoderFor returns the encoder registered for format
func EncoderFor(format model.Format) (Encoder, error) {
	enc, ok := encoders[format]
	if !ok {
		return nil, &EncodeError{Format: format, Err: ErrUnsupportedFormat}
	}
	return enc, nil
}

// Encode serializes surface in the given format and names the result
func Encode(ctx context.Context, surface image.Image, format model.Format, name string) (model.EncodedAsset, error) {
	enc, err := EncoderFor(format)
	if err != nil {
		return model.EncodedAsset{}, &EncodeError{Format: format, Name: name, Err: ErrUnsupportedFormat}
	}
	return EncodeWith(ctx, enc, surface, name)
}

// EncodeWith runs enc in its own goroutine and waits for the blob or ctx
func EncodeWith(ctx context.Context, enc Encoder, surface image.Image, name string) (model.EncodedAsset, error) {
	type encodeResult struct {
		data []byte
		err  error
	}

	if surface == nil || surface.Bounds().Empty() {
		return model.EncodedAsset{}, &EncodeError{Format: enc.Format(), Name: name, Err: ErrEmptyImage}
	}

	done := make(chan encodeResult, 1)
	go func() {
		data, err := enc.Encode(surface)
		done <- encodeResult{data: data, err: err}
	}()

	var res encodeResult
	select {
	case <-ctx.Done():
		return model.EncodedAsset{}, &EncodeError{Format: enc.Format(), Name: name, Err: ctx.Err()}
	case res = <-done:
	}

	if res.err != nil {
		return model.EncodedAsset{}, &EncodeError{Format: enc.Format(), Name: name, Err: res.err}
	}
	if len(res.data) == 0 {
		return model.EncodedAsset{}, &EncodeError{Format: enc.Format(), Name: name, Err: ErrEmptyOutput}
	}

	return model.EncodedAsset{
		Name:     name,
		Bytes:    res.data,
		MIMEType: enc.MIMEType(),
	}, nil
}
