package imaging

import (
	"bytes"
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strings"

	ico "github.com/sergeymakinen/go-ico"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/ytget/favicon-maker/internal/model"
)

// Decoder names reported in SourceImage.Format
const (
	FormatNameICO = "ico"
)

// icoMagic is the ICONDIR header of an icon file (reserved=0, type=1)
var icoMagic = []byte{0x00, 0x00, 0x01, 0x00}

// AcceptedExtensions lists the file extensions the file picker offers
var AcceptedExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".ico"}

type decodeResult struct {
	img    image.Image
	format string
	err    error
}

// Decode turns raw upload bytes into a SourceImage. mimeType is the declared
// type of the upload; when empty it is sniffed from the content. Decoding runs
// in its own goroutine so a cancelled ctx releases the caller immediately.
func Decode(ctx context.Context, raw []byte, mimeType string) (*model.SourceImage, error) {
	if len(raw) == 0 {
		return nil, &DecodeError{MIMEType: mimeType, Err: ErrEmptyInput}
	}

	mimeType = resolveMIMEType(mimeType, raw)
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, &DecodeError{MIMEType: mimeType, Err: ErrNotAnImage}
	}

	done := make(chan decodeResult, 1)
	go func() {
		img, format, err := decodeImage(raw)
		done <- decodeResult{img: img, format: format, err: err}
	}()

	var res decodeResult
	select {
	case <-ctx.Done():
		return nil, &DecodeError{MIMEType: mimeType, Err: ctx.Err()}
	case res = <-done:
	}

	if res.err != nil {
		return nil, &DecodeError{MIMEType: mimeType, Err: res.err}
	}

	bounds := res.img.Bounds()
	if bounds.Empty() {
		return nil, &DecodeError{MIMEType: mimeType, Err: ErrEmptyImage}
	}

	return &model.SourceImage{
		Image:    res.img,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Format:   res.format,
		MIMEType: mimeType,
		DataURL:  DataURL(mimeType, raw),
	}, nil
}

// decodeImage picks the icon decoder for ICO payloads and the registered
// image decoders for everything else
func decodeImage(raw []byte) (image.Image, string, error) {
	if bytes.HasPrefix(raw, icoMagic) {
		img, err := ico.Decode(bytes.NewReader(raw))
		return img, FormatNameICO, err
	}
	return image.Decode(bytes.NewReader(raw))
}

// resolveMIMEType normalizes the declared type, falling back to sniffing
func resolveMIMEType(declared string, raw []byte) string {
	declared = strings.ToLower(strings.TrimSpace(declared))
	if i := strings.IndexByte(declared, ';'); i >= 0 {
		declared = strings.TrimSpace(declared[:i])
	}
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}

	sniffed := http.DetectContentType(raw)
	if i := strings.IndexByte(sniffed, ';'); i >= 0 {
		sniffed = sniffed[:i]
	}
	return sniffed
}
