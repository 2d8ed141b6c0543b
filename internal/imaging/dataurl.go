package imaging

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DataURL encodes raw bytes as a base64 data URL
func DataURL(mimeType string, raw []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(raw))
}

// ParseDataURL splits a base64 data URL into its MIME type and payload
func ParseDataURL(dataURL string) (string, []byte, error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return "", nil, fmt.Errorf("not a data URL")
	}

	header, payload, found := strings.Cut(strings.TrimPrefix(dataURL, "data:"), ",")
	if !found {
		return "", nil, fmt.Errorf("data URL has no payload separator")
	}
	if !strings.HasSuffix(header, ";base64") {
		return "", nil, fmt.Errorf("only base64 data URLs are supported")
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode data URL payload: %w", err)
	}

	return strings.TrimSuffix(header, ";base64"), raw, nil
}
