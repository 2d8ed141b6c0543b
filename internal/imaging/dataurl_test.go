package imaging

import (
	"bytes"
	"testing"
)

func TestDataURL_RoundTrip(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff}

	dataURL := DataURL("image/png", raw)
	if dataURL != "data:image/png;base64,iVBORwD/" {
		t.Errorf("Unexpected data URL: %s", dataURL)
	}

	mimeType, decoded, err := ParseDataURL(dataURL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if mimeType != "image/png" {
		t.Errorf("Expected image/png, got %s", mimeType)
	}
	if !bytes.Equal(decoded, raw) {
		t.Errorf("Expected %v, got %v", raw, decoded)
	}
}

func TestParseDataURL_Invalid(t *testing.T) {
	tests := []string{
		"",
		"https://example.com/favicon.ico",
		"data:image/png;base64",
		"data:image/png,plain-text-payload",
		"data:image/png;base64,!!!not-base64!!!",
	}

	for _, input := range tests {
		if _, _, err := ParseDataURL(input); err == nil {
			t.Errorf("ParseDataURL(%q) expected error, got nil", input)
		}
	}
}
