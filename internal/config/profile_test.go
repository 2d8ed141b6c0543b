package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "favicon.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write profile: %v", err)
	}
	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeProfile(t, `
output_dir: ./public
timeout_seconds: 10
bundle: false
overwrite: true
sizes: [128, 16]
`)

	p, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if p.OutputDir != "./public" {
		t.Errorf("Expected output_dir ./public, got %s", p.OutputDir)
	}
	if p.Timeout() != 10*time.Second {
		t.Errorf("Expected 10s timeout, got %s", p.Timeout())
	}
	if p.Bundle || !p.Overwrite {
		t.Errorf("Unexpected flags: bundle=%v overwrite=%v", p.Bundle, p.Overwrite)
	}

	// Specs follow list order, not the order in the file
	specs := p.Specs()
	if len(specs) != 2 || specs[0].TargetSize != 16 || specs[1].TargetSize != 128 {
		t.Errorf("Expected specs for 16 and 128, got %+v", specs)
	}
}

func TestLoadProfile_Defaults(t *testing.T) {
	p, err := LoadProfile(writeProfile(t, "overwrite: true\n"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	defaults := DefaultProfile()
	if p.OutputDir != defaults.OutputDir || p.TimeoutSeconds != defaults.TimeoutSeconds || p.Bundle != defaults.Bundle {
		t.Errorf("Expected defaults to survive, got %+v", p)
	}
	if len(p.Specs()) != 4 {
		t.Errorf("Expected all 4 specs, got %d", len(p.Specs()))
	}
}

func TestLoadProfile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"bad yaml", "output_dir: [", "failed to parse profile"},
		{"empty dir", "output_dir: \"\"\n", "output_dir is required"},
		{"timeout too large", "timeout_seconds: 900\n", "timeout_seconds must be between"},
		{"unsupported size", "sizes: [48]\n", "unsupported size 48"},
	}

	for _, test := range tests {
		_, err := LoadProfile(writeProfile(t, test.content))
		if err == nil || !strings.Contains(err.Error(), test.errPart) {
			t.Errorf("%s: expected error containing %q, got %v", test.name, test.errPart, err)
		}
	}

	if _, err := LoadProfile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
