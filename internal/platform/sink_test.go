package platform

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/ytget/favicon-maker/internal/model"
)

func TestDirectorySink_Deliver(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	sink := NewDirectorySink(dir)
	asset := model.EncodedAsset{Name: "favicon.ico", Bytes: []byte{0, 0, 1, 0}, MIMEType: model.MIMETypeIcon}

	path, err := sink.Deliver(context.Background(), asset)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if path != filepath.Join(dir, "favicon.ico") {
		t.Errorf("Unexpected path %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read delivered file: %v", err)
	}
	if !bytes.Equal(data, asset.Bytes) {
		t.Error("Delivered content mismatch")
	}

	// Second delivery keeps the first file
	second, err := sink.Deliver(context.Background(), asset)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if second != filepath.Join(dir, "favicon (1).ico") {
		t.Errorf("Expected favicon (1).ico, got %s", second)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected 2 files and no leftovers, got %d", len(entries))
	}
}

func TestDirectorySink_Overwrite(t *testing.T) {
	dir := t.TempDir()
	sink := &DirectorySink{Dir: dir, Overwrite: true}

	if _, err := sink.Deliver(context.Background(), model.EncodedAsset{Name: "favicon32.png", Bytes: []byte("old")}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	path, err := sink.Deliver(context.Background(), model.EncodedAsset{Name: "favicon32.png", Bytes: []byte("new")})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "new" {
		t.Errorf("Expected overwritten content, got %q", data)
	}
}

func TestDirectorySink_InvalidName(t *testing.T) {
	sink := NewDirectorySink(t.TempDir())

	for _, name := range []string{"", "../favicon.ico", "icons/favicon.ico"} {
		if _, err := sink.Deliver(context.Background(), model.EncodedAsset{Name: name, Bytes: []byte{1}}); err == nil {
			t.Errorf("Expected error for name %q", name)
		}
	}
}

func TestDirectorySink_CancelledContext(t *testing.T) {
	sink := NewDirectorySink(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := sink.Deliver(ctx, model.EncodedAsset{Name: "favicon.ico", Bytes: []byte{1}}); err == nil {
		t.Error("Expected error for cancelled context")
	}
}

func TestDirectorySink_ConcurrentDeliveries(t *testing.T) {
	dir := t.TempDir()
	const workers = 16

	var wg sync.WaitGroup
	paths := make([]string, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			asset := model.EncodedAsset{
				Name:  "favicon32.png",
				Bytes: bytes.Repeat([]byte(fmt.Sprintf("worker-%02d;", i)), 64*1024),
			}
			paths[i], errs[i] = NewDirectorySink(dir).Deliver(context.Background(), asset)
		}()
	}
	wg.Wait()

	seen := make(map[string]int)
	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("Worker %d: expected no error, got %v", i, errs[i])
		}
		if prev, dup := seen[paths[i]]; dup {
			t.Fatalf("Workers %d and %d both delivered to %s", prev, i, paths[i])
		}
		seen[paths[i]] = i

		data, err := os.ReadFile(paths[i])
		if err != nil {
			t.Fatalf("Failed to read %s: %v", paths[i], err)
		}
		want := fmt.Sprintf("worker-%02d;", i)
		if !bytes.HasPrefix(data, []byte(want)) || len(data) != len(want)*64*1024 {
			t.Errorf("%s does not hold worker %d output", paths[i], i)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	if len(entries) != workers {
		t.Errorf("Expected %d files and no leftovers, got %d", workers, len(entries))
	}
}
