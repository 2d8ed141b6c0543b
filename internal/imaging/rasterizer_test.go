package imaging

import (
	"image"
	"testing"
)

func TestRasterize_Sizes(t *testing.T) {
	src := solidImage(10, 10, red)

	for _, size := range []int{16, 32, 64, 128} {
		dst, err := Rasterize(src, size)
		if err != nil {
			t.Fatalf("Rasterize(%d) returned error: %v", size, err)
		}
		if dst.Bounds() != image.Rect(0, 0, size, size) {
			t.Errorf("Rasterize(%d) bounds = %v", size, dst.Bounds())
		}
	}
}

func TestRasterize_SolidColorPreserved(t *testing.T) {
	dst, err := Rasterize(solidImage(10, 10, red), 32)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if !isNear(dst.At(x, y), red, 2) {
				t.Fatalf("Pixel (%d,%d) = %v, expected red", x, y, dst.At(x, y))
			}
		}
	}
}

func TestRasterize_StretchesNonSquare(t *testing.T) {
	// Left half blue, right half green; a letterboxed result would leave
	// transparent rows at the top and bottom.
	src := solidImage(200, 50, blue)
	for y := 0; y < 50; y++ {
		for x := 100; x < 200; x++ {
			src.Set(x, y, green)
		}
	}

	dst, err := Rasterize(src, 64)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if dst.Bounds().Dx() != 64 || dst.Bounds().Dy() != 64 {
		t.Fatalf("Expected 64x64, got %v", dst.Bounds())
	}

	for _, y := range []int{0, 31, 63} {
		if !isNear(dst.At(2, y), blue, 2) {
			t.Errorf("Pixel (2,%d) = %v, expected blue", y, dst.At(2, y))
		}
		if !isNear(dst.At(61, y), green, 2) {
			t.Errorf("Pixel (61,%d) = %v, expected green", y, dst.At(61, y))
		}
	}
}

func TestRasterize_Deterministic(t *testing.T) {
	src := solidImage(37, 19, blue)
	for y := 0; y < 19; y++ {
		src.Set(y, y, red)
	}

	a, err := Rasterize(src, 64)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	b, err := Rasterize(src, 64)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if string(a.Pix) != string(b.Pix) {
		t.Error("Rasterizing the same source twice produced different pixels")
	}
}

func TestRasterize_InvalidInput(t *testing.T) {
	if _, err := Rasterize(nil, 16); err == nil {
		t.Error("Expected error for nil source")
	}
	if _, err := Rasterize(solidImage(4, 4, red), 0); err == nil {
		t.Error("Expected error for zero size")
	}
	if _, err := Rasterize(solidImage(4, 4, red), -16); err == nil {
		t.Error("Expected error for negative size")
	}
	if _, err := Rasterize(image.NewRGBA(image.Rectangle{}), 16); err == nil {
		t.Error("Expected error for empty source")
	}
}
