package dataset

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// Write count gradient PNGs of the given size into dir.
func writeTestImages(t *testing.T, dir string, count, w, h int) {
	t.Helper()

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	for idx := 0; idx < count; idx++ {
		img := image.NewNRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				img.Set(x, y, color.NRGBA{
					R: uint8(255 * x / w),
					G: uint8(255 * y / h),
					B: uint8(40 * idx),
					A: 255,
				})
			}
		}

		f, err := os.Create(filepath.Join(dir, fmt.Sprintf("im%03d.png", idx)))
		if err != nil {
			t.Fatal(err)
		}
		err = png.Encode(f, img)
		f.Close()
		if err != nil {
			t.Fatal(err)
		}
	}
}

func TestListImages(t *testing.T) {
	dir := t.TempDir()
	writeTestImages(t, dir, 3, 4, 4)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0644); err != nil {
		t.Fatal(err)
	}

	paths, err := listImages(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 images; got %d", len(paths))
	}
	for idx, path := range paths {
		expName := fmt.Sprintf("im%03d.png", idx)
		if filepath.Base(path) != expName {
			t.Fatalf("expected lexical order with %s at index %d; got %s", expName, idx, filepath.Base(path))
		}
	}
}

func TestScaledImageDir(t *testing.T) {
	dir := t.TempDir()
	writeTestImages(t, filepath.Join(dir, "images"), 2, 8, 6)

	// No downsampling requested: the originals are used directly.
	plain, err := scaledImageDir(dir, 1)
	if err != nil {
		t.Fatal(err)
	}
	if plain != filepath.Join(dir, "images") {
		t.Fatalf("expected the originals dir for factor 1; got %s", plain)
	}

	scaled, err := scaledImageDir(dir, 2)
	if err != nil {
		t.Fatal(err)
	}
	if scaled != filepath.Join(dir, "images_2") {
		t.Fatalf("expected images_2 cache dir; got %s", scaled)
	}

	paths, err := listImages(scaled)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 downsampled images; got %d", len(paths))
	}

	img, err := DecodeImage(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Fatalf("expected 4x3 downsampled frames; got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestScaledImageDirNoSources(t *testing.T) {
	dir := t.TempDir()
	if _, err := scaledImageDir(dir, 2); err == nil {
		t.Fatal("expected an error when the originals are missing")
	}
	if _, err := os.Stat(filepath.Join(dir, "images_2")); !os.IsNotExist(err) {
		t.Fatal("expected the partial cache dir to be cleaned up")
	}
}

func TestFloats(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{R: 255, G: 0, B: 51, A: 255})
	img.Set(1, 0, color.NRGBA{R: 0, G: 102, B: 0, A: 128})

	samples := Floats(img)
	if len(samples) != 6 {
		t.Fatalf("expected 6 samples for a 2x1 frame; got %d", len(samples))
	}

	exp := []float32{1, 0, 51.0 / 255, 0, 102.0 / 255, 0}
	for idx := range exp {
		if diff := samples[idx] - exp[idx]; diff > 1e-6 || diff < -1e-6 {
			t.Fatalf("expected sample %d to be %g; got %g", idx, exp[idx], samples[idx])
		}
	}
}
