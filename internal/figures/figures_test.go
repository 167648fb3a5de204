package figures

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

func TestSavePNG(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 4, 4))
	m.Set(1, 2, color.RGBA{R: 255, A: 255})
	path := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(m, path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bounds() != m.Bounds() {
		t.Errorf("bounds %v, want %v", got.Bounds(), m.Bounds())
	}
}

func TestSavePNGBadPath(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 1, 1))
	if err := SavePNG(m, filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("no error for unwritable path")
	}
}

func TestMonitorCounter(t *testing.T) {
	progress := Monitor(3)
	for i := 0; i < 3; i++ {
		atomic.AddUint64(progress, 1)
	}
	if got := atomic.LoadUint64(progress); got != 3 {
		t.Errorf("progress = %d, want 3", got)
	}
}
