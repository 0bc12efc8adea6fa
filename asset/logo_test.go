package asset

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writePNG(t *testing.T, path string, c color.Color) {
	t.Helper()
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			src.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("Failed to encode png: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("Failed to write png: %v", err)
	}
}

func TestDecode_ScalesAndClips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	writePNG(t, path, color.RGBA{R: 255, A: 255})

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open: %v", err)
	}
	defer f.Close()

	img, err := Decode(f, 50)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Bounds().Dx() != 50 || img.Bounds().Dy() != 50 {
		t.Fatalf("Expected 50x50, got %v", img.Bounds())
	}

	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Errorf("Expected transparent corner, got alpha %d", a)
	}
	r, _, _, a := img.At(25, 25).RGBA()
	// Resampling may round a hair below full intensity
	if a < 0xf000 || r < 0xf000 {
		t.Errorf("Expected opaque red center, got r=%d a=%d", r, a)
	}
}

func TestDecode_RejectsGarbage(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("not an image")), 10); err == nil {
		t.Error("Expected decode error")
	}
}

func TestLogo_MissingFile(t *testing.T) {
	l := NewLogo(filepath.Join(t.TempDir(), "missing.png"), 50)
	if err := l.LoadSync(); err == nil {
		t.Error("Expected error for missing file")
	}
	if l.Logo() != nil {
		t.Error("Expected nil image after failed load")
	}
	select {
	case <-l.Ready():
		t.Error("Expected no ready signal after failure")
	default:
	}
}

func TestLogo_LoadSignalsReady(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	writePNG(t, path, color.RGBA{B: 255, A: 255})

	l := NewLogo(path, 50)
	l.Load()

	select {
	case <-l.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for logo")
	}
	if l.Logo() == nil {
		t.Error("Expected image after ready")
	}
}

func TestLogo_WatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logo.png")
	writePNG(t, path, color.RGBA{G: 255, A: 255})

	l := NewLogo(path, 20)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- l.Watch(ctx) }()

	// Give the watcher time to register before touching the file
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	for l.Logo() == nil {
		select {
		case <-tick.C:
			writePNG(t, path, color.RGBA{G: 255, A: 255})
		case <-deadline:
			t.Fatal("Timed out waiting for reload")
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Error("Watch did not stop on cancel")
	}
}
