package asset

import (
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/lixenwraith/balloon/core"
)

// Logo is the ball image, decoded off the loop goroutine and published atomically
type Logo struct {
	path     string
	diameter int

	img   atomic.Pointer[image.RGBA]
	ready chan struct{}
}

// NewLogo prepares a logo scaled to a square of diameter pixels
func NewLogo(path string, diameter int) *Logo {
	if diameter < 1 {
		diameter = 1
	}
	return &Logo{
		path:     path,
		diameter: diameter,
		ready:    make(chan struct{}, 1),
	}
}

// Path returns the source file
func (l *Logo) Path() string {
	return l.path
}

// Logo returns the clipped image, nil until a load succeeded
func (l *Logo) Logo() image.Image {
	if img := l.img.Load(); img != nil {
		return img
	}
	return nil
}

// Ready signals after every successful load, pending signals coalesce
func (l *Logo) Ready() <-chan struct{} {
	return l.ready
}

// Load starts an asynchronous load, failures are logged and leave the previous image
func (l *Logo) Load() {
	core.Go(func() {
		if err := l.LoadSync(); err != nil {
			core.LogWarn("logo load failed, drawing plain ball", "path", l.path, "err", err)
		}
	})
}

// LoadSync decodes, scales and clips the file on the calling goroutine
func (l *Logo) LoadSync() error {
	f, err := os.Open(l.path)
	if err != nil {
		return fmt.Errorf("open logo: %w", err)
	}
	defer f.Close()

	img, err := Decode(f, l.diameter)
	if err != nil {
		return fmt.Errorf("decode logo %s: %w", l.path, err)
	}

	l.img.Store(img)
	core.LogInfo("logo loaded", "path", l.path, "size", l.diameter)

	select {
	case l.ready <- struct{}{}:
	default:
	}
	return nil
}

// Decode reads any registered image format, scales it to diameter x diameter and
// masks everything outside the inscribed circle
func Decode(r io.Reader, diameter int) (*image.RGBA, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	rect := image.Rect(0, 0, diameter, diameter)
	scaled := image.NewRGBA(rect)
	xdraw.CatmullRom.Scale(scaled, rect, src, src.Bounds(), xdraw.Src, nil)

	clipped := image.NewRGBA(rect)
	xdraw.DrawMask(clipped, rect, scaled, image.Point{}, circleMask{d: diameter}, image.Point{}, xdraw.Over)
	return clipped, nil
}

// circleMask is opaque inside the circle inscribed in a d x d square
type circleMask struct {
	d int
}

func (c circleMask) ColorModel() color.Model { return color.AlphaModel }

func (c circleMask) Bounds() image.Rectangle { return image.Rect(0, 0, c.d, c.d) }

func (c circleMask) At(x, y int) color.Color {
	r := float64(c.d) / 2
	dx := float64(x) + 0.5 - r
	dy := float64(y) + 0.5 - r
	if dx*dx+dy*dy <= r*r {
		return color.Alpha{A: 0xff}
	}
	return color.Alpha{}
}

// Watch reloads the logo whenever its file is written or recreated, until ctx ends
// The parent directory is watched so editors that replace files are handled
func (l *Logo) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	target, err := filepath.Abs(l.path)
	if err != nil {
		return fmt.Errorf("resolve logo path: %w", err)
	}
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	for {
		select {
		case e, ok := <-w.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(e.Name)
			if err != nil || name != target {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				if err := l.LoadSync(); err != nil {
					core.LogWarn("logo reload failed", "path", l.path, "err", err)
				}
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			core.LogError("logo watcher", "err", err)

		case <-ctx.Done():
			return nil
		}
	}
}
