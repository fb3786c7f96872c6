// Package output hands rendered frames to consumers outside the render
// loop: a still snapshot on disk, or a live feed to network clients.
package output

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/anthonynsimon/bild/transform"
)

// Frame is a tightly packed RGBA8 image.
type Frame struct {
	Width, Height int
	Pix           []byte
	// BottomUp marks rows stored bottom first, as an OpenGL read-back
	// returns them.
	BottomUp bool
}

// Validate checks that Pix holds exactly Width*Height pixels.
func (f Frame) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("frame size %dx%d: %w", f.Width, f.Height, ErrFrameSize)
	}
	if want := f.Width * f.Height * 4; len(f.Pix) != want {
		return fmt.Errorf("frame has %d bytes, want %d: %w", len(f.Pix), want, ErrFrameSize)
	}
	return nil
}

// Image returns the frame top row first. A top-down frame shares Pix; a
// bottom-up one is flipped into a new image.
func (f Frame) Image() *image.RGBA {
	img := &image.RGBA{
		Pix:    f.Pix,
		Stride: f.Width * 4,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}
	if f.BottomUp {
		return transform.FlipV(img)
	}
	return img
}

// Option configures a Publisher or a Feed.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	jpegQuality int
	queue       int
}

func defaultOptions() options {
	return options{logger: slog.Default(), jpegQuality: 85, queue: 2}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger for lifecycle and error messages.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithJPEGQuality sets the feed's JPEG quality, 1 to 100.
func WithJPEGQuality(q int) Option {
	return func(o *options) { o.jpegQuality = min(max(q, 1), 100) }
}

// WithClientQueue sets how many encoded frames may wait for each feed
// client before newer ones are dropped.
func WithClientQueue(n int) Option {
	return func(o *options) { o.queue = max(n, 1) }
}
