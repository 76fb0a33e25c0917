// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"

	"github.com/gogpu/fractal"
)

// ErrClosed is returned by Present after Close.
var ErrClosed = errors.New("surface: closed")

// Surface is a presentation target for rendered frames.
//
// Surfaces are driven from the render loop goroutine only; implementations
// need no internal locking for that use.
type Surface interface {
	// Size returns the output size in pixels. Frames passed to Present have
	// exactly this size.
	Size() (width, height int)

	// Present shows a finished frame. The frame is owned by the caller and
	// is overwritten by the next render, so implementations copy what they
	// keep.
	Present(f *fractal.Frame) error

	// SetTitle updates the status text (the window title for on-screen
	// surfaces).
	SetTitle(title string)

	// Close releases the surface. Close is idempotent.
	Close() error
}

// Options configures surface creation.
type Options struct {
	// Width and Height are the output size in pixels.
	Width, Height int

	// Title is the initial status text.
	Title string
}
