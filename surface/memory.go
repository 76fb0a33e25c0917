// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/fractal"
)

// Memory is a Surface that keeps the last presented frame in memory.
//
// It records every title it is given, which makes it the surface of choice
// for tests and headless runs.
//
// Memory is safe for concurrent use so tests can inspect it while a loop is
// running.
type Memory struct {
	mu       sync.Mutex
	width    int
	height   int
	img      *image.RGBA
	titles   []string
	presents int
	closed   bool
}

// NewMemory creates an in-memory surface. Sizes are clamped to at least 1.
func NewMemory(width, height int) *Memory {
	width, height = max(width, 1), max(height, 1)
	return &Memory{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Size returns the surface size.
func (m *Memory) Size() (width, height int) {
	return m.width, m.height
}

// Present copies f into the surface image.
func (m *Memory) Present(f *fractal.Frame) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	if f.Width() != m.width || f.Height() != m.height {
		return fmt.Errorf("surface: frame is %dx%d, surface is %dx%d",
			f.Width(), f.Height(), m.width, m.height)
	}
	copy(m.img.Pix, f.Data())
	m.presents++
	return nil
}

// SetTitle records title.
func (m *Memory) SetTitle(title string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.titles = append(m.titles, title)
}

// Close marks the surface closed.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Snapshot returns a copy of the last presented frame.
func (m *Memory) Snapshot() *image.RGBA {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := image.NewRGBA(m.img.Rect)
	copy(out.Pix, m.img.Pix)
	return out
}

// Presents returns how many frames have been presented.
func (m *Memory) Presents() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.presents
}

// Title returns the most recent title, or "" if none was set.
func (m *Memory) Title() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.titles) == 0 {
		return ""
	}
	return m.titles[len(m.titles)-1]
}

// Titles returns every title set so far, oldest first.
func (m *Memory) Titles() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.titles...)
}

// Closed reports whether Close has been called.
func (m *Memory) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
