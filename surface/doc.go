// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface defines where rendered fractal frames are shown.
//
// A Surface receives finished frames and a status title. It decouples the
// render loop from windowing so the same loop drives:
//
//   - an in-memory surface for tests and headless runs (Memory)
//   - an on-screen window (package backend/window)
//   - third-party backends via the registry
//
// # Registry
//
// Backends register themselves from init:
//
//	func init() {
//	    surface.Register("window", 100, newWindow, windowAvailable)
//	}
//
// and are created by name or by priority:
//
//	s, err := surface.NewSurfaceByName("headless", surface.Options{Width: 1920, Height: 1080})
//	// or pick the best available backend:
//	s, err := surface.NewSurface(surface.Options{Width: 1920, Height: 1080})
//
// The package registers "headless" (a Memory surface) at priority 10.
package surface
