// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"cmp"
	"errors"
	"slices"
	"sync"

	"github.com/gogpu/fractal"
)

// Errors.
var (
	// ErrNoBackend is returned when no backend is registered or available.
	ErrNoBackend = errors.New("surface: no backend available")

	// ErrNotFound is returned when a named backend is not registered.
	ErrNotFound = errors.New("surface: backend not found")
)

// BackendNotFoundError indicates a named backend is not registered.
// It matches ErrNotFound with errors.Is.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

func (e *BackendNotFoundError) Unwrap() error { return ErrNotFound }

// BackendUnavailableError indicates a backend is registered but cannot run
// here (for example a window backend without a display). It matches
// ErrNoBackend with errors.Is.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

func (e *BackendUnavailableError) Unwrap() error { return ErrNoBackend }

// Factory creates a new Surface with the given options.
type Factory func(opts Options) (Surface, error)

// RegistryEntry represents a registered surface backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	//   - 100: on-screen windows
	//   - 10: headless
	Priority int

	// Factory creates surface instances.
	Factory Factory

	// Available reports if the backend can run on this system.
	Available func() bool
}

// Registry manages registered surface backends.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates an empty registry.
// Most code should use the package-level Register and NewSurface.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*RegistryEntry)}
}

var globalRegistry = NewRegistry()

// Register adds a backend to the global registry.
// If available is nil the backend is always available. Registering an
// existing name replaces it.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered backend names, highest priority first.
func List() []string {
	return globalRegistry.List()
}

// Available returns the names of available backends, highest priority first.
func Available() []string {
	return globalRegistry.Available()
}

// NewSurface creates a surface using the best available backend.
func NewSurface(opts Options) (Surface, error) {
	return globalRegistry.NewSurface(opts)
}

// NewSurfaceByName creates a surface using a specific backend.
func NewSurfaceByName(name string, opts Options) (Surface, error) {
	return globalRegistry.NewSurfaceByName(name, opts)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if available == nil {
		available = func() bool { return true }
	}
	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// Get returns a copy of the entry registered under name.
func (r *Registry) Get(name string) (RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return RegistryEntry{}, false
	}
	return *e, true
}

// List returns all registered backend names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedNames(false)
}

// Available returns names of available backends sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedNames(true)
}

// NewSurface tries each available backend in priority order and returns
// the first surface that is created successfully.
func (r *Registry) NewSurface(opts Options) (Surface, error) {
	r.mu.RLock()
	names := r.sortedNames(true)
	r.mu.RUnlock()

	if len(names) == 0 {
		return nil, ErrNoBackend
	}

	var errs []error
	for _, name := range names {
		s, err := r.NewSurfaceByName(name, opts)
		if err == nil {
			return s, nil
		}
		fractal.Logger().Warn("surface: backend failed", "backend", name, "err", err)
		errs = append(errs, err)
	}
	return nil, errors.Join(append([]error{ErrNoBackend}, errs...)...)
}

// NewSurfaceByName creates a surface using the named backend.
func (r *Registry) NewSurfaceByName(name string, opts Options) (Surface, error) {
	e, ok := r.Get(name)
	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !e.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}

	s, err := e.Factory(opts)
	if err != nil {
		return nil, err
	}
	fractal.Logger().Info("surface: backend selected", "backend", name,
		"width", opts.Width, "height", opts.Height)
	return s, nil
}

// sortedNames returns backend names by descending priority, ties by name.
// Must be called with the lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	entries := make([]*RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, e)
	}

	slices.SortFunc(entries, func(a, b *RegistryEntry) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// init registers the in-memory backend.
func init() {
	Register("headless", 10, func(opts Options) (Surface, error) {
		m := NewMemory(opts.Width, opts.Height)
		if opts.Title != "" {
			m.SetTitle(opts.Title)
		}
		return m, nil
	}, nil)
}
