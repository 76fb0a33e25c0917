package viewer

import (
	"errors"
	"time"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/internal/parallel"
)

// Output size presets.
const (
	FHDWidth, FHDHeight = 1920, 1080
	UHDWidth, UHDHeight = 3840, 2160
)

// ErrInvalidConfig is matched by every *ConfigError.
var ErrInvalidConfig = errors.New("viewer: invalid config")

// Config holds the viewer parameters.
type Config struct {
	// Width and Height are the output size in pixels.
	Width, Height int

	// BaseResolution is the output pixels per world unit at zoom 0.
	BaseResolution float64

	// TargetRate is the frame-rate ceiling in ticks per second.
	TargetRate float64

	// AveragingPeriod is the time span the displayed frame rate averages over.
	AveragingPeriod time.Duration

	// UpdatePeriod is how often the status title is refreshed.
	UpdatePeriod time.Duration

	// MaxIterations is the initial iteration budget.
	MaxIterations int

	// Zoom is the initial zoom exponent.
	Zoom float64

	// Workers is the number of render goroutines; 0 uses GOMAXPROCS.
	Workers int

	// BlockSize is the side of a render block in pixels.
	BlockSize int
}

// DefaultConfig returns the default viewer configuration: a 1920×1080
// output limited to 100 frames per second, starting at zoom −1 with 1024
// iterations.
func DefaultConfig() Config {
	return Config{
		Width:           FHDWidth,
		Height:          FHDHeight,
		BaseResolution:  fractal.BaseResolution,
		TargetRate:      100,
		AveragingPeriod: 500 * time.Millisecond,
		UpdatePeriod:    100 * time.Millisecond,
		MaxIterations:   1024,
		Zoom:            -1,
		BlockSize:       parallel.DefaultBlockSize,
	}
}

// WithSize returns c with the output size set.
func (c Config) WithSize(width, height int) Config {
	c.Width, c.Height = width, height
	return c
}

// WithUHD returns c with the 3840×2160 output size.
func (c Config) WithUHD() Config {
	return c.WithSize(UHDWidth, UHDHeight)
}

// WithTargetRate returns c with the frame-rate ceiling set.
func (c Config) WithTargetRate(hz float64) Config {
	c.TargetRate = hz
	return c
}

// WithMaxIterations returns c with the initial iteration budget set.
func (c Config) WithMaxIterations(n int) Config {
	c.MaxIterations = n
	return c
}

// WithWorkers returns c with the render goroutine count set.
func (c Config) WithWorkers(n int) Config {
	c.Workers = n
	return c
}

// WithBlockSize returns c with the render block size set.
func (c Config) WithBlockSize(n int) Config {
	c.BlockSize = n
	return c
}

// WithZoom returns c with the initial zoom exponent set.
func (c Config) WithZoom(zoom float64) Config {
	c.Zoom = zoom
	return c
}

// Validate checks the configuration and returns a *ConfigError for the
// first invalid field.
func (c *Config) Validate() error {
	if c.Width <= 0 {
		return &ConfigError{Field: "Width", Reason: "must be positive"}
	}
	if c.Height <= 0 {
		return &ConfigError{Field: "Height", Reason: "must be positive"}
	}
	if c.BaseResolution <= 0 {
		return &ConfigError{Field: "BaseResolution", Reason: "must be positive"}
	}
	if c.TargetRate <= 0 {
		return &ConfigError{Field: "TargetRate", Reason: "must be positive"}
	}
	if c.AveragingPeriod <= 0 {
		return &ConfigError{Field: "AveragingPeriod", Reason: "must be positive"}
	}
	if c.UpdatePeriod <= 0 {
		return &ConfigError{Field: "UpdatePeriod", Reason: "must be positive"}
	}
	if c.BlockSize <= 0 {
		return &ConfigError{Field: "BlockSize", Reason: "must be positive"}
	}
	if c.Workers < 0 {
		return &ConfigError{Field: "Workers", Reason: "must not be negative"}
	}
	return nil
}

// pacer returns the frame pacer settings of c.
func (c *Config) pacer() PacerConfig {
	return PacerConfig{
		TargetRate:      c.TargetRate,
		AveragingPeriod: c.AveragingPeriod,
		UpdatePeriod:    c.UpdatePeriod,
	}
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "viewer: invalid config: " + e.Field + " " + e.Reason
}

// Is reports whether target is ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}
