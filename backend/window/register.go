package window

import (
	"os"
	"runtime"

	"github.com/gogpu/fractal/surface"
)

// BackendName is the registry name of the window backend.
const BackendName = "window"

func init() {
	surface.Register(BackendName, 100, factory, available)
}

// factory creates a window without options. Callers add them with Apply and
// must start it with Run.
func factory(opts surface.Options) (surface.Surface, error) {
	return New(opts), nil
}

// available reports whether a display is likely present. On Linux and the
// BSDs that means an X11 or Wayland session.
func available() bool {
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
	default:
		return true
	}
}
