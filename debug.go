package joystick

import (
	"fmt"
	"os"
)

// debugMode gates stderr tracing for the whole package. A plain bool is
// enough; the package is single-threaded like the game loop driving it.
var debugMode bool

// SetDebugMode toggles stderr tracing of drag captures and releases for all
// joysticks in the process. Off by default.
func SetDebugMode(enabled bool) {
	debugMode = enabled
}

// debugf prints one trace line to stderr when debug mode is on.
func debugf(format string, args ...any) {
	if !debugMode {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[joystick] "+format+"\n", args...)
}
