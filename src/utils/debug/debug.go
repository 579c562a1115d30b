package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

const env_debug_name = "YOUTUBE_CLIENT_DEBUG"

// Enabled controls whether debug lines are emitted.
var Enabled bool

var (
	mu     sync.Mutex
	writer io.Writer = os.Stderr
)

// FromEnv enables debug output when YOUTUBE_CLIENT_DEBUG is set to a
// non-empty value other than "0" or "false".
func FromEnv() {
	switch os.Getenv(env_debug_name) {
	case "", "0", "false":
		Enabled = false
	default:
		Enabled = true
	}
}

func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	writer = w
}

func Log(format string, args ...interface{}) {
	if !Enabled {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(writer, "[DEBUG %s] ", timestamp)
	fmt.Fprintf(writer, format, args...)
	fmt.Fprintln(writer)
}
