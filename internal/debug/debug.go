package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// EnvVar names the environment variable holding the trace file path.
const EnvVar = "FLEX_DEBUG"

var (
	mu      sync.Mutex
	logFile *os.File
	trace   = zerolog.Nop()
	enabled bool
)

// InitFromEnv enables tracing when FLEX_DEBUG is set. It is a no-op otherwise.
func InitFromEnv() error {
	path := os.Getenv(EnvVar)
	if path == "" {
		return nil
	}
	return Init(path)
}

// Init starts appending trace records to path, replacing any open trace file.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if path == "" {
		path = "flex-debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create trace directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	trace = zerolog.New(f).With().Timestamp().Logger()
	enabled = true
	return nil
}

// Close stops tracing and closes the trace file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	trace = zerolog.Nop()
	enabled = false
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Enabled reports whether a trace file is open.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Log writes a formatted message to the trace file.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !enabled {
		return
	}
	trace.Debug().Msgf(format, args...)
}

// Event calls fn with a trace event, letting callers attach typed fields.
// fn is not called when tracing is disabled.
func Event(msg string, fn func(e *zerolog.Event)) {
	mu.Lock()
	defer mu.Unlock()

	if !enabled {
		return
	}
	e := trace.Debug()
	if fn != nil {
		fn(e)
	}
	e.Msg(msg)
}
