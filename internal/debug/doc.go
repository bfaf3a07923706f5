// Package debug provides optional file-based trace logging.
//
// When the FLEX_DEBUG environment variable is set to a file path, trace
// records are appended to that file as zerolog JSON lines. Otherwise, logging
// is a no-op.
package debug
