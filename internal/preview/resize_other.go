//go:build !unix

package preview

import "os"

// NotifyResize is a no-op where the platform has no resize signal; callers
// fall back to polling TerminalSize.
func NotifyResize(chan<- os.Signal) (stop func()) {
	return func() {}
}
