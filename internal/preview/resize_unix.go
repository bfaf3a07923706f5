//go:build unix

package preview

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// NotifyResize relays terminal resize signals to ch until stop is called.
func NotifyResize(ch chan<- os.Signal) (stop func()) {
	signal.Notify(ch, unix.SIGWINCH)
	return func() { signal.Stop(ch) }
}
