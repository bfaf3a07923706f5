package host

import (
	"context"
	"time"

	"github.com/grindlemire/go-flex/internal/document"
)

// Run lays the tree out immediately and then once per interval while a pass
// is pending, calling onLayout with the new frames after each pass. It blocks
// until ctx is done and returns nil on cancellation.
func (h *Host) Run(ctx context.Context, interval time.Duration, onLayout func([]document.Frame)) error {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}

	h.Invalidate()
	if h.Flush() && onLayout != nil {
		onLayout(h.Frames())
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if h.Flush() && onLayout != nil {
				onLayout(h.Frames())
			}
		}
	}
}
