package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-flex/internal/debug"
	"github.com/grindlemire/go-flex/internal/document"
	"github.com/grindlemire/go-flex/internal/host"
	"github.com/grindlemire/go-flex/internal/preview"
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\x1b[H\x1b[2J"

type previewOptions struct {
	size     sizeFlags
	columns  int
	border   string
	noIDs    bool
	watch    bool
	interval time.Duration
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview file",
		Short: "Draw a document's frames as boxes in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadSettings(cmd, root)
			if err != nil {
				return err
			}
			return runPreview(cmd, args[0], opts, st)
		},
	}

	opts.size.register(cmd)
	cmd.Flags().IntVar(&opts.columns, "columns", 0, "Drawing width in cells (default from config, then terminal width)")
	cmd.Flags().StringVar(&opts.border, "border", "", "Outer border: normal, rounded, double, thick or hidden")
	cmd.Flags().BoolVar(&opts.noIDs, "no-ids", false, "Do not label boxes")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Keep redrawing when the terminal is resized")
	cmd.Flags().DurationVar(&opts.interval, "interval", 50*time.Millisecond, "Redraw check interval in watch mode")

	return cmd
}

func (o *previewOptions) renderOptions(out io.Writer, st settings, res document.Result) preview.Options {
	columns := o.columns
	if columns <= 0 {
		columns = st.cfg.Preview.Columns
	}
	if f, ok := out.(*os.File); ok {
		columns = preview.Columns(f, columns)
	} else if columns <= 0 {
		columns = 78
	}

	border := st.cfg.Preview.Border
	if o.border != "" {
		border = o.border
	}

	return preview.Options{
		Columns: columns,
		Border:  border,
		ShowIDs: st.cfg.Preview.ShowIDs && !o.noIDs,
		Title:   fmt.Sprintf("%s (%gx%g)", res.Source, res.Width, res.Height),
	}
}

func runPreview(cmd *cobra.Command, path string, opts *previewOptions, st settings) error {
	h, res, err := loadHost(cmd, path, &opts.size, st)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !opts.watch {
		fmt.Fprintln(out, preview.Render(res.Frames, opts.renderOptions(out, st, res)))
		return nil
	}
	return watchPreview(cmd.Context(), out, h, res, opts, st)
}

// watchPreview redraws on every layout pass until interrupted. Terminal
// resizes invalidate the host so the next tick redraws at the new width.
func watchPreview(ctx context.Context, out io.Writer, h *host.Host, res document.Result, opts *previewOptions, st settings) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	resized := make(chan os.Signal, 1)
	stopResize := preview.NotifyResize(resized)
	defer stopResize()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-resized:
				st.log.Debug("terminal resized")
				debug.Log("resize after pass %d", h.Passes())
				h.Invalidate()
			}
		}
	}()

	return h.Run(ctx, opts.interval, func(frames []document.Frame) {
		res.Frames = frames
		fmt.Fprint(out, clearScreen)
		fmt.Fprintln(out, preview.Render(frames, opts.renderOptions(out, st, res)))
	})
}
