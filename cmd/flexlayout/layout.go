package main

import (
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-flex/internal/config"
	"github.com/grindlemire/go-flex/internal/document"
	"github.com/grindlemire/go-flex/internal/host"
)

// sizeFlags are the --width/--height overrides shared by compute and preview.
type sizeFlags struct {
	width  float64
	height float64
}

func (s *sizeFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&s.width, "width", 0, "Available width (overrides the document and config)")
	cmd.Flags().Float64Var(&s.height, "height", 0, "Available height (overrides the document and config)")
}

// resolve picks the layout size for doc: an explicit flag wins, then the
// document's own size, then the config default.
func (s *sizeFlags) resolve(cmd *cobra.Command, doc *document.Document, cfg config.Config) (width, height float64) {
	width, height = cfg.Width, cfg.Height
	if doc.Width != nil {
		width = *doc.Width
	}
	if doc.Height != nil {
		height = *doc.Height
	}
	if cmd.Flags().Changed("width") {
		width = s.width
	}
	if cmd.Flags().Changed("height") {
		height = s.height
	}
	return width, height
}

// loadHost reads, builds and lays out the document at path.
func loadHost(cmd *cobra.Command, path string, size *sizeFlags, st settings) (*host.Host, document.Result, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, document.Result{}, err
	}
	tree, err := document.Build(doc)
	if err != nil {
		return nil, document.Result{}, err
	}

	width, height := size.resolve(cmd, doc, st.cfg)
	log := st.log.WithFields(map[string]any{"document": path, "nodes": len(tree.Entries)})
	h := host.New(tree, width, height, host.WithLogger(log))
	h.Flush()

	log.Debug("document laid out")
	return h, document.Result{Source: path, Width: width, Height: height, Frames: h.Frames()}, nil
}

// concurrency bounds the number of documents processed at once.
func concurrency(cfg config.Config, files int) int {
	n := cfg.Concurrency
	if n <= 0 {
		n = 1
	}
	return min(n, max(files, 1))
}
