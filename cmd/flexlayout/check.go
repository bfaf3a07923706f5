package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-flex/internal/document"
)

func newCheckCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check file...",
		Short: "Validate documents without printing frames",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadSettings(cmd, root)
			if err != nil {
				return err
			}
			return runCheck(cmd, args, st)
		},
	}

	return cmd
}

// runCheck parses, validates and builds every file. Unlike compute it keeps
// going after a failure so every broken file is reported.
func runCheck(cmd *cobra.Command, files []string, st settings) error {
	errs := make([]error, len(files))

	var g errgroup.Group
	g.SetLimit(concurrency(st.cfg, len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			errs[i] = checkFile(path)
			return nil
		})
	}
	_ = g.Wait()

	out := cmd.OutOrStdout()
	var errorCount int
	for i, path := range files {
		if errs[i] != nil {
			fmt.Fprintf(out, "FAIL %s: %v\n", path, errs[i])
			errorCount++
			continue
		}
		fmt.Fprintf(out, "ok   %s\n", path)
	}

	st.log.WithFields(map[string]any{"files": len(files), "failed": errorCount}).Debug("check finished")
	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	return nil
}

func checkFile(path string) error {
	doc, err := document.Load(path)
	if err != nil {
		return err
	}
	_, err = document.Build(doc)
	return err
}
