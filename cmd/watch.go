package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/combfilter/internal/document"
)

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Collapse documents again whenever they change",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return runWatch(ctx, logger, cmd.OutOrStdout(), args, cfg.Canonical)
	},
}

func runWatch(ctx context.Context, logger *zap.Logger, w io.Writer, paths []string, canonical bool) error {
	// print the current state once before waiting for changes
	if err := runCollapse(ctx, logger, w, paths, canonical, false, nil); err != nil {
		logger.Warn("Initial collapse failed", zap.Error(err))
	}

	cache := document.NewCache(0)
	fmt.Fprintln(w, "watching for changes, press Ctrl+C to stop")
	return document.Watch(ctx, logger, paths, func(path string) {
		changed, err := cache.Changed(path)
		if err == nil && !changed {
			logger.Debug("Document rewritten without changes", zap.String("path", path))
			return
		}
		logger.Info("Document changed", zap.String("path", path))
		if err := runCollapse(ctx, logger, w, []string{path}, canonical, false, nil); err != nil {
			logger.Warn("Collapse failed", zap.String("path", path), zap.Error(err))
		}
	})
}
