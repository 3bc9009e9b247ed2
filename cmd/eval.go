package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/combfilter/filter"
	"github.com/gnolang/combfilter/internal/document"
	"github.com/gnolang/combfilter/internal/render"
)

var evalCmd = &cobra.Command{
	Use:   "eval FILE VALUES...",
	Short: "Match integers against a filter",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEval(logger, cmd.OutOrStdout(), args[0], args[1:])
	},
}

func runEval(logger *zap.Logger, w io.Writer, path string, values []string) error {
	n, err := document.LoadNode(path)
	if err != nil {
		logger.Error("Error loading document", zap.String("path", path), zap.Error(err))
		return err
	}

	items := make([]int, len(values))
	for i, v := range values {
		if items[i], err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("value %q: %w", v, err)
		}
	}

	match := filter.GetPredicate[int](n)
	for i, item := range items {
		fmt.Fprintln(w, render.Verdict(values[i], match(item)))
	}
	return nil
}
