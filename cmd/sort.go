package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/combfilter/filter"
	"github.com/gnolang/combfilter/internal/document"
)

var sortCmd = &cobra.Command{
	Use:   "sort FILE",
	Short: "Print a filter in canonical order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSort(logger, cmd.OutOrStdout(), args[0])
	},
}

func runSort(logger *zap.Logger, w io.Writer, path string) error {
	n, err := document.LoadNode(path)
	if err != nil {
		logger.Error("Error loading document", zap.String("path", path), zap.Error(err))
		return err
	}
	fmt.Fprintln(w, filter.SortNatural(n))
	return nil
}
