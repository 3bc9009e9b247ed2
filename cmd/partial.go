package cmd

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/combfilter/filter"
	"github.com/gnolang/combfilter/internal/document"
	"github.com/gnolang/combfilter/internal/render"
	"github.com/gnolang/combfilter/numrange"
)

var (
	partialMin int
	partialMax int
)

var partialCmd = &cobra.Command{
	Use:   "partial FILE",
	Short: "Drop the ranges outside [min, max] without rejecting more values",
	Long: `Keeps the ranges that lie inside [min, max] and replaces the others so
that every value accepted by the original filter is still accepted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPartial(logger, cmd.OutOrStdout(), args[0], partialMin, partialMax)
	},
}

func init() {
	partialCmd.Flags().IntVar(&partialMin, "min", math.MinInt, "Lowest bound a kept range may have")
	partialCmd.Flags().IntVar(&partialMax, "max", math.MaxInt, "Highest bound a kept range may have")
}

func runPartial(logger *zap.Logger, w io.Writer, path string, lo, hi int) error {
	n, err := document.LoadNode(path)
	if err != nil {
		logger.Error("Error loading document", zap.String("path", path), zap.Error(err))
		return err
	}
	if lo > hi {
		return fmt.Errorf("%w: --min %d is greater than --max %d", numrange.ErrInvalidRange, lo, hi)
	}

	p := filter.GetPartial(n, func(r numrange.Range) bool {
		return r.Within(lo, hi)
	})
	logger.Debug("Computed partial filter",
		zap.String("path", path),
		zap.Stringer("original", n),
		zap.Stringer("partial", p))

	fmt.Fprint(w, render.Format(render.Report{
		Path: path,
		Sections: []render.Section{
			{Label: "original", Body: n.String()},
			{Label: "partial", Body: p.String()},
		},
	}))
	return nil
}
