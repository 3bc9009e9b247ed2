package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/combfilter/filter"
	"github.com/gnolang/combfilter/internal/document"
)

var errNotEquivalent = fmt.Errorf("%w: filters are not equivalent", errFailed)

var equivCmd = &cobra.Command{
	Use:   "equiv FILE FILE",
	Short: "Report whether two filters are equivalent",
	Long: `Two filters are equivalent when their collapsed forms are the same up to
the order and repetition of combination children. Exits with status 1 when
they are not.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEquiv(logger, cmd.OutOrStdout(), args[0], args[1])
	},
}

func runEquiv(logger *zap.Logger, w io.Writer, left, right string) error {
	var errs []error
	a, err := document.LoadNode(left)
	errs = append(errs, err)
	b, err := document.LoadNode(right)
	errs = append(errs, err)
	if err := errors.Join(errs...); err != nil {
		logger.Error("Error loading documents", zap.Error(err))
		return err
	}

	if !filter.Equivalent(a, b) {
		fmt.Fprintf(w, "not equivalent\n  %s\n  %s\n", a.Collapse(), b.Collapse())
		return errNotEquivalent
	}
	fmt.Fprintln(w, "equivalent")
	return nil
}
