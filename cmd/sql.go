package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/combfilter/internal/document"
	"github.com/gnolang/combfilter/numrange"
)

var sqlColumn string

var sqlCmd = &cobra.Command{
	Use:   "sql FILE",
	Short: "Compile a filter into a SQL WHERE clause",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		column := sqlColumn
		if column == "" {
			column = cfg.Column
		}
		return runSQL(logger, cmd.OutOrStdout(), args[0], column)
	},
}

func init() {
	sqlCmd.Flags().StringVar(&sqlColumn, "column", "", "Column the ranges apply to (defaults to the config file)")
}

func runSQL(logger *zap.Logger, w io.Writer, path, column string) error {
	n, err := document.LoadNode(path)
	if err != nil {
		logger.Error("Error loading document", zap.String("path", path), zap.Error(err))
		return err
	}

	clause, err := numrange.Where(n.Collapse(), column)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, clause.SQL)
	fmt.Fprintln(w, clause.Args...)
	return nil
}
