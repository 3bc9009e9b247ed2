package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/combfilter/filter"
	"github.com/gnolang/combfilter/internal/document"
	"github.com/gnolang/combfilter/internal/render"
	"github.com/gnolang/combfilter/numrange"
)

var (
	collapseYAML bool
	showProgress bool
)

var collapseCmd = &cobra.Command{
	Use:   "collapse [paths...]",
	Short: "Simplify filter documents",
	Long: `Prints each filter next to its collapsed form. Directories are searched
for *.yaml and *.yml documents.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		var progress io.Writer
		if showProgress {
			progress = os.Stderr
		}
		return runCollapse(ctx, logger, cmd.OutOrStdout(), args, cfg.Canonical, collapseYAML, progress)
	},
}

func init() {
	collapseCmd.Flags().BoolVar(&collapseYAML, "yaml", false, "Print collapsed filters as YAML documents")
	collapseCmd.Flags().BoolVar(&showProgress, "progress", false, "Show a progress bar while processing directories")
}

type collapsed struct {
	doc       document.Document
	original  filter.Node[numrange.Range]
	collapsed filter.Node[numrange.Range]
}

func runCollapse(ctx context.Context, logger *zap.Logger, w io.Writer, paths []string, canonical, asYAML bool, progress io.Writer) error {
	results, err := document.ProcessPaths(ctx, logger, paths, document.Options{Progress: progress},
		func(path string) (collapsed, error) {
			doc, err := document.Load(path)
			if err != nil {
				return collapsed{}, err
			}
			n, err := doc.Node()
			if err != nil {
				return collapsed{}, err
			}
			return collapsed{doc: doc, original: n, collapsed: normalize(n, canonical)}, nil
		})
	if err != nil {
		logger.Error("Error processing documents", zap.Error(err))
		return err
	}

	var enc *document.Encoder
	if asYAML {
		enc = document.NewEncoder(w)
		defer enc.Close()
	}

	failed := false
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprint(w, render.Error(res.Path, res.Err))
			failed = true
			continue
		}

		if asYAML {
			out := document.Document{Name: res.Value.doc.Name, Filter: document.FromNode(res.Value.collapsed)}
			if err := enc.Encode(out); err != nil {
				return err
			}
			continue
		}

		fmt.Fprint(w, render.Format(render.Report{
			Name: res.Value.doc.Name,
			Path: res.Path,
			Sections: []render.Section{
				{Label: "original", Body: res.Value.original.String()},
				{Label: "collapsed", Body: res.Value.collapsed.String()},
				{Label: "tree", Body: render.Tree(res.Value.collapsed)},
			},
		}))
	}

	if failed {
		return errFailed
	}
	return nil
}

// normalize collapses n and, when canonical is set, sorts the result in
// natural order.
func normalize(n filter.Node[numrange.Range], canonical bool) filter.Node[numrange.Range] {
	n = n.Collapse()
	if canonical {
		n = filter.SortNatural(n)
	}
	return n
}
