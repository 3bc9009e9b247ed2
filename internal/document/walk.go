package document

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var desiredExtensions = map[string]bool{
	".yaml": true,
	".yml":  true,
}

// IsDocumentPath reports whether path has a filter document extension.
func IsDocumentPath(path string) bool {
	return desiredExtensions[strings.ToLower(filepath.Ext(path))]
}

// Result is the outcome of processing one document.
type Result[R any] struct {
	Path  string
	Value R
	Err   error
}

// Options control ProcessPaths.
type Options struct {
	// Progress receives a progress bar while a directory is processed.
	// Nil disables it.
	Progress io.Writer
	// Workers bounds the number of documents processed at once. Zero means
	// runtime.NumCPU.
	Workers int
}

// ProcessPaths runs processor on every document named by paths. Directories
// are walked for *.yaml and *.yml files. A failing document does not stop
// the others; its error is logged and recorded in its Result. Results are
// sorted by path.
func ProcessPaths[R any](
	ctx context.Context,
	logger *zap.Logger,
	paths []string,
	opts Options,
	processor func(path string) (R, error),
) ([]Result[R], error) {
	var files []string
	for _, path := range paths {
		found, err := collect(path)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	slices.Sort(files)
	files = slices.Compact(files)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var bar *progressbar.ProgressBar
	if opts.Progress != nil && len(files) > 1 {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription("documents"),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	results := make([]Result[R], len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			v, err := processor(file)
			if err != nil && logger != nil {
				logger.Error("Error processing document", zap.String("file", file), zap.Error(err))
			}
			results[i] = Result[R]{Path: file, Value: v, Err: err}

			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if bar != nil {
		_ = bar.Finish()
	}
	return results, nil
}

func collect(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsDocumentPath(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", path, err)
	}
	return files, nil
}
