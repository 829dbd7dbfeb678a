package commands

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/tablefile/pkg/table"
	"github.com/leapstack-labs/tablefile/pkg/tablefile"
)

// NewConvertCmd creates the convert command.
func NewConvertCmd() *cobra.Command {
	var (
		to     string
		outDir string
		watch  bool
	)

	cmd := &cobra.Command{
		Use:   "convert [files...]",
		Short: "Convert table files between CSV and JSON",
		Long: `Convert reads each input file (.csv or .json), parses it into a table
and writes it back out in the target format. Without --to, each file is
converted to the opposite format. Multiple files are converted concurrently.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd.Context())

			if to != "" && to != "csv" && to != "json" {
				return fmt.Errorf("unknown target format %q: expected csv or json", to)
			}

			opts, err := cfg.CSVOptions()
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = cfg.OutDir
			}

			// Tag everything this invocation does with one run id.
			logger := loggerFrom(cmd.Context()).With("run_id", uuid.NewString())

			conv := &converter{to: to, outDir: outDir, opts: opts, logger: logger}
			if err := conv.convertAll(cmd.Context(), args); err != nil {
				return err
			}
			if watch {
				return conv.watch(cmd.Context(), args)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "target format: csv or json (default: opposite of the input)")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "directory for converted files (default: next to the input)")
	cmd.Flags().BoolVar(&watch, "watch", false, "keep running and re-convert when an input file changes")

	return cmd
}

type converter struct {
	to     string
	outDir string
	opts   *table.CSVOptions
	logger *slog.Logger
}

// convertAll converts every input file, one goroutine per file.
func (c *converter) convertAll(ctx context.Context, paths []string) error {
	g, _ := errgroup.WithContext(ctx)
	for _, path := range paths {
		g.Go(func() error {
			return c.convertFile(path)
		})
	}
	return g.Wait()
}

func (c *converter) convertFile(path string) error {
	src := strings.ToLower(filepath.Ext(path))

	var tab *table.Table
	var err error
	switch src {
	case ".csv":
		tab, err = tablefile.ReadFileSync(path).ParseCSV(c.opts)
	case ".json":
		tab, err = tablefile.ReadFileSync(path).ParseJSON()
	default:
		return fmt.Errorf("unsupported input %s: expected a .csv or .json file", path)
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	target := c.targetFor(src)
	outPath := c.outPath(path, target)

	if target == "json" {
		err = tablefile.AsJSON(tab).WriteFileSync(outPath)
	} else {
		err = tablefile.AsCSV(tab).WithOptions(c.opts).WriteFileSync(outPath)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	c.logger.Info("converted", "from", path, "to", outPath, "rows", tab.Len())
	return nil
}

// targetFor picks the output format: an explicit --to wins, otherwise the
// opposite of the input format.
func (c *converter) targetFor(srcExt string) string {
	if c.to != "" {
		return c.to
	}
	if srcExt == ".csv" {
		return "json"
	}
	return "csv"
}

func (c *converter) outPath(path, target string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	dir := c.outDir
	if dir == "" {
		dir = filepath.Dir(path)
	}
	return filepath.Join(dir, base+"."+target)
}

// watch re-converts each input file whenever it changes, until the
// context is canceled.
func (c *converter) watch(ctx context.Context, paths []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch parent directories: editors replace files rather than write
	// in place, which would drop a watch on the file itself.
	tracked := make(map[string]string)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		tracked[abs] = path
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
		}
	}

	c.logger.Info("watching for changes", "files", len(tracked))
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil {
				continue
			}
			path, watched := tracked[abs]
			if !watched {
				continue
			}
			if err := c.convertFile(path); err != nil {
				c.logger.Error("re-convert failed", "path", path, "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.logger.Error("watch error", "error", err)
		}
	}
}
