package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fundgroup/document"
)

// batchResult is one file's replay outcome.
type batchResult struct {
	Path        string   `json:"path"`
	Generators  []string `json:"generators,omitempty"`
	InOriginals []string `json:"in_originals,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// replayAll opens and replays every path with at most jobs files in flight.
// Results keep the order of paths. A failing file is recorded in its result;
// only context cancellation stops the batch.
func replayAll(ctx context.Context, paths []string, jobs int, verbose bool, logger *slog.Logger) ([]batchResult, error) {
	results := make([]batchResult, len(paths))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = replayOne(path, verbose, logger)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func replayOne(path string, verbose bool, logger *slog.Logger) batchResult {
	res := batchResult{Path: path}
	p, err := document.Open(path, document.WithLogger(logger))
	if err != nil {
		res.Error = err.Error()
		return res
	}
	gens, err := p.GeneratorsInOriginals(verbose)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Generators = p.Generators()
	res.InOriginals = gens
	logger.Info("batch: replayed", slog.String("path", path), slog.Int("generators", len(gens)))

	return res
}

func (c *cli) batchCmd() *cobra.Command {
	var (
		jobs    int
		verbose bool
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "batch FILE...",
		Short: "Replay many presentations concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobs < 1 {
				return fmt.Errorf("--jobs must be at least 1, got %d", jobs)
			}
			results, err := replayAll(cmd.Context(), args, jobs, verbose, c.logger)
			if err != nil {
				return err
			}

			var failed int
			for _, r := range results {
				if r.Error != "" {
					failed++
				}
			}
			if asJSON {
				enc := json.NewEncoder(c.stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(results); err != nil {
					return err
				}
			} else {
				for _, r := range results {
					if r.Error != "" {
						fmt.Fprintf(c.stdout, "%s: error: %s\n", r.Path, r.Error)
						continue
					}
					pairs := make([]string, len(r.Generators))
					for i, g := range r.Generators {
						pairs[i] = g + "=" + r.InOriginals[i]
					}
					fmt.Fprintf(c.stdout, "%s: %s\n", r.Path, strings.Join(pairs, " "))
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&jobs, "jobs", runtime.NumCPU(), "files replayed concurrently")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "use the a*b^-1 form")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")

	return cmd
}
