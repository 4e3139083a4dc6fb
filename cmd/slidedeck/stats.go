package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"
	"sort"
	"text/tabwriter"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/dgallion1/slidedeck/internal/compiler"
)

type deckReport struct {
	File     string         `json:"file"`
	Stats    compiler.Stats `json:"stats"`
	Warnings []string       `json:"warnings,omitempty"`
}

func runStats(ctx context.Context, cmd *cli.Command) error {
	e := envFromContext(ctx)

	files := cmd.Args().Slice()
	if len(files) == 0 {
		return fmt.Errorf("missing SOURCE argument")
	}
	sort.Sort(natural.StringSlice(files))
	files = slices.Compact(files)

	reports, err := collectStats(ctx, files)
	for _, r := range reports {
		for _, w := range r.Warnings {
			e.log.Warn("Suspicious separator", "file", r.File, "issue", w)
		}
	}

	if cmd.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(reports); encErr != nil {
			err = multierr.Append(err, encErr)
		}
		return err
	}
	writeStatsTable(os.Stdout, reports)
	return err
}

// collectStats compiles files concurrently. Reports come back in files
// order; unreadable files are skipped and their errors combined.
func collectStats(ctx context.Context, files []string) ([]deckReport, error) {
	results := make([]*deckReport, len(files))
	errs := make([]error, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			src, err := readSource(name)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", name, err)
				return nil
			}
			results[i] = &deckReport{
				File:     name,
				Stats:    compiler.Summarize(compiler.CompileBytes(src)),
				Warnings: compiler.Lint(string(src)),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	reports := make([]deckReport, 0, len(files))
	for _, r := range results {
		if r != nil {
			reports = append(reports, *r)
		}
	}
	return reports, multierr.Combine(errs...)
}

func writeStatsTable(w io.Writer, reports []deckReport) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tSLIDES\tTOPICS\tFRAGMENTS\tNOTES\tSTYLED\tCODE\tIMAGES")
	for _, r := range reports {
		st := r.Stats
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			r.File, st.Slides, st.Topics, st.Fragments, st.SlidesWithNotes, st.StyledSlides, st.CodeBlocks, st.Images)
	}
	tw.Flush()

	for _, r := range reports {
		if len(r.Stats.FragmentsByKind) == 0 {
			continue
		}
		kinds := make([]string, 0, len(r.Stats.FragmentsByKind))
		for k := range r.Stats.FragmentsByKind {
			kinds = append(kinds, k)
		}
		sort.Sort(natural.StringSlice(kinds))
		fmt.Fprintf(w, "\n%s: %s\n", r.File, plural(r.Stats.Fragments, "fragment"))
		for _, k := range kinds {
			fmt.Fprintf(w, "  %-16s %d\n", k, r.Stats.FragmentsByKind[k])
		}
	}
}
