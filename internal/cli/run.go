package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/maximizer/pkg/errors"
	"github.com/matzehuels/maximizer/pkg/pipeline"
)

// runFlags holds the command-line flags for the run command.
type runFlags struct {
	variant       string
	matcher       string
	workers       int
	maxIterations int
	quiet         bool
	tui           bool
	noCache       bool
	refresh       bool
	format        string
	output        string
	config        string
}

// runCommand creates the run command that saturates a seed file.
func (c *CLI) runCommand() *cobra.Command {
	flags := runFlags{format: pipeline.FormatText}

	cmd := &cobra.Command{
		Use:   "run [seeds.txt]",
		Short: "Saturate a seed file into a maximal antichain",
		Long: `Saturate a seed file into a maximal antichain.

Each non-blank line of the seed file is one line: whitespace-separated
coordinates, each a string of symbols. With --variant sparse the last
coordinate is the infinite one; a trailing "..." token is accepted so results
can be fed back as seeds.

Progress events are printed as they happen, followed by the sorted result.
Completed results are cached locally; use --refresh to recompute.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateFormat(flags.format); err != nil {
				return err
			}
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			return c.runRun(cmd.Context(), cmd.OutOrStdout(), args[0], opts, flags)
		},
	}

	cmd.Flags().StringVar(&flags.variant, "variant", "", "line variant: fixed (default), sparse")
	cmd.Flags().StringVar(&flags.matcher, "matcher", "", "matching engine: hopcroft-karp (default), backtrack, push-relabel")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "goroutines used to combine lines (0 or 1 runs serially)")
	cmd.Flags().IntVar(&flags.maxIterations, "max-iterations", 0, "stop after this many lines are examined (0 = unbounded)")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "suppress progress events")
	cmd.Flags().BoolVar(&flags.tui, "tui", false, "show a live progress view instead of event lines")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "recompute even if a cached result exists")
	cmd.Flags().StringVarP(&flags.format, "format", "f", flags.format, "output format: text (default), json, table")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the result to a file instead of stdout")
	cmd.Flags().StringVar(&flags.config, "config", "", "TOML file with default run options")

	return cmd
}

// options builds pipeline options from the config file (if any) and then
// overlays every flag set explicitly on the command line.
func (f *runFlags) options(cmd *cobra.Command) (pipeline.Options, error) {
	var opts pipeline.Options
	if f.config != "" {
		loaded, err := pipeline.LoadConfig(f.config)
		if err != nil {
			return pipeline.Options{}, err
		}
		opts = loaded
	}

	changed := cmd.Flags().Changed
	if changed("variant") || opts.Variant == "" {
		opts.Variant = f.variant
	}
	if changed("matcher") || opts.Matcher == "" {
		opts.Matcher = f.matcher
	}
	if changed("workers") {
		opts.Workers = f.workers
	}
	if changed("max-iterations") {
		opts.MaxIterations = f.maxIterations
	}
	if changed("quiet") {
		opts.Quiet = f.quiet
	}
	opts.Refresh = f.refresh
	return opts, nil
}

// runRun loads the seeds, saturates them and writes the result.
func (c *CLI) runRun(ctx context.Context, stdout io.Writer, input string, opts pipeline.Options, flags runFlags) error {
	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	seeds, err := runner.Load(ctx, input)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	var result *pipeline.Result
	switch {
	case flags.tui:
		result, err = c.runWithTUI(ctx, runner, seeds, opts)
	case opts.Quiet:
		// Events feed the spinner instead of stdout.
		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Saturating %d seeds...", seeds.Len()))
		opts.Quiet = false
		opts.Observer = spinner.Observe
		spinner.Start()
		result, err = runner.Execute(ctx, seeds, opts)
		spinner.Stop()
	default:
		// Keep JSON on stdout parseable.
		events := stdout
		if flags.format == pipeline.FormatJSON && flags.output == "" {
			events = statusOut
		}
		opts.Observer = func(e pipeline.Event) {
			fmt.Fprintln(events, e.String())
		}
		result, err = runner.Execute(ctx, seeds, opts)
	}

	if err != nil {
		if result == nil || !errors.Stopped(err) {
			return err
		}
		printWarning("Run stopped early, result is not maximal: %s", errors.UserMessage(err))
	} else {
		prog.done("saturated", "seeds", seeds.Len(), "lines", len(result.Lines), "cached", result.CacheHit)
	}

	if werr := c.writeResult(ctx, stdout, runner, result, flags); werr != nil {
		return werr
	}
	printStats(result.Stats, result.CacheHit)
	return err
}

// writeResult writes result to the output file or stdout in the requested format.
func (c *CLI) writeResult(ctx context.Context, stdout io.Writer, runner *pipeline.Runner, result *pipeline.Result, flags runFlags) error {
	w := stdout
	if flags.output != "" {
		if err := errors.ValidatePath(flags.output); err != nil {
			return err
		}
		f, err := os.Create(flags.output)
		if err != nil {
			return fmt.Errorf("create %s: %w", flags.output, err)
		}
		defer f.Close()
		w = f
	}

	if flags.format == pipeline.FormatTable {
		if _, err := fmt.Fprintln(w, linesTable(result.Lines)); err != nil {
			return fmt.Errorf("write table: %w", err)
		}
	} else if err := runner.Export(ctx, w, result, flags.format); err != nil {
		return err
	}

	if flags.output != "" {
		printFile(flags.output)
	}
	return nil
}
