package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hmibuilder/pkg/layout"
	"github.com/matzehuels/hmibuilder/pkg/scene"
	"github.com/matzehuels/hmibuilder/pkg/script"
)

type replayOpts struct {
	layout string // starting document; empty starts a blank canvas
	save   string // where to write the resulting document
}

// replayCommand runs a gesture script against a layout.
func (c *CLI) replayCommand() *cobra.Command {
	var opts replayOpts

	cmd := &cobra.Command{
		Use:   "replay [script.hmi]",
		Short: "Replay a gesture script and check its expectations",
		Long: `Replay a gesture script: one statement per line, driving the editor the way
a pointer and keyboard would.

  canvas W H                    add KIND [NAME]
  select NAME                   press left|right X Y [shift]
  move X Y                      release | cancel | lost
  nudge DIR [big] [detach]      align H V
  front | back | delete         rename NAME
  expect NAME X Y W H           expect NAME align H V

The command fails at the first expectation that does not hold.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReplay(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.layout, "layout", "l", "", "layout to start from (default: empty canvas)")
	cmd.Flags().StringVarP(&opts.save, "save", "o", "", "write the resulting layout to this file")

	return cmd
}

func (c *CLI) runReplay(ctx context.Context, path string, opts replayOpts) error {
	logger := loggerFromContext(ctx)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	s, err := script.Parse(path, f)
	if err != nil {
		return err
	}

	store := layout.NewStore(c.Config.CanvasSize())
	if opts.layout != "" {
		if store, err = scene.Load(opts.layout); err != nil {
			return err
		}
	}

	prog := newProgress(logger)
	runner := script.NewRunner(store, c.Config.EditorOptions(), logger)
	report, err := runner.Run(ctx, s)
	for _, b := range report.Bells {
		printWarning("line %d: %s had no effect", b.Line, b.Op)
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Replayed %d statements", report.Statements))

	printSuccess("%s passed", path)
	printCounts(report.Expects, "expectations", report.Flips, "flips", len(report.Bells), "bells")

	if opts.save != "" {
		if err := scene.Save(opts.save, runner.Editor().Store()); err != nil {
			return err
		}
		printFile(opts.save)
	}
	return nil
}
