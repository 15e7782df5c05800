package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hmibuilder/pkg/cache"
	"github.com/matzehuels/hmibuilder/pkg/errors"
	"github.com/matzehuels/hmibuilder/pkg/preview"
	"github.com/matzehuels/hmibuilder/pkg/scene"
)

const (
	formatSVG = "svg"
	formatPDF = "pdf"
	formatDOT = "dot"
	formatPNG = "png"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	output   string  // output file; defaults to the layout path with the format's extension
	format   string  // svg or pdf
	scale    float64 // millimetres per canvas pixel
	selected string  // element to outline as selected
	noCache  bool    // skip the render cache
}

// renderCommand draws a layout preview.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: formatSVG}

	cmd := &cobra.Command{
		Use:   "render [layout]",
		Short: "Render a layout preview to SVG or PDF",
		Long: `Render the canvas frame and every element's box. Containers are drawn with
a dashed outline; --select outlines one element in the selection colour.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.format = strings.ToLower(opts.format)
			if opts.format != formatSVG && opts.format != formatPDF {
				return errors.New(errors.ErrCodeUnsupported, "unsupported render format %q (want svg or pdf)", opts.format)
			}
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <layout>.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), pdf")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "millimetres per canvas pixel (default: 96 dpi)")
	cmd.Flags().StringVar(&opts.selected, "select", "", "outline this element as selected")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	ed, err := c.openDocument(input)
	if err != nil {
		return err
	}
	po := preview.Options{Scale: opts.scale}
	if opts.selected != "" {
		if po.Selected, err = ed.Store().Lookup(opts.selected); err != nil {
			return err
		}
	}

	key := cache.Key("render", scene.FromStore(ed.Store()), opts.format, opts.scale, opts.selected)
	data, err := c.cached(ctx, c.newCache(opts.noCache), key, func() ([]byte, error) {
		var buf bytes.Buffer
		var err error
		switch opts.format {
		case formatPDF:
			err = preview.RenderPDF(&buf, ed.Store(), po)
		default:
			err = preview.RenderSVG(&buf, ed.Store(), po)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", opts.format, err)
		}
		return buf.Bytes(), nil
	})
	if err != nil {
		return err
	}

	out := outputPath(input, opts.output, opts.format)
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	printSuccess("Rendered %d elements", ed.Store().Len())
	printFile(out)
	return nil
}

// treeCommand prints or renders which container holds which element.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		output, format string
		noCache        bool
	)

	cmd := &cobra.Command{
		Use:   "tree [layout]",
		Short: "Show the containment tree of a layout",
		Long: `Describe which container holds which element as a Graphviz graph. Elements
outside every container hang from the canvas. The DOT source is printed unless
--output is given; svg and png are laid out with Graphviz.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTree(cmd.Context(), args[0], output, strings.ToLower(format), noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: print DOT to stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", formatDOT, "output format: dot (default), svg, png")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the graph layout cache")

	return cmd
}

func (c *CLI) runTree(ctx context.Context, input, output, format string, noCache bool) error {
	ed, err := c.openDocument(input)
	if err != nil {
		return err
	}
	dot := preview.ContainmentDOT(ed.Store())

	if output == "" {
		if format != formatDOT {
			return errors.New(errors.ErrCodeInvalidInput, "--format %s needs --output", format)
		}
		fmt.Print(dot)
		return nil
	}

	prog := newProgress(c.Logger)
	data, err := c.cached(ctx, c.newCache(noCache), cache.Key("tree", dot, format), func() ([]byte, error) {
		return preview.RenderDOT(ctx, dot, format)
	})
	if err != nil {
		return err
	}
	if format != formatDOT {
		prog.done("Laid out containment graph")
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printSuccess("Containment tree written")
	printFile(output)
	return nil
}

// outputPath returns explicit when set, otherwise input with its extension
// replaced by format.
func outputPath(input, explicit, format string) string {
	if explicit != "" {
		return explicit
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}
