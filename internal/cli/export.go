package cli

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/drawshop/pkg/pipeline"
	"github.com/matzehuels/drawshop/pkg/shape"
)

// exportOpts holds the flags of the export command.
type exportOpts struct {
	formats     string
	output      string
	scale       float64
	strokeWidth float64
	title       string
	standardize bool
	rsvg        bool
	noCache     bool
	refresh     bool
}

// exportCommand creates the "export" command, which renders a drawing to
// files.
func (c *CLI) exportCommand() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Render a drawing to SVG, PNG, PDF or JSON",
		Long: `Render a drawing and write one file per format.

Renders are cached by drawing content, so exporting an unchanged drawing
again is instant. PDF output and --rsvg need rsvg-convert on the PATH.`,
		Example: `  drawshop export sketch
  drawshop export sketch -f svg,png --scale 2 -o out/sketch
  drawshop export sketch -f pdf --standardize`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeDrawingIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.formats, "format", "f", pipeline.FormatSVG, "output formats (comma-separated: svg,png,pdf,json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output path without extension (default: the drawing id)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "PNG scale factor (default from config)")
	cmd.Flags().Float64Var(&opts.strokeWidth, "stroke-width", 0, "outline width (default from config)")
	cmd.Flags().StringVar(&opts.title, "title", "", "title embedded in SVG output")
	cmd.Flags().BoolVar(&opts.standardize, "standardize", false, "render the perfect version of the drawing")
	cmd.Flags().BoolVar(&opts.rsvg, "rsvg", false, "rasterize PNG through rsvg-convert")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")

	return cmd
}

func (c *CLI) runExport(cmd *cobra.Command, id string, opts exportOpts) error {
	ctx := cmd.Context()
	prog := newProgress(c.Logger)

	runner, cfg, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	d, err := runner.Load(ctx, id)
	if err != nil {
		return err
	}

	if opts.scale == 0 {
		opts.scale = cfg.Export.Scale
	}
	if opts.strokeWidth == 0 {
		opts.strokeWidth = cfg.Export.StrokeWidth
	}
	base := opts.output
	if base == "" {
		base = id
	}

	popts := pipeline.Options{
		Formats:     parseFormats(opts.formats),
		Scale:       opts.scale,
		StrokeWidth: opts.strokeWidth,
		Title:       opts.title,
		Standardize: opts.standardize,
		RSVG:        opts.rsvg,
		Refresh:     opts.refresh,
	}

	spin := newSpinner(ctx, os.Stderr, "Rendering "+id+"...")
	spin.Start()
	res, err := runner.Export(ctx, d, base, popts)
	spin.Stop()
	if err != nil {
		return err
	}

	formats := slices.Sorted(maps.Keys(res.Paths))
	printSuccess("Exported %s", StyleHighlight.Render(id))
	for _, f := range formats {
		printFile(res.Paths[f])
	}
	counts := shape.Count(d)
	if opts.standardize {
		counts = shape.Count(d.Standardize())
	}
	printStats(counts, res.CacheHit)
	prog.done(fmt.Sprintf("Exported %d file(s)", len(formats)))
	return nil
}

// treeCommand creates the "tree" command, which renders a drawing's
// composition as a node-link diagram.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		format   string
		output   string
		detailed bool
		scale    float64
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "tree <id>",
		Short: "Render the group structure of a drawing",
		Long: `Render the composition of a drawing (groups and their members) as a
Graphviz diagram. With -f dot the Graphviz source is printed instead.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeDrawingIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, _, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			id := args[0]
			d, err := runner.Load(ctx, id)
			if err != nil {
				return err
			}
			data, err := runner.Tree(ctx, d, pipeline.TreeOptions{Format: format, Detailed: detailed, Scale: scale})
			if err != nil {
				return err
			}

			if format == "dot" && output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if output == "" {
				output = id + "-tree"
			}
			path := output
			if ext := pipeline.Extension(format); !strings.HasSuffix(path, ext) {
				path += ext
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			printSuccess("Rendered tree of %s", StyleHighlight.Render(id))
			printFile(path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatSVG, "output format (svg, png, pdf, dot)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <id>-tree.<format>)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label nodes with centre, bounds and color")
	cmd.Flags().Float64Var(&scale, "scale", 0, "PNG scale factor")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")

	return cmd
}
