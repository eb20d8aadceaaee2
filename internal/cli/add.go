package cli

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/drawshop/pkg/errors"
	"github.com/matzehuels/drawshop/pkg/shape"
)

// addOpts holds the flags shared by the "add" subcommands.
type addOpts struct {
	color string // stroke color, "#rrggbb" or an SVG color name
	box   bool   // circle: interpret the arguments as a bounding box
}

// addCommand creates the "add" command with one subcommand per shape.
// Shapes are created in the drawing's style.
func (c *CLI) addCommand() *cobra.Command {
	var opts addOpts

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a shape to a drawing",
	}
	cmd.PersistentFlags().StringVar(&opts.color, "color", "", "stroke color (default from config)")

	circle := &cobra.Command{
		Use:   "circle <id> <cx> <cy> <r>",
		Short: "Add a circle by centre and radius",
		Long: `Add a circle by centre and radius.

With --box the four numbers are the corners of a dragged box instead; the
circle is centred in the box with half the box height as radius.`,
		Args: cobra.RangeArgs(4, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseNums(args[1:])
			if err != nil {
				return err
			}
			return c.addShape(cmd, args[0], opts, func(d *shape.Drawing, col color.RGBA) (shape.Shape, error) {
				if opts.box {
					if len(nums) != 4 {
						return nil, errors.New(errors.ErrCodeInvalidArgument, "--box needs x0 y0 x1 y1")
					}
					cx, cy, r := shape.CircleFromBox(nums[0], nums[1], nums[2], nums[3])
					return d.Circle(cx, cy, r, col), nil
				}
				if len(nums) != 3 {
					return nil, errors.New(errors.ErrCodeInvalidArgument, "circle needs cx cy r")
				}
				if nums[2] < 0 {
					return nil, errors.New(errors.ErrCodeInvalidArgument, "radius must not be negative")
				}
				return d.Circle(nums[0], nums[1], nums[2], col), nil
			})
		},
	}
	circle.Flags().BoolVar(&opts.box, "box", false, "arguments are a bounding box x0 y0 x1 y1")

	rect := &cobra.Command{
		Use:     "rect <id> <x0> <y0> <x1> <y1>",
		Aliases: []string{"rectangle"},
		Short:   "Add a rectangle by two opposite corners",
		Args:    cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseNums(args[1:])
			if err != nil {
				return err
			}
			return c.addShape(cmd, args[0], opts, func(d *shape.Drawing, col color.RGBA) (shape.Shape, error) {
				x0, y0, x1, y1 := shape.NormalizeBox(nums[0], nums[1], nums[2], nums[3])
				return d.Rectangle(x0, y0, x1, y1, col), nil
			})
		},
	}

	line := &cobra.Command{
		Use:   "line <id> <x0> <y0> <x1> <y1>",
		Short: "Add a line between two points",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseNums(args[1:])
			if err != nil {
				return err
			}
			return c.addShape(cmd, args[0], opts, func(d *shape.Drawing, col color.RGBA) (shape.Shape, error) {
				return d.Line(nums[0], nums[1], nums[2], nums[3], col), nil
			})
		},
	}

	cmd.AddCommand(circle, rect, line)
	return cmd
}

// addShape loads the drawing, appends the shape built by mk and saves it.
func (c *CLI) addShape(cmd *cobra.Command, id string, opts addOpts, mk func(*shape.Drawing, color.RGBA) (shape.Shape, error)) error {
	ctx := cmd.Context()
	runner, cfg, err := c.newRunner(ctx, true)
	if err != nil {
		return err
	}
	defer runner.Close()

	col := cfg.Color()
	if opts.color != "" {
		if col, err = shape.ParseColor(opts.color); err != nil {
			return err
		}
	}

	var added shape.Shape
	d, err := runner.Update(ctx, id, func(d *shape.Drawing) error {
		s, err := mk(d, col)
		if err != nil {
			return err
		}
		d.Add(s)
		added = s
		return nil
	})
	if err != nil {
		return err
	}

	printSuccess("Added %s #%d to %s", added.Kind(), d.Len()-1, StyleHighlight.Render(id))
	printDetail("centre %s", fmtPoint(added.CenterX(), added.CenterY()))
	return nil
}

// parseNums parses coordinate arguments.
func parseNums(args []string) ([]float64, error) {
	nums := make([]float64, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidArgument, "not a number: %q", a)
		}
		nums[i] = f
	}
	return nums, nil
}

// fmtSize formats a drawing's canvas size.
func fmtSize(d *shape.Drawing) string {
	return fmt.Sprintf("%d × %d", d.Width(), d.Height())
}
