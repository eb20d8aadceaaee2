package cli

import (
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/drawshop/pkg/errors"
	"github.com/matzehuels/drawshop/pkg/shape"
)

// removeCommand creates the "remove" command, which deletes top-level
// shapes by index.
func (c *CLI) removeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id> <index>...",
		Short: "Remove shapes from a drawing by index",
		Long:  `Remove shapes from a drawing. Indices refer to the listing printed by "drawshop info".`,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			indices := make([]int, 0, len(args)-1)
			for _, a := range args[1:] {
				i, err := strconv.Atoi(a)
				if err != nil {
					return errors.New(errors.ErrCodeInvalidArgument, "not an index: %q", a)
				}
				indices = append(indices, i)
			}
			// Remove from the back so earlier indices stay valid.
			slices.Sort(indices)
			indices = slices.Compact(indices)
			slices.Reverse(indices)

			ctx := cmd.Context()
			runner, _, err := c.newRunner(ctx, true)
			if err != nil {
				return err
			}
			defer runner.Close()

			id := args[0]
			d, err := runner.Update(ctx, id, func(d *shape.Drawing) error {
				for _, i := range indices {
					if _, ok := d.RemoveAt(i); !ok {
						return errors.New(errors.ErrCodeIndexOutOfRange, "no shape at index %d (drawing has %d)", i, d.Len())
					}
				}
				return nil
			})
			if err != nil {
				return err
			}
			printSuccess("Removed %d shape(s) from %s", len(indices), StyleHighlight.Render(id))
			printStats(shape.Count(d), false)
			return nil
		},
	}
}

// moveCommand creates the "move" command, which translates a drawing or
// one of its shapes.
func (c *CLI) moveCommand() *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "move <id> <dx> <dy>",
		Short: "Translate every shape (or one with --index)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dx, err1 := strconv.Atoi(args[1])
			dy, err2 := strconv.Atoi(args[2])
			if err1 != nil || err2 != nil {
				return errors.New(errors.ErrCodeInvalidArgument, "offsets must be integers")
			}

			ctx := cmd.Context()
			runner, _, err := c.newRunner(ctx, true)
			if err != nil {
				return err
			}
			defer runner.Close()

			_, err = runner.Update(ctx, args[0], func(d *shape.Drawing) error {
				target, err := pick(d, index)
				if err != nil {
					return err
				}
				target.Move(dx, dy)
				return nil
			})
			if err != nil {
				return err
			}
			printSuccess("Moved %s by (%d, %d)", describeTarget(args[0], index), dx, dy)
			return nil
		},
	}
	cmd.Flags().IntVarP(&index, "index", "i", -1, "move only the shape at this index")
	return cmd
}

// mirrorCommand creates the "mirror" command. Without flags the drawing is
// flipped top to bottom about its centre; -V flips it left to right.
func (c *CLI) mirrorCommand() *cobra.Command {
	var (
		vertical bool
		index    int
	)

	cmd := &cobra.Command{
		Use:               "mirror <id>",
		Short:             "Mirror a drawing (or one shape) about its centre",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeDrawingIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, _, err := c.newRunner(ctx, true)
			if err != nil {
				return err
			}
			defer runner.Close()

			id := args[0]
			if index < 0 {
				if _, err := runner.Mirror(ctx, id, vertical); err != nil {
					return err
				}
			} else {
				_, err = runner.Update(ctx, id, func(d *shape.Drawing) error {
					s, err := pick(d, index)
					if err != nil {
						return err
					}
					if vertical {
						s.MirrorX(s.CenterX())
					} else {
						s.MirrorY(s.CenterY())
					}
					return nil
				})
				if err != nil {
					return err
				}
			}

			axis := "horizontal"
			if vertical {
				axis = "vertical"
			}
			printSuccess("Mirrored %s about the %s axis", describeTarget(id, index), axis)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&vertical, "vertical", "V", false, "mirror across the vertical axis (flip left to right)")
	cmd.Flags().IntVarP(&index, "index", "i", -1, "mirror only the shape at this index, about its own centre")
	return cmd
}

// standardizeCommand creates the "standardize" command, which converts a
// hand-drawn drawing into its perfect version.
func (c *CLI) standardizeCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "standardize <id>",
		Short: "Convert a drawing to the perfect style",
		Long: `Convert every shape of a drawing to its perfect counterpart.

The result replaces the drawing unless --output names another id.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeDrawingIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, _, err := c.newRunner(ctx, true)
			if err != nil {
				return err
			}
			defer runner.Close()

			std, err := runner.Standardize(ctx, args[0], output)
			if err != nil {
				return err
			}
			target := output
			if target == "" {
				target = args[0]
			}
			printSuccess("Saved %s as %s", StyleHighlight.Render(target), std.Style().DisplayName())
			printStats(shape.Count(std), false)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "save under this id instead of replacing the drawing")
	return cmd
}

// areaCommand creates the "area" command.
func (c *CLI) areaCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "area <id>",
		Short:             "Print the total area of a perfect drawing",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeDrawingIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, _, err := c.newRunner(ctx, true)
			if err != nil {
				return err
			}
			defer runner.Close()

			area, err := runner.Area(ctx, args[0])
			if err != nil {
				if errors.Is(err, errors.ErrCodeInvalidArgument) {
					printNextStep("Convert it first", "drawshop standardize "+args[0]+" -o "+args[0]+"-std")
				}
				return err
			}
			printKeyValue("Area", StyleNumber.Render(fmtNum(area)))
			return nil
		},
	}
}

// deleteCommand creates the "delete" command, which removes a stored drawing.
func (c *CLI) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>...",
		Aliases: []string{"rm"},
		Short:   "Delete stored drawings",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, _, err := c.newRunner(ctx, true)
			if err != nil {
				return err
			}
			defer runner.Close()

			for _, id := range args {
				if err := runner.Store.Delete(ctx, id); err != nil {
					return err
				}
				printSuccess("Deleted %s", id)
			}
			return nil
		},
	}
}

// pick returns the top-level shape at index, or the drawing itself when
// index is negative.
func pick(d *shape.Drawing, index int) (shape.Shape, error) {
	if index < 0 {
		return d, nil
	}
	s := d.At(index)
	if s == nil {
		return nil, errors.New(errors.ErrCodeIndexOutOfRange, "no shape at index %d (drawing has %d)", index, d.Len())
	}
	return s, nil
}

func describeTarget(id string, index int) string {
	if index < 0 {
		return StyleHighlight.Render(id)
	}
	return StyleHighlight.Render(id) + " #" + strconv.Itoa(index)
}
