package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/drawshop/pkg/errors"
	"github.com/matzehuels/drawshop/pkg/pipeline"
	"github.com/matzehuels/drawshop/pkg/shape"
)

// newCommand creates the "new" command, which saves an empty drawing.
func (c *CLI) newCommand() *cobra.Command {
	var (
		width, height int
		style         string
		force         bool
	)

	cmd := &cobra.Command{
		Use:   "new [id]",
		Short: "Create an empty drawing",
		Long: `Create an empty drawing. Without an id a random one is generated.

Canvas size and style default to the [canvas] section of the config file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, cfg, err := c.newRunner(ctx, true)
			if err != nil {
				return err
			}
			defer runner.Close()

			if !cmd.Flags().Changed("width") {
				width = cfg.Canvas.Width
			}
			if !cmd.Flags().Changed("height") {
				height = cfg.Canvas.Height
			}
			st := cfg.Style()
			if style != "" {
				if st, err = shape.ParseStyle(style); err != nil {
					return err
				}
			}

			var id string
			exists := false
			if len(args) == 1 {
				id = args[0]
				if exists, err = runner.Store.Exists(ctx, id); err != nil {
					return err
				}
				if exists && !force {
					return errors.New(errors.ErrCodeInvalidID, "drawing %q already exists (use --force to replace it)", id)
				}
			}

			var d *shape.Drawing
			if exists {
				if d, err = pipeline.NewCanvas(width, height, st); err != nil {
					return err
				}
				if err := runner.Save(ctx, id, d); err != nil {
					return err
				}
			} else if id, d, err = runner.Create(ctx, id, width, height, st); err != nil {
				return err
			}
			printSuccess("Created %s", StyleHighlight.Render(id))
			printKeyValue("Canvas", fmtSize(d))
			printKeyValue("Style", d.Style().DisplayName())
			printNextStep("Add a shape", "drawshop add rect "+id+" 10 10 100 60")
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "canvas width (default from config)")
	cmd.Flags().IntVar(&height, "height", 0, "canvas height (default from config)")
	cmd.Flags().StringVar(&style, "style", "", "drawing style: perfect, handdrawn (default from config)")
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing drawing")

	return cmd
}
