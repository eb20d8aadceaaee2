package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/drawshop/pkg/shape"
)

// infoCommand creates the "info" command, which prints a drawing's shapes.
func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "info <id>",
		Aliases:           []string{"show"},
		Short:             "Show the shapes of a drawing",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeDrawingIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, _, err := c.newRunner(ctx, true)
			if err != nil {
				return err
			}
			defer runner.Close()

			d, err := runner.Load(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(out, StyleTitle.Render(args[0])+"  "+StyleDim.Render(fmtSize(d)+" · "+d.Style().DisplayName()))
			if d.Len() > 0 {
				fmt.Fprintln(out, shapeTable(d).Render())
			}
			printStats(shape.Count(d), false)
			return nil
		},
	}
}

// listCommand creates the "list" command.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored drawings",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, _, err := c.newRunner(ctx, true)
			if err != nil {
				return err
			}
			defer runner.Close()

			ids, err := runner.Store.List(ctx)
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				printInfo("No drawings in the %s store", runner.Store.Backend().Name())
				printNextStep("Create one", "drawshop new sketch")
				return nil
			}

			rows := make([][]string, 0, len(ids))
			for _, id := range ids {
				d, err := runner.Load(ctx, id)
				if err != nil {
					c.Logger.Warn("skipping unreadable drawing", "id", id, "error", err)
					rows = append(rows, []string{id, "—", "—", "unreadable"})
					continue
				}
				rows = append(rows, []string{id, fmtSize(d), d.Style().String(), strconv.Itoa(d.Len())})
			}
			fmt.Fprintln(out, newTable("Id", "Size", "Style", "Shapes").Rows(rows...).Render())
			return nil
		},
	}
}

// shapeTable lays out every shape of d, indenting group members below
// their group. Top-level shapes carry the index other commands accept.
func shapeTable(d *shape.Drawing) *table.Table {
	var rows [][]string
	var walk func(s shape.Shape, index string, depth int)
	walk = func(s shape.Shape, index string, depth int) {
		name := strings.Repeat("  ", depth) + kindStyle(s.Kind()).Render(s.Kind().String())
		col := "—"
		if cs, ok := s.(shape.Colored); ok {
			col = shape.FormatColor(cs.Color())
		}
		b := s.Bounds()
		bounds := fmtPoint(b.LLx, b.LLy) + " - " + fmtPoint(b.URx, b.URy)
		rows = append(rows, []string{index, name, fmtPoint(s.CenterX(), s.CenterY()), bounds, col})
		if g, ok := s.(*shape.Group); ok {
			for _, m := range g.Shapes() {
				walk(m, "", depth+1)
			}
		}
	}
	for i, s := range d.Shapes() {
		walk(s, strconv.Itoa(i), 0)
	}
	return newTable("#", "Kind", "Centre", "Bounds", "Color").Rows(rows...)
}

func newTable(headers ...string) *table.Table {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		})
}

// completeDrawingIDs offers stored drawing ids for the first argument.
func (c *CLI) completeDrawingIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	runner, _, err := c.newRunner(cmd.Context(), true)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer runner.Close()

	ids, err := runner.Store.List(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var out []string
	for _, id := range ids {
		if strings.HasPrefix(id, toComplete) {
			out = append(out, id)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
