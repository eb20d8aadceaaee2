package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/drawshop/pkg/shape"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the "browse" command, an interactive list of a
// drawing's top-level shapes.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "browse <id>",
		Short:             "Interactively inspect and prune a drawing",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeDrawingIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdout) {
				printWarning("browse needs an interactive terminal")
				printNextStep("List the shapes instead", "drawshop info "+args[0])
				return nil
			}

			ctx := cmd.Context()
			runner, _, err := c.newRunner(ctx, true)
			if err != nil {
				return err
			}
			defer runner.Close()

			id := args[0]
			d, err := runner.Load(ctx, id)
			if err != nil {
				return err
			}

			final, err := tea.NewProgram(NewShapeListModel(id, d)).Run()
			if err != nil {
				return fmt.Errorf("browse: %w", err)
			}
			m := final.(ShapeListModel)
			if !m.Saved {
				if m.Dirty {
					printWarning("Discarded %d removal(s)", m.Removed)
				}
				return nil
			}
			if err := runner.Save(ctx, id, m.Drawing); err != nil {
				return err
			}
			printSuccess("Saved %s", StyleHighlight.Render(id))
			printStats(shape.Count(m.Drawing), false)
			return nil
		},
	}
}

// =============================================================================
// ShapeListModel - Interactive shape list
// =============================================================================

// ShapeListModel is the bubbletea model behind "drawshop browse". It edits
// Drawing in place; the caller persists it when Saved is set.
type ShapeListModel struct {
	ID      string
	Drawing *shape.Drawing
	Cursor  int
	Height  int
	Offset  int
	Removed int
	Dirty   bool
	Saved   bool
}

// NewShapeListModel creates a shape list for d.
func NewShapeListModel(id string, d *shape.Drawing) ShapeListModel {
	return ShapeListModel{ID: id, Drawing: d, Height: 15}
}

func (m ShapeListModel) Init() tea.Cmd {
	return nil
}

func (m ShapeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "s", "enter":
			m.Saved = true
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < m.Drawing.Len()-1 {
				m.Cursor++
			}
		case "d", "x", "delete":
			if _, ok := m.Drawing.RemoveAt(m.Cursor); ok {
				m.Removed++
				m.Dirty = true
				if m.Cursor >= m.Drawing.Len() && m.Cursor > 0 {
					m.Cursor--
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
	}
	m.scroll()
	return m, nil
}

// scroll keeps the cursor inside the visible window.
func (m *ShapeListModel) scroll() {
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m ShapeListModel) View() string {
	var b strings.Builder

	title := m.ID
	if m.Dirty {
		title += " *"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString(" " + listDimStyle.Render(fmtSize(m.Drawing)+" · "+m.Drawing.Style().DisplayName()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  d remove  s save  q quit"))
	b.WriteString("\n\n")

	n := m.Drawing.Len()
	if n == 0 {
		b.WriteString(listDimStyle.Render("  (no shapes)"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, n)
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		s := m.Drawing.At(i)
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		col := "—"
		if cs, ok := s.(shape.Colored); ok {
			col = shape.FormatColor(cs.Color())
		}
		rows = append(rows, []string{cursor, strconv.Itoa(i), s.Kind().String(), fmtPoint(s.CenterX(), s.CenterY()), col})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Kind", "Centre", "Color").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			if col == 4 {
				return listDimStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, n)))

	return b.String()
}
