package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	ferrors "github.com/matzehuels/fontlink/pkg/errors"
	"github.com/matzehuels/fontlink/pkg/fonts"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// pickCommand lets the user choose a subset of a manifest's families.
func (c *CLI) pickCommand() *cobra.Command {
	var (
		in  inputOpts
		tag bool
	)

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Interactively choose families from a manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			families, err := loadFamilies(cmd.Context(), nil, in)
			if err != nil {
				return err
			}

			final, err := tea.NewProgram(NewFamilyPickerModel(families),
				tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.ErrOrStderr())).Run()
			if err != nil {
				return err
			}
			m := final.(FamilyPickerModel)
			if !m.Confirmed {
				return nil
			}
			chosen := m.SelectedFamilies()
			if len(chosen) == 0 {
				printWarning(cmd.ErrOrStderr(), "No families selected")
				return ferrors.New(ferrors.ErrCodeEmptyInput, "no families selected")
			}

			url, err := compile(cmd.Context(), chosen)
			if err != nil {
				return err
			}
			printSuccess(cmd.ErrOrStderr(), "Selected %d of %d families", len(chosen), len(families))
			if tag {
				fmt.Fprintln(cmd.OutOrStdout(), fonts.LinkTag(url))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), url)
			}
			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().BoolVar(&tag, "tag", false, "print a <link> tag instead of the URL")
	return cmd
}

// =============================================================================
// FamilyPickerModel - Interactive family selection
// =============================================================================

// FamilyPickerModel is the bubbletea model for choosing families.
// Every family starts selected.
type FamilyPickerModel struct {
	Families  []fonts.Family
	Selected  []bool
	Cursor    int
	Height    int
	Offset    int
	Confirmed bool
}

// NewFamilyPickerModel creates a picker with all families selected.
func NewFamilyPickerModel(families []fonts.Family) FamilyPickerModel {
	selected := make([]bool, len(families))
	for i := range selected {
		selected[i] = true
	}
	return FamilyPickerModel{
		Families: families,
		Selected: selected,
		Height:   15,
	}
}

// SelectedFamilies returns the chosen families in manifest order.
func (m FamilyPickerModel) SelectedFamilies() []fonts.Family {
	var out []fonts.Family
	for i, f := range m.Families {
		if m.Selected[i] {
			out = append(out, f)
		}
	}
	return out
}

func (m FamilyPickerModel) Init() tea.Cmd {
	return nil
}

func (m FamilyPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Families)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ", "x":
			if len(m.Families) > 0 {
				m.Selected = toggled(m.Selected, m.Cursor)
			}
		case "a":
			all := !allSet(m.Selected)
			sel := make([]bool, len(m.Selected))
			for i := range sel {
				sel[i] = all
			}
			m.Selected = sel
		case "enter":
			m.Confirmed = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m FamilyPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Font Families"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  a all  ⏎ confirm  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Families))
	for i := m.Offset; i < end; i++ {
		f := m.Families[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		check := "[ ]"
		if m.Selected[i] {
			check = StyleSuccess.Render("[x]")
		}
		style := fonts.Style(f)
		line := fmt.Sprintf("%s%s %-28s  %s", cursor, check, f.Name, listDimStyle.Render(style))

		switch {
		case i == m.Cursor:
			b.WriteString(listSelectedStyle.Render(line))
		case m.Selected[i]:
			b.WriteString(listNormalStyle.Render(line))
		default:
			b.WriteString(listDimStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d selected]", countSet(m.Selected), len(m.Families))))
	return b.String()
}

// toggled returns a copy of sel with index i flipped so earlier model
// values stay untouched.
func toggled(sel []bool, i int) []bool {
	out := append([]bool(nil), sel...)
	out[i] = !out[i]
	return out
}

func allSet(sel []bool) bool {
	return countSet(sel) == len(sel)
}

func countSet(sel []bool) int {
	n := 0
	for _, s := range sel {
		if s {
			n++
		}
	}
	return n
}
