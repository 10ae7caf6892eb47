package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cursorStyle   = lipgloss.NewStyle().Reverse(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dirStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	barStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
)

const barWidth = 12

func (model Model) View() string {
	var builder strings.Builder

	builder.WriteString(titleStyle.Render("Maka — "+model.session.Current) + "\n")

	view := model.session.View
	if model.scanning {
		builder.WriteString(dimStyle.Render("Scanning...") + "\n")
	} else if view == nil || len(view.Children) == 0 {
		builder.WriteString(dimStyle.Render("(empty)") + "\n")
	} else {
		builder.WriteString(dimStyle.Render(fmt.Sprintf("total %s, %d item(s)",
			humanize.Bytes(uint64(view.Size)), view.ChildCount)) + "\n")
		model.renderListing(&builder)
	}

	builder.WriteString("\n" + statusStyle.Render(model.status) + "\n")
	builder.WriteString(model.renderFooter())

	if model.showHelp {
		builder.WriteString("\n" + model.renderHelp())
	}
	return builder.String()
}

func (model Model) renderListing(builder *strings.Builder) {
	view := model.session.View
	visible := model.listHeight()
	end := model.viewTop + visible
	if end > len(view.Children) {
		end = len(view.Children)
	}

	for i := model.viewTop; i < end; i++ {
		child := view.Children[i]

		marker := " "
		if model.session.Selected[child.Path] {
			marker = "*"
		}

		name := child.Name
		if child.IsDir {
			name += "/"
			if child.ChildCount > 0 && len(child.Children) == 0 {
				name += dimStyle.Render(fmt.Sprintf(" (%d items)", child.ChildCount))
			}
		}

		line := fmt.Sprintf("%s %10s %s %s",
			marker,
			humanize.Bytes(uint64(child.Size)),
			barStyle.Render(sizeBar(child.Size, view.Size)),
			renderName(name, child.IsDir))

		if i == model.session.Cursor {
			line = cursorStyle.Render(line)
		} else if model.session.Selected[child.Path] {
			line = selectedStyle.Render(line)
		}
		builder.WriteString(line + "\n")
	}
}

func renderName(name string, isDir bool) string {
	if isDir {
		return dirStyle.Render(name)
	}
	return name
}

func sizeBar(size, total int64) string {
	if total <= 0 {
		return strings.Repeat(" ", barWidth)
	}
	filled := int(float64(size) / float64(total) * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat(" ", barWidth-filled)
}

func (model Model) renderFooter() string {
	permission, notFound := model.stats.ErrorStats()
	footer := fmt.Sprintf("errors: %d permission, %d not found", permission, notFound)
	return dimStyle.Render(footer + "  —  ? for help, q to quit")
}

func (model Model) renderHelp() string {
	keys := model.keys
	lines := []string{
		helpLine(keys.Up), helpLine(keys.Down), helpLine(keys.Enter),
		helpLine(keys.Back), helpLine(keys.Select), helpLine(keys.Delete),
		helpLine(keys.Rescan), helpLine(keys.Quit),
	}
	return dimStyle.Render(strings.Join(lines, "\n"))
}

func helpLine(binding key.Binding) string {
	help := binding.Help()
	return fmt.Sprintf("  %-12s %s", help.Key, help.Desc)
}

// listHeight is how many entries fit between the header and the footer.
func (model Model) listHeight() int {
	height := model.height - 6
	if height < 3 {
		height = 3
	}
	return height
}
