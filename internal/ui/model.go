package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"maka/internal/services"
	"maka/internal/state"
)

// viewDepth is how much tree one screen needs: the current directory plus
// its immediate children. Deeper levels stay in the cache until the user
// descends, so navigation never waits on more than one resolve.
const viewDepth = 1

type Model struct {
	session    *state.State
	scanner    services.Scanner
	remover    services.Remover
	stats      services.StatsProvider
	keys       KeyMap
	status     string
	scanning   bool
	confirming bool
	showHelp   bool
	width      int
	height     int
	viewTop    int
}

func NewModel(session *state.State, scanner services.Scanner, remover services.Remover, stats services.StatsProvider) Model {
	return Model{
		session:  session,
		scanner:  scanner,
		remover:  remover,
		stats:    stats,
		keys:     DefaultKeyMap(),
		status:   "Scanning...",
		scanning: true,
		width:    100,
		height:   30,
	}
}

func (model Model) Init() tea.Cmd {
	return buildCmd(model.scanner, model.session.Root)
}

func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		model.width = msg.Width
		model.height = msg.Height
		return model, nil

	case buildResultMsg:
		model.scanning = false
		if msg.err != nil {
			model.status = fmt.Sprintf("Scan failed: %v", msg.err)
			return model, nil
		}
		model.status = fmt.Sprintf("Scanned %s in %s", msg.result.RootPath, msg.result.Duration.Round(time.Millisecond))
		return model, viewCmd(model.scanner, model.session.Current)

	case viewMsg:
		if msg.err != nil {
			model.status = fmt.Sprintf("View failed: %v", msg.err)
			return model, nil
		}
		model.scanning = false
		model.session.SetView(msg.node)
		model.viewTop = 0
		return model, nil

	case removeResultMsg:
		model.confirming = false
		if msg.err != nil {
			model.status = fmt.Sprintf("Delete failed: %v", msg.err)
			return model, nil
		}
		model.status = fmt.Sprintf("Deleted %d item(s), %d failed", msg.result.SuccessCount, msg.result.FailureCount)
		model.session.ClearSelection()
		// Deleted paths leave the cache stale; rebuild from the root.
		model.scanning = true
		return model, buildCmd(model.scanner, model.session.Root)

	case tea.KeyMsg:
		return model.handleKey(msg)
	}

	return model, nil
}

func (model Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if model.confirming {
		switch {
		case key.Matches(msg, model.keys.Confirm):
			paths := model.session.SelectedPaths()
			model.status = "Deleting..."
			return model, removeCmd(model.remover, paths)
		case key.Matches(msg, model.keys.Cancel):
			model.confirming = false
			model.status = "Delete cancelled"
			return model, nil
		}
		return model, nil
	}

	switch {
	case key.Matches(msg, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(msg, model.keys.Help):
		model.showHelp = !model.showHelp
		return model, nil

	case key.Matches(msg, model.keys.Up):
		model.session.MoveCursor(-1)
		model.clampScroll()
		return model, nil

	case key.Matches(msg, model.keys.Down):
		model.session.MoveCursor(1)
		model.clampScroll()
		return model, nil

	case key.Matches(msg, model.keys.Enter):
		if model.session.Descend() {
			return model, viewCmd(model.scanner, model.session.Current)
		}
		return model, nil

	case key.Matches(msg, model.keys.Back):
		if model.session.Ascend() {
			return model, viewCmd(model.scanner, model.session.Current)
		}
		return model, nil

	case key.Matches(msg, model.keys.Select):
		model.session.ToggleSelect()
		model.session.MoveCursor(1)
		model.clampScroll()
		return model, nil

	case key.Matches(msg, model.keys.Delete):
		if len(model.session.Selected) == 0 {
			model.status = "Nothing selected"
			return model, nil
		}
		model.confirming = true
		model.status = fmt.Sprintf("Delete %d item(s)? (y/n)", len(model.session.Selected))
		return model, nil

	case key.Matches(msg, model.keys.Rescan):
		model.scanning = true
		model.status = "Rescanning..."
		return model, buildCmd(model.scanner, model.session.Root)
	}

	return model, nil
}

func (model *Model) clampScroll() {
	visible := model.listHeight()
	if model.session.Cursor < model.viewTop {
		model.viewTop = model.session.Cursor
	}
	if model.session.Cursor >= model.viewTop+visible {
		model.viewTop = model.session.Cursor - visible + 1
	}
	if model.viewTop < 0 {
		model.viewTop = 0
	}
}

func buildCmd(scanner services.Scanner, root string) tea.Cmd {
	return func() tea.Msg {
		result, err := scanner.BuildCache(context.Background(), services.BuildRequest{RootPath: root})
		return buildResultMsg{result: result, err: err}
	}
}

func viewCmd(scanner services.Scanner, path string) tea.Cmd {
	return func() tea.Msg {
		node, err := scanner.View(context.Background(), services.ViewRequest{Path: path, MaxDepth: viewDepth})
		return viewMsg{node: node, err: err}
	}
}

func removeCmd(remover services.Remover, paths []string) tea.Cmd {
	return func() tea.Msg {
		result, err := remover.Remove(context.Background(), services.RemoveRequest{Paths: paths})
		return removeResultMsg{result: result, err: err}
	}
}
