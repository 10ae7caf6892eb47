package state

import (
	"path/filepath"

	"maka/internal/config"
	"maka/internal/domain"
)

type Preferences struct {
	ShowHidden bool
}

// State holds one browser session: the scan root, the directory currently
// on screen (as a depth-limited view), cursor position, and the paths the
// user has marked for deletion.
type State struct {
	Root     string
	Current  string
	Cursor   int
	Selected map[string]bool
	Prefs    Preferences
	View     *domain.Node
}

func NewState(cfg config.Config) *State {
	return &State{
		Root:     cfg.Path,
		Current:  cfg.Path,
		Selected: make(map[string]bool),
		Prefs: Preferences{
			ShowHidden: cfg.ShowHidden,
		},
	}
}

// SetView installs a fresh view for the current directory and clamps the
// cursor into range.
func (session *State) SetView(view *domain.Node) {
	session.View = view
	if view == nil {
		session.Cursor = 0
		return
	}
	if session.Cursor >= len(view.Children) {
		session.Cursor = len(view.Children) - 1
	}
	if session.Cursor < 0 {
		session.Cursor = 0
	}
}

// CursorNode returns the child under the cursor, or nil when the view is
// empty.
func (session *State) CursorNode() *domain.Node {
	if session.View == nil || len(session.View.Children) == 0 {
		return nil
	}
	if session.Cursor < 0 || session.Cursor >= len(session.View.Children) {
		return nil
	}
	return session.View.Children[session.Cursor]
}

func (session *State) MoveCursor(delta int) {
	if session.View == nil || len(session.View.Children) == 0 {
		session.Cursor = 0
		return
	}
	session.Cursor += delta
	if session.Cursor < 0 {
		session.Cursor = 0
	}
	if session.Cursor >= len(session.View.Children) {
		session.Cursor = len(session.View.Children) - 1
	}
}

// Descend moves the session into the directory under the cursor. The
// caller re-resolves the view afterwards.
func (session *State) Descend() bool {
	node := session.CursorNode()
	if node == nil || !node.IsDir {
		return false
	}
	session.Current = node.Path
	session.Cursor = 0
	return true
}

// Ascend moves one level up, stopping at the scan root.
func (session *State) Ascend() bool {
	if session.Current == session.Root {
		return false
	}
	parent := filepath.Dir(session.Current)
	session.Current = parent
	session.Cursor = 0
	return true
}

func (session *State) ToggleSelect() {
	node := session.CursorNode()
	if node == nil {
		return
	}
	if session.Selected[node.Path] {
		delete(session.Selected, node.Path)
		return
	}
	session.Selected[node.Path] = true
}

func (session *State) SelectedPaths() []string {
	paths := make([]string, 0, len(session.Selected))
	for path := range session.Selected {
		paths = append(paths, path)
	}
	return paths
}

func (session *State) ClearSelection() {
	session.Selected = make(map[string]bool)
}
