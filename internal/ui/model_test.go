package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maka/internal/config"
	"maka/internal/services"
	"maka/internal/state"
)

type stubRemover struct {
	requested []string
}

func (remover *stubRemover) Remove(ctx context.Context, req services.RemoveRequest) (services.RemoveResult, error) {
	remover.requested = append(remover.requested, req.Paths...)
	return services.RemoveResult{SuccessCount: len(req.Paths)}, nil
}

type stubStats struct{}

func (stubStats) ErrorStats() (uint64, uint64) { return 0, 0 }
func (stubStats) ResetErrorStats()             {}

func newTestModel(t *testing.T) (Model, *services.MockScanner) {
	t.Helper()
	scanner := services.NewMockScanner()
	session := state.NewState(config.Config{Path: "/mock"})
	return NewModel(session, scanner, &stubRemover{}, stubStats{}), scanner
}

func TestViewMessageInstallsListing(t *testing.T) {
	model, scanner := newTestModel(t)

	node, err := scanner.View(context.Background(), services.ViewRequest{Path: "/mock", MaxDepth: 1})
	require.NoError(t, err)

	updated, _ := model.Update(viewMsg{node: node})
	model = updated.(Model)

	require.NotNil(t, model.session.View)
	assert.Len(t, model.session.View.Children, 2)
	assert.Contains(t, model.View(), "big.bin")
}

func TestNavigationKeys(t *testing.T) {
	model, scanner := newTestModel(t)
	node, err := scanner.View(context.Background(), services.ViewRequest{Path: "/mock", MaxDepth: 1})
	require.NoError(t, err)
	updated, _ := model.Update(viewMsg{node: node})
	model = updated.(Model)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model = updated.(Model)
	assert.Equal(t, 1, model.session.Cursor)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	model = updated.(Model)
	assert.Equal(t, 0, model.session.Cursor)
}

func TestDeleteRequiresSelection(t *testing.T) {
	model, scanner := newTestModel(t)
	node, err := scanner.View(context.Background(), services.ViewRequest{Path: "/mock", MaxDepth: 1})
	require.NoError(t, err)
	updated, _ := model.Update(viewMsg{node: node})
	model = updated.(Model)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	model = updated.(Model)
	assert.False(t, model.confirming)
	assert.Equal(t, "Nothing selected", model.status)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeySpace})
	model = updated.(Model)
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	model = updated.(Model)
	assert.True(t, model.confirming)
}

func TestBuildFailureSurfacesInStatus(t *testing.T) {
	model, _ := newTestModel(t)

	updated, _ := model.Update(buildResultMsg{err: context.DeadlineExceeded})
	model = updated.(Model)
	assert.Contains(t, model.status, "Scan failed")
}
