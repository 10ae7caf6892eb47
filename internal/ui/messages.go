package ui

import (
	"maka/internal/domain"
	"maka/internal/services"
)

type buildResultMsg struct {
	result services.BuildResult
	err    error
}

type viewMsg struct {
	node *domain.Node
	err  error
}

type removeResultMsg struct {
	result services.RemoveResult
	err    error
}
