package services

import (
	"context"

	"maka/internal/domain"
)

type Scanner interface {
	BuildCache(ctx context.Context, req BuildRequest) (BuildResult, error)
	View(ctx context.Context, req ViewRequest) (*domain.Node, error)
}

type Remover interface {
	Remove(ctx context.Context, req RemoveRequest) (RemoveResult, error)
}

type RootLister interface {
	ListRoots() ([]string, error)
}

type StatsProvider interface {
	ErrorStats() (permission, notFound uint64)
	ResetErrorStats()
}
