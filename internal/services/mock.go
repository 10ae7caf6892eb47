package services

import (
	"context"
	"time"

	"maka/internal/domain"
)

// MockScanner serves a canned tree, for wiring the shell without touching
// the filesystem.
type MockScanner struct {
	Tree *domain.Node
}

func NewMockScanner() *MockScanner {
	root := &domain.Node{
		Name: "mock", Path: "/mock", IsDir: true, Size: 3072,
		ChildCount: 2, Visible: true,
		Children: []*domain.Node{
			{Name: "big.bin", Path: "/mock/big.bin", Size: 2048, Visible: true},
			{Name: "small.bin", Path: "/mock/small.bin", Size: 1024, Visible: true},
		},
	}
	return &MockScanner{Tree: root}
}

func (scanner *MockScanner) BuildCache(ctx context.Context, req BuildRequest) (BuildResult, error) {
	select {
	case <-ctx.Done():
		return BuildResult{}, ctx.Err()
	case <-time.After(50 * time.Millisecond):
	}
	return BuildResult{RootPath: req.RootPath, Duration: 50 * time.Millisecond}, nil
}

func (scanner *MockScanner) View(ctx context.Context, req ViewRequest) (*domain.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return limitDepth(scanner.Tree, req.MaxDepth), nil
}
