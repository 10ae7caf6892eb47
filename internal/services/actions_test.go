package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveFilesAndDirectories(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "file.bin")
	writeFile(t, file, 10)
	dir := filepath.Join(root, "dir")
	writeFile(t, filepath.Join(dir, "nested", "deep.bin"), 10)

	remover := NewFSRemover()
	result, err := remover.Remove(context.Background(), RemoveRequest{Paths: []string{file, dir}})
	require.NoError(t, err)

	assert.Equal(t, 2, result.SuccessCount)
	assert.Zero(t, result.FailureCount)
	assert.NoFileExists(t, file)
	assert.NoDirExists(t, dir)
}

func TestRemoveSkipsMissingPaths(t *testing.T) {
	remover := NewFSRemover()
	result, err := remover.Remove(context.Background(), RemoveRequest{
		Paths: []string{filepath.Join(t.TempDir(), "already-gone")},
	})
	require.NoError(t, err)
	assert.Zero(t, result.SuccessCount)
	assert.Zero(t, result.FailureCount)
	assert.Empty(t, result.Errors)
}

func TestRemoveContinuesPastFailures(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits do not apply to root")
	}

	root := t.TempDir()
	locked := filepath.Join(root, "locked")
	inner := filepath.Join(locked, "inner.bin")
	writeFile(t, inner, 10)
	require.NoError(t, os.Chmod(locked, 0o500))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	survivor := filepath.Join(root, "survivor.bin")
	writeFile(t, survivor, 10)

	remover := NewFSRemover()
	result, err := remover.Remove(context.Background(), RemoveRequest{Paths: []string{inner, survivor}})
	require.NoError(t, err)

	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
	assert.NotEmpty(t, result.Errors)
	assert.NoFileExists(t, survivor)
}

func TestRemoveHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	file := filepath.Join(t.TempDir(), "file.bin")
	writeFile(t, file, 10)

	remover := NewFSRemover()
	_, err := remover.Remove(ctx, RemoveRequest{Paths: []string{file}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.FileExists(t, file)
}
