//go:build windows

package services

import (
	"io/fs"

	"maka/internal/domain"
)

// Windows exposes no inode through fs.FileInfo.Sys in a portable way, so
// hard-link deduplication is disabled there: every entry counts.
func identityOf(info fs.FileInfo) *domain.Identity {
	return nil
}
