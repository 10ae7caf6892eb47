//go:build !windows

package services

import (
	"io/fs"
	"syscall"

	"maka/internal/domain"
)

func identityOf(info fs.FileInfo) *domain.Identity {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return nil
	}
	return &domain.Identity{
		Dev: uint64(stat.Dev),
		Ino: uint64(stat.Ino),
	}
}
