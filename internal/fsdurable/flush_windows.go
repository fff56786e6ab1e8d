//go:build windows

package fsdurable

import "golang.org/x/sys/windows"

// fdatasync syncs fd to disk via FlushFileBuffers, which also works on
// directory handles opened with FILE_FLAG_BACKUP_SEMANTICS as os.Open does
// internally on Windows.
func fdatasync(fd int) error {
	return windows.FlushFileBuffers(windows.Handle(fd))
}
