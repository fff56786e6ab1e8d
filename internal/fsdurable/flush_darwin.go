//go:build darwin

package fsdurable

import "golang.org/x/sys/unix"

// fdatasync syncs fd to disk. macOS has no fdatasync; F_FULLFSYNC gives the
// strongest durability guarantee (past the drive's write cache), matching
// hive/dirty's choice for header/metadata flushes.
func fdatasync(fd int) error {
	_, err := unix.FcntlInt(uintptr(fd), unix.F_FULLFSYNC, 0)
	return err
}
