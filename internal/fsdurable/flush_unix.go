//go:build linux || freebsd

package fsdurable

import "golang.org/x/sys/unix"

// fdatasync syncs fd's data (and, for a directory fd, its entries) to disk.
func fdatasync(fd int) error {
	return unix.Fdatasync(fd)
}
