package fsdurable

import (
	"os"
	"path/filepath"

	"github.com/vastcore/vast/pkg/vasterr"
)

// SyncTree fsyncs every regular file and every directory (including root
// itself) under root, walking depth-first so a directory's entries are
// durable before the directory's own metadata is synced. Component
// subdirectories are created lazily by whichever component owns them
// (archive, index, ...); SyncTree doesn't know or care which exist, it
// just walks whatever is there.
func SyncTree(root string) error {
	var files, dirs []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			dirs = append(dirs, path)
		} else {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return vasterr.Wrap(vasterr.IOError, "walk node base directory", err)
	}

	for _, path := range files {
		if err := syncFile(path); err != nil {
			return vasterr.Wrap(vasterr.IOError, "sync "+path, err)
		}
	}
	for i := len(dirs) - 1; i >= 0; i-- {
		if err := syncDir(dirs[i]); err != nil {
			return vasterr.Wrap(vasterr.IOError, "sync directory "+dirs[i], err)
		}
	}
	return nil
}

func syncFile(path string) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		if os.IsPermission(err) {
			f, err = os.Open(path)
		}
		if err != nil {
			return err
		}
	}
	defer f.Close()
	return fdatasync(int(f.Fd()))
}

func syncDir(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return fdatasync(int(f.Fd()))
}
