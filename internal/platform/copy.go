package platform

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// SyncDir makes dst an exact copy of the directory src.
//
// Overwrite policy: whatever exists at dst is removed first, so the result
// never merges with earlier contents. Symbolic links inside src (and src
// itself) are dereferenced, so dst contains only regular files and
// directories. A link cycle inside src is an error.
func SyncDir(src, dst string) error {
	realSrc, err := filepath.EvalSymlinks(src)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve %s", src)
	}
	info, err := os.Stat(realSrc)
	if err != nil {
		return errors.Wrapf(err, "failed to stat %s", src)
	}
	if !info.IsDir() {
		return errors.Errorf("%s is not a directory", src)
	}

	if sameEntry(info, dst) {
		return errors.Errorf("refusing to sync %s onto itself", src)
	}

	if err := os.RemoveAll(dst); err != nil {
		return errors.Wrapf(err, "failed to remove %s", dst)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create %s", filepath.Dir(dst))
	}

	return copyTree(realSrc, dst, map[string]bool{})
}

// copyTree copies the directory realSrc into dst. active holds the real
// paths of the directories currently being copied.
func copyTree(realSrc, dst string, active map[string]bool) error {
	if active[realSrc] {
		return errors.Errorf("symlink cycle at %s", realSrc)
	}
	active[realSrc] = true
	defer delete(active, realSrc)

	info, err := os.Stat(realSrc)
	if err != nil {
		return errors.Wrapf(err, "failed to stat %s", realSrc)
	}
	if err := os.MkdirAll(dst, info.Mode().Perm()|0o700); err != nil {
		return errors.Wrapf(err, "failed to create %s", dst)
	}

	entries, err := os.ReadDir(realSrc)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", realSrc)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(realSrc, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.Type()&os.ModeSymlink != 0 {
			resolved, err := filepath.EvalSymlinks(srcPath)
			if err != nil {
				return errors.Wrapf(err, "failed to resolve %s", srcPath)
			}
			srcPath = resolved
		}

		entryInfo, err := os.Stat(srcPath)
		if err != nil {
			return errors.Wrapf(err, "failed to stat %s", srcPath)
		}

		switch {
		case entryInfo.IsDir():
			if err := copyTree(srcPath, dstPath, active); err != nil {
				return err
			}
		case entryInfo.Mode().IsRegular():
			if err := copyRegular(srcPath, dstPath, entryInfo.Mode().Perm()); err != nil {
				return err
			}
		}
		// Sockets, devices and pipes are not part of a distributable tree.
	}

	return nil
}

// CopyFile copies the content of src to dst, following src if it is a
// symbolic link. Anything already at dst (including a link) is replaced
// rather than written through. The source permission bits are kept.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return errors.Wrapf(err, "failed to stat %s", src)
	}
	if !info.Mode().IsRegular() {
		return errors.Errorf("%s is not a regular file", src)
	}
	if sameEntry(info, dst) {
		return errors.Errorf("refusing to copy %s onto itself", src)
	}
	if err := os.RemoveAll(dst); err != nil {
		return errors.Wrapf(err, "failed to replace %s", dst)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create %s", filepath.Dir(dst))
	}
	return copyRegular(src, dst, info.Mode().Perm())
}

// CopyPath copies a file or a directory tree from src to dst using SyncDir
// or CopyFile. Links are followed.
func CopyPath(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return errors.Wrapf(err, "failed to stat %s", src)
	}
	if info.IsDir() {
		return SyncDir(src, dst)
	}
	return CopyFile(src, dst)
}

// sameEntry reports whether dst itself (not a link to it) is the source.
// Removing a link that points at the source is fine; removing the source is not.
func sameEntry(srcInfo os.FileInfo, dst string) bool {
	dstInfo, err := os.Lstat(dst)
	if err != nil {
		return false
	}
	return os.SameFile(srcInfo, dstInfo)
}

func copyRegular(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", src)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Wrapf(err, "failed to copy %s to %s", src, dst)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, "failed to write %s", dst)
	}
	// OpenFile is subject to the umask; keep the source bits exactly.
	return os.Chmod(dst, perm)
}
