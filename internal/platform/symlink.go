package platform

import (
	"os"

	"github.com/pkg/errors"
)

// IsSymlink reports whether path is a symbolic link. The link itself is
// inspected, never its target.
func IsSymlink(path string) (bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return false, err
	}
	return info.Mode()&os.ModeSymlink != 0, nil
}

// CreateSymlink creates link pointing at target. target is stored verbatim,
// so relative targets are resolved against the link's directory.
func CreateSymlink(target, link string) error {
	if err := os.Symlink(target, link); err != nil {
		return errors.Wrapf(err, "failed to link %s -> %s", link, target)
	}
	return nil
}

// ReadSymlinkTarget returns the stored target of a symlink
func ReadSymlinkTarget(path string) (string, error) {
	target, err := os.Readlink(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read link %s", path)
	}
	return target, nil
}
