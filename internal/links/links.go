// Package links converts a source tree between its development form, where
// skills and agents shared by several distributions are symbolic links to a
// single authoritative copy, and its packaged form, where every such link has
// been replaced by a real copy because the packaging tool drops links.
//
// Resolve runs before packing and Restore runs after. Restore needs no record
// of what Resolve did: the link topology is re-derived from the catalog and
// catalog.LinkTarget.
package links

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/acedergren/agentic-tools/internal/catalog"
	"github.com/acedergren/agentic-tools/internal/logger"
	"github.com/acedergren/agentic-tools/internal/platform"
)

// Link is a symbolic link found directly inside one of the scanned directories
type Link struct {
	Path   string // relative to the root, e.g. "skills/tdd"
	Target string // stored link target
}

// Scan lists the symbolic links that are immediate entries of root/dir for
// each dir. Missing directories are skipped.
func Scan(root string, dirs []string) ([]Link, error) {
	var found []Link
	for _, dir := range dirs {
		entries, err := os.ReadDir(filepath.Join(root, dir))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, "failed to read %s", dir)
		}
		for _, entry := range entries {
			if entry.Type()&os.ModeSymlink == 0 {
				continue
			}
			rel := filepath.Join(dir, entry.Name())
			target, err := platform.ReadSymlinkTarget(filepath.Join(root, rel))
			if err != nil {
				return nil, err
			}
			found = append(found, Link{Path: rel, Target: target})
		}
	}
	return found, nil
}

// Resolve replaces every symbolic link directly inside root/dir (for each dir)
// with a full copy of what it points at. Only top-level entries are inspected;
// a directory target is copied recursively with nested links dereferenced, so
// the directories hold no links afterwards.
//
// A link whose target does not exist means the source tree is corrupt. Resolve
// stops at the first one and returns an error; entries resolved before it stay
// resolved. It returns the root-relative paths it resolved.
func Resolve(root string, dirs []string) ([]string, error) {
	links, err := Scan(root, dirs)
	if err != nil {
		return nil, err
	}

	var resolved []string
	for _, l := range links {
		full := filepath.Join(root, l.Path)
		log := logger.L.WithField("path", l.Path).WithField("target", l.Target)

		real, err := filepath.EvalSymlinks(full)
		if err != nil {
			return resolved, errors.Wrapf(err, "cannot resolve %s -> %s", l.Path, l.Target)
		}
		info, err := os.Stat(real)
		if err != nil {
			return resolved, errors.Wrapf(err, "cannot stat target of %s", l.Path)
		}

		if err := os.Remove(full); err != nil {
			return resolved, errors.Wrapf(err, "failed to remove link %s", l.Path)
		}
		if err := platform.CopyPath(real, full); err != nil {
			return resolved, errors.Wrapf(err, "failed to copy %s into %s", real, l.Path)
		}

		log.WithField("dir", info.IsDir()).Debug("resolved link")
		resolved = append(resolved, l.Path)
	}
	return resolved, nil
}

// Restore re-creates the symbolic link for every linked catalog entry under
// root that exists and is not already a link. Missing entries and entries that
// are still links are skipped, so running Restore twice is a no-op. Paths not
// named by the catalog are never touched. It returns the root-relative paths it
// restored.
func Restore(root string, cat catalog.Catalog) ([]string, error) {
	var restored []string
	for _, e := range cat.Linked() {
		full := filepath.Join(root, e.Path)
		log := logger.L.WithField(string(e.Kind), e.Name)

		isLink, err := platform.IsSymlink(full)
		if err != nil {
			if os.IsNotExist(err) {
				log.Debug("not present, skipping")
				continue
			}
			return restored, errors.Wrapf(err, "failed to stat %s", e.Path)
		}
		if isLink {
			log.Debug("already a link, skipping")
			continue
		}

		target, err := e.LinkTarget()
		if err != nil {
			return restored, err
		}
		if err := os.RemoveAll(full); err != nil {
			return restored, errors.Wrapf(err, "failed to remove %s", e.Path)
		}
		if err := platform.CreateSymlink(target, full); err != nil {
			return restored, err
		}

		log.WithField("target", target).Debug("restored link")
		restored = append(restored, e.Path)
	}
	return restored, nil
}
