package catalog

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// MatchHook reports whether a file name inside the hooks directory is a hook
func (l Layout) MatchHook(name string) bool {
	pattern := l.HookPattern
	if pattern == "" {
		return false
	}
	ok, err := doublestar.Match(pattern, name)
	return err == nil && ok
}

// DiscoverHooks lists the hook file names in the layout's hooks directory
// under root, in directory order. A layout without hooks, or a hooks
// directory that does not exist, yields no hooks and no error.
func DiscoverHooks(root string, l Layout) ([]string, error) {
	if l.HooksDir == "" {
		return nil, nil
	}
	if !doublestar.ValidatePattern(l.HookPattern) {
		return nil, errors.Errorf("invalid hook pattern %q", l.HookPattern)
	}

	dir := filepath.Join(root, l.HooksDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read hooks directory %s", l.HooksDir)
	}

	var hooks []string
	for _, entry := range entries {
		if entry.IsDir() || !l.MatchHook(entry.Name()) {
			continue
		}
		hooks = append(hooks, entry.Name())
	}
	return hooks, nil
}
