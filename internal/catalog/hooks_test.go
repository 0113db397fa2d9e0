package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout_MatchHook(t *testing.T) {
	l := AgenticTools().Layout()

	assert.True(t, l.MatchHook("pre-commit.sh"))
	assert.False(t, l.MatchHook("README.md"))
	assert.False(t, l.MatchHook("hook.sh.bak"))

	l.HookPattern = "{pre,post}-*.{sh,bash}"
	assert.True(t, l.MatchHook("post-edit.bash"))
	assert.False(t, l.MatchHook("lint.sh"))

	l.HookPattern = ""
	assert.False(t, l.MatchHook("lint.sh"))
}

func TestDiscoverHooks(t *testing.T) {
	root := t.TempDir()
	l := AgenticTools().Layout()
	dir := filepath.Join(root, l.HooksDir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested.sh"), 0o755))
	for _, name := range []string{"b.sh", "a.sh", "README.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"), 0o755))
	}

	hooks, err := DiscoverHooks(root, l)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.sh", "b.sh"}, hooks)
}

func TestDiscoverHooks_NoHooks(t *testing.T) {
	root := t.TempDir()

	hooks, err := DiscoverHooks(root, AgenticTools().Layout())
	require.NoError(t, err)
	assert.Empty(t, hooks, "missing hooks directory yields no hooks")

	hooks, err = DiscoverHooks(root, TeamPipeline().Layout())
	require.NoError(t, err)
	assert.Empty(t, hooks, "layout without hooks yields no hooks")
}

func TestDiscoverHooks_Errors(t *testing.T) {
	root := t.TempDir()
	l := AgenticTools().Layout()

	// The hooks "directory" is a file.
	require.NoError(t, os.MkdirAll(filepath.Dir(filepath.Join(root, l.HooksDir)), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, l.HooksDir), []byte("x"), 0o644))
	_, err := DiscoverHooks(root, l)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read hooks directory")

	l.HookPattern = "[unclosed"
	_, err = DiscoverHooks(t.TempDir(), l)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid hook pattern")
}
