package links

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acedergren/agentic-tools/internal/catalog"
)

// repoFixture builds a repository with authoritative skills/ and
// claude/agents/ at the top and a team-pipeline/ package whose skills and
// agents link back to them. It returns the repository and package roots.
func repoFixture(t *testing.T) (repo, pkg string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need developer mode on Windows")
	}

	repo = t.TempDir()
	pkg = filepath.Join(repo, "team-pipeline")

	for _, f := range []string{"SKILL.md", "checklist.md", "refs/examples.md"} {
		writeFile(t, filepath.Join(repo, "skills", "tdd", f), "tdd "+f)
	}
	writeFile(t, filepath.Join(repo, "skills", "prd", "SKILL.md"), "prd")
	writeFile(t, filepath.Join(repo, "claude", "agents", "mock-debugger.md"), "mock debugger")

	require.NoError(t, os.MkdirAll(filepath.Join(pkg, "skills"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(pkg, "agents"), 0o755))
	link(t, filepath.Join("..", "..", "skills", "tdd"), filepath.Join(pkg, "skills", "tdd"))
	link(t, filepath.Join("..", "..", "skills", "prd"), filepath.Join(pkg, "skills", "prd"))
	link(t, filepath.Join("..", "..", "claude", "agents", "mock-debugger.md"), filepath.Join(pkg, "agents", "mock-debugger.md"))
	return repo, pkg
}

func link(t *testing.T, target, path string) {
	t.Helper()
	require.NoError(t, os.Symlink(target, path))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func isLink(t *testing.T, path string) bool {
	t.Helper()
	info, err := os.Lstat(path)
	require.NoError(t, err)
	return info.Mode()&os.ModeSymlink != 0
}

func linkDirs() []string {
	return catalog.TeamPipeline().Layout().LinkedDirs()
}

func TestResolve_DirectoryLink(t *testing.T) {
	_, pkg := repoFixture(t)

	resolved, err := Resolve(pkg, linkDirs())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join("skills", "prd"),
		filepath.Join("skills", "tdd"),
		filepath.Join("agents", "mock-debugger.md"),
	}, resolved)

	tdd := filepath.Join(pkg, "skills", "tdd")
	assert.False(t, isLink(t, tdd))
	info, err := os.Stat(tdd)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	for _, f := range []string{"SKILL.md", "checklist.md", "refs/examples.md"} {
		data, err := os.ReadFile(filepath.Join(tdd, f))
		require.NoError(t, err)
		assert.Equal(t, "tdd "+f, string(data))
	}
}

func TestResolve_FileLink(t *testing.T) {
	_, pkg := repoFixture(t)

	_, err := Resolve(pkg, linkDirs())
	require.NoError(t, err)

	agent := filepath.Join(pkg, "agents", "mock-debugger.md")
	assert.False(t, isLink(t, agent))
	data, err := os.ReadFile(agent)
	require.NoError(t, err)
	assert.Equal(t, "mock debugger", string(data))
}

func TestResolve_LeavesNoLinks(t *testing.T) {
	repo, pkg := repoFixture(t)
	// A link nested inside the linked skill is dereferenced by the copy.
	link(t, filepath.Join("..", "prd", "SKILL.md"), filepath.Join(repo, "skills", "tdd", "prd.md"))

	_, err := Resolve(pkg, linkDirs())
	require.NoError(t, err)

	err = filepath.Walk(pkg, func(path string, info os.FileInfo, err error) error {
		require.NoError(t, err)
		assert.Zero(t, info.Mode()&os.ModeSymlink, "symlink left at %s", path)
		return nil
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(pkg, "skills", "tdd", "prd.md"))
	require.NoError(t, err)
	assert.Equal(t, "prd", string(data))
}

func TestResolve_DoesNotTouchAuthoritativeCopy(t *testing.T) {
	repo, pkg := repoFixture(t)

	_, err := Resolve(pkg, linkDirs())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(repo, "skills", "tdd", "SKILL.md"))
	require.NoError(t, err)
	assert.Equal(t, "tdd SKILL.md", string(data))
	assert.False(t, isLink(t, filepath.Join(repo, "skills", "tdd")))
}

func TestResolve_DanglingLinkIsFatal(t *testing.T) {
	_, pkg := repoFixture(t)
	link(t, filepath.Join("..", "..", "skills", "missing"), filepath.Join(pkg, "skills", "missing"))

	_, err := Resolve(pkg, linkDirs())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot resolve")
	assert.Contains(t, err.Error(), filepath.Join("skills", "missing"))

	// The broken link is left for the operator to inspect.
	assert.True(t, isLink(t, filepath.Join(pkg, "skills", "missing")))
}

func TestResolve_SkipsMissingDirsAndRegularEntries(t *testing.T) {
	_, pkg := repoFixture(t)
	writeFile(t, filepath.Join(pkg, "skills", "local", "SKILL.md"), "local")

	resolved, err := Resolve(pkg, []string{"skills", "does-not-exist"})
	require.NoError(t, err)
	assert.Len(t, resolved, 2)

	data, err := os.ReadFile(filepath.Join(pkg, "skills", "local", "SKILL.md"))
	require.NoError(t, err)
	assert.Equal(t, "local", string(data))

	// agents/ was not requested, so its link survives.
	assert.True(t, isLink(t, filepath.Join(pkg, "agents", "mock-debugger.md")))
}

func TestResolve_Twice(t *testing.T) {
	_, pkg := repoFixture(t)

	_, err := Resolve(pkg, linkDirs())
	require.NoError(t, err)

	resolved, err := Resolve(pkg, linkDirs())
	require.NoError(t, err)
	assert.Empty(t, resolved)
}

func TestRestore_AlreadyLinked(t *testing.T) {
	_, pkg := repoFixture(t)
	before, err := Scan(pkg, linkDirs())
	require.NoError(t, err)

	restored, err := Restore(pkg, catalog.TeamPipeline())
	require.NoError(t, err)
	assert.Empty(t, restored)

	after, err := Scan(pkg, linkDirs())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRestore_RecreatesLinks(t *testing.T) {
	_, pkg := repoFixture(t)
	_, err := Resolve(pkg, linkDirs())
	require.NoError(t, err)

	restored, err := Restore(pkg, catalog.TeamPipeline())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join("skills", "prd"),
		filepath.Join("skills", "tdd"),
		filepath.Join("agents", "mock-debugger.md"),
	}, restored)

	tdd := filepath.Join(pkg, "skills", "tdd")
	assert.True(t, isLink(t, tdd))
	target, err := os.Readlink(tdd)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("..", "..", "skills", "tdd"), target)

	// The restored link resolves to the authoritative content.
	data, err := os.ReadFile(filepath.Join(tdd, "SKILL.md"))
	require.NoError(t, err)
	assert.Equal(t, "tdd SKILL.md", string(data))
}

func TestRestore_SkipsUnknownAndMissing(t *testing.T) {
	_, pkg := repoFixture(t)
	_, err := Resolve(pkg, linkDirs())
	require.NoError(t, err)

	// Not in the catalog: must stay a real directory.
	writeFile(t, filepath.Join(pkg, "skills", "local", "SKILL.md"), "local")

	restored, err := Restore(pkg, catalog.TeamPipeline())
	require.NoError(t, err)
	assert.Len(t, restored, 3, "only present catalog entries are restored")

	assert.False(t, isLink(t, filepath.Join(pkg, "skills", "local")))
	_, err = os.Lstat(filepath.Join(pkg, "skills", "implement"))
	assert.True(t, os.IsNotExist(err), "absent catalog entries are not created")
}

func TestRestore_UnlinkedCatalogIsNoop(t *testing.T) {
	_, pkg := repoFixture(t)
	_, err := Resolve(pkg, linkDirs())
	require.NoError(t, err)

	restored, err := Restore(pkg, catalog.AgenticTools())
	require.NoError(t, err)
	assert.Empty(t, restored)
	assert.False(t, isLink(t, filepath.Join(pkg, "skills", "tdd")))
}

func TestRoundTrip(t *testing.T) {
	_, pkg := repoFixture(t)
	cat := catalog.TeamPipeline()

	before, err := Scan(pkg, cat.Layout().LinkedDirs())
	require.NoError(t, err)
	require.Len(t, before, 3)

	_, err = Resolve(pkg, cat.Layout().LinkedDirs())
	require.NoError(t, err)
	mid, err := Scan(pkg, cat.Layout().LinkedDirs())
	require.NoError(t, err)
	assert.Empty(t, mid)

	_, err = Restore(pkg, cat)
	require.NoError(t, err)
	after, err := Scan(pkg, cat.Layout().LinkedDirs())
	require.NoError(t, err)

	assert.Equal(t, before, after)

	// Restoring again changes nothing.
	restored, err := Restore(pkg, cat)
	require.NoError(t, err)
	assert.Empty(t, restored)
}

func TestScan(t *testing.T) {
	_, pkg := repoFixture(t)

	found, err := Scan(pkg, []string{"agents", "missing"})
	require.NoError(t, err)
	assert.Equal(t, []Link{{
		Path:   filepath.Join("agents", "mock-debugger.md"),
		Target: filepath.Join("..", "..", "claude", "agents", "mock-debugger.md"),
	}}, found)
}
