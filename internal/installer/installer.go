// Package installer copies the catalog entries present in a source tree into
// a consumer project's .claude directory.
package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/acedergren/agentic-tools/internal/artifact"
	"github.com/acedergren/agentic-tools/internal/catalog"
	"github.com/acedergren/agentic-tools/internal/logger"
	"github.com/acedergren/agentic-tools/internal/platform"
)

// ErrTargetNotFound is returned when the project directory to install into
// does not exist. The installer never creates the project root.
var ErrTargetNotFound = errors.New("target directory does not exist")

// ProgressFunc is called after each artifact is installed
type ProgressFunc func(kind artifact.Type, name string)

// Installer installs one catalog from one source tree
type Installer struct {
	catalog    catalog.Catalog
	sourceRoot string
	progress   ProgressFunc
}

// Option configures an Installer instance
type Option func(*Installer)

// WithProgress reports each installed artifact as it is copied
func WithProgress(fn ProgressFunc) Option {
	return func(i *Installer) {
		i.progress = fn
	}
}

// New creates an installer for cat reading from sourceRoot
func New(cat catalog.Catalog, sourceRoot string, opts ...Option) *Installer {
	i := &Installer{
		catalog:    cat,
		sourceRoot: sourceRoot,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Result lists what an install copied
type Result struct {
	Target string // absolute project directory
	Skills []string
	Agents []string
	Hooks  []string
}

// Counts holds the number of installed artifacts per kind
type Counts struct {
	Skills int
	Agents int
	Hooks  int
}

// Counts returns the installed totals
func (r *Result) Counts() Counts {
	return Counts{Skills: len(r.Skills), Agents: len(r.Agents), Hooks: len(r.Hooks)}
}

// Summary is the one-line report of a finished install
func (r *Result) Summary() string {
	parts := make([]string, 0, len(artifact.Types()))
	for _, kind := range artifact.Types() {
		parts = append(parts, fmt.Sprintf("%d %s", len(r.names(kind)), kind.Plural()))
	}
	return "Installed " + strings.Join(parts, ", ") + "."
}

func (r *Result) names(kind artifact.Type) []string {
	switch kind {
	case artifact.TypeSkill:
		return r.Skills
	case artifact.TypeAgent:
		return r.Agents
	case artifact.TypeHook:
		return r.Hooks
	default:
		return nil
	}
}

// ConfigDir returns the .claude directory inside the target
func (r *Result) ConfigDir() string {
	return filepath.Join(r.Target, artifact.ConfigDirName)
}

// CheckTarget returns the absolute path of target after making sure it is an
// existing directory. A missing target yields ErrTargetNotFound.
func CheckTarget(target string) (string, error) {
	abs, err := filepath.Abs(target)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve target %s", target)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(ErrTargetNotFound, "%s", abs)
		}
		return "", errors.Wrapf(err, "failed to stat target %s", abs)
	}
	if !info.IsDir() {
		return "", errors.Errorf("target %s is not a directory", abs)
	}
	return abs, nil
}

// Install copies every catalog entry that exists in the source tree, and every
// hook script in the layout's hooks directory, into target/.claude. Entries
// that are absent from the source tree are skipped. Existing files at the
// destinations are overwritten; symbolic links are dereferenced so nothing
// under .claude is a link.
func (i *Installer) Install(target string) (*Result, error) {
	abs, err := CheckTarget(target)
	if err != nil {
		return nil, err
	}

	result := &Result{Target: abs}

	// All destination directories exist before the first copy.
	dirs := map[artifact.Type]string{}
	for _, kind := range artifact.Types() {
		dir := filepath.Join(result.ConfigDir(), kind.DirName())
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "failed to create %s directory", kind.DirName())
		}
		dirs[kind] = dir
	}

	log := logger.L.WithField("target", abs).WithField("catalog", i.catalog.Name())

	for _, e := range i.catalog.Skills() {
		ok, err := i.present(e)
		if err != nil {
			return result, err
		}
		if !ok {
			log.WithField("skill", e.Name).Debug("skill not present in source, skipping")
			continue
		}
		if err := platform.SyncDir(i.source(e), filepath.Join(dirs[artifact.TypeSkill], e.FileName())); err != nil {
			return result, errors.Wrapf(err, "failed to install skill %s", e.Name)
		}
		result.Skills = append(result.Skills, e.Name)
		i.report(artifact.TypeSkill, e.Name)
	}

	for _, e := range i.catalog.Agents() {
		ok, err := i.present(e)
		if err != nil {
			return result, err
		}
		if !ok {
			log.WithField("agent", e.Name).Debug("agent not present in source, skipping")
			continue
		}
		if err := platform.CopyFile(i.source(e), filepath.Join(dirs[artifact.TypeAgent], e.FileName())); err != nil {
			return result, errors.Wrapf(err, "failed to install agent %s", e.Name)
		}
		result.Agents = append(result.Agents, e.Name)
		i.report(artifact.TypeAgent, e.Name)
	}

	layout := i.catalog.Layout()
	hooks, err := catalog.DiscoverHooks(i.sourceRoot, layout)
	if err != nil {
		return result, err
	}
	for _, name := range hooks {
		src := filepath.Join(i.sourceRoot, layout.HooksDir, name)
		if err := platform.CopyFile(src, filepath.Join(dirs[artifact.TypeHook], name)); err != nil {
			return result, errors.Wrapf(err, "failed to install hook %s", name)
		}
		result.Hooks = append(result.Hooks, name)
		i.report(artifact.TypeHook, name)
	}

	log.WithField("skills", len(result.Skills)).
		WithField("agents", len(result.Agents)).
		WithField("hooks", len(result.Hooks)).
		Debug("install complete")
	return result, nil
}

func (i *Installer) source(e catalog.Entry) string {
	return filepath.Join(i.sourceRoot, e.Path)
}

// present reports whether the entry's source exists with the expected shape,
// following symbolic links. A dangling link counts as absent.
func (i *Installer) present(e catalog.Entry) (bool, error) {
	info, err := os.Stat(i.source(e))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "failed to stat %s", e.Path)
	}
	if e.IsDir {
		return info.IsDir(), nil
	}
	return info.Mode().IsRegular(), nil
}

func (i *Installer) report(kind artifact.Type, name string) {
	if i.progress != nil {
		i.progress(kind, name)
	}
}
