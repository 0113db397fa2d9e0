// Package lister reports which catalog entries have a backing source in a
// source tree. It only reads the filesystem.
package lister

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/acedergren/agentic-tools/internal/artifact"
	"github.com/acedergren/agentic-tools/internal/catalog"
)

// Status is the presence of one catalog entry
type Status struct {
	catalog.Entry
	Present bool
}

// Report is the result of listing a source tree
type Report struct {
	Catalog    string
	SourceRoot string
	Skills     []Status
	Agents     []Status
	Hooks      []string
}

// Present counts the present entries of a kind
func (r *Report) Present(kind artifact.Type) int {
	var list []Status
	switch kind {
	case artifact.TypeSkill:
		list = r.Skills
	case artifact.TypeAgent:
		list = r.Agents
	case artifact.TypeHook:
		return len(r.Hooks)
	}
	n := 0
	for _, s := range list {
		if s.Present {
			n++
		}
	}
	return n
}

// Build checks every catalog entry for existence under root and lists the hook
// scripts. Missing entries are reported as absent. Errors are returned only
// for the directories being listed (the source root, the hooks directory); the
// report is still filled in as far as possible when they occur.
func Build(cat catalog.Catalog, root string) (*Report, error) {
	r := &Report{Catalog: cat.Name(), SourceRoot: root}
	var result *multierror.Error

	if info, err := os.Stat(root); err != nil {
		result = multierror.Append(result, errors.Wrapf(err, "cannot read source root %s", root))
	} else if !info.IsDir() {
		result = multierror.Append(result, errors.Errorf("source root %s is not a directory", root))
	}

	for _, e := range cat.Skills() {
		r.Skills = append(r.Skills, Status{Entry: e, Present: exists(filepath.Join(root, e.Path))})
	}
	for _, e := range cat.Agents() {
		r.Agents = append(r.Agents, Status{Entry: e, Present: exists(filepath.Join(root, e.Path))})
	}

	hooks, err := catalog.DiscoverHooks(root, cat.Layout())
	if err != nil {
		result = multierror.Append(result, err)
	}
	r.Hooks = hooks

	return r, result.ErrorOrNil()
}

// exists follows links; a dangling link is absent
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
