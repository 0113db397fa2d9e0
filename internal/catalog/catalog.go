// Package catalog defines the fixed set of skills and agents a distribution
// ships, where each kind lives inside the distribution's source tree, and the
// rule that maps a linked entry back to its single authoritative copy.
//
// A Catalog is an immutable value. It is built once at startup (from one of the
// built-in variants or a catalog.yaml manifest) and passed explicitly to the
// link restorer, the installer and the lister.
package catalog

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/acedergren/agentic-tools/internal/artifact"
)

// Entry is a single skill or agent the catalog knows about
type Entry struct {
	Name        string
	Kind        artifact.Type
	Path        string // relative to the source root, e.g. "skills/tdd"
	IsDir       bool
	Description string
}

// Skill returns an entry for a skill directory
func Skill(name, description string) Entry {
	return Entry{Name: name, Kind: artifact.TypeSkill, IsDir: true, Description: description}
}

// Agent returns an entry for a single-file agent definition
func Agent(name, description string) Entry {
	return Entry{Name: name, Kind: artifact.TypeAgent, Description: description}
}

// FileName is the last element of the entry's path ("tdd", "mock-debugger.md")
func (e Entry) FileName() string {
	if e.Path != "" {
		return filepath.Base(e.Path)
	}
	if e.Kind == artifact.TypeAgent {
		return e.Name + artifact.AgentExt
	}
	return e.Name
}

// Key identifies an entry by kind and name
func (e Entry) Key() string {
	return fmt.Sprintf("%s:%s", e.Kind, e.Name)
}

// Layout describes where a distribution keeps each kind inside its source root
type Layout struct {
	SkillsDir   string
	AgentsDir   string
	HooksDir    string // empty when the distribution ships no hooks
	HookPattern string
	// LinkedKinds are kinds whose entries are symlinks to an authoritative
	// copy elsewhere in the repository.
	LinkedKinds []artifact.Type
}

// Dir returns the source-root-relative directory for a kind
func (l Layout) Dir(kind artifact.Type) string {
	switch kind {
	case artifact.TypeSkill:
		return l.SkillsDir
	case artifact.TypeAgent:
		return l.AgentsDir
	case artifact.TypeHook:
		return l.HooksDir
	default:
		return ""
	}
}

// IsLinked reports whether entries of kind are symlinked in the source tree
func (l Layout) IsLinked(kind artifact.Type) bool {
	for _, k := range l.LinkedKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// LinkedDirs returns the directories holding linked entries, in layout order
func (l Layout) LinkedDirs() []string {
	var dirs []string
	for _, kind := range []artifact.Type{artifact.TypeSkill, artifact.TypeAgent} {
		if l.IsLinked(kind) && l.Dir(kind) != "" {
			dirs = append(dirs, l.Dir(kind))
		}
	}
	return dirs
}

// Catalog is the immutable set of entries for one distribution
type Catalog struct {
	name    string
	title   string
	layout  Layout
	entries []Entry
	hints   []string
}

// Option customizes a Catalog during construction
type Option func(*Catalog)

// WithTitle sets the human readable title shown by the installer
func WithTitle(title string) Option {
	return func(c *Catalog) {
		c.title = title
	}
}

// WithHints sets the lines printed after a successful install
func WithHints(hints ...string) Option {
	return func(c *Catalog) {
		c.hints = append([]string(nil), hints...)
	}
}

// New validates entries against the layout and returns a Catalog.
// Entries without a Path get one derived from the layout.
func New(name string, layout Layout, entries []Entry, opts ...Option) (Catalog, error) {
	if name == "" {
		return Catalog{}, errors.Errorf("catalog name cannot be empty")
	}
	if layout.HookPattern == "" {
		layout.HookPattern = artifact.DefaultHookPattern
	}
	layout.LinkedKinds = append([]artifact.Type(nil), layout.LinkedKinds...)

	c := Catalog{
		name:   name,
		title:  name,
		layout: layout,
	}

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if err := validateEntry(e); err != nil {
			return Catalog{}, err
		}
		if seen[e.Key()] {
			return Catalog{}, errors.Errorf("duplicate %s %q in catalog %s", e.Kind, e.Name, name)
		}
		seen[e.Key()] = true

		if e.Path == "" {
			dir := layout.Dir(e.Kind)
			if dir == "" {
				return Catalog{}, errors.Errorf("catalog %s has no %s directory for %q", name, e.Kind, e.Name)
			}
			e.Path = filepath.Join(dir, e.FileName())
		}
		c.entries = append(c.entries, e)
	}

	for _, opt := range opts {
		opt(&c)
	}
	return c, nil
}

func validateEntry(e Entry) error {
	if e.Name == "" {
		return errors.Errorf("catalog entry name cannot be empty")
	}
	if strings.ContainsAny(e.Name, `/\`) || e.Name == "." || e.Name == ".." {
		return errors.Errorf("invalid catalog entry name %q", e.Name)
	}
	switch e.Kind {
	case artifact.TypeSkill, artifact.TypeAgent:
		return nil
	default:
		return errors.Errorf("catalog entry %q has unsupported kind %q", e.Name, e.Kind)
	}
}

// Name returns the distribution name, e.g. "agentic-tools"
func (c Catalog) Name() string { return c.name }

// Title returns the installer banner title
func (c Catalog) Title() string { return c.title }

// Layout returns the source layout
func (c Catalog) Layout() Layout {
	l := c.layout
	l.LinkedKinds = append([]artifact.Type(nil), c.layout.LinkedKinds...)
	return l
}

// Hints returns the post-install lines
func (c Catalog) Hints() []string {
	return append([]string(nil), c.hints...)
}

// Entries returns a copy of all entries in catalog order
func (c Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// OfKind returns the entries of one kind in catalog order
func (c Catalog) OfKind(kind artifact.Type) []Entry {
	var out []Entry
	for _, e := range c.entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Skills returns the skill entries
func (c Catalog) Skills() []Entry { return c.OfKind(artifact.TypeSkill) }

// Agents returns the agent entries
func (c Catalog) Agents() []Entry { return c.OfKind(artifact.TypeAgent) }

// Linked returns the entries whose kind is symlinked in the source tree
func (c Catalog) Linked() []Entry {
	var out []Entry
	for _, e := range c.entries {
		if c.layout.IsLinked(e.Kind) {
			out = append(out, e)
		}
	}
	return out
}
