package catalog

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/acedergren/agentic-tools/internal/artifact"
)

// ManifestFilename is the conventional name of a catalog manifest
const ManifestFilename = "catalog.yaml"

// Manifest is the on-disk form of a catalog
type Manifest struct {
	Name   string         `yaml:"name"`
	Title  string         `yaml:"title,omitempty"`
	Layout ManifestLayout `yaml:"layout"`
	Skills []ManifestItem `yaml:"skills,omitempty"`
	Agents []ManifestItem `yaml:"agents,omitempty"`
	Hints  []string       `yaml:"hints,omitempty"`
}

// ManifestLayout mirrors Layout with kinds spelled as strings
type ManifestLayout struct {
	SkillsDir   string   `yaml:"skills_dir"`
	AgentsDir   string   `yaml:"agents_dir"`
	HooksDir    string   `yaml:"hooks_dir,omitempty"`
	HookPattern string   `yaml:"hook_pattern,omitempty"`
	Linked      []string `yaml:"linked,omitempty"`
}

// ManifestItem is a named skill or agent
type ManifestItem struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// Load reads a catalog manifest from path
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, errors.Wrapf(err, "failed to read catalog manifest %s", path)
	}
	c, err := Parse(data)
	if err != nil {
		return Catalog{}, errors.Wrapf(err, "invalid catalog manifest %s", path)
	}
	return c, nil
}

// Parse decodes a catalog manifest. Unknown fields are rejected.
func Parse(data []byte) (Catalog, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return Catalog{}, errors.Wrap(err, "failed to parse manifest")
	}
	return m.Catalog()
}

// Catalog converts the manifest into a validated Catalog
func (m Manifest) Catalog() (Catalog, error) {
	layout := Layout{
		SkillsDir:   m.Layout.SkillsDir,
		AgentsDir:   m.Layout.AgentsDir,
		HooksDir:    m.Layout.HooksDir,
		HookPattern: m.Layout.HookPattern,
	}
	for _, s := range m.Layout.Linked {
		kind, err := artifact.ParseType(s)
		if err != nil {
			return Catalog{}, err
		}
		if kind == artifact.TypeHook {
			return Catalog{}, errors.New("hooks cannot be linked")
		}
		layout.LinkedKinds = append(layout.LinkedKinds, kind)
	}

	entries := make([]Entry, 0, len(m.Skills)+len(m.Agents))
	for _, s := range m.Skills {
		entries = append(entries, Skill(s.Name, s.Description))
	}
	for _, a := range m.Agents {
		entries = append(entries, Agent(a.Name, a.Description))
	}

	opts := []Option{WithHints(m.Hints...)}
	if m.Title != "" {
		opts = append(opts, WithTitle(m.Title))
	}
	return New(m.Name, layout, entries, opts...)
}

// ToManifest converts a Catalog back into its manifest form
func ToManifest(c Catalog) Manifest {
	m := Manifest{
		Name:  c.name,
		Title: c.title,
		Layout: ManifestLayout{
			SkillsDir:   c.layout.SkillsDir,
			AgentsDir:   c.layout.AgentsDir,
			HooksDir:    c.layout.HooksDir,
			HookPattern: c.layout.HookPattern,
		},
		Hints: c.Hints(),
	}
	for _, k := range c.layout.LinkedKinds {
		m.Layout.Linked = append(m.Layout.Linked, string(k))
	}
	for _, e := range c.entries {
		item := ManifestItem{Name: e.Name, Description: e.Description}
		if e.Kind == artifact.TypeSkill {
			m.Skills = append(m.Skills, item)
		} else {
			m.Agents = append(m.Agents, item)
		}
	}
	return m
}
