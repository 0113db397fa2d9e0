package catalog

import (
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/acedergren/agentic-tools/internal/artifact"
)

// Built-in distribution variants
const (
	VariantAgenticTools = "agentic-tools"
	VariantTeamPipeline = "team-pipeline"
)

// pipeline is the execution order of the team pipeline
const pipeline = "/prd → /prd --to-plan → /orchestrate → /implement → /review-all → /health-check → PR"

var skillDescriptions = map[string]string{
	"prd":            "Requirements → validated PRD",
	"orchestrate":    "Spawn + coordinate agent teams",
	"implement":      "Full TDD feature pipeline (per agent)",
	"tdd":            "Test-driven development cycle",
	"write-tests":    "Add tests to existing code",
	"review-all":     "Parallel security + API + scope review",
	"health-check":   "7+ quality gates diagnostic",
	"quality-commit": "Lint → typecheck → test → commit",
	"phase-kickoff":  "Branch + test shells + roadmap entry",
	"api-audit":      "Route-to-type contract validation",
	"doc-sync":       "Documentation drift detection",
}

var agentDescriptions = map[string]string{
	"mock-debugger":     "Diagnoses vitest mock wiring failures",
	"security-reviewer": "OWASP Top 10 review with file:line refs",
}

func skills(names ...string) []Entry {
	out := make([]Entry, 0, len(names))
	for _, n := range names {
		out = append(out, Skill(n, skillDescriptions[n]))
	}
	return out
}

func agents(names ...string) []Entry {
	out := make([]Entry, 0, len(names))
	for _, n := range names {
		out = append(out, Agent(n, agentDescriptions[n]))
	}
	return out
}

// AgenticTools is the full distribution: skills, agents and hook examples,
// all stored as real files in the repository root.
func AgenticTools() Catalog {
	layout := Layout{
		SkillsDir:   artifact.SkillsDirName,
		AgentsDir:   filepath.Join(artifact.ClaudeDirName, artifact.AgentsDirName),
		HooksDir:    filepath.Join(artifact.ClaudeDirName, artifact.HooksDirName, artifact.HookExamplesDirName),
		HookPattern: artifact.DefaultHookPattern,
	}
	entries := append(skills(
		"implement",
		"tdd",
		"write-tests",
		"review-all",
		"health-check",
		"prd",
		"api-audit",
		"doc-sync",
		"phase-kickoff",
		"orchestrate",
		"quality-commit",
	), agents("mock-debugger", "security-reviewer")...)

	return mustNew(VariantAgenticTools, layout, entries,
		WithTitle("Agentic Tools Installer"),
		WithHints(
			"Next steps:",
			"  1. Review installed skills in .claude/skills/",
			"  2. Customize skill paths for your project structure",
			"  3. Register hooks in .claude/settings.json (see claude/hooks/README.md)",
			"  4. Try: /implement, /tdd, /review-all, /health-check",
		),
	)
}

// TeamPipeline is the pipeline-only distribution. Its skills and agents are
// symlinks into the parent repository and must be resolved before packing.
func TeamPipeline() Catalog {
	layout := Layout{
		SkillsDir:   artifact.SkillsDirName,
		AgentsDir:   artifact.AgentsDirName,
		HookPattern: artifact.DefaultHookPattern,
		LinkedKinds: []artifact.Type{artifact.TypeSkill, artifact.TypeAgent},
	}
	entries := append(skills(
		"prd",
		"orchestrate",
		"implement",
		"tdd",
		"write-tests",
		"review-all",
		"health-check",
		"quality-commit",
		"phase-kickoff",
		"api-audit",
		"doc-sync",
	), agents("mock-debugger", "security-reviewer")...)

	return mustNew(VariantTeamPipeline, layout, entries,
		WithTitle("Team Pipeline Installer"),
		WithHints(
			"Pipeline:",
			"  "+pipeline,
			"",
			"Quick start:",
			"  /prd           Draft requirements for a feature",
			"  /implement     Build a feature with full TDD pipeline",
			"  /review-all    Run parallel pre-PR reviews",
			"  /health-check  Full codebase diagnostic",
		),
	)
}

// Variants returns the names of the built-in variants
func Variants() []string {
	return []string{VariantAgenticTools, VariantTeamPipeline}
}

// ForVariant returns the built-in catalog with the given name
func ForVariant(name string) (Catalog, error) {
	switch name {
	case VariantAgenticTools, "":
		return AgenticTools(), nil
	case VariantTeamPipeline:
		return TeamPipeline(), nil
	default:
		return Catalog{}, errors.Errorf("unknown variant %q (expected one of %v)", name, Variants())
	}
}

func mustNew(name string, layout Layout, entries []Entry, opts ...Option) Catalog {
	c, err := New(name, layout, entries, opts...)
	if err != nil {
		panic(err)
	}
	return c
}
