package catalog

import (
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/acedergren/agentic-tools/internal/artifact"
)

// LinkTarget returns the relative symlink target for a linked entry. A linked
// entry sits two levels below the repository root (e.g. team-pipeline/skills/x)
// and points back at the authoritative copy:
//
//	skill -> ../../skills/<fileName>
//	agent -> ../../claude/agents/<fileName>
//
// The rule is the only record of the link topology; packaging erases the links.
func LinkTarget(kind artifact.Type, fileName string) (string, error) {
	if fileName == "" {
		return "", errors.Errorf("link target needs a file name")
	}
	switch kind {
	case artifact.TypeSkill:
		return filepath.Join("..", "..", artifact.SkillsDirName, fileName), nil
	case artifact.TypeAgent:
		return filepath.Join("..", "..", artifact.ClaudeDirName, artifact.AgentsDirName, fileName), nil
	default:
		return "", errors.Errorf("%s entries are never linked", kind)
	}
}

// LinkTarget returns the symlink target for the entry
func (e Entry) LinkTarget() (string, error) {
	return LinkTarget(e.Kind, e.FileName())
}
