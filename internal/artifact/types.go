package artifact

import "github.com/pkg/errors"

// Type represents the kind of artifact
type Type string

const (
	TypeSkill Type = "skill"
	TypeAgent Type = "agent"
	TypeHook  Type = "hook"
)

// Types lists every artifact kind in display order
func Types() []Type {
	return []Type{TypeSkill, TypeAgent, TypeHook}
}

// ParseType converts a manifest string into a Type
func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case TypeSkill, TypeAgent, TypeHook:
		return t, nil
	default:
		return "", errors.Errorf("unknown artifact type %q", s)
	}
}

// DirName returns the directory name used for this kind inside .claude/
func (t Type) DirName() string {
	switch t {
	case TypeSkill:
		return SkillsDirName
	case TypeAgent:
		return AgentsDirName
	case TypeHook:
		return HooksDirName
	default:
		return ""
	}
}

// Plural returns the plural noun used in counts, e.g. "skills"
func (t Type) Plural() string {
	return string(t) + "s"
}
