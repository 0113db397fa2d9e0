package artifact

// File and directory name constants shared by the catalog, installer and lister.
const (
	// ConfigDirName is the configuration directory created inside a target project
	ConfigDirName = ".claude"

	// SkillsDirName is the standard directory name for skills
	SkillsDirName = "skills"

	// AgentsDirName is the standard directory name for agents
	AgentsDirName = "agents"

	// HooksDirName is the standard directory name for hooks
	HooksDirName = "hooks"

	// ClaudeDirName is the source-tree directory holding the authoritative agents and hooks
	ClaudeDirName = "claude"

	// HookExamplesDirName holds the example hook scripts under claude/hooks
	HookExamplesDirName = "examples"

	// AgentExt is the file extension of agent definitions
	AgentExt = ".md"

	// DefaultHookPattern selects hook scripts inside the hook examples directory
	DefaultHookPattern = "*.sh"
)
