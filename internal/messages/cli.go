package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse   = "maw"
	RootShort = "Install multi-agent workflow assets into a project"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"
	VersionUse       = "version"
	VersionShort     = "Print the maw version"

	// InitUse is the init command name.
	InitUse   = "init"
	InitShort = "Install missing workflow assets into the target directory"

	InitFlagForce           = "Rewrite every asset even when it already exists"
	InitFlagAgentsGitignore = "Create agents/.gitignore (removed when not set)"
	InitFlagYes             = "Skip the confirmation prompt for --force"
	InitForceConfirmTitle   = "Overwrite existing workflow assets?"
	InitForceConfirmFmt     = "These assets will be replaced with the bundled versions:\n%s"
	InitForceCancelled      = "Cancelled; no files were changed."
	InitWrittenHeaderFmt    = "Wrote %d file(s) under %s:\n"
	InitWrittenLineFmt      = "  + %s\n"
	InitUpToDateFmt         = "Workflow assets in %s are already up to date.\n"
	InitAssetsSourceFmt     = "Using assets from the %s source.\n"

	// StatusUse is the status command name.
	StatusUse              = "status"
	StatusShort            = "List workflow assets missing from the target directory"
	StatusFlagCheck        = "Exit with status 1 when any asset is missing"
	StatusMissingHeaderFmt = "Missing assets in %s:\n"
	StatusMissingLineFmt   = "  - %s\n"
	StatusCompleteFmt      = "All workflow assets are installed in %s.\n"
	StatusGitignorePresent = "agents/.gitignore: present\n"
	StatusGitignoreAbsent  = "agents/.gitignore: absent\n"

	FlagTarget      = "Target project directory (defaults to the current directory)"
	FlagConfig      = "Path to a maw.toml config file (defaults to <target>/.maw.toml when present)"
	TargetNotDirFmt = "target %s exists and is not a directory"
	TargetExpandFmt = "failed to expand target %s: %w"
	PromptFailedFmt = "confirmation prompt failed: %w"
)
