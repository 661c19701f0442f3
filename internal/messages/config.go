package messages

// Config messages.
const (
	ConfigFailedReadFmt       = "failed to read config %s: %w"
	ConfigInvalidConfigFmt    = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt = "config %s contains unrecognized keys: %v"
	ConfigAssetsDirEmptyFmt   = "%s: install.assets_dir must not be blank when set"
	ConfigValidationGuidance  = "(see `maw init --help` for supported keys)"
)
