package messages

// Template source resolution messages.
const (
	// TemplatesNoSource reports that no source provided the bundled assets.
	TemplatesNoSource           = "bundled assets are unavailable from every source"
	TemplatesSourceFailedFmt    = "source %s: %w"
	TemplatesSourceNoOpen       = "source has no opener"
	TemplatesSourceNilFS        = "source returned no filesystem"
	TemplatesSentinelMissingFmt = "missing %s: %w"
	TemplatesSentinelNotFileFmt = "%s is not a regular file"
	TemplatesDirUnsetFmt        = "%s is not set"
	TemplatesDirNotDirFmt       = "%s is not a directory"
)
