package messages

// Install messages.
const (
	// InstallTargetRequired indicates the target path is required for install.
	InstallTargetRequired = "target path is required"
	// InstallUnknownAssetKindFmt formats a manifest entry with an unsupported kind.
	InstallUnknownAssetKindFmt   = "asset %s has unknown kind %q"
	InstallFailedStatFmt         = "failed to stat %s: %w"
	InstallFailedReadTemplateFmt = "failed to read template %s: %w"
	InstallFailedWalkTemplateFmt = "failed to walk template %s: %w"
	InstallTemplateNotDirFmt     = "template %s is not a directory"
	InstallTemplateNotFileFmt    = "template %s is not a regular file"
	InstallFailedCreateDirFmt    = "failed to create directory %s: %w"
	InstallFailedCreateDirForFmt = "failed to create directory for %s: %w"
	InstallFailedWriteFmt        = "failed to write %s: %w"
	InstallFailedRemoveFmt       = "failed to remove %s: %w"
	InstallFailedResolveFmt      = "failed to resolve bundled assets: %w"
)
