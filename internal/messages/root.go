package messages

// Project root discovery messages.
const (
	RootStartRequired    = "start path is required"
	RootMarkerNotFileFmt = "%s exists but is not a regular file"
	RootGitInvalidFmt    = "%s is neither a directory nor a regular file"
	RootStatFmt          = "failed to stat %s: %w"
)
