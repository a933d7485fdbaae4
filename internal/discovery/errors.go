package discovery

import "errors"

// Sentinel errors for the discovery package. Using sentinels instead of
// ad-hoc fmt.Errorf allows callers to match with errors.Is.
var (
	// ErrRootNotFound is returned when no agent installation root could
	// be located. This is the only fatal condition in the pipeline.
	ErrRootNotFound = errors.New("no agent installation root found")
)
