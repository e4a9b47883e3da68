package version

import (
	"fmt"

	"github.com/IngoMeyer441/hadolint-get/internal/messages"
)

// NoTagsFoundError reports that the upstream remote lists no version tags.
type NoTagsFoundError struct {
	Source string
}

func (e *NoTagsFoundError) Error() string {
	return fmt.Sprintf(messages.VersionNoTagsFoundFmt, e.Source)
}

// UpstreamUnreachableError reports that the upstream tag listing could not be performed.
type UpstreamUnreachableError struct {
	URL string
	Err error
}

func (e *UpstreamUnreachableError) Error() string {
	return fmt.Sprintf(messages.VersionUpstreamUnreachableFmt, e.URL, e.Err)
}

func (e *UpstreamUnreachableError) Unwrap() error {
	return e.Err
}
