package fetch

import (
	"errors"
	"fmt"

	"github.com/IngoMeyer441/hadolint-get/internal/messages"
	"github.com/IngoMeyer441/hadolint-get/internal/platform"
)

// ErrNetworkDisabled is the cause of fetch failures in offline mode.
var ErrNetworkDisabled = errors.New(messages.FetchNetworkDisabled)

// ExecutableNotFetchableError reports that the hadolint executable could not be downloaded.
type ExecutableNotFetchableError struct {
	Version  string
	Platform platform.Platform
	Err      error
}

func (e *ExecutableNotFetchableError) Error() string {
	msg := fmt.Sprintf(messages.FetchNotFetchableFmt, e.Version, string(e.Platform))
	if e.Err == nil {
		return msg
	}
	return msg + " " + e.Err.Error()
}

func (e *ExecutableNotFetchableError) Unwrap() error {
	return e.Err
}
