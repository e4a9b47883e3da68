// Package dispatch hands control over to a fetched hadolint executable.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/IngoMeyer441/hadolint-get/internal/logging"
	"github.com/IngoMeyer441/hadolint-get/internal/messages"
)

// Exec runs the executable at path with args forwarded verbatim.
// On Unix the current process is replaced and Exec only returns on failure.
// On Windows the executable runs as a child; a non-zero exit is returned as *exec.ExitError.
func Exec(ctx context.Context, sys System, path string, args []string) error {
	if sys == nil {
		return errors.New(messages.DispatchSystemRequired)
	}
	info, err := sys.Stat(path)
	if err != nil {
		return fmt.Errorf(messages.DispatchExecutableMissingFmt, path, err)
	}
	if info.IsDir() {
		return fmt.Errorf(messages.DispatchExecutableIsDirFmt, path)
	}

	argv := make([]string, 0, len(args)+1)
	argv = append(argv, path)
	argv = append(argv, args...)
	logging.Debug(logging.WithComponent(ctx, "dispatch"), "executing hadolint",
		slog.String("path", path), slog.Any("args", args))
	return sys.ExecBinary(path, argv, sys.Environ())
}
