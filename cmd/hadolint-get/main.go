package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/IngoMeyer441/hadolint-get/internal/fetch"
	"github.com/IngoMeyer441/hadolint-get/internal/messages"
	"github.com/IngoMeyer441/hadolint-get/internal/platform"
	"github.com/IngoMeyer441/hadolint-get/internal/terminal"
	"github.com/IngoMeyer441/hadolint-get/internal/version"
)

// Exit codes for failures that are not passed through from hadolint.
const (
	exitGeneric             = 1
	exitPlatformUnsupported = 3
	exitNotFetchable        = 4
	exitOSError             = 5
)

var executeFunc = execute
var getwd = os.Getwd

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = "0.1.0"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// execute runs the CLI command with the provided args and output writers.
// Arguments after the first "--" are forwarded to hadolint untouched.
func execute(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer) error {
	// A nil slice makes cobra fall back to os.Args.
	own, forwarded := []string{}, []string(nil)
	if len(args) > 1 {
		own, forwarded = splitArgs(args[1:])
	}
	cmd := newRootCmd(programName(args), forwarded)
	cmd.SetArgs(own)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}

// runMain executes the CLI and maps failures to exit codes.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := executeFunc(ctx, args, stdout, stderr)
	if err == nil {
		return
	}
	code, silent := exitCode(err)
	if !silent {
		printError(stderr, err)
	}
	exit(code)
}

// exitCode maps err to the process exit code and reports whether the error
// is already visible to the user, as with hadolint's own failures.
func exitCode(err error) (int, bool) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code <= 0 {
			code = exitGeneric
		}
		return code, true
	}
	var unsupported *platform.UnsupportedError
	if errors.As(err, &unsupported) {
		return exitPlatformUnsupported, false
	}
	var notFetchable *fetch.ExecutableNotFetchableError
	if errors.As(err, &notFetchable) {
		return exitNotFetchable, false
	}
	// Tag lookups fail over the network too; keep them apart from local OS errors.
	var noTags *version.NoTagsFoundError
	var unreachable *version.UpstreamUnreachableError
	if errors.As(err, &noTags) || errors.As(err, &unreachable) {
		return exitGeneric, false
	}
	if isOSError(err) {
		return exitOSError, false
	}
	return exitGeneric, false
}

func isOSError(err error) bool {
	var pathErr *fs.PathError
	var linkErr *os.LinkError
	var syscallErr *os.SyscallError
	return errors.As(err, &pathErr) || errors.As(err, &linkErr) || errors.As(err, &syscallErr)
}

func printError(stderr io.Writer, err error) {
	errColor := color.New(color.FgRed)
	if terminal.IsTerminal(stderr) {
		errColor.EnableColor()
	} else {
		errColor.DisableColor()
	}
	_, _ = errColor.Fprintln(stderr, err)
}

// versionString formats Version with optional commit and build date metadata.
func versionString() string {
	meta := []string{}
	if Commit != "" && Commit != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionCommitFmt, Commit))
	}
	if BuildDate != "" && BuildDate != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionBuildFmt, BuildDate))
	}
	if len(meta) == 0 {
		return Version
	}
	return fmt.Sprintf(messages.VersionFullFmt, Version, strings.Join(meta, ", "))
}

// programName returns the basename of argv[0].
func programName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return "hadolint-get"
	}
	return filepath.Base(args[0])
}
