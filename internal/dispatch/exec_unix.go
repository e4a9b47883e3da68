//go:build !windows

package dispatch

import (
	"os"

	"golang.org/x/sys/unix"
)

var syscallExec = unix.Exec

// execBinary replaces the current process with the target binary.
// A failed exec is reported as a *os.PathError naming path.
func execBinary(path string, args []string, env []string) error {
	if err := syscallExec(path, args, env); err != nil {
		return &os.PathError{Op: "exec", Path: path, Err: err}
	}
	return nil
}
