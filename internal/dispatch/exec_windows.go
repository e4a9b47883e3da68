//go:build windows

package dispatch

import (
	"os"
	"os/exec"
)

// execBinary runs the target binary as a child wired to the current stdio.
// args[0] is the program name, as with execve.
func execBinary(path string, args []string, env []string) error {
	cmd := exec.Command(path, args[1:]...)
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
