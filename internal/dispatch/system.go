package dispatch

import (
	"io/fs"
	"os"
)

// System abstracts the OS operations used to hand over to hadolint.
type System interface {
	Stat(name string) (fs.FileInfo, error)
	Environ() []string
	ExecBinary(path string, args []string, env []string) error
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// Stat returns the FileInfo describing the named file.
func (RealSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Environ returns a copy of strings representing the environment.
func (RealSystem) Environ() []string {
	return os.Environ()
}

// ExecBinary runs the provided binary in place of the current process where the OS allows it.
func (RealSystem) ExecBinary(path string, args []string, env []string) error {
	return execBinary(path, args, env)
}
