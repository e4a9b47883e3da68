package dispatch

import (
	"errors"
	"fmt"
	"io/fs"
)

// errNotMocked is returned when a testSystem method is called without a mock function set.
var errNotMocked = errors.New("testSystem: method not mocked")

// testSystem provides a mock System for unit tests.
//
// Stat and Environ fall back to RealSystem so tests can use t.TempDir fixtures.
// ExecBinary fails fast; replacing the test process is never wanted.
type testSystem struct {
	RealSystem

	StatFunc       func(name string) (fs.FileInfo, error)
	EnvironFunc    func() []string
	ExecBinaryFunc func(path string, args []string, env []string) error
}

func (s *testSystem) Stat(name string) (fs.FileInfo, error) {
	if s.StatFunc != nil {
		return s.StatFunc(name)
	}
	return s.RealSystem.Stat(name)
}

func (s *testSystem) Environ() []string {
	if s.EnvironFunc != nil {
		return s.EnvironFunc()
	}
	return s.RealSystem.Environ()
}

func (s *testSystem) ExecBinary(path string, args []string, env []string) error {
	if s.ExecBinaryFunc != nil {
		return s.ExecBinaryFunc(path, args, env)
	}
	return fmt.Errorf("%w: ExecBinary", errNotMocked)
}
