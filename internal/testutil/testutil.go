// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully and returns its path.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) string {
	t.Helper()
	return WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// The stub is owner read and execute only, like a cached hadolint.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode))
	if err := os.WriteFile(path, content, 0o500); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

// ReleaseServer imitates the hadolint release download host.
// Requests for a hadolint asset get Body; anything else gets 404.
type ReleaseServer struct {
	*httptest.Server

	Body string
	hits atomic.Int32
}

// NewReleaseServer starts a ReleaseServer that is closed when t ends.
func NewReleaseServer(t *testing.T, body string) *ReleaseServer {
	t.Helper()
	s := &ReleaseServer{Body: body}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		if !strings.HasPrefix(filepath.Base(r.URL.Path), "hadolint-") {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, s.Body)
	}))
	t.Cleanup(s.Close)
	return s
}

// Hits returns the number of requests served so far.
func (s *ReleaseServer) Hits() int {
	return int(s.hits.Load())
}
