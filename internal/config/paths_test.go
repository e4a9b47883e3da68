package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestFindConfigFile_StartDir(t *testing.T) {
	dir := t.TempDir()
	want := writeConfig(t, dir, "")

	got, found, err := FindConfigFile(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found || got != want {
		t.Fatalf("expected %s, got %q (found=%v)", want, got, found)
	}
}

func TestFindConfigFile_NearestWins(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "")
	nested := filepath.Join(root, "sub")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	want := writeConfig(t, nested, "")

	got, found, err := FindConfigFile(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found || got != want {
		t.Fatalf("expected %s, got %q", want, got)
	}
}

func TestFindConfigFile_SkipsDirectories(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "")
	nested := filepath.Join(root, "sub")
	if err := os.MkdirAll(filepath.Join(nested, FileName), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, found, err := FindConfigFile(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found || got != want {
		t.Fatalf("expected %s, got %q", want, got)
	}
}

func TestFindConfigFile_RelativeStart(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "")
	t.Chdir(root)

	got, found, err := FindConfigFile(".")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatal("expected config to be found")
	}
	gotInfo, err := os.Stat(got)
	if err != nil {
		t.Fatalf("stat found path: %v", err)
	}
	wantInfo, err := os.Stat(want)
	if err != nil {
		t.Fatalf("stat expected path: %v", err)
	}
	if !os.SameFile(gotInfo, wantInfo) {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if !filepath.IsAbs(got) {
		t.Fatalf("expected absolute path, got %s", got)
	}
}

func TestFindConfigFile_EmptyStart(t *testing.T) {
	if _, _, err := FindConfigFile(""); err == nil {
		t.Fatal("expected error")
	}
}

func TestFindConfigFile_StatError(t *testing.T) {
	orig := osStat
	t.Cleanup(func() { osStat = orig })
	boom := errors.New("io failure")
	osStat = func(name string) (fs.FileInfo, error) {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: boom}
	}

	_, found, err := FindConfigFile(t.TempDir())
	if found {
		t.Fatal("expected not found")
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected stat error, got %v", err)
	}
}

func TestFindConfigFile_NotFoundStopsAtRoot(t *testing.T) {
	orig := osStat
	t.Cleanup(func() { osStat = orig })
	var checked []string
	osStat = func(name string) (fs.FileInfo, error) {
		checked = append(checked, name)
		return nil, fs.ErrNotExist
	}

	dir := t.TempDir()
	_, found, err := FindConfigFile(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatal("expected not found")
	}
	if len(checked) == 0 || checked[0] != filepath.Join(dir, FileName) {
		t.Fatalf("expected search to start at %s, got %v", dir, checked)
	}
	last := filepath.Dir(checked[len(checked)-1])
	if filepath.Dir(last) != last {
		t.Fatalf("expected search to end at filesystem root, ended at %s", last)
	}
}
