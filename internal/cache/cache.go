// Package cache resolves and manages the per-user download cache for hadolint executables.
package cache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/IngoMeyer441/hadolint-get/internal/messages"
	"github.com/IngoMeyer441/hadolint-get/internal/platform"
)

// DirName is the directory created below the platform cache root.
const DirName = "hadolint-get"

// EntryPrefix prefixes every cached executable name.
const EntryPrefix = "hadolint-"

// TempMarker separates an entry name from the random part of its temp file name.
const TempMarker = ".tmp-"

// Env holds the environment state needed to locate the cache root.
// Override, when set, is used as the cache directory itself.
type Env struct {
	XDGCacheHome string
	Home         string
	LocalAppData string
	Override     string
}

// EnvFromOS captures Env from the process environment.
func EnvFromOS() Env {
	home := os.Getenv("HOME")
	if home == "" {
		if dir, err := homedir.Dir(); err == nil {
			home = dir
		}
	}
	return Env{
		XDGCacheHome: os.Getenv("XDG_CACHE_HOME"),
		Home:         home,
		LocalAppData: os.Getenv("LOCALAPPDATA"),
	}
}

// Root returns the platform cache root, without the hadolint-get component.
func Root(p platform.Platform, env Env) (string, error) {
	switch p {
	case platform.Linux:
		if env.XDGCacheHome != "" {
			return env.XDGCacheHome, nil
		}
		if env.Home == "" {
			return "", fmt.Errorf(messages.CacheRootEnvMissingFmt, p, "HOME")
		}
		return filepath.Join(env.Home, ".cache"), nil
	case platform.Darwin:
		if env.Home == "" {
			return "", fmt.Errorf(messages.CacheRootEnvMissingFmt, p, "HOME")
		}
		return filepath.Join(env.Home, "Library", "Caches"), nil
	case platform.Windows:
		if env.LocalAppData == "" {
			return "", fmt.Errorf(messages.CacheRootEnvMissingFmt, p, "LOCALAPPDATA")
		}
		return env.LocalAppData, nil
	default:
		return "", &platform.UnsupportedError{Name: string(p)}
	}
}

// DirPath returns the cache directory path without touching the filesystem.
func DirPath(p platform.Platform, env Env) (string, error) {
	if override := strings.TrimSpace(env.Override); override != "" {
		return override, nil
	}
	root, err := Root(p, env)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, DirName), nil
}

// Options controls side effects of Dir.
type Options struct {
	// Clean removes the directory and its contents first.
	Clean bool
	// Create makes the directory (and parents) when missing.
	Create bool
}

// Dir resolves the cache directory, optionally cleaning and creating it.
func Dir(p platform.Platform, env Env, opts Options) (string, error) {
	dir, err := DirPath(p, env)
	if err != nil {
		return "", err
	}
	if opts.Clean {
		if err := Clean(dir); err != nil {
			return "", err
		}
	}
	if opts.Create {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf(messages.CacheCreateDirFmt, dir, err)
		}
	}
	return dir, nil
}

// Clean removes dir and everything in it. A missing directory is not an error.
// Clean refuses to touch a directory holding anything but cache entries, so an
// override pointing at a shared directory is never wiped.
func Clean(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf(messages.CacheCleanDirFmt, dir, err)
	}
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), EntryPrefix) {
			return fmt.Errorf(messages.CacheCleanForeignEntryFmt, dir, entry.Name())
		}
	}
	makeWritable(dir, entries)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf(messages.CacheCleanDirFmt, dir, err)
	}
	return nil
}

// makeWritable restores owner write permission on cached executables.
// Entries are stored read-only and Windows refuses to delete read-only files.
func makeWritable(dir string, entries []os.DirEntry) {
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		_ = os.Chmod(filepath.Join(dir, entry.Name()), 0o700)
	}
}

// EntryName returns the file name of the cached executable for version on p.
func EntryName(version string, p platform.Platform) string {
	return EntryPrefix + version + p.Suffix()
}

// EntryPath joins dir and EntryName.
func EntryPath(dir string, version string, p platform.Platform) string {
	return filepath.Join(dir, EntryName(version, p))
}

// CachedVersions returns the versions with a complete executable in dir for p.
// Temporary download files are skipped.
func CachedVersions(dir string, p platform.Platform) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf(messages.CacheReadDirFmt, dir, err)
	}
	suffix := p.Suffix()
	var versions []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, EntryPrefix) || strings.Contains(name, TempMarker) {
			continue
		}
		if suffix != "" && !strings.HasSuffix(name, suffix) {
			continue
		}
		version := strings.TrimSuffix(strings.TrimPrefix(name, EntryPrefix), suffix)
		if version == "" {
			continue
		}
		versions = append(versions, version)
	}
	return versions, nil
}
