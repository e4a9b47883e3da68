package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/IngoMeyer441/hadolint-get/internal/messages"
)

// FileName is the config file looked up by FindConfigFile.
const FileName = ".hadolint-get.toml"

var osStat = os.Stat

// FindConfigFile searches start and its parent directories for FileName.
// It returns the absolute path and true when a regular file is found.
func FindConfigFile(start string) (string, bool, error) {
	if start == "" {
		return "", false, errors.New(messages.ConfigStartPathRequired)
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false, fmt.Errorf(messages.ConfigResolvePathFmt, start, err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		info, err := osStat(candidate)
		switch {
		case err == nil && info.Mode().IsRegular():
			return candidate, true, nil
		case err != nil && !errors.Is(err, os.ErrNotExist) && !errors.Is(err, os.ErrPermission):
			return "", false, fmt.Errorf(messages.ConfigCheckPathFmt, candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}
