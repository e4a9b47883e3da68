// Package platform maps Go operating system names to the hadolint release platforms.
package platform

import (
	"fmt"
	"strings"

	"github.com/IngoMeyer441/hadolint-get/internal/messages"
)

// Platform identifies an operating system hadolint publishes executables for.
type Platform string

// Supported platforms.
const (
	Darwin  Platform = "Darwin"
	Linux   Platform = "Linux"
	Windows Platform = "Windows"
)

// Supported lists every platform in display order.
var Supported = []Platform{Darwin, Linux, Windows}

// UnsupportedError reports an operating system outside Supported.
type UnsupportedError struct {
	Name string
}

func (e *UnsupportedError) Error() string {
	names := make([]string, 0, len(Supported))
	for _, p := range Supported {
		names = append(names, fmt.Sprintf("%q", string(p)))
	}
	return fmt.Sprintf(messages.PlatformUnsupportedFmt, e.Name, strings.Join(names, ", "))
}

// FromGOOS converts a runtime.GOOS value into a Platform.
func FromGOOS(goos string) (Platform, error) {
	switch goos {
	case "darwin":
		return Darwin, nil
	case "linux":
		return Linux, nil
	case "windows":
		return Windows, nil
	default:
		return "", &UnsupportedError{Name: goos}
	}
}

// Suffix returns the executable file suffix, including the leading dot when present.
func (p Platform) Suffix() string {
	if p == Windows {
		return ".exe"
	}
	return ""
}

// URLToken returns the platform name used in release asset names.
func (p Platform) URLToken() string {
	return string(p)
}

func (p Platform) String() string {
	return string(p)
}
