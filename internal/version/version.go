// Package version resolves which hadolint release to use.
package version

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Latest is the version keyword that selects the newest upstream release.
const Latest = "latest"

const tagRefPrefix = "refs/tags/"

// versionPattern matches an optional v/V prefix, a required major.minor and an optional patch.
var versionPattern = regexp.MustCompile(`^[vV]?(\d+)\.(\d+)(?:\.(\d+))?$`)

// Tag is a version tag together with its numeric components.
type Tag struct {
	Name       string
	Components []int
}

// Normalize prefixes v when raw does not already start with it.
func Normalize(raw string) string {
	if strings.HasPrefix(raw, "v") {
		return raw
	}
	return "v" + raw
}

// IsLatest reports whether requested asks for the newest release:
// only the empty string and the exact keyword do.
func IsLatest(requested string) bool {
	return requested == "" || requested == Latest
}

// Parse parses a bare version string such as "v2.12.0" or "1.2".
func Parse(name string) (Tag, bool) {
	m := versionPattern.FindStringSubmatch(name)
	if m == nil {
		return Tag{}, false
	}
	components := make([]int, 0, 3)
	for _, group := range m[1:] {
		if group == "" {
			continue
		}
		n, err := strconv.Atoi(group)
		if err != nil {
			return Tag{}, false
		}
		components = append(components, n)
	}
	return Tag{Name: name, Components: components}, true
}

// ParseRef parses a full ref name such as "refs/tags/v2.12.0".
// Refs outside refs/tags/ and peeled refs ("^{}") are rejected.
func ParseRef(ref string) (Tag, bool) {
	name, ok := strings.CutPrefix(ref, tagRefPrefix)
	if !ok {
		return Tag{}, false
	}
	return Parse(name)
}

// Compare orders a and b by their components element-wise.
// When one is a prefix of the other, the shorter one is smaller, so v1.2 < v1.2.0.
func Compare(a, b Tag) int {
	return slices.Compare(a.Components, b.Components)
}

// Max returns the tag with the greatest components.
// On ties the earliest tag wins. It reports false when tags is empty.
func Max(tags []Tag) (Tag, bool) {
	if len(tags) == 0 {
		return Tag{}, false
	}
	best := tags[0]
	for _, tag := range tags[1:] {
		if Compare(tag, best) > 0 {
			best = tag
		}
	}
	return best, true
}
