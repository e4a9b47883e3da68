package platform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromGOOS(t *testing.T) {
	tests := []struct {
		goos   string
		want   Platform
		suffix string
	}{
		{goos: "darwin", want: Darwin, suffix: ""},
		{goos: "linux", want: Linux, suffix: ""},
		{goos: "windows", want: Windows, suffix: ".exe"},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			got, err := FromGOOS(tt.goos)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.suffix, got.Suffix())
			assert.Equal(t, string(tt.want), got.URLToken())
		})
	}
}

func TestFromGOOS_Unsupported(t *testing.T) {
	_, err := FromGOOS("plan9")
	require.Error(t, err)

	var unsupported *UnsupportedError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "plan9", unsupported.Name)
	assert.Equal(t, `The platform "plan9" is unsupported. Supported platforms: "Darwin", "Linux", "Windows"`, err.Error())
}
