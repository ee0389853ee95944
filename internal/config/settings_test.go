package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vipcxj/numeral/internal/literal"
	"github.com/vipcxj/numeral/internal/logging"
	"github.com/vipcxj/numeral/internal/shell"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "numeral.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	s, err := Load(nil, "", "")

	require.NoError(t, err)
	assert.Equal(t, "warn", s.LogLevel)
	assert.Equal(t, "auto", s.Shell)
	assert.Equal(t, shell.ShellTypeAuto, s.ShellType())
	assert.False(t, s.PreserveBase)
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, `
numeral:
  log_level: INFO
  shell: powershell
  export: true
  ranges:
    ratio: "[0 .. 1]"
    port: "[1 .. 1024) ; [8000 .. 9000]"
`)

	s, err := Load(nil, path, "numeral")

	require.NoError(t, err)
	assert.Equal(t, "INFO", s.LogLevel)
	assert.Equal(t, shell.ShellTypePowershell, s.ShellType())
	assert.True(t, s.Export)

	port, ok := s.Range("port")
	require.True(t, ok)
	assert.True(t, port.Contains(literal.NewInteger(8080, literal.BaseDecimal)))
	assert.False(t, port.Contains(literal.NewInteger(2000, literal.BaseDecimal)))

	_, ok = s.Range("missing")
	assert.False(t, ok)
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "unknown log level",
			content:  "log_level: chatty\n",
			expected: []string{"log_level", `unknown log level "chatty"`},
		},
		{
			name:     "unknown shell",
			content:  "shell: tcsh\n",
			expected: []string{"shell:"},
		},
		{
			name:     "bad range",
			content:  "ranges:\n  ratio: \"[1 ... 2]\"\n",
			expected: []string{"ranges.ratio", "malformed interval syntax"},
		},
		{
			name:     "several problems",
			content:  "log_level: chatty\nshell: tcsh\n",
			expected: []string{"log_level", "shell:"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(nil, writeSettings(t, tc.content), "")

			require.Error(t, err)
			for _, e := range tc.expected {
				assert.Contains(t, err.Error(), e)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(nil, filepath.Join(t.TempDir(), "nope.yaml"), "")
	require.Error(t, err)

	_, err = Load(nil, t.TempDir(), "")
	require.ErrorIs(t, err, ErrPathIsDirectory)
}

func TestFileFetcher_ReturnsCopy(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, "shell: sh\n")

	fetcher, err := NewFileFetcher(path)
	require.NoError(t, err)

	first, err := fetcher.Fetch()
	require.NoError(t, err)
	first[0] = 'X'

	second, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, "shell: sh\n", string(second))
	assert.Equal(t, filepath.Clean(path), fetcher.Path())
}

func TestLoad_Logger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewLogger(logging.LoggerConfig{Level: "debug"}, &buf)

	_, err := Load(logger, writeSettings(t, "shell: sh\n"), "")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"defaults applied"`)
	assert.Contains(t, buf.String(), `"msg":"settings loaded"`)
	assert.Contains(t, buf.String(), `"shell":"sh"`)
}
