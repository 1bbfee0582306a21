package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/stangrid/internal/app"
	"github.com/specialistvlad/stangrid/internal/errcode"
	"github.com/specialistvlad/stangrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ArgsFile(t *testing.T) {
	t.Parallel()
	dir := testutil.WriteFiles(t, map[string]string{
		"run.yaml": `
			method: sample
			sample:
			  num_samples: 50
		`,
		"broken.yaml": "- not a mapping\n",
	})

	t.Run("file tokens come first", func(t *testing.T) {
		t.Parallel()

		_, tokens, err := Parse([]string{"--args-file", filepath.Join(dir, "run.yaml"), "thin=2"}, nil, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, []string{"method=sample", "sample.num_samples=50", "thin=2"}, tokens)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := Parse([]string{"--args-file", filepath.Join(dir, "absent.yaml")}, nil, &bytes.Buffer{})

		var exitErr *ExitError
		require.True(t, errors.As(err, &exitErr))
		assert.Equal(t, errcode.NoInput, exitErr.Code)
	})

	t.Run("malformed file", func(t *testing.T) {
		t.Parallel()

		_, _, err := Parse([]string{"--args-file", filepath.Join(dir, "broken.yaml")}, nil, &bytes.Buffer{})

		var exitErr *ExitError
		require.True(t, errors.As(err, &exitErr))
		assert.Equal(t, errcode.DataErr, exitErr.Code)
		assert.Contains(t, exitErr.Message, "expected a mapping")
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		environ        []string
		expectErr      bool
		expectedConfig *app.Config
		expectedTokens []string
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "Happy Path with all flags",
			args: []string{
				"-model", "/test/model.hcl",
				"--log-level=debug",
				"--log-format=json",
				"sample", "num_samples=10",
			},
			expectedConfig: &app.Config{ModelPath: "/test/model.hcl", LogLevel: "debug", LogFormat: "json"},
			expectedTokens: []string{"sample", "num_samples=10"},
		},
		{
			name:           "Shorthand flag and defaults",
			args:           []string{"-m", "/short/path"},
			expectedConfig: &app.Config{ModelPath: "/short/path", LogLevel: "warn", LogFormat: "text"},
			expectedTokens: []string{},
		},
		{
			name:           "Flags stop at the first token",
			args:           []string{"method=optimize", "--log-level=debug"},
			expectedConfig: &app.Config{LogLevel: "warn", LogFormat: "text"},
			expectedTokens: []string{"method=optimize", "--log-level=debug"},
		},
		{
			name:           "Case is normalized",
			args:           []string{"--log-level=DEBUG", "--log-format=JSON"},
			expectedConfig: &app.Config{LogLevel: "debug", LogFormat: "json"},
			expectedTokens: []string{},
		},
		{
			name:           "Environment supplies defaults",
			args:           []string{"diagnose"},
			environ:        []string{"PATH=/bin", EnvModel + "=/env/model", EnvLogLevel + "=error", EnvLogFormat + "="},
			expectedConfig: &app.Config{ModelPath: "/env/model", LogLevel: "error", LogFormat: "text"},
			expectedTokens: []string{"diagnose"},
		},
		{
			name:           "Flag beats environment",
			args:           []string{"--log-level=info"},
			environ:        []string{EnvLogLevel + "=error"},
			expectedConfig: &app.Config{LogLevel: "info", LogFormat: "text"},
			expectedTokens: []string{},
		},
		{
			name:           "Help flag becomes the help token",
			args:           []string{"-h"},
			expectedTokens: []string{helpToken},
			checkOutput: func(t *testing.T, output string) {
				assert.Contains(t, output, "Usage:", "Expected help text to be printed")
			},
		},
		{
			name:           "Help token after flags is left for the argument parser",
			args:           []string{"--log-level=info", "help"},
			expectedConfig: &app.Config{LogLevel: "info", LogFormat: "text"},
			expectedTokens: []string{"help"},
		},
		{
			name:      "Invalid log level returns an error",
			args:      []string{"--log-level=foo"},
			expectErr: true,
		},
		{
			name:      "Invalid log format returns an error",
			args:      []string{"--log-format=yaml"},
			expectErr: true,
		},
		{
			name:      "Unknown flag returns an error",
			args:      []string{"--workers=4"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out := &bytes.Buffer{}

			// --- Act ---
			cfg, tokens, err := Parse(tc.args, tc.environ, out)

			// --- Assert ---
			if tc.expectErr {
				require.Error(t, err)
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr), "Expected error to be of type ExitError")
				assert.Equal(t, errcode.Usage, exitErr.Code)
				return
			}
			require.NoError(t, err)

			if diff := cmp.Diff(tc.expectedConfig, cfg); diff != "" {
				t.Errorf("Config mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.expectedTokens, tokens); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
		})
	}
}
