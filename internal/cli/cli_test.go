package cli

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/docprint/pkg/errors"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `[
  {"kind": "namespace", "name": "Net", "location": {"filename": "net.ts", "line": 1, "col": 1},
   "namespaceDef": {"elements": [
     {"kind": "class", "name": "Client", "location": {"filename": "net.ts", "line": 2, "col": 3},
      "classDef": {
        "properties": [
          {"name": "url", "tsType": "string"},
          {"name": "token", "tsType": "string", "accessibility": "private"}
        ]
      }}
   ]}},
  {"kind": "function", "name": "connect", "location": {"filename": "net.ts", "line": 20, "col": 1},
   "functionDef": {"returnType": "Client"}}
]`

// setupEnv isolates config, state and color detection from the host
func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "")
	for _, key := range []string{"DOCPRINT_COLOR", "DOCPRINT_PRIVATE", "DOCPRINT_THEME", "DOCPRINT_FORMAT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeSample(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRenderFile(t *testing.T) {
	setupEnv(t)
	path := writeSample(t, "net.json", sampleDoc)

	out, err := execute(t, "", "render", path)
	require.NoError(t, err)

	want := strings.Join([]string{
		"Defined in net.ts:20:1",
		"",
		"function connect(): Client",
		"",
		"Defined in net.ts:1:1",
		"",
		"namespace Net",
		"",
		"  class Client",
		"",
		"",
	}, "\n")
	assert.Equal(t, want, out)
	assert.NotContains(t, out, "\x1b[")
}

func TestRenderStdin(t *testing.T) {
	setupEnv(t)

	fromStdin, err := execute(t, sampleDoc, "render")
	require.NoError(t, err)

	dash, err := execute(t, sampleDoc, "render", "-")
	require.NoError(t, err)

	assert.Equal(t, fromStdin, dash)
	assert.Contains(t, fromStdin, "function connect(): Client")
}

func TestRenderFilterAndPrivate(t *testing.T) {
	setupEnv(t)
	path := writeSample(t, "net.json", sampleDoc)

	out, err := execute(t, "", "render", "--filter", "Net.Client", path)
	require.NoError(t, err)
	assert.Contains(t, out, "class Client")
	assert.Contains(t, out, "  url: string")
	assert.NotContains(t, out, "token")
	assert.NotContains(t, out, "connect")

	out, err = execute(t, "", "render", "--filter", "Net.Client", "--private", path)
	require.NoError(t, err)
	assert.Contains(t, out, "  private token: string")
}

func TestRenderFilterNoMatch(t *testing.T) {
	setupEnv(t)
	path := writeSample(t, "net.json", sampleDoc)

	_, err := execute(t, "", "render", "--filter", "Missing", path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestRenderColorAlways(t *testing.T) {
	setupEnv(t)
	path := writeSample(t, "net.json", sampleDoc)

	plain, err := execute(t, "", "render", path)
	require.NoError(t, err)

	colored, err := execute(t, "", "render", "--color", "always", path)
	require.NoError(t, err)

	assert.Contains(t, colored, "\x1b[")
	assert.Equal(t, plain, ansi.Strip(colored))
}

func TestRenderColorFromEnv(t *testing.T) {
	setupEnv(t)
	t.Setenv("DOCPRINT_COLOR", "always")
	path := writeSample(t, "net.json", sampleDoc)

	out, err := execute(t, "", "render", path)
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")

	out, err = execute(t, "", "render", "--color", "never", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[")
}

func TestRenderYAMLByFlag(t *testing.T) {
	setupEnv(t)
	doc := "- kind: variable\n  name: limit\n  location: {filename: c.ts, line: 3, col: 1}\n  variableDef: {kind: let, tsType: number}\n"
	path := writeSample(t, "input.txt", doc)

	out, err := execute(t, "", "render", "--format", "yaml", path)
	require.NoError(t, err)
	assert.Contains(t, out, "let limit: number")
}

func TestRenderErrors(t *testing.T) {
	setupEnv(t)

	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"missing file", []string{"render", filepath.Join(t.TempDir(), "none.json")}, errors.ErrFileNotFound},
		{"bad color", []string{"render", "--color", "purple"}, errors.ErrConfigValid},
		{"missing config", []string{"render", "--config", filepath.Join(t.TempDir(), "none.toml")}, errors.ErrFileNotFound},
		{"missing theme", []string{"render", "--theme", filepath.Join(t.TempDir(), "none.yaml")}, errors.ErrStyleLoad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "[]", tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
		})
	}
}

func TestConfigCommand(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "# color = ")

	out, err = execute(t, "", "config", "-w")
	require.NoError(t, err)
	path := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "docprint", "config.toml")
	assert.Contains(t, out, path)
	assert.FileExists(t, path)

	_, err = execute(t, "", "config", "-w")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}

func TestVersionCommand(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "docprint dev"))
}

func TestRootWithoutCommand(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "")
	assert.Error(t, err)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	setupEnv(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, "127.0.0.1:0", http.NotFoundHandler())
	}()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestServeReportsListenFailure(t *testing.T) {
	setupEnv(t)

	err := serve(context.Background(), "256.0.0.1:bad", http.NotFoundHandler())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
}

func TestThemeCommand(t *testing.T) {
	setupEnv(t)

	t.Run("built-in theme", func(t *testing.T) {
		out, err := execute(t, "", "theme")
		require.NoError(t, err)

		want := strings.Join([]string{
			"background: dark",
			"  Description  The quick brown fox",
			"  Keyword      The quick brown fox",
			"  Location     The quick brown fox",
			"  Name         The quick brown fox",
			"",
		}, "\n")
		assert.Equal(t, want, out)
	})

	t.Run("file argument", func(t *testing.T) {
		path := writeSample(t, "light.yaml", "background: light\n")
		out, err := execute(t, "", "theme", path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "background: light\n"))
	})

	t.Run("colored samples", func(t *testing.T) {
		plain, err := execute(t, "", "theme")
		require.NoError(t, err)
		colored, err := execute(t, "", "theme", "--color", "always")
		require.NoError(t, err)
		assert.Contains(t, colored, "\x1b[")
		assert.Equal(t, plain, ansi.Strip(colored))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, "", "theme", filepath.Join(t.TempDir(), "none.yaml"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrStyleLoad))
	})
}
