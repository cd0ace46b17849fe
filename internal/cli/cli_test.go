package cli_test

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keychain/internal/cli"
)

// noEnv is a lookup with nothing set.
func noEnv(string) (string, bool) { return "", false }

func mapEnv(m map[string]string) cli.LookupFunc {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestParse_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, exit, err := cli.Parse(nil, &bytes.Buffer{}, noEnv)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, "", cfg.InputPath)
	assert.Equal(t, []int{2, 25}, cfg.Depths)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Empty(t, cfg.EnvFile, "no .env in the working directory")
}

func TestParse_Flags(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "k.env")
	require.NoError(t, os.WriteFile(envFile, []byte("KEYCHAIN_DEPTH=9\n"), 0o600))
	args := []string{
		"-depth", "3", "-workers", "4", "-layouts", "pads.yaml",
		"-log-format", "JSON", "-log-level", "debug",
		"-env-file", envFile, "codes.txt",
	}

	cfg, exit, err := cli.Parse(args, &bytes.Buffer{}, noEnv)
	require.NoError(t, err)
	require.False(t, exit)
	assert.Equal(t, "codes.txt", cfg.InputPath)
	assert.Equal(t, "pads.yaml", cfg.LayoutsPath)
	assert.Equal(t, []int{3}, cfg.Depths, "flags beat the env file")
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, envFile, cfg.EnvFile)
}

func TestParse_InputPrecedence(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, _, err := cli.Parse([]string{"-i", "short.txt", "pos.txt"}, &bytes.Buffer{}, noEnv)
	require.NoError(t, err)
	assert.Equal(t, "short.txt", cfg.InputPath)

	cfg, _, err = cli.Parse([]string{"-input", "long.txt", "-i", "short.txt"}, &bytes.Buffer{}, noEnv)
	require.NoError(t, err)
	assert.Equal(t, "long.txt", cfg.InputPath)
}

// TestParse_EnvFileMissing separates the optional default file from an explicit one.
func TestParse_EnvFileMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.env")
	_, _, err := cli.Parse([]string{"-env-file", missing}, &bytes.Buffer{}, noEnv)
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr), "want ExitError, got %v", err)
	assert.Equal(t, 2, exitErr.Code)

	t.Chdir(t.TempDir())
	_, _, err = cli.Parse(nil, &bytes.Buffer{}, noEnv)
	assert.NoError(t, err, "a missing default .env is ignored")
}

func TestParse_Environment(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(".env",
		[]byte("KEYCHAIN_DEPTH=7\nKEYCHAIN_WORKERS=2\nKEYCHAIN_LOG_LEVEL=info\n"), 0o600))

	cfg, _, err := cli.Parse(nil, &bytes.Buffer{}, mapEnv(map[string]string{
		cli.EnvWorkers: "8",
		cli.EnvLayouts: "custom.yaml",
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{7}, cfg.Depths, "from .env")
	assert.Equal(t, 8, cfg.Workers, "process env beats .env")
	assert.Equal(t, "custom.yaml", cfg.LayoutsPath)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, ".env", cfg.EnvFile)
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, exit, err := cli.Parse([]string{"-h"}, out, noEnv)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Errors(t *testing.T) {
	t.Chdir(t.TempDir())
	cases := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"UnknownFlag", []string{"-bogus"}, nil},
		{"NegativeDepth", []string{"-depth", "-3"}, nil},
		{"ZeroWorkers", []string{"-workers", "0"}, nil},
		{"BadFormat", []string{"-log-format", "xml"}, nil},
		{"BadLevel", []string{"-log-level", "loud"}, nil},
		{"BadEnvDepth", nil, map[string]string{cli.EnvDepth: "deep"}},
		{"BadEnvWorkers", nil, map[string]string{cli.EnvWorkers: "many"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := cli.Parse(tc.args, &bytes.Buffer{}, mapEnv(tc.env))
			var exitErr *cli.ExitError
			require.True(t, errors.As(err, &exitErr), "want ExitError, got %v", err)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}
