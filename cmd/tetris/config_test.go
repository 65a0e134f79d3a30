package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

func runConfigCmd(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out strings.Builder
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"config"}, args...))
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		flagDefaults = false
	})

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestConfigCommandDefaults(t *testing.T) {
	out := runConfigCmd(t, "--defaults")
	assert.Equal(t, string(config.DefaultYAML()), out)
}

func TestConfigCommandEffective(t *testing.T) {
	out := runConfigCmd(t)

	cfg := config.DefaultTetrisConfig()
	want, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Equal(t, string(want), out)
}
