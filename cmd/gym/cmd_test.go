package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootRegistersCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])
	assert.True(t, names["workouts"])
}

func TestWorkoutsCommandPrintsEmptyList(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "workouts.db")
	t.Setenv("GYM_DATABASE__DRIVER", "sqlite")
	t.Setenv("GYM_DATABASE__URL", dbPath)
	t.Setenv("GYM_AUTH__SECRET_KEY", "test")
	t.Setenv("GYM_OBSERVABILITY__LOGGING__LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"migrate"})
	require.NoError(t, rootCmd.Execute())

	rootCmd.SetArgs([]string{"workouts"})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, "[]\n", out.String())
}
