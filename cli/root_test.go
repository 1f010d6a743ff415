package cli

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/IrumShehryar/Restaurant-Website/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "restaurant", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()

	for _, cmdName := range []string{"serve", "seed"} {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "command %s should exist", cmdName)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	storeFlag := cmd.PersistentFlags().Lookup("store")
	require.NotNil(t, storeFlag)
	assert.Equal(t, "", storeFlag.DefValue)

	require.NotNil(t, cmd.PersistentFlags().Lookup("log-level"))
}

func TestSeedCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	seedCmd, _, err := cmd.Find([]string{"seed"})
	require.NoError(t, err)

	fileFlag := seedCmd.Flags().Lookup("file")
	require.NotNil(t, fileFlag)
	assert.Equal(t, "f", fileFlag.Shorthand)

	clearFlag := seedCmd.Flags().Lookup("clear")
	require.NotNil(t, clearFlag)
	assert.Equal(t, "false", clearFlag.DefValue)
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")
	t.Setenv("LOG_LEVEL", "info")

	opts := &RootOptions{Store: "Memory", LogLevel: "debug"}
	require.NoError(t, opts.load())
	t.Cleanup(func() { slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil))) })

	assert.Equal(t, config.DriverMemory, opts.Config.Store.Driver)
	assert.Equal(t, slog.LevelDebug, opts.Config.Log.Level)
}

func TestLoad_RejectsUnknownStore(t *testing.T) {
	opts := &RootOptions{Store: "redis"}
	assert.Error(t, opts.load())
}

func TestSeedCommand_SQLite(t *testing.T) {
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "restaurant.db"))

	for i, args := range [][]string{
		{"seed", "--store", "sqlite"},
		{"seed", "--store", "sqlite", "--clear"},
	} {
		cmd := NewRootCommand()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs(args)

		require.NoError(t, cmd.Execute(), "run %d", i)
		assert.Contains(t, out.String(), "seeded 16 menu items into the sqlite store")
	}
}

func TestSeedCommand_MissingFile(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"seed", "--store", "memory", "--file", filepath.Join(t.TempDir(), "nope.yaml")})

	assert.Error(t, cmd.Execute())
}
