package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"abfuhrkalender/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func TestCreateOutputDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "out")

	dir, err := createOutputDir(root)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "calendars"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())

	// existing directories are left alone
	_, err = createOutputDir(root)
	require.NoError(t, err)
}

func TestCreateOutputDirBlocked(t *testing.T) {
	root := t.TempDir()
	err := os.WriteFile(filepath.Join(root, "calendars"), []byte("file"), 0644)
	require.NoError(t, err)

	_, err = createOutputDir(root)
	require.Error(t, err)
}

func TestExitHooks(t *testing.T) {
	var order []string
	var hooks exitHooks
	hooks.add(func() { order = append(order, "telemetry") })
	hooks.add(func() { order = append(order, "fetcher") })

	hooks.run()
	hooks.run()
	require.Equal(t, []string{"fetcher", "telemetry"}, order)
}

func TestShutdownTelemetryCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	shutdownTelemetry(ctx, telemetry.Telemetry{})
}
