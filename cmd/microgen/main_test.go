package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "types.yaml")
	require.NoError(t, os.WriteFile(config, []byte("types:\n  - name: TickerString\n    capacity: 11\n"), 0o644))

	out := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(out, 0o755))

	require.NoError(t, run([]string{"--config", config, "-o", out, "-v"}))
	src, err := os.ReadFile(filepath.Join(out, "ticker_string.go"))
	require.NoError(t, err)
	require.Contains(t, string(src), "const TickerStringCapacity = 11")
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()

	err := run([]string{"--config", filepath.Join(dir, "missing.yaml")})
	require.ErrorContains(t, err, "read config")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("types:\n  - name: Code\n    capacity: 300\n"), 0o644))
	err = run([]string{"-c", bad, "-o", dir})
	require.ErrorContains(t, err, "capacity must be between 1 and 255")

	require.Error(t, run([]string{"--unknown"}))
	require.NoError(t, run([]string{"--help"}))
}
