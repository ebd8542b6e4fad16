package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vasalvit/lsys/internal/cli"
)

func TestRun_ShouldExit(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(context.Background(), out, []string{"-h"})
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	err := run(context.Background(), &bytes.Buffer{}, []string{"-log-level", "loud", "a.svg"})

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
}

func TestRun_List(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), out, []string{"-list"}))
	require.Contains(t, out.String(), "Dragon Curve\n")
	require.Contains(t, out.String(), "Koch Star\n")
}

func TestRun_WritesFigure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weed.svg")
	state := filepath.Join(dir, "state.hcl")

	out := &bytes.Buffer{}
	err := run(context.Background(), out, []string{
		"-preset", "weed", "-depth", "2", "-state", state, "-axes=false", path,
	})
	require.NoError(t, err)
	require.Contains(t, out.String(), "Figure written.")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "<?xml"))
	require.Contains(t, string(data), "<line ")

	saved, err := os.ReadFile(state)
	require.NoError(t, err)
	require.Contains(t, string(saved), "depth")
}

func TestRun_GrammarError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	err := run(context.Background(), &bytes.Buffer{}, []string{"-axiom", "f[", path})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unterminated")

	_, statErr := os.Stat(path)
	require.True(t, errors.Is(statErr, os.ErrNotExist))
}
