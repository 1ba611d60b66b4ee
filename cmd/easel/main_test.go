package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute(), out.String())
	return out.String()
}

func TestVersion(t *testing.T) {
	assert.Contains(t, execute(t, "version"), "easel version ")
}

func TestCircleSaveThenPlan(t *testing.T) {
	dir := t.TempDir()
	jobPath := filepath.Join(dir, "circle.yaml")
	cfgPath := filepath.Join(dir, "missing.yaml")

	out := execute(t, "circle", "--points", "8", "--radius", "50", "--save", jobPath)
	assert.Contains(t, out, "Saved circle job to "+jobPath)

	out = execute(t, "plan", jobPath, "--config", cfgPath, "--raw")
	assert.Contains(t, out, "# Plan: circle")
	// 8 points closed to 9, plus current, hovers and touch-down.
	assert.Contains(t, out, "| 1 | painting | 0 | 13 |")
}

func TestSessionLs_Empty(t *testing.T) {
	dir := t.TempDir()
	out := execute(t, "session", "ls", "--config", filepath.Join(dir, "missing.yaml"), "--store", "memory")
	assert.Contains(t, out, "No stored sessions found.")
}
