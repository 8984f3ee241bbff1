package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trendify.yaml")
	conf := "trend:\n  provider: mock\nlog:\n  level: error\n"
	require.NoError(t, os.WriteFile(path, []byte(conf), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("TRENDIFY_LLM_PROVIDER", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--env", filepath.Join(t.TempDir(), "missing.env")))
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "generate", "--conf", writeConfig(t), "--topic", "Skincare", "--out", dir)
	require.NoError(t, err)

	for _, name := range []string{
		"Skincare_strategy.json",
		"Skincare_calendar.csv",
		"Skincare_summary.pdf",
		"Skincare_calendar.xlsx",
		"Skincare_trend.png",
		"index.html",
	} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	assert.Contains(t, out, "(fallback)")
	assert.Contains(t, out, "Day 1: Skincare Quick Tip #1 — Short 1 (Instagram Reel)")

	csv, err := os.ReadFile(filepath.Join(dir, "Skincare_calendar.csv"))
	require.NoError(t, err)
	assert.Equal(t, 31, strings.Count(string(csv), "\n"))
}

func TestGenerateCommandFormats(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "generate", "--conf", writeConfig(t), "--topic", "Coffee", "--out", dir, "--formats", "json", "--page=false")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Coffee_strategy.json", entries[0].Name())
}

func TestGenerateCommandUnknownFormat(t *testing.T) {
	_, err := run(t, "generate", "--conf", writeConfig(t), "--out", t.TempDir(), "--formats", "docx")
	assert.EqualError(t, err, "unsupported export format: docx")
}

func TestTrendCommand(t *testing.T) {
	out, err := run(t, "trend", "--conf", writeConfig(t), "--keyword", "Skincare")
	require.NoError(t, err)
	assert.Contains(t, out, "source: mock")
	assert.Contains(t, out, "day 10\t37")
}

func TestTrendCommandRequiresKeyword(t *testing.T) {
	_, err := run(t, "trend", "--conf", writeConfig(t))
	assert.Error(t, err)
}

func TestMissingConfigUsesDefaults(t *testing.T) {
	opts := &options{confPath: filepath.Join(t.TempDir(), "none.yaml"), envFile: filepath.Join(t.TempDir(), "none.env"), logLevel: "error"}
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("TRENDIFY_LLM_PROVIDER", "")
	require.NoError(t, opts.load())
	assert.Equal(t, "openai", opts.cfg.LLM.Provider)
	assert.Equal(t, "error", opts.cfg.Log.Level)
}

func TestGenerateCommandKeepsFilesInOutDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	_, err := run(t, "generate", "--conf", writeConfig(t), "--topic", "../escape/x", "--out", dir, "--formats", "json,csv", "--page=false")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"_escape_x_strategy.json", "_escape_x_calendar.csv"}, names)
	assert.NoDirExists(t, filepath.Join(filepath.Dir(dir), "escape"))
}
