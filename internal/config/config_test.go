package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"scopetrace/internal/config"
)

func writeManifest(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadParsesManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[session]
name = "demo"
output = "traces/run.json"
flush = "on-end"

[workload]
jobs = 8
tasks = 32
`)

	m, ok, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("Load did not find the manifest")
	}
	if m.Path != path {
		t.Errorf("Path = %q, want %q", m.Path, path)
	}

	want := config.Config{
		Session:  config.SessionConfig{Name: "demo", Output: "traces/run.json", Flush: "on-end"},
		Workload: config.WorkloadConfig{Jobs: 8, Tasks: 32},
	}
	if diff := cmp.Diff(want, m.Config); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSearchesUpward(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[session]\nname = \"above\"\n")

	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, ok, err := config.Load(nested)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("Load did not find the manifest above the start directory")
	}
	if m.Config.Session.Name != "above" {
		t.Errorf("session name = %q, want above", m.Config.Session.Name)
	}
	if m.Root != dir {
		t.Errorf("Root = %q, want %q", m.Root, dir)
	}
}

func TestLoadMissingManifest(t *testing.T) {
	_, ok, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Error("Load reported a manifest in an empty directory")
	}
}

func TestLoadRejectsBadFlushPolicy(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[session]\nflush = \"sometimes\"\n")

	_, _, err := config.Load(dir)
	if err == nil {
		t.Fatal("Load accepted an invalid flush policy")
	}
	if !strings.Contains(err.Error(), "invalid flush policy") {
		t.Errorf("error = %v, want it to name the invalid flush policy", err)
	}
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[session\nname =")

	if _, _, err := config.Load(dir); err == nil {
		t.Fatal("Load accepted malformed toml")
	}
}
