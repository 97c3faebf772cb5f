package main

import (
	"os"
	"path/filepath"
	"testing"

	"sitecfg/internal/config"
)

func TestInitWritesLoadableSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "site.yaml")
	out, _, err := runCLI(t, "init", "--path", target)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration to "+target)

	cfg, _, err := config.Load(target)
	if err != nil {
		t.Fatalf("load written sample: %v", err)
	}
	if cfg.Site.Title != "Christian Schleifer" {
		t.Fatalf("unexpected title %q", cfg.Site.Title)
	}

	out, _, err = runCLI(t, "--config", target, "validate")
	if err != nil {
		t.Fatalf("validate written sample: %v", err)
	}
	requireContains(t, out, "Configuration valid")
}

func TestInitRefusesOverwrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "site.toml")
	if _, _, err := runCLI(t, "init", "--path", target); err != nil {
		t.Fatalf("first init: %v", err)
	}
	if err := os.WriteFile(target, []byte("# edited\n"), 0o644); err != nil {
		t.Fatalf("edit target: %v", err)
	}

	_, _, err := runCLI(t, "init", "--path", target)
	if err == nil {
		t.Fatal("expected second init to fail")
	}
	requireContains(t, err.Error(), "--overwrite")

	if _, _, err := runCLI(t, "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("init --overwrite: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read target: %v", err)
	}
	if string(data) == "# edited\n" {
		t.Fatal("expected --overwrite to replace the file")
	}
}

func TestInitDefaultsToWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if _, _, err := runCLI(t, "init", "--format", "yaml"); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "site.yaml")); err != nil {
		t.Fatalf("expected site.yaml in working directory: %v", err)
	}
}

func TestInitSkipsConfigLoad(t *testing.T) {
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "missing.toml"))
	target := filepath.Join(t.TempDir(), "site.toml")
	if _, _, err := runCLI(t, "init", "--path", target); err != nil {
		t.Fatalf("init should not load existing config: %v", err)
	}
}

func TestResolveInitTarget(t *testing.T) {
	format, target, err := resolveInitTarget("/tmp/site.yml", "toml", false)
	if err != nil {
		t.Fatalf("resolveInitTarget: %v", err)
	}
	if format != config.FormatYAML || target != "/tmp/site.yml" {
		t.Fatalf("unexpected result %s %s", format, target)
	}

	if _, _, err := resolveInitTarget("/tmp/site.yaml", "toml", true); err == nil {
		t.Fatal("expected mismatch between --format and extension to fail")
	}
	if _, _, err := resolveInitTarget("/tmp/site.json", "toml", false); err == nil {
		t.Fatal("expected unsupported extension to fail")
	}
	if _, _, err := resolveInitTarget("", "ini", true); err == nil {
		t.Fatal("expected unsupported format to fail")
	}
}
