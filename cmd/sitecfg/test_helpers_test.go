package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"sitecfg/internal/config"
	"sitecfg/internal/testsupport"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if args == nil {
		// cobra reads os.Args when given nil.
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, opts ...testsupport.ConfigOption) string {
	t.Helper()
	return testsupport.WriteEncoded(t, t.TempDir(), "site.toml", config.FormatTOML, testsupport.NewConfig(t, opts...))
}

func writeSampleConfig(t *testing.T, format config.Format) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site."+string(format))
	if err := config.CreateSample(path, format, false); err != nil {
		t.Fatalf("create sample: %v", err)
	}
	return path
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}
