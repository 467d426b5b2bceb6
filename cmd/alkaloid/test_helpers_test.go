package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	home       string
	configPath string
	workset    string
	output     string
}

// setupCLITestEnv redirects the user home into a temp directory and writes a
// config file whose paths all live under it.
func setupCLITestEnv(t *testing.T) cliTestEnv {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)

	dataDir := filepath.Join(home, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		t.Fatalf("create data dir: %v", err)
	}

	env := cliTestEnv{
		home:       home,
		configPath: filepath.Join(home, "config.toml"),
		workset:    filepath.Join(dataDir, "workset.csv"),
		output:     filepath.Join(dataDir, "compounds.txt"),
	}

	content := fmt.Sprintf(`[paths]
workset = %q
output = %q
export = %q
log_dir = %q
cache_file = %q

[batch]
cache_lookups = false
`,
		env.workset,
		env.output,
		filepath.Join(dataDir, "compounds.csv"),
		filepath.Join(dataDir, "logs"),
		filepath.Join(dataDir, "lookups.db"),
	)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return env
}

func runCLI(t *testing.T, args []string, configPath string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("expected output to contain %q, got:\n%s", want, output)
	}
}
