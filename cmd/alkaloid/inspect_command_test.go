package main

import (
	"os"
	"strings"
	"testing"
)

func TestInspectReportsCompletion(t *testing.T) {
	env := setupCLITestEnv(t)

	workset := "A,quercetin,KEY-A,1,Arnica montana\nB,rutin,,1,Arnica montana\n"
	if err := os.WriteFile(env.workset, []byte(workset), 0o644); err != nil {
		t.Fatalf("write workset: %v", err)
	}

	output := "ALKALOID BATCH COMPOUND ENRICHMENT RESULTS\n" +
		"COMPOUND #A: quercetin\n" +
		"SMILES: CCO\n" +
		"--- complete #A ---\n"
	if err := os.WriteFile(env.output, []byte(output), 0o644); err != nil {
		t.Fatalf("write output: %v", err)
	}

	out, err := runCLI(t, []string{"inspect"}, env.configPath)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	requireContains(t, out, "1 of 2 items complete")
	requireContains(t, out, "complete")
	requireContains(t, out, "pending")
}

func TestInspectPendingFilter(t *testing.T) {
	env := setupCLITestEnv(t)

	workset := "A,quercetin,KEY-A,1,Arnica montana\nB,rutin,,1,Arnica montana\n"
	if err := os.WriteFile(env.workset, []byte(workset), 0o644); err != nil {
		t.Fatalf("write workset: %v", err)
	}
	output := "COMPOUND #A: quercetin\n--- complete #A ---\n"
	if err := os.WriteFile(env.output, []byte(output), 0o644); err != nil {
		t.Fatalf("write output: %v", err)
	}

	out, err := runCLI(t, []string{"inspect", "--pending"}, env.configPath)
	if err != nil {
		t.Fatalf("inspect --pending: %v", err)
	}
	requireContains(t, out, "rutin")
	if strings.Contains(out, "quercetin") {
		t.Fatalf("completed item should be filtered out:\n%s", out)
	}
}
