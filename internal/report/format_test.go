package report

import (
	"strings"
	"testing"
	"time"

	"alkaloid/internal/aggregate"
	"alkaloid/internal/resolve"
	"alkaloid/internal/workset"
)

func testTime() time.Time {
	return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
}

func TestHeaderContents(t *testing.T) {
	header := Header(42, testTime())
	if !strings.Contains(header, "Total items: 42") {
		t.Fatalf("header missing total: %q", header)
	}
	if !strings.Contains(header, "Generated: 2026-03-14 09:30:00") {
		t.Fatalf("header missing timestamp: %q", header)
	}
}

func TestSectionResolved(t *testing.T) {
	item := workset.Item{Key: "12", Label: "quercetin"}
	result := resolve.Result{Value: "C1=CC(=O)O", Tier: resolve.TierFull, Source: "pubchem-inchikey"}
	entries := []aggregate.Entry{
		{Label: "quercetin", SMILES: "C1=CC(=O)O", Title: "Paper A", DOI: "10.1/a", Published: "+1989-06-01T00:00:00Z"},
		{Label: "quercetin", Title: "Paper B"},
	}

	section := Section(item, result, entries)
	for _, want := range []string{
		"COMPOUND #12: quercetin",
		"SMILES: C1=CC(=O)O",
		"Resolution: full via pubchem-inchikey",
		"Entry 1: quercetin",
		"  DOI: 10.1/a",
		"  Published: 1989-06-01",
		"Entry 2: quercetin",
		"--- complete #12 ---",
	} {
		if !strings.Contains(section, want) {
			t.Fatalf("section missing %q:\n%s", want, section)
		}
	}
	if strings.Contains(section, "No references found") {
		t.Fatalf("unexpected empty-entries line:\n%s", section)
	}
}

func TestSectionUnresolvedWithoutEntries(t *testing.T) {
	section := Section(workset.Item{Key: "3", Label: "unknownium"}, resolve.Result{Tier: resolve.TierUnresolved}, nil)
	if !strings.Contains(section, "SMILES: not resolved (flagged for manual review)") {
		t.Fatalf("missing manual review flag:\n%s", section)
	}
	if !strings.Contains(section, "No references found in LOTUS database.") {
		t.Fatalf("missing empty-entries line:\n%s", section)
	}
	if !strings.Contains(section, "--- complete #3 ---") {
		t.Fatalf("missing terminator:\n%s", section)
	}
}

func TestCleanWikidataDate(t *testing.T) {
	cases := map[string]string{
		"+1989-06-01T00:00:00Z": "1989-06-01",
		"2004-01-01":            "2004-01-01",
		"":                      "",
	}
	for input, want := range cases {
		if got := CleanWikidataDate(input); got != want {
			t.Fatalf("CleanWikidataDate(%q) = %q, want %q", input, got, want)
		}
	}
}
