package report

import (
	"path/filepath"
	"strings"
	"testing"

	"alkaloid/internal/aggregate"
	"alkaloid/internal/resolve"
	"alkaloid/internal/workset"
)

func sectionFor(key, label string) string {
	return Section(
		workset.Item{Key: key, Label: label},
		resolve.Result{Value: "CCO", Tier: resolve.TierDegraded, Source: "pubchem-name"},
		[]aggregate.Entry{{Label: label, Title: "Paper", DOI: "10.1/x"}},
	)
}

func TestCompletionSetMissingFileIsEmpty(t *testing.T) {
	set, err := CompletionSet(filepath.Join(t.TempDir(), "absent.txt"))
	if err != nil {
		t.Fatalf("CompletionSet failed: %v", err)
	}
	if len(set) != 0 {
		t.Fatalf("expected empty set, got %v", set)
	}
}

func TestScanCompletedCountsTerminatedSections(t *testing.T) {
	content := Header(3, testTime()) + sectionFor("1", "quercetin") + sectionFor("2", "rutin")
	set, err := scanCompleted(strings.NewReader(content))
	if err != nil {
		t.Fatalf("scanCompleted failed: %v", err)
	}
	if len(set) != 2 {
		t.Fatalf("expected 2 completed, got %v", set)
	}
	for _, key := range []string{"1", "2"} {
		if _, ok := set[key]; !ok {
			t.Fatalf("expected key %s completed", key)
		}
	}
}

func TestScanCompletedExcludesTruncatedTrailingSection(t *testing.T) {
	full := sectionFor("7", "crocin")
	truncated := full[:len(full)/2]
	content := sectionFor("6", "berberine") + truncated

	set, err := scanCompleted(strings.NewReader(content))
	if err != nil {
		t.Fatalf("scanCompleted failed: %v", err)
	}
	if _, ok := set["6"]; !ok {
		t.Fatal("terminated section should be counted")
	}
	if _, ok := set["7"]; ok {
		t.Fatal("truncated trailing section must not be counted")
	}
}

func TestScanCompletedHandlesTruncationFollowedByNewSection(t *testing.T) {
	full := sectionFor("8", "crocin")
	content := full[:len(full)-20] + sectionFor("9", "rutin")

	set, err := scanCompleted(strings.NewReader(content))
	if err != nil {
		t.Fatalf("scanCompleted failed: %v", err)
	}
	if _, ok := set["8"]; ok {
		t.Fatal("section without terminator must not be counted")
	}
	if _, ok := set["9"]; !ok {
		t.Fatal("section after truncated one should be counted")
	}
}

func TestScanCompletedIgnoresMalformedMarkers(t *testing.T) {
	content := "COMPOUND #12 missing colon\n--- complete #12 ---\n"
	set, err := scanCompleted(strings.NewReader(content))
	if err != nil {
		t.Fatalf("scanCompleted failed: %v", err)
	}
	if len(set) != 0 {
		t.Fatalf("malformed marker should be skipped, got %v", set)
	}
}
