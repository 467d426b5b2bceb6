package aggregate

import (
	"reflect"
	"testing"
)

func TestDeduplicateKeepsFirstOccurrence(t *testing.T) {
	entries := []Entry{
		{Label: "quercetin", Title: "Paper A", DOI: "10.1/a", SMILES: "C1"},
		{Label: "quercetin", Title: "Paper A", DOI: "10.1/a", SMILES: "different"},
		{Label: "quercetin", Title: "Paper B", DOI: "10.1/b"},
		{Label: "rutin", Title: "Paper A", DOI: "10.1/a"},
	}

	unique := Deduplicate(entries)
	if len(unique) != 3 {
		t.Fatalf("expected 3 unique entries, got %d", len(unique))
	}
	if unique[0].SMILES != "C1" {
		t.Fatalf("first occurrence's fields must be retained, got %+v", unique[0])
	}
	if unique[1].Title != "Paper B" || unique[2].Label != "rutin" {
		t.Fatalf("insertion order not preserved: %+v", unique)
	}
}

func TestDeduplicateIsDeterministic(t *testing.T) {
	entries := []Entry{
		{Label: "b", Title: "t1"},
		{Label: "a", Title: "t1"},
		{Label: "b", Title: "t2"},
		{Label: "a", Title: "t1"},
	}

	first := Deduplicate(entries)
	second := Deduplicate(entries)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("aggregation not deterministic: %+v vs %+v", first, second)
	}
	if len(entries) != 4 {
		t.Fatalf("input mutated, length now %d", len(entries))
	}
}

func TestDeduplicateEmpty(t *testing.T) {
	if got := Deduplicate(nil); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}

func TestCountLabels(t *testing.T) {
	entries := []Entry{
		{Label: "a"}, {Label: "b"}, {Label: "a"},
	}
	if got := CountLabels(entries); got != 2 {
		t.Fatalf("expected 2 labels, got %d", got)
	}
}
