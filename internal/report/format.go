package report

import (
	"fmt"
	"strings"
	"time"

	"alkaloid/internal/aggregate"
	"alkaloid/internal/resolve"
	"alkaloid/internal/workset"
)

const (
	sectionMarkerPrefix = "COMPOUND #"
	completeMarkerFmt   = "--- complete #%s ---"
	rule                = "================================================================================"
)

// Header renders the block written once when a fresh output file is created.
func Header(totalItems int, generated time.Time) string {
	var b strings.Builder
	b.WriteString("ALKALOID BATCH COMPOUND ENRICHMENT RESULTS\n")
	fmt.Fprintf(&b, "Total items: %d\n", totalItems)
	fmt.Fprintf(&b, "Generated: %s\n", generated.Format("2006-01-02 15:04:05"))
	return b.String()
}

// Section renders one completed item, terminator included.
func Section(item workset.Item, result resolve.Result, entries []aggregate.Entry) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "%s%s: %s\n", sectionMarkerPrefix, item.Key, item.Label)
	b.WriteString(rule + "\n")

	switch result.Tier {
	case resolve.TierUnresolved:
		b.WriteString("SMILES: not resolved (flagged for manual review)\n")
	default:
		fmt.Fprintf(&b, "SMILES: %s\n", result.Value)
		fmt.Fprintf(&b, "Resolution: %s via %s\n", result.Tier, result.Source)
	}

	if len(entries) == 0 {
		b.WriteString("No references found in LOTUS database.\n")
	}
	for idx, entry := range entries {
		fmt.Fprintf(&b, "\nEntry %d: %s\n", idx+1, entry.Label)
		writeField(&b, "SMILES", entry.SMILES)
		writeField(&b, "InChIKey", entry.InChIKey)
		writeField(&b, "Title", entry.Title)
		writeField(&b, "DOI", entry.DOI)
		writeField(&b, "Published", CleanWikidataDate(entry.Published))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, completeMarkerFmt, item.Key)
	b.WriteString("\n")
	return b.String()
}

// FailedSection renders a terminated section for an item whose processing
// faulted. Persisting the failure keeps the output aligned with run
// statistics; the error text flags the item for manual attention.
func FailedSection(item workset.Item, cause error) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "%s%s: %s\n", sectionMarkerPrefix, item.Key, item.Label)
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Processing failed: %v\n", cause)
	b.WriteString("SMILES: not resolved (flagged for manual review)\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, completeMarkerFmt, item.Key)
	b.WriteString("\n")
	return b.String()
}

func writeField(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "  %s: %s\n", name, value)
}

// CleanWikidataDate strips the leading sign and time-of-day suffix from a
// Wikidata timestamp such as "+1989-06-01T00:00:00Z".
func CleanWikidataDate(value string) string {
	value = strings.TrimPrefix(strings.TrimSpace(value), "+")
	if idx := strings.Index(value, "T"); idx >= 0 {
		value = value[:idx]
	}
	return value
}

// keyFromMarker extracts the item key from a section marker line, or empty
// when the line is not a marker.
func keyFromMarker(line string) string {
	if !strings.HasPrefix(line, sectionMarkerPrefix) {
		return ""
	}
	rest := strings.TrimPrefix(line, sectionMarkerPrefix)
	idx := strings.Index(rest, ":")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(rest[:idx])
}

func completeMarker(key string) string {
	return fmt.Sprintf(completeMarkerFmt, key)
}
