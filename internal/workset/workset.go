package workset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"alkaloid/internal/services"
)

// SynonymSeparator joins alternate compound names inside the label column.
const SynonymSeparator = " or "

// Item is one record of the work set.
type Item struct {
	Key         string
	Label       string
	InChIKey    string
	PlantNumber string
	PlantName   string
	Synonyms    []string
}

// HasHints reports whether the item carries any field a lookup source could
// use.
func (i Item) HasHints() bool {
	return i.InChIKey != "" || len(i.Synonyms) > 0
}

// PrimarySynonym returns the first synonym, or empty when the label is blank.
func (i Item) PrimarySynonym() string {
	if len(i.Synonyms) == 0 {
		return ""
	}
	return i.Synonyms[0]
}

// Load reads the work set from a CSV file. Columns, in order: key, label,
// inchikey, plant number, plant name. Only the first two are required; rows
// missing them are skipped.
func Load(path string) ([]Item, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "workset", "load", fmt.Sprintf("open %s", path), err)
	}
	defer file.Close()

	items, err := Parse(file)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "workset", "load", fmt.Sprintf("parse %s", path), err)
	}
	return items, nil
}

// Parse reads work items from CSV content.
func Parse(r io.Reader) ([]Item, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var items []Item
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		item, ok := itemFromRecord(record)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func itemFromRecord(record []string) (Item, bool) {
	field := func(index int) string {
		if index >= len(record) {
			return ""
		}
		return normalize(record[index])
	}

	item := Item{
		Key:         field(0),
		Label:       field(1),
		InChIKey:    strings.ToUpper(field(2)),
		PlantNumber: field(3),
		PlantName:   field(4),
	}
	if item.Key == "" || item.Label == "" {
		return Item{}, false
	}

	for _, synonym := range strings.Split(item.Label, SynonymSeparator) {
		synonym = strings.TrimSpace(synonym)
		if synonym != "" {
			item.Synonyms = append(item.Synonyms, synonym)
		}
	}
	return item, true
}

// normalize trims whitespace and applies NFC so that lookups compare equal
// regardless of how the source file encoded accented names.
func normalize(value string) string {
	return norm.NFC.String(strings.TrimSpace(value))
}
