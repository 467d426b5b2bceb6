package batch

import (
	"encoding/csv"
	"fmt"
	"os"

	"alkaloid/internal/resolve"
	"alkaloid/internal/workset"
)

// ExportRow is one line of the flat CSV export, built from the same
// in-memory data that produced the item's output section.
type ExportRow struct {
	Item   workset.Item
	Result resolve.Result
}

var exportHeader = []string{
	"key", "plant_number", "plant_name", "compound_name", "inchikey",
	"smiles", "tier", "source",
}

// WriteExport writes the tabular export for all items processed this run.
func WriteExport(path string, rows []ExportRow) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(exportHeader); err != nil {
		return fmt.Errorf("write export header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Item.Key,
			row.Item.PlantNumber,
			row.Item.PlantName,
			row.Item.Label,
			row.Item.InChIKey,
			row.Result.Value,
			row.Result.Tier.String(),
			row.Result.Source,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write export row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush export: %w", err)
	}
	return nil
}
