package sheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"processo-manager/core/table"

	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is used when no sheet name is configured.
const DefaultSheetName = "Sheet1"

// Write encodes t. For XLSX the rows go to a single worksheet named sheetName.
func Write(w io.Writer, t *table.Table, format Format, sheetName string) error {
	switch format {
	case XLSX:
		return writeXLSX(w, t, sheetName)
	case CSV:
		cw := csv.NewWriter(w)
		if err := cw.WriteAll(t.Matrix()); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Bytes encodes t into memory.
func Bytes(t *table.Table, format Format, sheetName string) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, t, format, sheetName); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile encodes t to path using the format implied by its extension.
func WriteFile(path string, t *table.Table, sheetName string) error {
	format, err := FormatFromName(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Write(f, t, format, sheetName); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeXLSX(w io.Writer, t *table.Table, sheetName string) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheetName == "" {
		sheetName = DefaultSheetName
	}
	if sheetName != DefaultSheetName {
		if err := f.SetSheetName(DefaultSheetName, sheetName); err != nil {
			return fmt.Errorf("failed to name sheet %q: %w", sheetName, err)
		}
	}

	for i, line := range t.Matrix() {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(line))
		for j, v := range line {
			values[j] = v
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
