package sheet

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"processo-manager/core/table"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

// ReadOptions controls decoding.
type ReadOptions struct {
	// Sheet selects a worksheet by name. Empty means the first worksheet.
	Sheet string
	// Delimiter forces the CSV delimiter. Zero means auto-detect among ',', ';', '\t'.
	Delimiter rune
}

// Read decodes a spreadsheet into a table named after the source.
func Read(r io.Reader, format Format, opts ReadOptions) (*table.Table, error) {
	var (
		rows [][]string
		err  error
	)
	switch format {
	case XLSX:
		rows, err = readXLSX(r, opts.Sheet)
	case CSV:
		rows, err = readCSV(r, opts.Delimiter)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	return fromRows(rows), nil
}

// ReadFile opens path and decodes it using the format implied by its extension.
func ReadFile(path string) (*table.Table, error) {
	format, err := FormatFromName(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Read(f, format, ReadOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return t, nil
}

// Decode reads an in-memory upload using the format implied by its file name.
func Decode(name string, data []byte) (*table.Table, error) {
	format, err := FormatFromName(name)
	if err != nil {
		return nil, err
	}
	return Read(bytes.NewReader(data), format, ReadOptions{})
}

func readXLSX(r io.Reader, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmptyWorkbook
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSV(r io.Reader, delimiter rune) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	if delimiter == 0 {
		delimiter = detectDelimiter(data)
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return rows, nil
}

// detectDelimiter picks the most frequent candidate in the first non-blank line.
func detectDelimiter(data []byte) rune {
	sc := bufio.NewScanner(bytes.NewReader(data))
	line := ""
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			line = sc.Text()
			break
		}
	}

	best, bestCount := ',', 0
	for _, d := range []rune{',', ';', '\t'} {
		if n := strings.Count(line, string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

// fromRows turns a raw grid into a table. The first non-blank row is the header;
// fully blank rows are skipped.
func fromRows(rows [][]string) *table.Table {
	start := 0
	for start < len(rows) && blank(rows[start]) {
		start++
	}
	if start == len(rows) {
		return table.New(nil)
	}

	columns := headers(rows[start])
	t := table.New(columns)
	for _, raw := range rows[start+1:] {
		if blank(raw) {
			continue
		}
		r := make(table.Record, len(columns))
		for i, c := range columns {
			if i < len(raw) {
				r[c] = raw[i]
			} else {
				r[c] = ""
			}
		}
		t.Append(r)
	}
	return t
}

func headers(raw []string) []string {
	cols := make([]string, len(raw))
	seen := make(map[string]int, len(raw))
	for i, h := range raw {
		name := norm.NFC.String(strings.TrimSpace(h))
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n+1)
		} else {
			seen[name] = 0
		}
		cols[i] = name
	}
	return cols
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
