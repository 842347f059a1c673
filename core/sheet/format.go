package sheet

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

var (
	// ErrUnsupportedFormat indicates a file extension that is neither xlsx nor csv.
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

	// ErrEmptyWorkbook indicates a workbook with no worksheet.
	ErrEmptyWorkbook = errors.New("workbook has no worksheet")
)

// Format is a spreadsheet file format.
type Format string

const (
	XLSX Format = "xlsx"
	CSV  Format = "csv"
)

// ContentType returns the MIME type used for downloads.
func (f Format) ContentType() string {
	if f == CSV {
		return "text/csv; charset=utf-8"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// ParseFormat converts a format name such as "xlsx" or ".CSV".
func ParseFormat(s string) (Format, error) {
	switch Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")) {
	case XLSX, "xlsm":
		return XLSX, nil
	case CSV, "txt":
		return CSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// FormatFromName infers the format from a file name extension.
func FormatFromName(name string) (Format, error) {
	return ParseFormat(filepath.Ext(name))
}

// FileName builds a download name such as "planilha_comparada_Meta2_19-10-2026.xlsx".
func FileName(prefix string, date time.Time, format Format) string {
	return fmt.Sprintf("%s_%s.%s", prefix, date.Format("02-01-2006"), format)
}
