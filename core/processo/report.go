package processo

import (
	"fmt"
	"strings"

	"processo-manager/core/table"
)

// Filter selects which rows a parity report keeps.
type Filter string

const (
	FilterAll  Filter = "todos"
	FilterEven Filter = "pares"
	FilterOdd  Filter = "impares"
)

// ParseFilter converts a user supplied filter name. Empty means FilterAll.
func ParseFilter(s string) (Filter, error) {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterEven, "par":
		return FilterEven, nil
	case FilterOdd, "impar", "ímpares", "ímpar":
		return FilterOdd, nil
	default:
		return "", fmt.Errorf("%w: %q (expected todos, pares or impares)", ErrInvalidFilter, s)
	}
}

// DefaultReportColumns are the working columns of the "100 dias" workbook.
var DefaultReportColumns = []string{"DESCRIÇÃO CLASSE CNJ", "PROCESSO", "VALOR DA CAUSA", "QTDE DIAS"}

// ReportOptions configures a parity report.
type ReportOptions struct {
	// KeyColumn holds the processo key. Defaults to "PROCESSO".
	KeyColumn string
	// ParityColumn is appended with the PAR/ÍMPAR label. Defaults to "PAR ou ÍMPAR".
	ParityColumn string
	// Columns are required and kept in this order. Defaults to DefaultReportColumns.
	Columns []string
	// Filter restricts the returned rows. Counts always cover every row.
	Filter Filter
}

// ParityReport is the result of Report.
type ParityReport struct {
	Table *table.Table `json:"table"`
	Even  int          `json:"even"`
	Odd   int          `json:"odd"`
}

// Report projects t to the working columns, labels every row with its parity and
// filters the rows. A malformed key aborts the whole report.
func Report(t *table.Table, opts ReportOptions) (*ParityReport, error) {
	if opts.KeyColumn == "" {
		opts.KeyColumn = "PROCESSO"
	}
	if opts.ParityColumn == "" {
		opts.ParityColumn = "PAR ou ÍMPAR"
	}
	if len(opts.Columns) == 0 {
		opts.Columns = DefaultReportColumns
	}
	if opts.Filter == "" {
		opts.Filter = FilterAll
	}

	required := table.Union(opts.Columns, []string{opts.KeyColumn})
	if missing := table.Difference(required, t.Columns); len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	projected := t.Project(opts.Columns)
	labeled := table.New(append(projected.Columns, opts.ParityColumn))
	labeled.Name = t.Name

	report := &ParityReport{Table: labeled}
	for i, row := range projected.Rows {
		p, err := Classify(t.Rows[i][opts.KeyColumn])
		if err != nil {
			return nil, err
		}
		switch p {
		case Even:
			report.Even++
		case Odd:
			report.Odd++
		}

		if (opts.Filter == FilterEven && p != Even) || (opts.Filter == FilterOdd && p != Odd) {
			continue
		}
		row[opts.ParityColumn] = p.String()
		labeled.Append(row)
	}
	labeled.Fill()

	return report, nil
}
