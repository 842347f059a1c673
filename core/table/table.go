package table

import "strings"

// Record maps a column name to its textual cell value.
type Record map[string]string

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is an ordered sequence of records sharing a column schema.
type Table struct {
	// Name identifies the table in error messages (e.g. "old", "new").
	Name string `json:"-"`

	// Columns is the ordered header of the table.
	Columns []string `json:"columns"`

	// Rows holds the records in their original order.
	Rows []Record `json:"rows"`
}

// New creates an empty table with the given columns.
func New(columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols}
}

// Named sets the table name and returns the table for chaining.
func (t *Table) Named(name string) *Table {
	t.Name = name
	return t
}

// Append adds a record at the end of the table.
func (t *Table) Append(r Record) {
	t.Rows = append(t.Rows, r)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// HasColumn reports whether the column is part of the table schema.
func (t *Table) HasColumn(name string) bool {
	return IndexOf(t.Columns, name) >= 0
}

// Value returns the cell value of a row, or "" when the column is missing.
func (t *Table) Value(row int, column string) string {
	return t.Rows[row][column]
}

// NormalizeKey trims surrounding whitespace from a key value. Case is preserved.
func NormalizeKey(v string) string {
	return strings.TrimSpace(v)
}

// KeySet returns the set of normalized keys found in the given column.
// Duplicate keys collapse into a single membership entry.
func (t *Table) KeySet(column string) map[string]struct{} {
	set := make(map[string]struct{}, len(t.Rows))
	for _, row := range t.Rows {
		set[NormalizeKey(row[column])] = struct{}{}
	}
	return set
}

// Keys returns the normalized keys of the column in first-seen order, without duplicates.
func (t *Table) Keys(column string) []string {
	seen := make(map[string]struct{}, len(t.Rows))
	keys := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		k := NormalizeKey(row[column])
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

// Project returns a new table restricted to the given columns, in that order.
// Rows are copied; columns absent from a row stay absent.
func (t *Table) Project(columns []string) *Table {
	out := New(columns)
	out.Name = t.Name
	out.Rows = make([]Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		r := make(Record, len(columns))
		for _, c := range columns {
			if v, ok := row[c]; ok {
				r[c] = v
			}
		}
		out.Rows = append(out.Rows, r)
	}
	return out
}

// Fill sets every column of the schema that is absent from a row to the empty string.
func (t *Table) Fill() {
	for _, row := range t.Rows {
		for _, c := range t.Columns {
			if _, ok := row[c]; !ok {
				row[c] = ""
			}
		}
	}
}

// Matrix returns the header followed by every row as a slice of strings,
// ordered by the table columns. Missing cells are rendered as "".
func (t *Table) Matrix() [][]string {
	out := make([][]string, 0, len(t.Rows)+1)
	header := make([]string, len(t.Columns))
	copy(header, t.Columns)
	out = append(out, header)
	for r := range t.Rows {
		line := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			line[i] = t.Value(r, c)
		}
		out = append(out, line)
	}
	return out
}
