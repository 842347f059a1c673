package reconcile

import (
	"fmt"
	"strings"

	"processo-manager/core/processo"
	"processo-manager/core/table"
)

// Reconcile merges the old (complete) and current (new) tables according to opts.
// Inputs are never modified; the returned table owns fresh copies of every row.
func Reconcile(old, current *table.Table, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	switch opts.Mode {
	case ModeFilter, ModeUnion, ModeRefresh:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, opts.Mode)
	}

	if old == nil {
		old = table.New(nil)
	}
	if current == nil {
		current = table.New(nil)
	}

	if err := requireColumn(old, "old", opts.KeyColumn); err != nil {
		return nil, err
	}
	if err := requireColumn(current, "new", opts.KeyColumn); err != nil {
		return nil, err
	}

	oldKeys := old.KeySet(opts.KeyColumn)
	newKeys := current.KeySet(opts.KeyColumn)

	result := &Result{
		RemovedKeys: missingFrom(old.Keys(opts.KeyColumn), newKeys),
		AddedKeys:   missingFrom(current.Keys(opts.KeyColumn), oldKeys),
	}
	result.Summary = Summary{
		TotalOld: len(oldKeys),
		TotalNew: len(newKeys),
		Removed:  len(result.RemovedKeys),
		Added:    len(result.AddedKeys),
	}

	carry := carryColumns(old, current, opts)

	var out *table.Table
	switch opts.Mode {
	case ModeFilter:
		out = filterRows(old, newKeys, carry, opts.KeyColumn)
	case ModeUnion:
		out = unionRows(old, current, oldKeys, newKeys, carry, opts.KeyColumn)
	case ModeRefresh:
		out = refreshRows(old, current, carry, opts.KeyColumn)
	}

	if opts.ParityColumn != "" {
		unknown, err := labelParity(out, opts)
		if err != nil {
			return nil, err
		}
		result.UnknownParity = unknown
	}

	if opts.LastColumn != "" {
		out.Columns = table.MoveLast(out.Columns, opts.LastColumn)
	}

	// Schema union: every column of the output exists in every row.
	out.Fill()

	result.Table = out
	return result, nil
}

// requireColumn checks the key column. A table with neither header nor rows is a
// valid degenerate input, so an empty sheet does not abort the run.
func requireColumn(t *table.Table, role, column string) error {
	if t.HasColumn(column) || (t.Len() == 0 && len(t.Columns) == 0) {
		return nil
	}
	name := t.Name
	if name == "" {
		name = role
	}
	return &MissingColumnError{Table: name, Column: column}
}

// missingFrom returns the keys that are not members of set, keeping their order.
func missingFrom(keys []string, set map[string]struct{}) []string {
	out := []string{}
	for _, k := range keys {
		if _, ok := set[k]; !ok {
			out = append(out, k)
		}
	}
	return out
}

// carryColumns resolves the annotation columns. The key and parity columns are never
// carried: the key is shared and parity is always recomputed. Refresh mode also
// carries the last column when OLD has it, since both sheets hold TAREFAS there.
func carryColumns(old, current *table.Table, opts Options) []string {
	cols := opts.CarryColumns
	if cols == nil {
		cols = table.Difference(old.Columns, current.Columns)
		if opts.Mode == ModeRefresh && opts.LastColumn != "" && old.HasColumn(opts.LastColumn) {
			cols = table.Union(cols, []string{opts.LastColumn})
		}
	}

	out := make([]string, 0, len(cols))
	for _, c := range cols {
		if c == opts.KeyColumn || (opts.ParityColumn != "" && c == opts.ParityColumn) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func filterRows(old *table.Table, newKeys map[string]struct{}, carry []string, key string) *table.Table {
	out := table.New(table.Union(old.Columns, carry))
	for _, row := range old.Rows {
		if _, ok := newKeys[table.NormalizeKey(row[key])]; ok {
			out.Append(row.Clone())
		}
	}
	return out
}

func unionRows(old, current *table.Table, oldKeys, newKeys map[string]struct{}, carry []string, key string) *table.Table {
	out := filterRows(old, newKeys, carry, key)
	out.Columns = table.Union(out.Columns, current.Columns)

	for _, row := range current.Rows {
		if _, ok := oldKeys[table.NormalizeKey(row[key])]; ok {
			continue
		}
		r := row.Clone()
		for _, c := range carry {
			if _, ok := r[c]; !ok {
				r[c] = ""
			}
		}
		out.Append(r)
	}
	return out
}

func refreshRows(old, current *table.Table, carry []string, key string) *table.Table {
	first := make(map[string]table.Record, len(old.Rows))
	for _, row := range old.Rows {
		k := table.NormalizeKey(row[key])
		if _, ok := first[k]; !ok {
			first[k] = row
		}
	}

	out := table.New(table.Union(current.Columns, carry))
	for _, row := range current.Rows {
		r := row.Clone()
		prev, found := first[table.NormalizeKey(row[key])]
		for _, c := range carry {
			if strings.TrimSpace(r[c]) != "" {
				continue
			}
			if v, ok := prev[c]; found && ok {
				r[c] = v
			} else {
				r[c] = ""
			}
		}
		out.Append(r)
	}
	return out
}

// labelParity writes the parity label of every row and places the column right of
// the key column. It returns the keys tagged as unknown under PolicyTag.
func labelParity(out *table.Table, opts Options) ([]string, error) {
	var unknown []string
	for _, row := range out.Rows {
		p, err := processo.Classify(row[opts.KeyColumn])
		if err != nil {
			if opts.MalformedKeys != PolicyTag {
				return nil, err
			}
			p = processo.Unknown
			unknown = append(unknown, table.NormalizeKey(row[opts.KeyColumn]))
		}
		row[opts.ParityColumn] = p.String()
	}

	if !out.HasColumn(opts.ParityColumn) {
		out.Columns = append(out.Columns, opts.ParityColumn)
	}
	out.Columns = table.InsertAfter(out.Columns, opts.ParityColumn, opts.KeyColumn)
	return unknown, nil
}
