// Package table holds the in-memory tabular model shared by every reconciliation step.
//
// A Table is an ordered list of Records plus an ordered column list. Column order is
// significant for output (it becomes the header row of the exported workbook) but never
// for comparison. Records map column names to textual cell values; a column that is
// absent from a Record is "missing", which is distinct from an explicit empty string.
//
// # Schema Union
//
// Tables coming from different workbook variants rarely share the exact same schema.
// Union computes the full output column list up front and Fill materializes every
// absent column as an explicit empty string, so downstream code never has to reason
// about implicit missing values.
//
// # Usage
//
//	t := table.New([]string{"PROCESSO", "OBSERVAÇÃO"})
//	t.Append(table.Record{"PROCESSO": "10-2024", "OBSERVAÇÃO": "nota"})
//	keys := t.KeySet("PROCESSO")
package table
