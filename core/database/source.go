package database

import (
	"context"
	"fmt"

	"processo-manager/core/table"
	"processo-manager/core/utils"

	"gorm.io/gorm"
)

// LoadTable runs a read-only query and materializes its result set as a table.
// Column order follows the SELECT list. NULL cells are left absent from the record,
// so the reconciliation schema-union step decides how they are rendered.
func LoadTable(ctx context.Context, db *gorm.DB, name, query string, args ...any) (*table.Table, error) {
	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to query %s table: %w", name, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s columns: %w", name, err)
	}

	t := table.New(columns).Named(name)
	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", name, err)
		}
		r := make(table.Record, len(columns))
		for i, c := range columns {
			if s, ok := utils.ToString(values[i]); ok {
				r[c] = s
			}
		}
		t.Append(r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s rows: %w", name, err)
	}

	return t, nil
}

// LoadTableFrom reads every row of a table after checking that keyColumn exists.
// The check uses the schema inspector so a wrong table name fails before the scan.
func LoadTableFrom(ctx context.Context, db *gorm.DB, tableName, keyColumn string) (*table.Table, error) {
	columns, err := GetTableColumns(db, tableName)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("table %s does not exist or has no columns", tableName)
	}

	found := false
	for _, c := range columns {
		if c.Field == keyColumn {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("table %s has no column %q", tableName, keyColumn)
	}

	quoted := db.Statement.Quote(tableName)
	return LoadTable(ctx, db, tableName, "SELECT * FROM "+quoted)
}
