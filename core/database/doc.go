// Package database handles database connections and reading processo tables from SQL.
//
// It provides a wrapper around GORM to configure MySQL (production) or SQLite (local
// files, tests) connections, a schema inspector, and LoadTable, which turns any
// read-only query into a table.Table that the reconciliation engine can consume.
// This lets a reconciliation run use the court system's database export as its OLD or
// NEW side instead of an uploaded workbook.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	old, err := database.LoadTable(ctx, db, "old", "SELECT PROCESSO, `OBSERVAÇÃO` FROM acervo")
package database
