// Package processo parses legal case keys and classifies them by parity.
//
// A processo key has the shape "<numeric-prefix>-<rest>", e.g. "0001234-56.2024.8.26.0100".
// The numeric prefix decides whether a case is handled by the PAR (even) or ÍMPAR (odd) desk.
//
// # Parsing
//
// ParseKey is the single entry point for key parsing. It returns a typed Key or a
// *MalformedKeyError carrying the offending value:
//
//	k, err := processo.ParseKey("100-2024")
//	// k.Prefix == "100", k.Suffix == "2024"
//
// # Classification
//
// Classify is a pure function of the numeric prefix:
//
//	p, _ := processo.Classify("101-2024") // processo.Odd ("ÍMPAR")
//
// # Reports
//
// Report projects a workbook to its working columns, appends the parity column and
// counts even and odd cases, optionally filtering the rows by parity.
package processo
