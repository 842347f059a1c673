// Package sheet converts spreadsheet files to and from table.Table.
//
// XLSX workbooks are handled with excelize; CSV files with encoding/csv and delimiter
// detection. Only the first worksheet of a workbook is read unless a sheet name is given.
//
// Header cells are trimmed and normalized to Unicode NFC so that "OBSERVAÇÃO" typed on
// different systems compares equal. Blank header cells become "Unnamed: <n>" and
// repeated headers get a ".<n>" suffix, matching what spreadsheet users see in pandas.
package sheet
