// Package dias serves the "100 dias" parity report: a single workbook is reduced to its
// working columns, every processo is labeled PAR or ÍMPAR and the rows can be filtered
// by parity.
package dias
