// Package report renders sampling results: per-sample CSV, an XLSX workbook,
// a YAML summary, and plain-text tables and histograms for the terminal.
package report
