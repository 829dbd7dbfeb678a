// Package table provides an ordered in-memory table of named columns and
// uniformly-shaped rows, with CSV and JSON text conversion.
//
// This package contains:
//   - The Table entity (ordered columns, ordered rows)
//   - CSV formatting/parsing with an explicit dialect (CSVOptions)
//   - JSON formatting/parsing preserving column order
//
// The Golden Rule: pkg/table imports ONLY stdlib. The file-system adapter
// (pkg/tablefile) depends on table, not the reverse.
package table
