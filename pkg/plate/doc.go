// Package plate maps multi-well plate coordinates.
//
// # Overview
//
// A plate is identified only by its [Size] (24, 48, 96, 384 or 1536 wells),
// which fixes a row × column grid. Wells are addressed three ways:
//
//   - a linear, zero-based, row-major index (the canonical form)
//   - a (row, column) pair
//   - a spreadsheet-style label such as "A1" or "AB12"
//
// # Labels
//
// [RowLabel] produces one letter for rows 0-25 and two letters beyond that.
// [LabelToIndex] decodes any number of letters with base-26 accumulation, so
// every label produced by [IndexToLabel] round-trips for all plate sizes.
//
// [CSVCellToIndex] is a narrower decoder that only understands single-letter
// rows. It is kept for external callers of the legacy tabular path; nothing in
// this module calls it, and it stays apart from [LabelToIndex].
//
// # Well Sets
//
// [RowsToWells], [ColumnsToWells] and [EdgeWells] expand rows, columns and the
// plate perimeter into well indices. [LabelForWells] compresses a set of
// indices into a human-readable range label:
//
//	label, _ := plate.LabelForWells([]int{0, 1, 2, 5}, plate.Size96)
//	// "A1:A3, A6"
//
// [ParseLabelRange] is its inverse.
//
// # Diagnostics
//
// Operations that skip invalid input (an out-of-bounds row, for example) log a
// debug diagnostic instead of failing. Construct a [Plate] with [WithLogger] to
// receive them; the package-level helpers discard diagnostics.
package plate
