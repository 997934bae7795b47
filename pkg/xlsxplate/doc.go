// Package xlsxplate reads and writes plate annotations as Excel workbooks.
//
// A workbook written by [Write] has two sheets. "Plate" holds the same grid
// as [csvplate.Format], with each annotated well filled in the color of the
// first annotation covering it. "Wells" holds the long format of
// [csvplate.List].
//
// [Read] takes the grid from the "Plate" sheet, or from the first sheet when
// there is none, and groups it exactly like [csvplate.Parse].
package xlsxplate
