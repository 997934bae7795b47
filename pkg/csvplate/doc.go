// Package csvplate converts between plate-shaped CSV grids and annotations.
//
// # Grid format
//
// A plate CSV has a header row "idx,1,2,...,cols" followed by one row per
// plate row. The first column holds the row letter; every other cell lists
// the annotations covering that well:
//
//	idx,1,2,3
//	A,Treatment 1 (conc: 10uM),Positive Control,Treatment 1 | Vehicle
//
// Entries are separated by " | ". An entry may carry inline metadata in
// parentheses as "key: value" pairs separated by ';'.
//
// # Parsing
//
// [Parse] groups entries by label. The first time a label is seen it gets a
// new [annotation.WellAnnotation] whose ID is the label, styled by the next
// entry of an [annotation.StylePool]. Row letters come from the row's
// position in the file, not from its first column.
//
// Parsing is best-effort. A grid with the wrong shape, cells that fall off
// the plate, and malformed headers are reported through [Options.Logger] and
// skipped; only an invalid plate size or unreadable CSV is an error.
//
// # Writing
//
// [Format] renders the grid form. [List] and [WriteList] produce a long
// format with one record per well, suited to spreadsheets and joins.
package csvplate
