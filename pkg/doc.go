// Package pkg provides the core libraries for Platemap, a toolkit for
// multi-well laboratory plates.
//
// # Overview
//
// Platemap addresses the wells of 24, 48, 96, 384 and 1536-well plates,
// groups them into labeled annotations, and moves those annotations between
// spreadsheets, JSON documents and randomized layouts. The pkg directory is
// organized into three areas:
//
//  1. [plate] - Geometry and addressing (indices, labels, ranges)
//  2. [annotation] - Labeled well groups, styles, selection and randomization
//  3. [csvplate], [xlsxplate], [io] - Plate CSV, Excel workbooks and JSON
//
// # Architecture
//
// The typical data flow:
//
//	plate CSV / workbook
//	         ↓
//	    [csvplate] or [xlsxplate] (parse cells into annotations)
//	         ↓
//	    [annotation] (edit, select, randomize)
//	         ↓
//	    [csvplate] grid or list, [xlsxplate] workbook, [io] JSON document
//
// # Quick Start
//
// Parse a plate map and shuffle it around the plate edge:
//
//	import (
//	    "github.com/nitro-bio/platemap/pkg/annotation"
//	    "github.com/nitro-bio/platemap/pkg/csvplate"
//	    "github.com/nitro-bio/platemap/pkg/plate"
//	)
//
//	anns, _ := csvplate.Parse(text, plate.Size96, csvplate.Options{})
//	edge, _ := plate.EdgeWells(plate.Size96)
//	shuffled, _ := annotation.Randomize(annotation.RandomizeRequest{
//	    Size:        plate.Size96,
//	    Excluded:    edge,
//	    Annotations: anns,
//	}, annotation.NewRand(42))
//	out, _ := csvplate.Format(shuffled, plate.Size96)
//
// # Main Packages
//
// [plate] - Plate sizes and their row × column grids, index ↔ label
// conversion ("B7" ↔ 18), row/column/edge well sets and compressed range
// labels ("A1:A12, H1").
//
// [annotation] - WellAnnotation groups with per-annotation and per-well
// metadata, the seven-color style palette, toggle-style well selection and
// seeded randomization that keeps shared wells shared.
//
// [csvplate] - The plate-grid CSV format ("Label (key: value) | Other") and
// the long one-row-per-well list format.
//
// [xlsxplate] - Excel workbooks with a color-filled "Plate" sheet and a
// "Wells" list sheet.
//
// [io] - JSON documents carrying the plate size, excluded wells and
// annotations.
//
// [errors] - Coded errors (INVALID_PLATE_SIZE, INVALID_LABEL_FORMAT, ...)
// and validation of labels and metadata against the cell grammar.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/plate/...     # Specific package
//	go test -run Example        # Examples only
//
// [plate]: https://pkg.go.dev/github.com/nitro-bio/platemap/pkg/plate
// [annotation]: https://pkg.go.dev/github.com/nitro-bio/platemap/pkg/annotation
// [csvplate]: https://pkg.go.dev/github.com/nitro-bio/platemap/pkg/csvplate
// [xlsxplate]: https://pkg.go.dev/github.com/nitro-bio/platemap/pkg/xlsxplate
// [io]: https://pkg.go.dev/github.com/nitro-bio/platemap/pkg/io
// [errors]: https://pkg.go.dev/github.com/nitro-bio/platemap/pkg/errors
package pkg
