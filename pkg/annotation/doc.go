// Package annotation models labeled, styled groups of wells on a plate.
//
// # Overview
//
// A [WellAnnotation] names a set of wells (a treatment, a control) and carries
// an [Style] from a fixed seven-entry palette. Metadata lives at two levels:
// annotation-wide fields in Metadata, and per-well fields in WellData keyed
// by well index. Serializers read the merged view through
// [WellAnnotation.MetadataFor] and never touch the two maps directly.
//
// # Styles
//
// [Palette] returns the styles in their canonical order. A [StylePool] hands
// them out from the end of that order and starts over once it runs dry, so
// the first group of a parsed file is red and the second blue:
//
//	pool := annotation.NewStylePool()
//	pool.Next() // Red
//	pool.Next() // Blue
//
// # Selection
//
// [Selection] holds the wells picked in a plate view together with the wells
// that can never be picked. Every mutation filters excluded wells out.
//
// # Randomizing
//
// [Randomize] moves every annotated well to a random free well while keeping
// group membership intact. Two annotations that share a well keep sharing it.
// Pass a seeded generator from [NewRand] for reproducible layouts:
//
//	out, err := annotation.Randomize(annotation.RandomizeRequest{
//	    Size:        plate.Size96,
//	    Excluded:    edge,
//	    Annotations: anns,
//	}, annotation.NewRand(42))
package annotation
