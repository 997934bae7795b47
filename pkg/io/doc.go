// Package io provides JSON import and export for plate annotation sets.
//
// # Overview
//
// A [Document] bundles everything needed to rebuild a plate view: the plate
// size, the excluded wells, and the annotations. The CLI uses it as the
// working file between parse, annotate, randomize, and export steps.
//
// # JSON Format
//
//	{
//	  "plate_size": 96,
//	  "excluded": [0, 11, 84, 95],
//	  "annotations": [
//	    {
//	      "id": "Treatment 1",
//	      "label": "Treatment 1",
//	      "wells": [1, 2, 13],
//	      "style": "RED_STYLE",
//	      "metadata": {"plate": "P1"},
//	      "well_data": {"13": {"conc": "10uM"}}
//	    }
//	  ]
//	}
//
// Styles are stored by id and resolved against the fixed palette on import.
// Keys of well_data are decimal well indices.
//
// # Validation
//
// [ReadJSON] rejects unknown plate sizes, unknown style ids, and well
// indices outside the plate. Errors carry codes from pkg/errors.
package io
