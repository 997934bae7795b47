package xlsxplate

import (
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/nitro-bio/platemap/pkg/annotation"
	"github.com/nitro-bio/platemap/pkg/csvplate"
	"github.com/nitro-bio/platemap/pkg/errors"
	"github.com/nitro-bio/platemap/pkg/plate"
)

// Sheet names used by [Build].
const (
	PlateSheet = "Plate"
	WellsSheet = "Wells"
)

// Build returns a workbook holding the plate grid and the per-well list.
// The caller must Close it.
func Build(anns []annotation.WellAnnotation, size plate.Size) (*excelize.File, error) {
	grid, err := csvplate.Grid(anns, size)
	if err != nil {
		return nil, err
	}
	list, err := csvplate.List(anns, size)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", PlateSheet); err != nil {
		f.Close()
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "rename sheet")
	}
	if _, err := f.NewSheet(WellsSheet); err != nil {
		f.Close()
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "add sheet")
	}

	if err := writeRecords(f, PlateSheet, grid); err != nil {
		f.Close()
		return nil, err
	}
	if err := fillWells(f, anns, size); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeRecords(f, WellsSheet, csvplate.ListRecords(list)); err != nil {
		f.Close()
		return nil, err
	}
	f.SetActiveSheet(0)
	return f, nil
}

func writeRecords(f *excelize.File, sheet string, records [][]string) error {
	for r, rec := range records {
		for c, value := range rec {
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "cell name")
			}
			if err := f.SetCellStr(sheet, cell, value); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "write %s!%s", sheet, cell)
			}
		}
	}
	return nil
}

// fillWells colors each annotated grid cell with its first annotation's Fill.
func fillWells(f *excelize.File, anns []annotation.WellAnnotation, size plate.Size) error {
	geom, err := plate.Dimensions(size)
	if err != nil {
		return err
	}

	styleIDs := make(map[string]int)
	for well := range geom.Wells() {
		var fill string
		for _, a := range anns {
			if a.Covers(well) {
				fill = a.Style.Fill
				break
			}
		}
		if fill == "" {
			continue
		}

		id, ok := styleIDs[fill]
		if !ok {
			id, err = f.NewStyle(&excelize.Style{
				Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fill}},
			})
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "cell style %s", fill)
			}
			styleIDs[fill] = id
		}

		// Grid row 1 is the header and column 1 the row letters.
		cell, err := excelize.CoordinatesToCellName(well%geom.Cols+2, well/geom.Cols+2)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "cell name")
		}
		if err := f.SetCellStyle(PlateSheet, cell, cell, id); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "style %s", cell)
		}
	}
	return nil
}

// Write encodes the workbook to w.
func Write(w io.Writer, anns []annotation.WellAnnotation, size plate.Size) error {
	f, err := Build(anns, size)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write workbook")
	}
	return nil
}

// Export writes the workbook to path.
func Export(path string, anns []annotation.WellAnnotation, size plate.Size) error {
	f, err := Build(anns, size)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "save %s", path)
	}
	return nil
}

// Read decodes a workbook from r and parses its plate grid.
func Read(r io.Reader, size plate.Size, opts csvplate.Options) ([]annotation.WellAnnotation, error) {
	if _, err := plate.Dimensions(size); err != nil {
		return nil, err
	}
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "open workbook")
	}
	defer f.Close()
	return parseFile(f, size, opts)
}

// Import reads the workbook at path and parses its plate grid.
func Import(path string, size plate.Size, opts csvplate.Options) ([]annotation.WellAnnotation, error) {
	if _, err := plate.Dimensions(size); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "file not found: %s", path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "open %s", path)
	}
	defer f.Close()
	return parseFile(f, size, opts)
}

func parseFile(f *excelize.File, size plate.Size, opts csvplate.Options) ([]annotation.WellAnnotation, error) {
	opts = opts.WithDefaults()

	sheet := PlateSheet
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "workbook has no sheets")
		}
		sheet = sheets[0]
		opts.Logger.Debug("No Plate sheet, using first sheet", "sheet", sheet)
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read sheet %s", sheet)
	}
	return csvplate.ParseRows(csvplate.RowsFromRecords(records), size, opts)
}
