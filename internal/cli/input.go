package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nitro-bio/platemap/pkg/annotation"
	"github.com/nitro-bio/platemap/pkg/csvplate"
	"github.com/nitro-bio/platemap/pkg/errors"
	pkgio "github.com/nitro-bio/platemap/pkg/io"
	"github.com/nitro-bio/platemap/pkg/plate"
	"github.com/nitro-bio/platemap/pkg/xlsxplate"
)

// Input formats recognized by file extension.
const (
	formatCSV  = "csv"
	formatXLSX = "xlsx"
	formatJSON = "json"
)

// detectFormat maps a path to an input format. Unknown extensions and "-"
// (stdin) are treated as CSV.
func detectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return formatXLSX
	case ".json":
		return formatJSON
	default:
		return formatCSV
	}
}

// readGrid parses a plate CSV or workbook into annotations.
func readGrid(ctx context.Context, path string, stdin io.Reader, size plate.Size) ([]annotation.WellAnnotation, error) {
	opts := csvplate.Options{Logger: loggerFromContext(ctx)}

	if detectFormat(path) == formatXLSX {
		return xlsxplate.Import(path, size, opts)
	}
	if path == "-" {
		return csvplate.ParseReader(stdin, size, opts)
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "file not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()
	return csvplate.ParseReader(f, size, opts)
}

// readDocument loads a JSON document, or wraps a parsed grid in one using
// the configured plate size and excluded wells.
func (c *CLI) readDocument(ctx context.Context, path string, stdin io.Reader) (pkgio.Document, error) {
	if detectFormat(path) == formatJSON {
		doc, err := pkgio.ImportJSON(path)
		if err != nil {
			return pkgio.Document{}, err
		}
		if doc.PlateSize != c.size() {
			loggerFromContext(ctx).Debug("Using plate size from document", "size", int(doc.PlateSize))
		}
		return doc, nil
	}

	anns, err := readGrid(ctx, path, stdin, c.size())
	if err != nil {
		return pkgio.Document{}, err
	}
	excluded, err := c.cfg.ExcludedWells()
	if err != nil {
		return pkgio.Document{}, err
	}
	return pkgio.Document{PlateSize: c.size(), Excluded: excluded, Annotations: anns}, nil
}

// writeTo runs write against the file at path, or stdout when path is empty.
func writeTo(path string, stdout io.Writer, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
