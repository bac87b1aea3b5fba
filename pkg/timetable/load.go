package timetable

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/ukaji3/timetable-go/pkg/timetable/parser"
	"github.com/ukaji3/timetable-go/pkg/timetable/schedule"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Load reads the timetable sheet of the workbook at path.
func Load(path string, opts Options) (*Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	// Check file exists
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, NewLoadError(path, opts.sheet(), "open", fmt.Errorf("%w: %s", ErrFileNotFound, path))
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewLoadError(path, opts.sheet(), "open", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer f.Close()

	return load(f, path, opts)
}

// LoadReader reads the timetable sheet of a workbook streamed from r, as
// received from an upload. name identifies the workbook in errors and logs.
func LoadReader(r io.Reader, name string, opts Options) (*Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, NewLoadError(name, opts.sheet(), "open", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer f.Close()

	return load(f, name, opts)
}

func load(f *excelize.File, path string, opts Options) (*Session, error) {
	log := opts.logger().With(zap.String("book", filepath.Base(path)), zap.String("sheet", opts.sheet()))

	// Read the sheet as text
	table, err := parser.ReadTable(f, opts.sheet(), opts.ShouldSkipSubHeader())
	if err != nil {
		log.Warn("read sheet failed", zap.Error(err))
		return nil, NewLoadError(path, opts.sheet(), "read", err)
	}

	// Check the shape against the layout and normalize slots
	model, err := schedule.Build(table, opts.Layout())
	if err != nil {
		log.Warn("timetable rejected", zap.Error(err), zap.Int("columns", len(table.Header)))
		return nil, NewLoadError(path, table.Sheet, "build", err)
	}

	log.Info("timetable loaded",
		zap.Int("classes", len(model.ClassLabels())),
		zap.Int("occupants", len(model.DistinctOccupants())))
	return NewSession(filepath.Base(path), model, opts), nil
}

// FromTable builds a session from an already parsed table.
func FromTable(name string, table models.RawTable, opts Options) (*Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	model, err := schedule.Build(table, opts.Layout())
	if err != nil {
		return nil, NewLoadError(name, table.Sheet, "build", err)
	}
	return NewSession(name, model, opts), nil
}
