package timetable

import (
	"errors"
	"fmt"

	"github.com/ukaji3/timetable-go/pkg/timetable/parser"
	"github.com/ukaji3/timetable-go/pkg/timetable/schedule"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the workbook lacks the timetable sheet.
var ErrSheetNotFound = parser.ErrSheetNotFound

// Schedule error kinds, re-exported for callers of this package.
var (
	ErrShape     = schedule.ErrShape
	ErrNotFound  = schedule.ErrNotFound
	ErrAmbiguous = schedule.ErrAmbiguous
)

type (
	ShapeError               = schedule.ShapeError
	NotFoundError            = schedule.NotFoundError
	AmbiguousAssignmentError = schedule.AmbiguousAssignmentError
)

// LoadError represents an error while loading a timetable.
type LoadError struct {
	Path  string
	Sheet string
	Stage string // "open", "read", "build"
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s sheet %q (%s): %v", e.Path, e.Sheet, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path, sheet, stage string, err error) *LoadError {
	return &LoadError{
		Path:  path,
		Sheet: sheet,
		Stage: stage,
		Err:   err,
	}
}
