package schedule

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

// ErrShape indicates the table does not match the expected timetable layout.
var ErrShape = errors.New("timetable shape mismatch")

// ErrNotFound indicates a class or teacher key is absent from the timetable.
var ErrNotFound = errors.New("not found")

// ErrAmbiguous indicates a teacher key matched more than one class in a slot.
var ErrAmbiguous = errors.New("ambiguous assignment")

// ShapeError reports a column count or row content mismatch.
type ShapeError struct {
	// Row is the sheet row number, 0 for the header.
	Row  int
	Want int
	Got  int
	// Reason is set for mismatches that are not a column count.
	Reason string
}

func (e *ShapeError) Error() string {
	where := "header"
	if e.Row > 0 {
		where = fmt.Sprintf("row %d", e.Row)
	}
	if e.Reason != "" {
		return fmt.Sprintf("%v: %s: %s", ErrShape, where, e.Reason)
	}
	return fmt.Sprintf("%v: %s has %d columns, want %d", ErrShape, where, e.Got, e.Want)
}

func (e *ShapeError) Unwrap() error {
	return ErrShape
}

// NewShapeError creates a column count ShapeError.
func NewShapeError(row, want, got int) *ShapeError {
	return &ShapeError{Row: row, Want: want, Got: got}
}

// NotFoundError reports a missing class or teacher.
type NotFoundError struct {
	Kind string // "class", "teacher"
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q %v", e.Kind, e.Key, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(kind, key string) *NotFoundError {
	return &NotFoundError{Kind: kind, Key: key}
}

// AmbiguousAssignmentError reports a teacher placed in several classes at once.
type AmbiguousAssignmentError struct {
	Teacher string
	Day     models.Day
	Period  int
	Classes []string
}

func (e *AmbiguousAssignmentError) Error() string {
	return fmt.Sprintf("%v: %q teaches %s on %s period %d",
		ErrAmbiguous, e.Teacher, strings.Join(e.Classes, models.LabelSeparator), e.Day, e.Period)
}

func (e *AmbiguousAssignmentError) Unwrap() error {
	return ErrAmbiguous
}
