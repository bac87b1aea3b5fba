package render

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/ukaji3/timetable-go/pkg/timetable/parser"
)

func reopen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out", "doc.xlsx")
	require.NoError(t, WriteFile(f, path))
	require.NoError(t, f.Close())

	out, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { out.Close() })
	return out
}

func cell(t *testing.T, f *excelize.File, sheet, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, ref)
	require.NoError(t, err)
	return v
}

func TestTeacherWorkbook(t *testing.T) {
	f, err := TeacherWorkbook(school, teacherGrid("khalida"), teacherGrid("irum"))
	require.NoError(t, err)
	out := reopen(t, f)

	assert.Equal(t, []string{"khalida", "irum"}, out.GetSheetList())
	assert.Equal(t, school, cell(t, out, "khalida", "A1"))
	assert.Equal(t, "Teacher: khalida", cell(t, out, "khalida", "A2"))
	assert.Equal(t, "Day", cell(t, out, "khalida", "A4"))
	assert.Equal(t, "8", cell(t, out, "khalida", "I4"))
	assert.Equal(t, "Monday", cell(t, out, "khalida", "A5"))
	assert.Equal(t, "2 (B)", cell(t, out, "khalida", "B5"))
	assert.Equal(t, "", cell(t, out, "khalida", "C5"))
	assert.Equal(t, "3 (A)", cell(t, out, "khalida", "D9"))
	assert.Equal(t, "Saturday", cell(t, out, "khalida", "A10"))

	areas := parser.ReadPrintAreas(out)
	assert.Equal(t, []models.CellRange{{R1: 1, C1: 1, R2: 10, C2: 9}}, areas["khalida"])
	assert.Len(t, areas["irum"], 1)
}

func TestClassWorkbook(t *testing.T) {
	f, err := ClassWorkbook(school, classGrid())
	require.NoError(t, err)
	out := reopen(t, f)

	sheet := "2 (B)"
	assert.Equal(t, []string{sheet}, out.GetSheetList())
	assert.Equal(t, "2", cell(t, out, sheet, "B2"))
	assert.Equal(t, "B", cell(t, out, sheet, "D2"))
	assert.Equal(t, "Effective Date", cell(t, out, sheet, "F2"))
	assert.Equal(t, "", cell(t, out, sheet, "H2"))

	assert.Equal(t, "5", cell(t, out, sheet, "F4"))
	assert.Equal(t, "Break", cell(t, out, sheet, "G4"))
	assert.Equal(t, "6", cell(t, out, sheet, "H4"))
	assert.Equal(t, "8", cell(t, out, sheet, "J4"))

	assert.Equal(t, "u-khalida", cell(t, out, sheet, "B5"))
	assert.Equal(t, "", cell(t, out, sheet, "G5"))
	assert.Equal(t, "e-tania", cell(t, out, sheet, "F9"))
	assert.Equal(t, "", cell(t, out, sheet, "G9"))

	areas := parser.ReadPrintAreas(out)
	assert.Equal(t, []models.CellRange{{R1: 1, C1: 1, R2: 10, C2: 10}}, areas[sheet])
}

func TestAggregateWorkbook(t *testing.T) {
	f, err := AggregateWorkbook(school, []models.AggregatedGrid{aggregatedGrid()})
	require.NoError(t, err)
	out := reopen(t, f)

	assert.Equal(t, []string{"Teachers"}, out.GetSheetList())
	assert.Equal(t, "Teacher", cell(t, out, "Teachers", "A4"))
	assert.Equal(t, "Saturday", cell(t, out, "Teachers", "G4"))
	assert.Equal(t, "tania", cell(t, out, "Teachers", "A5"))
	assert.Equal(t, "2 (B), 3 (A), 4 (C)", cell(t, out, "Teachers", "B5"))
	assert.Equal(t, "", cell(t, out, "Teachers", "C5"))
}

func TestWorkbooksRequireGrids(t *testing.T) {
	_, err := TeacherWorkbook(school)
	assert.True(t, errors.Is(err, ErrNothingToRender))
	_, err = ClassWorkbook(school)
	assert.ErrorIs(t, err, ErrNothingToRender)
	_, err = AggregateWorkbook(school, nil)
	assert.ErrorIs(t, err, ErrNothingToRender)
}

func TestDuplicateSheetNames(t *testing.T) {
	f, err := TeacherWorkbook(school, teacherGrid("tania"), teacherGrid("Tania"), teacherGrid("tania"))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"tania", "Tania (2)", "tania (3)"}, f.GetSheetList())
}

func TestSheetName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2 (B)", "2 (B)"},
		{"a/b:c", "a_b_c"},
		{"[draft]?", "_draft__"},
		{"'quoted'", "quoted"},
		{"   ", "Sheet"},
		{"abcdefghijklmnopqrstuvwxyz0123456789", "abcdefghijklmnopqrstuvwxyz01234"},
	}

	for _, tt := range tests {
		if got := SheetName(tt.input); got != tt.expected {
			t.Errorf("SheetName(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2 (B)", "2_b"},
		{"e-tania", "e-tania"},
		{"  Khalida  ", "khalida"},
		{"()", "schedule"},
	}

	for _, tt := range tests {
		if got := FileName(tt.input); got != tt.expected {
			t.Errorf("FileName(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
