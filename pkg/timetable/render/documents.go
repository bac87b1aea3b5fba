package render

import (
	"strconv"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/xuri/excelize/v2"
)

// headerRow is the row holding column titles on every page.
const headerRow = 4

// TeacherWorkbook renders one page per teacher: the school banner, the
// teacher name and a Day x period grid of classes.
func TeacherWorkbook(school string, grids ...models.TeacherWeeklyGrid) (*excelize.File, error) {
	if len(grids) == 0 {
		return nil, ErrNothingToRender
	}
	b, err := newBook(school)
	if err != nil {
		return nil, err
	}
	for _, g := range grids {
		if err := b.teacherPage(g); err != nil {
			b.f.Close()
			return nil, err
		}
	}
	return b.done(), nil
}

func (b *book) teacherPage(g models.TeacherWeeklyGrid) error {
	sheet, err := b.addSheet(g.Teacher)
	if err != nil {
		return err
	}

	periods := 0
	for _, d := range g.Days {
		if len(d.Periods) > periods {
			periods = len(d.Periods)
		}
	}
	cols := 1 + periods

	if err := b.banner(sheet, cols); err != nil {
		return err
	}
	if err := b.set(sheet, 1, 2, "Teacher: "+g.Teacher, b.styles.meta); err != nil {
		return err
	}

	if err := b.set(sheet, 1, headerRow, "Day", b.styles.header); err != nil {
		return err
	}
	for p := 1; p <= periods; p++ {
		if err := b.set(sheet, 1+p, headerRow, p, b.styles.header); err != nil {
			return err
		}
	}
	for i, d := range g.Days {
		row := headerRow + 1 + i
		if err := b.set(sheet, 1, row, d.Day.String(), b.styles.day); err != nil {
			return err
		}
		for p := 0; p < periods; p++ {
			label := models.Free
			if p < len(d.Periods) {
				label = d.Periods[p]
			}
			if err := b.set(sheet, 2+p, row, label, b.styles.cell); err != nil {
				return err
			}
		}
	}

	if err := b.widths(sheet, cols, 14, 12); err != nil {
		return err
	}
	return b.finishPage(sheet, models.CellRange{R1: 1, C1: 1, R2: headerRow + len(g.Days), C2: cols})
}

// ClassWorkbook renders one page per class: the school banner, the grade,
// section and a blank effective date, and a Day x period grid with the
// break column.
func ClassWorkbook(school string, grids ...models.ClassWeeklyGrid) (*excelize.File, error) {
	if len(grids) == 0 {
		return nil, ErrNothingToRender
	}
	b, err := newBook(school)
	if err != nil {
		return nil, err
	}
	for _, g := range grids {
		if err := b.classPage(g); err != nil {
			b.f.Close()
			return nil, err
		}
	}
	return b.done(), nil
}

// ClassColumns returns the column titles of a class grid, taken from its
// longest day.
func ClassColumns(g models.ClassWeeklyGrid) []string {
	var longest []models.ClassCell
	for _, d := range g.Days {
		if len(d.Cells) > len(longest) {
			longest = d.Cells
		}
	}
	titles := make([]string, len(longest))
	for i, c := range longest {
		if c.Break {
			titles[i] = "Break"
		} else {
			titles[i] = strconv.Itoa(c.Period)
		}
	}
	return titles
}

func (b *book) classPage(g models.ClassWeeklyGrid) error {
	sheet, err := b.addSheet(g.Class)
	if err != nil {
		return err
	}

	titles := ClassColumns(g)
	cols := 1 + len(titles)
	if cols < 8 {
		cols = 8
	}

	if err := b.banner(sheet, cols); err != nil {
		return err
	}
	meta := []struct {
		col   int
		value string
	}{
		{1, "Class"}, {2, g.Grade},
		{3, "Section"}, {4, g.Section},
		{6, "Effective Date"}, {8, g.EffectiveDate},
	}
	for _, m := range meta {
		if err := b.set(sheet, m.col, 2, m.value, b.styles.meta); err != nil {
			return err
		}
	}

	if err := b.set(sheet, 1, headerRow, "Day", b.styles.header); err != nil {
		return err
	}
	for i, title := range titles {
		if err := b.set(sheet, 2+i, headerRow, title, b.styles.header); err != nil {
			return err
		}
	}
	for i, d := range g.Days {
		row := headerRow + 1 + i
		if err := b.set(sheet, 1, row, d.Day.String(), b.styles.day); err != nil {
			return err
		}
		for j, c := range d.Cells {
			style := b.styles.cell
			if c.Break {
				style = b.styles.pause
			}
			if err := b.set(sheet, 2+j, row, c.Occupant, style); err != nil {
				return err
			}
		}
	}

	if err := b.widths(sheet, cols, 14, 12); err != nil {
		return err
	}
	return b.finishPage(sheet, models.CellRange{R1: 1, C1: 1, R2: headerRow + len(g.Days), C2: cols})
}

// AggregateWorkbook renders a single page with one row per base teacher
// and one column per weekday listing the classes taught that day.
func AggregateWorkbook(school string, grids []models.AggregatedGrid) (*excelize.File, error) {
	if len(grids) == 0 {
		return nil, ErrNothingToRender
	}
	b, err := newBook(school)
	if err != nil {
		return nil, err
	}
	if err := b.aggregatePage(grids); err != nil {
		b.f.Close()
		return nil, err
	}
	return b.done(), nil
}

func (b *book) aggregatePage(grids []models.AggregatedGrid) error {
	sheet, err := b.addSheet("Teachers")
	if err != nil {
		return err
	}
	cols := 1 + len(models.Weekdays)

	if err := b.banner(sheet, cols); err != nil {
		return err
	}
	if err := b.set(sheet, 1, 2, "Teacher Timetable", b.styles.meta); err != nil {
		return err
	}

	if err := b.set(sheet, 1, headerRow, "Teacher", b.styles.header); err != nil {
		return err
	}
	for i, day := range models.Weekdays {
		if err := b.set(sheet, 2+i, headerRow, day.String(), b.styles.header); err != nil {
			return err
		}
	}
	for i, g := range grids {
		row := headerRow + 1 + i
		if err := b.set(sheet, 1, row, g.Teacher, b.styles.day); err != nil {
			return err
		}
		for j, day := range models.Weekdays {
			if err := b.set(sheet, 2+j, row, g.DaySummary(day), b.styles.cell); err != nil {
				return err
			}
		}
	}

	if err := b.widths(sheet, cols, 16, 30); err != nil {
		return err
	}
	return b.finishPage(sheet, models.CellRange{R1: 1, C1: 1, R2: headerRow + len(grids), C2: cols})
}

// widths sizes the first column and the rest of the grid.
func (b *book) widths(sheet string, cols int, first, rest float64) error {
	if err := b.f.SetColWidth(sheet, "A", "A", first); err != nil {
		return err
	}
	if cols < 2 {
		return nil
	}
	last, err := excelize.ColumnNumberToName(cols)
	if err != nil {
		return err
	}
	return b.f.SetColWidth(sheet, "B", last, rest)
}
