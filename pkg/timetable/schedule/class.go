package schedule

import (
	"regexp"
	"strings"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

// sectionPattern matches labels such as "2 (B)" or "10(a)".
var sectionPattern = regexp.MustCompile(`^(.*?)\s*\(\s*([^()]*?)\s*\)\s*$`)

// SplitClassLabel splits a class label into grade and section. A label
// without a parenthesized section is all grade.
func SplitClassLabel(label string) (grade, section string) {
	label = strings.TrimSpace(label)
	if m := sectionPattern.FindStringSubmatch(label); m != nil {
		return m[1], m[2]
	}
	return label, ""
}

// ResolveClass reshapes a class row into a week, with a break cell after
// the layout's break period on days that run past it.
func ResolveClass(m *Model, label string) (models.ClassWeeklyGrid, error) {
	row, ok := m.Row(label)
	if !ok {
		return models.ClassWeeklyGrid{}, NewNotFoundError("class", strings.TrimSpace(label))
	}
	return classGrid(m, row), nil
}

// ResolveClasses reshapes every class row in sheet order. Rows sharing a
// label each keep their own slots.
func ResolveClasses(m *Model) []models.ClassWeeklyGrid {
	grids := make([]models.ClassWeeklyGrid, 0, len(m.rows))
	for _, row := range m.rows {
		grids = append(grids, classGrid(m, row))
	}
	return grids
}

func classGrid(m *Model, row ClassRow) models.ClassWeeklyGrid {
	grade, section := SplitClassLabel(row.Label)
	grid := models.ClassWeeklyGrid{
		Class:   row.Label,
		Grade:   grade,
		Section: section,
		Days:    make([]models.ClassDay, 0, len(m.layout.Days)),
	}

	offset := 0
	for _, dp := range m.layout.Days {
		cells := make([]models.ClassCell, 0, dp.Periods+1)
		for p := 1; p <= dp.Periods; p++ {
			cells = append(cells, models.ClassCell{Period: p, Occupant: row.Slots[offset+p-1]})
			if p == m.layout.BreakAfter && dp.Periods > m.layout.BreakAfter {
				cells = append(cells, models.ClassCell{Break: true})
			}
		}
		grid.Days = append(grid.Days, models.ClassDay{Day: dp.Day, Cells: cells})
		offset += dp.Periods
	}
	return grid
}
