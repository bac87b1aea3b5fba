package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

// freeMark stands in for an unassigned period on the terminal.
const freeMark = "-"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Align(lipgloss.Center)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func newTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.Render()
}

func orFree(s string) string {
	if s == models.Free {
		return freeMark
	}
	return s
}

// TeacherTable renders a teacher grid for the terminal.
func TeacherTable(school string, g models.TeacherWeeklyGrid) string {
	periods := 0
	for _, d := range g.Days {
		if len(d.Periods) > periods {
			periods = len(d.Periods)
		}
	}

	headers := []string{"Day"}
	for p := 1; p <= periods; p++ {
		headers = append(headers, strconv.Itoa(p))
	}
	rows := make([][]string, 0, len(g.Days))
	for _, d := range g.Days {
		row := []string{d.Day.String()}
		for p := 0; p < periods; p++ {
			label := models.Free
			if p < len(d.Periods) {
				label = d.Periods[p]
			}
			row = append(row, orFree(label))
		}
		rows = append(rows, row)
	}

	return heading(school, "Teacher: "+g.Teacher) + newTable(headers, rows)
}

// ClassTable renders a class grid, break column included, for the terminal.
func ClassTable(school string, g models.ClassWeeklyGrid) string {
	titles := ClassColumns(g)
	headers := append([]string{"Day"}, titles...)

	rows := make([][]string, 0, len(g.Days))
	for _, d := range g.Days {
		row := []string{d.Day.String()}
		for _, c := range d.Cells {
			if c.Break {
				row = append(row, "")
				continue
			}
			row = append(row, orFree(c.Occupant))
		}
		for len(row) < len(headers) {
			row = append(row, "")
		}
		rows = append(rows, row)
	}

	meta := "Class: " + g.Grade + "    Section: " + g.Section + "    Effective Date: " + g.EffectiveDate
	return heading(school, meta) + newTable(headers, rows)
}

// AggregateTable renders one row per base teacher with the classes of
// each weekday.
func AggregateTable(school string, grids []models.AggregatedGrid) string {
	headers := []string{"Teacher"}
	for _, d := range models.Weekdays {
		headers = append(headers, d.String())
	}
	rows := make([][]string, 0, len(grids))
	for _, g := range grids {
		row := []string{g.Teacher}
		for _, d := range models.Weekdays {
			row = append(row, g.DaySummary(d))
		}
		rows = append(rows, row)
	}
	return heading(school, "") + newTable(headers, rows)
}

func heading(school, meta string) string {
	var sb strings.Builder
	if school != "" {
		sb.WriteString(titleStyle.Render(school))
		sb.WriteByte('\n')
	}
	if meta != "" {
		sb.WriteString(meta)
		sb.WriteByte('\n')
	}
	return sb.String()
}
