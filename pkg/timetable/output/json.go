// Package output serializes schedules for export.
package output

import (
	"encoding/json"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

// ToJSON serializes v, indented when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// AggregateRow is one teacher of the aggregated table.
type AggregateRow struct {
	Teacher string   `json:"teacher"`
	Codes   []string `json:"codes"`
	// Days lists every weekday in week order.
	Days []DaySummary `json:"days"`
}

// DaySummary is the comma joined classes a teacher takes on one day.
type DaySummary struct {
	Day     models.Day `json:"day"`
	Classes string     `json:"classes"`
}

// Classes returns the summary of day, or "" when the row has none.
func (r AggregateRow) Classes(day models.Day) string {
	for _, d := range r.Days {
		if d.Day == day {
			return d.Classes
		}
	}
	return ""
}

// AggregateRows flattens aggregated grids into table rows.
func AggregateRows(grids []models.AggregatedGrid) []AggregateRow {
	rows := make([]AggregateRow, 0, len(grids))
	for _, g := range grids {
		days := make([]DaySummary, 0, len(models.Weekdays))
		for _, d := range models.Weekdays {
			days = append(days, DaySummary{Day: d, Classes: g.DaySummary(d)})
		}
		rows = append(rows, AggregateRow{Teacher: g.Teacher, Codes: g.Codes, Days: days})
	}
	return rows
}
