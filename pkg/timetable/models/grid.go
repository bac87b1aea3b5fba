package models

import "strings"

// Free marks a period with no class assigned.
const Free = ""

// LabelSeparator joins class labels that share one aggregated period.
const LabelSeparator = ", "

// TeacherDay is one day of a teacher's week.
type TeacherDay struct {
	Day Day `json:"day"`
	// Periods holds a class label per period, or Free.
	Periods []string `json:"periods"`
}

// TeacherWeeklyGrid is the classes a teacher key meets across the week.
type TeacherWeeklyGrid struct {
	// Teacher is the key the grid was resolved for: a base name or a full
	// occupant code.
	Teacher string       `json:"teacher"`
	Days    []TeacherDay `json:"days"`
}

// Entry returns the class label at (day, period), or Free.
func (g TeacherWeeklyGrid) Entry(day Day, period int) string {
	for _, d := range g.Days {
		if d.Day == day {
			if period < 1 || period > len(d.Periods) {
				return Free
			}
			return d.Periods[period-1]
		}
	}
	return Free
}

// Busy returns the number of assigned periods.
func (g TeacherWeeklyGrid) Busy() int {
	n := 0
	for _, d := range g.Days {
		for _, p := range d.Periods {
			if p != Free {
				n++
			}
		}
	}
	return n
}

// AggregatedDay is one day of an aggregated teacher week.
type AggregatedDay struct {
	Day Day `json:"day"`
	// Periods holds, per period, the class labels in first-seen order.
	// An empty slice means free.
	Periods [][]string `json:"periods"`
}

// AggregatedGrid merges every occupant code of one base teacher name.
type AggregatedGrid struct {
	// Teacher is the base name.
	Teacher string `json:"teacher"`
	// Codes lists the occupant codes merged into the grid, in merge order.
	Codes []string        `json:"codes"`
	Days  []AggregatedDay `json:"days"`
}

// Entry returns the joined class labels at (day, period), or Free.
func (g AggregatedGrid) Entry(day Day, period int) string {
	for _, d := range g.Days {
		if d.Day == day {
			if period < 1 || period > len(d.Periods) {
				return Free
			}
			return strings.Join(d.Periods[period-1], LabelSeparator)
		}
	}
	return Free
}

// DaySummary joins every class label taught on day, in period order.
func (g AggregatedGrid) DaySummary(day Day) string {
	var labels []string
	for _, d := range g.Days {
		if d.Day != day {
			continue
		}
		for _, p := range d.Periods {
			labels = append(labels, p...)
		}
	}
	return strings.Join(labels, LabelSeparator)
}

// Flatten returns the grid with every period joined into a single label.
func (g AggregatedGrid) Flatten() TeacherWeeklyGrid {
	out := TeacherWeeklyGrid{Teacher: g.Teacher, Days: make([]TeacherDay, len(g.Days))}
	for i, d := range g.Days {
		periods := make([]string, len(d.Periods))
		for j, p := range d.Periods {
			periods[j] = strings.Join(p, LabelSeparator)
		}
		out.Days[i] = TeacherDay{Day: d.Day, Periods: periods}
	}
	return out
}

// ClassCell is one column of a class's day: a period or the break.
type ClassCell struct {
	// Period is the 1-based period number, 0 for the break.
	Period int `json:"period"`
	// Occupant is the occupant code taught in the period, empty when
	// unassigned or for the break.
	Occupant string `json:"occupant"`
	Break    bool   `json:"break,omitempty"`
}

// ClassDay is one day of a class's week.
type ClassDay struct {
	Day   Day         `json:"day"`
	Cells []ClassCell `json:"cells"`
}

// ClassWeeklyGrid is a class's week with the break column interleaved.
type ClassWeeklyGrid struct {
	Class   string `json:"class"`
	Grade   string `json:"grade"`
	Section string `json:"section"`
	// EffectiveDate is printed blank on the class document for hand entry.
	EffectiveDate string     `json:"effective_date"`
	Days          []ClassDay `json:"days"`
}
