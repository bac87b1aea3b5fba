// Package models defines data structures for timetable extraction.
package models

import (
	"fmt"
	"strings"
)

// Day is a teaching weekday.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Weekdays lists the teaching days in canonical order.
var Weekdays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

func (d Day) String() string {
	if d < Monday || d > Saturday {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayNames[d]
}

// MarshalText encodes the day by name.
func (d Day) MarshalText() ([]byte, error) {
	if d < Monday || d > Saturday {
		return nil, fmt.Errorf("invalid day %d", int(d))
	}
	return []byte(dayNames[d]), nil
}

// UnmarshalText decodes a day name, ignoring case.
func (d *Day) UnmarshalText(text []byte) error {
	for i, name := range dayNames {
		if strings.EqualFold(name, string(text)) {
			*d = Day(i)
			return nil
		}
	}
	return fmt.Errorf("invalid day %q", text)
}

// DefaultBreakAfter is the period after which the class document shows a break.
const DefaultBreakAfter = 5

// DayPeriods is the number of periods taught on a day.
type DayPeriods struct {
	Day     Day `json:"day"`
	Periods int `json:"periods"`
}

// Layout describes how the slot columns of a timetable row are split across
// the week. Days appear in column order.
type Layout struct {
	Days []DayPeriods `json:"days"`
	// BreakAfter is the period after which a break is shown on days that
	// have more periods than it.
	BreakAfter int `json:"break_after"`
}

// DefaultLayout returns the school layout: eight periods a day with a
// shortened Friday of shortDay periods.
func DefaultLayout(shortDay int) Layout {
	days := make([]DayPeriods, 0, len(Weekdays))
	for _, d := range Weekdays {
		n := 8
		if d == Friday {
			n = shortDay
		}
		days = append(days, DayPeriods{Day: d, Periods: n})
	}
	return Layout{Days: days, BreakAfter: DefaultBreakAfter}
}

// TotalSlots returns the number of slot columns in a row.
func (l Layout) TotalSlots() int {
	total := 0
	for _, d := range l.Days {
		total += d.Periods
	}
	return total
}

// MaxPeriods returns the largest per-day period count.
func (l Layout) MaxPeriods() int {
	max := 0
	for _, d := range l.Days {
		if d.Periods > max {
			max = d.Periods
		}
	}
	return max
}

// Periods returns the period count of day, or 0 if the day is not taught.
func (l Layout) Periods(day Day) int {
	for _, d := range l.Days {
		if d.Day == day {
			return d.Periods
		}
	}
	return 0
}

// Offset returns the 0-based slot index of (day, period) within a row.
// ok is false when period is outside the day's bounds.
func (l Layout) Offset(day Day, period int) (idx int, ok bool) {
	for _, d := range l.Days {
		if d.Day == day {
			if period < 1 || period > d.Periods {
				return 0, false
			}
			return idx + period - 1, true
		}
		idx += d.Periods
	}
	return 0, false
}
