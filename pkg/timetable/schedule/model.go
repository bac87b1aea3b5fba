// Package schedule derives teacher, class and aggregated weekly schedules
// from a normalized timetable.
package schedule

import (
	"fmt"
	"strings"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

// ClassRow is one class or section and its slots in layout order.
type ClassRow struct {
	// Label is the class label as written in the sheet, trimmed.
	Label string
	// R is the sheet row number the class was read from.
	R int
	// Slots holds one normalized occupant code per slot, "" when unassigned.
	Slots []string
}

// Model is a normalized timetable. It is never mutated after Build.
type Model struct {
	layout    models.Layout
	rows      []ClassRow
	occupants []string
}

// Build normalizes table against layout. The header must have exactly one
// label column plus one column per slot.
func Build(table models.RawTable, layout models.Layout) (*Model, error) {
	if len(layout.Days) == 0 {
		return nil, fmt.Errorf("layout has no days")
	}
	want := 1 + layout.TotalSlots()
	if len(table.Header) != want {
		return nil, NewShapeError(0, want, len(table.Header))
	}

	m := &Model{layout: layout}
	seen := make(map[string]bool)
	for _, raw := range table.Rows {
		if len(raw.Cells) > want {
			return nil, NewShapeError(raw.R, want, len(raw.Cells))
		}
		// Skip spacer rows
		if isBlank(raw.Cells) {
			continue
		}

		label := strings.TrimSpace(raw.Cells[0])
		if label == "" {
			return nil, &ShapeError{Row: raw.R, Reason: "slot data without a class label"}
		}

		// Collect slots and record first appearances
		slots := make([]string, layout.TotalSlots())
		for i := range slots {
			col := i + 1
			if col < len(raw.Cells) {
				slots[i] = normalize(raw.Cells[col])
			}
			if code := slots[i]; code != "" && !seen[code] {
				seen[code] = true
				m.occupants = append(m.occupants, code)
			}
		}
		m.rows = append(m.rows, ClassRow{Label: label, R: raw.R, Slots: slots})
	}
	return m, nil
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Layout returns the layout the model was built with.
func (m *Model) Layout() models.Layout {
	return m.layout
}

// ClassLabels returns class labels in sheet order. Duplicates are kept.
func (m *Model) ClassLabels() []string {
	labels := make([]string, len(m.rows))
	for i, r := range m.rows {
		labels[i] = r.Label
	}
	return labels
}

// Rows returns the class rows in sheet order.
func (m *Model) Rows() []ClassRow {
	return m.rows
}

// Row returns the first row whose label is label. An exact match is
// preferred over a case-insensitive one.
func (m *Model) Row(label string) (ClassRow, bool) {
	label = strings.TrimSpace(label)
	for _, r := range m.rows {
		if r.Label == label {
			return r, true
		}
	}
	for _, r := range m.rows {
		if strings.EqualFold(r.Label, label) {
			return r, true
		}
	}
	return ClassRow{}, false
}

// Slot returns the occupant code of (label, day, period), or "" when the
// label is unknown, the slot is out of range, or it is unassigned.
func (m *Model) Slot(label string, day models.Day, period int) string {
	r, ok := m.Row(label)
	if !ok {
		return ""
	}
	idx, ok := m.layout.Offset(day, period)
	if !ok {
		return ""
	}
	return r.Slots[idx]
}

// DistinctOccupants returns every non-empty occupant code in order of first
// appearance, scanning rows top to bottom and slots left to right.
func (m *Model) DistinctOccupants() []string {
	out := make([]string, len(m.occupants))
	copy(out, m.occupants)
	return out
}
