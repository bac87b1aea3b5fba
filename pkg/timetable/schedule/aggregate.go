package schedule

import (
	"fmt"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

// Aggregation holds one merged grid per base teacher name.
type Aggregation struct {
	names []string
	grids map[string]models.AggregatedGrid
}

// Names returns the base names in order of first appearance.
func (a *Aggregation) Names() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}

// Get returns the merged grid of a base name.
func (a *Aggregation) Get(name string) (models.AggregatedGrid, bool) {
	g, ok := a.grids[normalize(name)]
	return g, ok
}

// Grids returns every merged grid in Names order.
func (a *Aggregation) Grids() []models.AggregatedGrid {
	out := make([]models.AggregatedGrid, 0, len(a.names))
	for _, n := range a.names {
		out = append(out, a.grids[n])
	}
	return out
}

// Len returns the number of base names.
func (a *Aggregation) Len() int {
	return len(a.names)
}

// Aggregate groups the distinct occupant codes by base name and merges the
// grids of each group. Codes merge in first-appearance order, which fixes
// the order of labels sharing a period.
//
// Merging is not plain concatenation: a class label already present in a
// period is not repeated, so "tania" and "e-tania" both teaching 1 (A) in
// the same period yield "1 (A)" rather than "1 (A), 1 (A)".
func Aggregate(m *Model, opts ResolveOptions) (*Aggregation, error) {
	agg := &Aggregation{grids: make(map[string]models.AggregatedGrid)}
	for _, code := range m.DistinctOccupants() {
		occ := ParseOccupant(code)
		if occ.Base == "" {
			continue
		}

		grid, err := ResolveTeacher(m, code, opts)
		if err != nil {
			return nil, fmt.Errorf("aggregate %q: %w", occ.Base, err)
		}

		merged, ok := agg.grids[occ.Base]
		if !ok {
			merged = emptyAggregate(occ.Base, m.layout)
			agg.names = append(agg.names, occ.Base)
		}
		mergeInto(&merged, grid)
		merged.Codes = append(merged.Codes, code)
		agg.grids[occ.Base] = merged
	}
	return agg, nil
}

func emptyAggregate(name string, layout models.Layout) models.AggregatedGrid {
	g := models.AggregatedGrid{Teacher: name, Days: make([]models.AggregatedDay, len(layout.Days))}
	for i, dp := range layout.Days {
		g.Days[i] = models.AggregatedDay{Day: dp.Day, Periods: make([][]string, dp.Periods)}
	}
	return g
}

// mergeInto appends the labels of src to dst period by period. A label
// already present in a period is not repeated.
func mergeInto(dst *models.AggregatedGrid, src models.TeacherWeeklyGrid) {
	for i := range dst.Days {
		day := &dst.Days[i]
		for _, sd := range src.Days {
			if sd.Day != day.Day {
				continue
			}
			for p, label := range sd.Periods {
				if label == models.Free || p >= len(day.Periods) || contains(day.Periods[p], label) {
					continue
				}
				day.Periods[p] = append(day.Periods[p], label)
			}
		}
	}
}

func contains(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}
