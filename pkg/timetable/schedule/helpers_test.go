package schedule

import (
	"fmt"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

// week is a row's slots keyed by day; missing periods are blank.
type week map[models.Day][]string

func header(layout models.Layout) []string {
	h := []string{"Class"}
	for _, dp := range layout.Days {
		for p := 1; p <= dp.Periods; p++ {
			h = append(h, fmt.Sprintf("%s %d", dp.Day, p))
		}
	}
	return h
}

func cells(layout models.Layout, label string, w week) []string {
	out := []string{label}
	for _, dp := range layout.Days {
		for p := 0; p < dp.Periods; p++ {
			v := ""
			if p < len(w[dp.Day]) {
				v = w[dp.Day][p]
			}
			out = append(out, v)
		}
	}
	return out
}

type fixtureRow struct {
	label string
	week  week
}

func newTable(layout models.Layout, rows ...fixtureRow) models.RawTable {
	t := models.RawTable{Sheet: "BOYS&GIRLS", Header: header(layout)}
	for i, r := range rows {
		t.Rows = append(t.Rows, models.RawRow{R: i + 3, Cells: cells(layout, r.label, r.week)})
	}
	return t
}

func mustBuild(rows ...fixtureRow) *Model {
	layout := models.DefaultLayout(5)
	m, err := Build(newTable(layout, rows...), layout)
	if err != nil {
		panic(err)
	}
	return m
}

var class2B = fixtureRow{label: "2 (B)", week: week{
	models.Monday: {"u-khalida", "sp-m", "m-irum", "e-tania", "e-tania", "gk-maira", "d-ayesha", "gk-maira"},
	models.Friday: {"m-irum", "", "e-tania"},
}}

var class3A = fixtureRow{label: "3 (A)", week: week{
	models.Monday:  {"m-irum", "u-khalida", "", "", "", "", "gk-tania"},
	models.Tuesday: {"gk-tania", "d-ayesha"},
}}
