package render

import "github.com/ukaji3/timetable-go/pkg/timetable/models"

const school = "Model High School & College"

func teacherGrid(name string) models.TeacherWeeklyGrid {
	g := models.TeacherWeeklyGrid{Teacher: name}
	for _, dp := range models.DefaultLayout(5).Days {
		g.Days = append(g.Days, models.TeacherDay{Day: dp.Day, Periods: make([]string, dp.Periods)})
	}
	g.Days[0].Periods[0] = "2 (B)"
	g.Days[4].Periods[2] = "3 (A)"
	return g
}

func classGrid() models.ClassWeeklyGrid {
	g := models.ClassWeeklyGrid{Class: "2 (B)", Grade: "2", Section: "B"}
	for _, dp := range models.DefaultLayout(5).Days {
		var cells []models.ClassCell
		for p := 1; p <= dp.Periods; p++ {
			cells = append(cells, models.ClassCell{Period: p, Occupant: "e-tania"})
			if p == 5 && dp.Periods > 5 {
				cells = append(cells, models.ClassCell{Break: true})
			}
		}
		g.Days = append(g.Days, models.ClassDay{Day: dp.Day, Cells: cells})
	}
	g.Days[0].Cells[0].Occupant = "u-khalida"
	return g
}

func aggregatedGrid() models.AggregatedGrid {
	g := models.AggregatedGrid{Teacher: "tania", Codes: []string{"e-tania", "gk-tania"}}
	for _, dp := range models.DefaultLayout(5).Days {
		g.Days = append(g.Days, models.AggregatedDay{Day: dp.Day, Periods: make([][]string, dp.Periods)})
	}
	g.Days[0].Periods[3] = []string{"2 (B)"}
	g.Days[0].Periods[6] = []string{"3 (A)", "4 (C)"}
	return g
}
