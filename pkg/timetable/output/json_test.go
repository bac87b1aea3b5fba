package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

func TestToJSON(t *testing.T) {
	grid := models.TeacherWeeklyGrid{
		Teacher: "khalida",
		Days:    []models.TeacherDay{{Day: models.Monday, Periods: []string{"2 (B)", ""}}},
	}

	compact, err := ToJSON(grid, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	expected := `{"teacher":"khalida","days":[{"day":"Monday","periods":["2 (B)",""]}]}`
	if string(compact) != expected {
		t.Errorf("ToJSON = %s, expected %s", compact, expected)
	}

	pretty, err := ToJSON(grid, true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(string(pretty), "\n  \"teacher\": \"khalida\"") {
		t.Errorf("Expected indented output, got %s", pretty)
	}
}

func TestToJSONRejectsInvalidDay(t *testing.T) {
	grid := models.TeacherWeeklyGrid{Days: []models.TeacherDay{{Day: models.Day(12)}}}
	if _, err := ToJSON(grid, false); err == nil {
		t.Error("Expected error for invalid day")
	}
}

func TestAggregateRows(t *testing.T) {
	g := models.AggregatedGrid{
		Teacher: "tania",
		Codes:   []string{"e-tania", "gk-tania"},
		Days: []models.AggregatedDay{
			{Day: models.Monday, Periods: [][]string{{"2 (B)"}, nil, {"3 (A)", "4 (C)"}}},
		},
	}

	rows := AggregateRows([]models.AggregatedGrid{g})
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if got := rows[0].Classes(models.Monday); got != "2 (B), 3 (A), 4 (C)" {
		t.Errorf("Monday = %q", got)
	}
	if got := rows[0].Classes(models.Saturday); got != "" {
		t.Errorf("Saturday = %q, expected empty", got)
	}
	for i, d := range rows[0].Days {
		if d.Day != models.Weekdays[i] {
			t.Errorf("Days[%d] = %v, expected %v", i, d.Day, models.Weekdays[i])
		}
	}

	data, err := ToJSON(rows, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	var decoded []AggregateRow
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded[0].Codes[1] != "gk-tania" {
		t.Errorf("Unexpected codes %v", decoded[0].Codes)
	}
	if decoded[0].Classes(models.Monday) != "2 (B), 3 (A), 4 (C)" {
		t.Errorf("Decoded days %v", decoded[0].Days)
	}
}

func TestAggregateRowsJSONWeekOrder(t *testing.T) {
	g := models.AggregatedGrid{Teacher: "tania"}
	data, err := ToJSON(AggregateRows([]models.AggregatedGrid{g}), false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	s := string(data)
	last := -1
	for _, d := range models.Weekdays {
		i := strings.Index(s, `"day":"`+d.String()+`"`)
		if i <= last {
			t.Fatalf("%s out of week order in %s", d, s)
		}
		last = i
	}
}
