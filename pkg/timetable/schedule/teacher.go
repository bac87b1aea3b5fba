package schedule

import (
	"strings"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

// MatchMode selects how a teacher key is compared with occupant codes.
type MatchMode string

const (
	// MatchSubstring matches any occupant code containing the key. Names
	// that are substrings of each other collide.
	MatchSubstring MatchMode = "substring"
	// MatchIdentity matches the full occupant code, or the parsed base name
	// when the key carries no prefix.
	MatchIdentity MatchMode = "identity"
)

// ParseMatchMode parses a mode name. The empty string selects MatchSubstring.
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchSubstring:
		return MatchSubstring, nil
	case MatchIdentity:
		return MatchIdentity, nil
	default:
		return "", &unknownModeError{s}
	}
}

type unknownModeError struct{ mode string }

func (e *unknownModeError) Error() string {
	return "invalid match mode: " + e.mode + " (must be substring or identity)"
}

// ResolveOptions configures teacher resolution.
type ResolveOptions struct {
	Match MatchMode
	// Strict reports a teacher found in two classes in one slot instead of
	// keeping the first.
	Strict bool
}

type matcher func(code string) bool

func newMatcher(key string, mode MatchMode) matcher {
	if mode == MatchIdentity {
		bare := !strings.Contains(key, OccupantDelimiter)
		return func(code string) bool {
			if code == key {
				return true
			}
			return bare && ParseOccupant(code).Base == key
		}
	}
	return func(code string) bool {
		return strings.Contains(code, key)
	}
}

// ResolveTeacher builds the weekly grid of key. For every slot the first
// class row, in sheet order, whose occupant matches wins.
func ResolveTeacher(m *Model, key string, opts ResolveOptions) (models.TeacherWeeklyGrid, error) {
	key = normalize(key)
	if key == "" {
		return models.TeacherWeeklyGrid{}, NewNotFoundError("teacher", key)
	}
	match := newMatcher(key, opts.Match)

	grid := models.TeacherWeeklyGrid{Teacher: key, Days: make([]models.TeacherDay, 0, len(m.layout.Days))}
	found := false
	offset := 0
	for _, dp := range m.layout.Days {
		periods := make([]string, dp.Periods)
		for p := 0; p < dp.Periods; p++ {
			idx := offset + p
			var classes []string
			for _, r := range m.rows {
				if r.Slots[idx] != "" && match(r.Slots[idx]) {
					classes = append(classes, r.Label)
					if !opts.Strict {
						break
					}
				}
			}
			if len(classes) > 1 {
				return models.TeacherWeeklyGrid{}, &AmbiguousAssignmentError{
					Teacher: key, Day: dp.Day, Period: p + 1, Classes: classes,
				}
			}
			if len(classes) == 1 {
				periods[p] = classes[0]
				found = true
			}
		}
		grid.Days = append(grid.Days, models.TeacherDay{Day: dp.Day, Periods: periods})
		offset += dp.Periods
	}

	if !found {
		return models.TeacherWeeklyGrid{}, NewNotFoundError("teacher", key)
	}
	return grid, nil
}
