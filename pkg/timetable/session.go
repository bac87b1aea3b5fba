package timetable

import (
	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/ukaji3/timetable-go/pkg/timetable/schedule"
	"go.uber.org/zap"
)

// Session holds one loaded timetable. Every query recomputes its result
// from the immutable model.
type Session struct {
	name  string
	model *schedule.Model
	opts  Options
	log   *zap.Logger
}

// NewSession wraps a built model.
func NewSession(name string, model *schedule.Model, opts Options) *Session {
	return &Session{name: name, model: model, opts: opts, log: opts.logger()}
}

// Name returns the workbook name the session was loaded from.
func (s *Session) Name() string { return s.name }

// Model returns the normalized timetable.
func (s *Session) Model() *schedule.Model { return s.model }

// Layout returns the period layout of the timetable.
func (s *Session) Layout() models.Layout { return s.model.Layout() }

// Teachers returns every occupant code in order of first appearance.
func (s *Session) Teachers() []string {
	return s.model.DistinctOccupants()
}

// BaseTeachers returns the distinct base teacher names in order of first
// appearance.
func (s *Session) BaseTeachers() []string {
	var names []string
	seen := make(map[string]bool)
	for _, code := range s.model.DistinctOccupants() {
		base := schedule.ParseOccupant(code).Base
		if base == "" || seen[base] {
			continue
		}
		seen[base] = true
		names = append(names, base)
	}
	return names
}

// Classes returns the class labels in sheet order.
func (s *Session) Classes() []string {
	return s.model.ClassLabels()
}

// TeacherSchedule resolves the week of a teacher key. The key may be an
// occupant code picked from Teachers or a typed name.
func (s *Session) TeacherSchedule(key string) (models.TeacherWeeklyGrid, error) {
	grid, err := schedule.ResolveTeacher(s.model, key, s.opts.resolveOptions())
	if err != nil {
		s.log.Debug("teacher schedule failed", zap.String("teacher", key), zap.Error(err))
		return models.TeacherWeeklyGrid{}, err
	}
	s.log.Debug("teacher schedule", zap.String("teacher", grid.Teacher), zap.Int("busy", grid.Busy()))
	return grid, nil
}

// ClassSchedule resolves the week of a class label.
func (s *Session) ClassSchedule(label string) (models.ClassWeeklyGrid, error) {
	grid, err := schedule.ResolveClass(s.model, label)
	if err != nil {
		s.log.Debug("class schedule failed", zap.String("class", label), zap.Error(err))
		return models.ClassWeeklyGrid{}, err
	}
	return grid, nil
}

// ClassSchedules resolves the week of every class row in sheet order. Rows
// that share a label are each returned.
func (s *Session) ClassSchedules() []models.ClassWeeklyGrid {
	return schedule.ResolveClasses(s.model)
}

// Aggregate merges every base teacher's occupant codes into one grid each.
func (s *Session) Aggregate() (*schedule.Aggregation, error) {
	agg, err := schedule.Aggregate(s.model, s.opts.resolveOptions())
	if err != nil {
		return nil, err
	}
	s.log.Debug("aggregated", zap.Int("teachers", agg.Len()))
	return agg, nil
}
