// Package timetable loads school timetable workbooks and derives teacher,
// class and aggregated weekly schedules from them.
package timetable

import (
	"fmt"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/ukaji3/timetable-go/pkg/timetable/schedule"
	"go.uber.org/zap"
)

// DefaultSheet is the worksheet holding the combined timetable.
const DefaultSheet = "BOYS&GIRLS"

// DefaultShortDayPeriods is the number of Friday periods.
const DefaultShortDayPeriods = 5

// Options configures loading and resolution.
type Options struct {
	// Sheet is the worksheet to read. Defaults to DefaultSheet.
	Sheet string
	// ShortDayPeriods is the Friday period count, 5 or 6.
	// Defaults to DefaultShortDayPeriods.
	ShortDayPeriods int
	// SkipSubHeader specifies whether the row below the header is dropped.
	// If nil, defaults to true.
	SkipSubHeader *bool
	// Match selects how teacher keys are compared with occupant codes.
	Match schedule.MatchMode
	// Strict reports a teacher in two classes at once instead of keeping
	// the first class.
	Strict bool
	// Logger receives load diagnostics. If nil, logging is discarded.
	Logger *zap.Logger
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		Sheet:           DefaultSheet,
		ShortDayPeriods: DefaultShortDayPeriods,
		Match:           schedule.MatchSubstring,
	}
}

// ShouldSkipSubHeader returns whether the sub-header row is dropped.
func (o Options) ShouldSkipSubHeader() bool {
	if o.SkipSubHeader != nil {
		return *o.SkipSubHeader
	}
	return true
}

// Layout returns the timetable layout implied by the options.
func (o Options) Layout() models.Layout {
	n := o.ShortDayPeriods
	if n == 0 {
		n = DefaultShortDayPeriods
	}
	return models.DefaultLayout(n)
}

// Validate checks the option values.
func (o Options) Validate() error {
	if o.ShortDayPeriods != 0 && o.ShortDayPeriods != 5 && o.ShortDayPeriods != 6 {
		return fmt.Errorf("invalid short day periods: %d (must be 5 or 6)", o.ShortDayPeriods)
	}
	if _, err := schedule.ParseMatchMode(string(o.Match)); err != nil {
		return err
	}
	return nil
}

func (o Options) sheet() string {
	if o.Sheet == "" {
		return DefaultSheet
	}
	return o.Sheet
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o Options) resolveOptions() schedule.ResolveOptions {
	mode, _ := schedule.ParseMatchMode(string(o.Match))
	return schedule.ResolveOptions{Match: mode, Strict: o.Strict}
}
