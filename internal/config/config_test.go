package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/timetable-go/pkg/timetable/schedule"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "BOYS&GIRLS", cfg.Sheet)
	assert.Equal(t, 5, cfg.ShortDayPeriods)

	opts := cfg.Options()
	assert.True(t, opts.ShouldSkipSubHeader())
	assert.Equal(t, schedule.MatchSubstring, opts.Match)
	assert.Equal(t, 45, opts.Layout().TotalSlots())
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timetable.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
school: Model High School
sheet: Timetable
short_day_periods: 6
skip_sub_header: false
match: identity
strict: true
logging:
  level: debug
  format: json
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Model High School", cfg.School)
	assert.Equal(t, "Timetable", cfg.Sheet)
	assert.Equal(t, 6, cfg.ShortDayPeriods)
	assert.False(t, cfg.SkipSubHeader)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "debug", cfg.Logging.Level)

	opts := cfg.Options()
	assert.False(t, opts.ShouldSkipSubHeader())
	assert.Equal(t, schedule.MatchIdentity, opts.Match)
	assert.Equal(t, 46, opts.Layout().TotalSlots())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"short day", "short_day_periods: 4\n"},
		{"match", "match: fuzzy\n"},
		{"workers", "workers: 0\n"},
		{"level", "logging:\n  level: loud\n"},
		{"format", "logging:\n  format: xml\n"},
		{"yaml", "school: [unclosed\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "timetable.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
