// Package main provides the CLI entry point for timetable-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/timetable-go/internal/config"
	"github.com/ukaji3/timetable-go/internal/logging"
	"github.com/ukaji3/timetable-go/pkg/timetable"
	"go.uber.org/zap"
)

var (
	configPath      string
	sheetName       string
	school          string
	shortDayPeriods int
	matchMode       string
	strict          bool
	logLevel        string

	cfg    *config.Config
	logger = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "timetable",
		Short: "Build teacher and class schedules from a school timetable workbook",
		Long: `timetable reads a school's weekly timetable workbook, one row per class and
one column per (day, period) slot, and derives per-teacher, per-class and
aggregated weekly schedules. Schedules print as tables, JSON, or printable
xlsx documents.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) { _ = logger.Sync() },
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default: ./"+config.DefaultPath+" if present)")
	flags.StringVar(&sheetName, "sheet", "", "Worksheet holding the timetable (default: "+timetable.DefaultSheet+")")
	flags.StringVar(&school, "school", "", "School name printed on documents")
	flags.IntVar(&shortDayPeriods, "short-day-periods", 0, "Number of Friday periods: 5 or 6")
	flags.StringVar(&matchMode, "match", "", "Teacher matching: substring or identity")
	flags.BoolVar(&strict, "strict", false, "Fail when a teacher is placed in two classes at once")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newTeachersCmd(),
		newClassesCmd(),
		newTeacherCmd(),
		newClassCmd(),
		newAggregateCmd(),
		newExportCmd(),
	)
	return rootCmd
}

// setup loads the config file and applies flag overrides.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("sheet") {
		loaded.Sheet = sheetName
	}
	if flags.Changed("school") {
		loaded.School = school
	}
	if flags.Changed("short-day-periods") {
		loaded.ShortDayPeriods = shortDayPeriods
	}
	if flags.Changed("match") {
		loaded.Match = matchMode
	}
	if flags.Changed("strict") {
		loaded.Strict = strict
	}
	if flags.Changed("log-level") {
		loaded.Logging.Level = logLevel
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	log, err := logging.New(loaded.Logging.Level, loaded.Logging.Format)
	if err != nil {
		return err
	}
	cfg, logger = loaded, log
	return nil
}

func openSession(path string) (*timetable.Session, error) {
	opts := cfg.Options()
	opts.Logger = logger
	return timetable.Load(path, opts)
}
