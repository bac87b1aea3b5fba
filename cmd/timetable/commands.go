package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/ukaji3/timetable-go/pkg/timetable"
	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/ukaji3/timetable-go/pkg/timetable/output"
	"github.com/ukaji3/timetable-go/pkg/timetable/render"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// outputFlags selects how a single schedule is emitted.
type outputFlags struct {
	path   string
	json   bool
	pretty bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.path, "output", "o", "", "Write an xlsx document to this path")
	cmd.Flags().BoolVar(&o.json, "json", false, "Print JSON instead of a table")
	cmd.Flags().BoolVar(&o.pretty, "pretty", false, "Pretty-print JSON output")
}

// emit writes the document when a path is set, otherwise prints JSON or
// the terminal table.
func (o *outputFlags) emit(w io.Writer, value interface{}, table func() string, doc func() (*excelize.File, error)) error {
	if o.path != "" {
		f, err := doc()
		if err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		defer f.Close()
		if err := render.WriteFile(f, o.path); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("document written", zap.String("path", o.path))
		fmt.Fprintln(w, o.path)
		return nil
	}
	if o.json {
		data, err := output.ToJSON(value, o.pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}
	fmt.Fprintln(w, table())
	return nil
}

func newTeachersCmd() *cobra.Command {
	var base bool

	cmd := &cobra.Command{
		Use:   "teachers [input.xlsx]",
		Short: "List the teachers found in the timetable",
		Long: `List every occupant code in order of first appearance, or with --base the
distinct teacher names once subject prefixes are removed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(args[0])
			if err != nil {
				return err
			}
			names := s.Teachers()
			if base {
				names = s.BaseTeachers()
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&base, "base", false, "List base teacher names instead of occupant codes")
	return cmd
}

func newClassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classes [input.xlsx]",
		Short: "List the classes in sheet order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(args[0])
			if err != nil {
				return err
			}
			for _, c := range s.Classes() {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func newTeacherCmd() *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "teacher [input.xlsx] [teacher]",
		Short: "Show one teacher's weekly schedule",
		Long: `Show the class taught in every period of the week by a teacher. The teacher
may be an occupant code from "timetable teachers" or any typed name.

Example: timetable teacher timetable.xlsx khalida -o khalida.xlsx`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(args[0])
			if err != nil {
				return err
			}
			grid, err := s.TeacherSchedule(args[1])
			if err != nil {
				return err
			}
			return out.emit(cmd.OutOrStdout(), grid,
				func() string { return render.TeacherTable(cfg.School, grid) },
				func() (*excelize.File, error) { return render.TeacherWorkbook(cfg.School, grid) })
		},
	}
	out.register(cmd)
	return cmd
}

func newClassCmd() *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "class [input.xlsx] [class]",
		Short: "Show one class's weekly schedule",
		Long: `Show the occupant of every period of a class, with the break after the fifth
period.

Example: timetable class timetable.xlsx "2 (B)" -o 2b.xlsx`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(args[0])
			if err != nil {
				return err
			}
			grid, err := s.ClassSchedule(args[1])
			if err != nil {
				return err
			}
			return out.emit(cmd.OutOrStdout(), grid,
				func() string { return render.ClassTable(cfg.School, grid) },
				func() (*excelize.File, error) { return render.ClassWorkbook(cfg.School, grid) })
		},
	}
	out.register(cmd)
	return cmd
}

func newAggregateCmd() *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "aggregate [input.xlsx]",
		Short: "Show every teacher's classes per weekday",
		Long: `Merge the occupant codes that share a teacher name and show, per teacher
and weekday, the classes taught that day.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(args[0])
			if err != nil {
				return err
			}
			agg, err := s.Aggregate()
			if err != nil {
				return err
			}
			grids := agg.Grids()
			return out.emit(cmd.OutOrStdout(), output.AggregateRows(grids),
				func() string { return render.AggregateTable(cfg.School, grids) },
				func() (*excelize.File, error) { return render.AggregateWorkbook(cfg.School, grids) })
		},
	}
	out.register(cmd)
	return cmd
}

func newExportCmd() *cobra.Command {
	var (
		dir       string
		teachers  bool
		classes   bool
		aggregate bool
		base      bool
	)

	cmd := &cobra.Command{
		Use:   "export [input.xlsx]",
		Short: "Write a document for every teacher and class",
		Long: `Write one xlsx document per teacher and per class into a directory, plus the
aggregated teacher table.

Example: timetable export timetable.xlsx --dir out --base`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(args[0])
			if err != nil {
				return err
			}

			jobs, err := exportJobs(s, teachers, classes, aggregate, base)
			if err != nil {
				return err
			}
			paths, err := render.WriteEach(cmd.Context(), dir, jobs, cfg.Workers, logger)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "schedules", "Directory for the documents")
	cmd.Flags().BoolVar(&teachers, "teachers", true, "Write teacher documents")
	cmd.Flags().BoolVar(&classes, "classes", true, "Write class documents")
	cmd.Flags().BoolVar(&aggregate, "aggregate", true, "Write the aggregated teacher table")
	cmd.Flags().BoolVar(&base, "base", false, "One teacher document per base name, merging subject prefixes")
	return cmd
}

// exportJobs resolves every requested schedule up front so resolution
// errors surface before any file is written.
func exportJobs(s *timetable.Session, teachers, classes, aggregate, base bool) ([]render.Job, error) {
	var jobs []render.Job
	school := cfg.School

	if teachers || aggregate {
		agg, err := s.Aggregate()
		if err != nil {
			return nil, err
		}
		if teachers {
			var grids []models.TeacherWeeklyGrid
			if base {
				for _, g := range agg.Grids() {
					grids = append(grids, g.Flatten())
				}
			} else {
				for _, code := range s.Teachers() {
					g, err := s.TeacherSchedule(code)
					if err != nil {
						return nil, err
					}
					grids = append(grids, g)
				}
			}
			for _, g := range grids {
				jobs = append(jobs, render.Job{
					Name:  g.Teacher,
					Dir:   "teachers",
					Build: func() (*excelize.File, error) { return render.TeacherWorkbook(school, g) },
				})
			}
		}
		if aggregate {
			grids := agg.Grids()
			jobs = append(jobs, render.Job{
				Name:  "aggregate",
				Build: func() (*excelize.File, error) { return render.AggregateWorkbook(school, grids) },
			})
		}
	}

	if classes {
		// Every row is exported; repeated labels get numbered file names.
		for _, g := range s.ClassSchedules() {
			jobs = append(jobs, render.Job{
				Name:  g.Class,
				Dir:   "classes",
				Build: func() (*excelize.File, error) { return render.ClassWorkbook(school, g) },
			})
		}
	}
	return jobs, nil
}
