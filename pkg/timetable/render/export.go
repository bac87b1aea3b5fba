package render

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Job is one document of a batch export.
type Job struct {
	// Name is the teacher or class the document is for.
	Name string
	// Dir is an optional subdirectory of the export directory.
	Dir   string
	Build func() (*excelize.File, error)
}

// WriteEach builds and writes every job to dir/<Dir>/<FileName(name)>.xlsx,
// running at most limit jobs at once. The first failure cancels the jobs
// not yet started and is returned. It returns the written paths in job order.
func WriteEach(ctx context.Context, dir string, jobs []Job, limit int, log *zap.Logger) ([]string, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if limit < 1 {
		limit = 1
	}

	paths := make([]string, len(jobs))
	used := make(map[string]bool)
	for i, job := range jobs {
		base := filepath.Join(job.Dir, FileName(job.Name))
		stem := base
		// Repeated names take the first free "_n" suffix.
		for n := 2; used[stem]; n++ {
			stem = fmt.Sprintf("%s_%d", base, n)
		}
		used[stem] = true
		paths[i] = filepath.Join(dir, stem+".xlsx")
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, job := range jobs {
		path := paths[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := job.Build()
			if err != nil {
				return fmt.Errorf("render %q: %w", job.Name, err)
			}
			defer f.Close()

			if err := WriteFile(f, path); err != nil {
				return fmt.Errorf("write %q: %w", job.Name, err)
			}
			log.Debug("document written", zap.String("name", job.Name), zap.String("path", path))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
