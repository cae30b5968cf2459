package seed

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-seeder/errs"
)

// LinkProjects attaches every stored project, not only the ones created by
// this run, to the dataset's link category. Pairs that are already linked are
// left alone. A missing category is not an error: found is false and nothing
// is written.
func (s *Seeder) LinkProjects(ctx context.Context) (linked int, found bool, err error) {
	s.logger.Info().Str("step", StepLinks).Str("category", s.dataset.LinkCategory).Msg("linking projects to category")

	projects, err := s.db.ProjectRepo().FindAll(ctx)
	if err != nil {
		return 0, false, errs.NewDatabaseError(StepLinks, "list", "projects", err)
	}

	category, err := s.db.CategoryRepo().FindByName(ctx, s.dataset.LinkCategory)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Warn().Str("step", StepLinks).Str("category", s.dataset.LinkCategory).Msg("category not found, skipping links")
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errs.NewDatabaseError(StepLinks, "find", "category", err)
	}

	var created atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.linkConcurrency)
	for _, project := range projects {
		project := project // per-iteration copy (go1.21 loop semantics)
		g.Go(func() error {
			ok, err := s.db.ProjectCategoryRepo().Link(gctx, project.ID, category.ID)
			if err != nil {
				return err
			}
			if ok {
				created.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return int(created.Load()), true, errs.NewDatabaseError(StepLinks, "create", "project category", err)
	}

	s.logger.Info().
		Str("step", StepLinks).
		Int("projects", len(projects)).
		Int64("created", created.Load()).
		Msg("projects linked to category")
	return int(created.Load()), true, nil
}
