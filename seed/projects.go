package seed

import (
	"context"

	"github.com/rpupo63/portfolio-seeder/errs"
	"github.com/rpupo63/portfolio-seeder/models"
)

// MaterializeProjects inserts the dataset's projects into an empty table.
// When any project already exists nothing is written and skipped is true,
// whatever those rows contain.
func (s *Seeder) MaterializeProjects(ctx context.Context) (created int, skipped bool, err error) {
	s.logger.Info().Str("step", StepProjects).Msg("creating projects")

	existing, err := s.db.ProjectRepo().Count(ctx)
	if err != nil {
		return 0, false, errs.NewDatabaseError(StepProjects, "count", "projects", err)
	}
	if existing > 0 {
		s.logger.Info().
			Str("step", StepProjects).
			Int64("existing", existing).
			Msg("projects already exist, skipping")
		return 0, true, nil
	}

	projects := make([]*models.Project, 0, len(s.dataset.Projects))
	for _, p := range s.dataset.Projects {
		projects = append(projects, p.Model())
	}

	inserted, err := s.db.ProjectRepo().CreateMany(ctx, projects)
	if err != nil {
		return 0, false, errs.NewDatabaseError(StepProjects, "insert", "projects", err)
	}

	s.logger.Info().Str("step", StepProjects).Int64("created", inserted).Msg("projects created")
	return int(inserted), false, nil
}
