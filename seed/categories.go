package seed

import (
	"context"

	"github.com/rpupo63/portfolio-seeder/errs"
	"github.com/rpupo63/portfolio-seeder/models"
)

// MaterializeCategories inserts the dataset's categories, leaving existing
// names untouched. It returns how many names were attempted.
func (s *Seeder) MaterializeCategories(ctx context.Context) (int, error) {
	s.logger.Info().Str("step", StepCategories).Msg("checking categories")

	categories := make([]*models.Category, 0, len(s.dataset.Categories))
	for _, name := range s.dataset.Categories {
		categories = append(categories, &models.Category{Name: name})
	}

	inserted, err := s.db.CategoryRepo().CreateMany(ctx, categories)
	if err != nil {
		return 0, errs.NewDatabaseError(StepCategories, "insert", "categories", err)
	}

	s.logger.Info().
		Str("step", StepCategories).
		Int("available", len(categories)).
		Int64("inserted", inserted).
		Msg("categories available")
	return len(categories), nil
}
