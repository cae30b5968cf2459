package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rpupo63/portfolio-seeder/models"
)

type ProjectCategoryRepo struct {
	db *gorm.DB
}

func NewProjectCategoryRepo(db *gorm.DB) *ProjectCategoryRepo {
	return &ProjectCategoryRepo{db}
}

// FindByCategory returns every link pointing at the category
func (r *ProjectCategoryRepo) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]*models.ProjectCategory, error) {
	var links []*models.ProjectCategory
	err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Find(&links).Error
	return links, err
}

// Count returns the number of project/category links
func (r *ProjectCategoryRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ProjectCategory{}).Count(&count).Error
	return count, err
}

// Link associates the project with the category. It reports false when the
// pair was already linked.
func (r *ProjectCategoryRepo) Link(ctx context.Context, projectID, categoryID uuid.UUID) (bool, error) {
	link := &models.ProjectCategory{
		ProjectID:  projectID,
		CategoryID: categoryID,
	}
	tx := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "project_id"}, {Name: "category_id"}},
			DoNothing: true,
		}).
		Create(link)
	return tx.RowsAffected > 0, tx.Error
}
