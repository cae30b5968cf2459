package seed

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/rpupo63/portfolio-seeder/config"
	"github.com/rpupo63/portfolio-seeder/database"
)

// Step names reported in errors and log events.
const (
	StepAdmin      = "admin"
	StepCategories = "categories"
	StepProjects   = "projects"
	StepLinks      = "links"
)

const defaultLinkConcurrency = 8

type Seeder struct {
	db              database.Database
	dataset         Dataset
	hashCost        int
	linkConcurrency int
	logger          zerolog.Logger
}

// Report summarizes a completed run.
type Report struct {
	AdminID             uuid.UUID
	AdminEmail          string
	CategoriesAttempted int
	ProjectsCreated     int
	ProjectsSkipped     bool
	LinkCategoryFound   bool
	LinksCreated        int
}

func WithLogger(logger zerolog.Logger) func(*Seeder) {
	return func(s *Seeder) {
		s.logger = logger
	}
}

func WithHashCost(cost int) func(*Seeder) {
	return func(s *Seeder) {
		s.hashCost = cost
	}
}

func WithLinkConcurrency(n int) func(*Seeder) {
	return func(s *Seeder) {
		if n > 0 {
			s.linkConcurrency = n
		}
	}
}

func New(db database.Database, dataset Dataset, opts ...func(*Seeder)) *Seeder {
	s := &Seeder{
		db:              db,
		dataset:         dataset,
		hashCost:        config.DefaultHashCost,
		linkConcurrency: defaultLinkConcurrency,
		logger:          zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.hashCost < bcrypt.MinCost {
		s.hashCost = bcrypt.MinCost
	}
	return s
}

// Run executes admin, categories, projects and links in that order and stops
// at the first failure. Steps already completed are not rolled back.
func (s *Seeder) Run(ctx context.Context) (Report, error) {
	var report Report
	s.logger.Info().Msg("seeding started")

	admin, err := s.ProvisionAdmin(ctx)
	if err != nil {
		return report, err
	}
	report.AdminID = admin.ID
	report.AdminEmail = admin.Email

	report.CategoriesAttempted, err = s.MaterializeCategories(ctx)
	if err != nil {
		return report, err
	}

	report.ProjectsCreated, report.ProjectsSkipped, err = s.MaterializeProjects(ctx)
	if err != nil {
		return report, err
	}

	report.LinksCreated, report.LinkCategoryFound, err = s.LinkProjects(ctx)
	if err != nil {
		return report, err
	}

	s.logger.Info().
		Str("admin", report.AdminEmail).
		Int("categories", report.CategoriesAttempted).
		Int("projectsCreated", report.ProjectsCreated).
		Int("linksCreated", report.LinksCreated).
		Msg("seeding completed")
	return report, nil
}
