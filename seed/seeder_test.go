package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rpupo63/portfolio-seeder/config"
	"github.com/rpupo63/portfolio-seeder/database"
	"github.com/rpupo63/portfolio-seeder/errs"
	"github.com/rpupo63/portfolio-seeder/models"
	"github.com/rpupo63/portfolio-seeder/testutil"
)

func newTestSeeder(t *testing.T, ds Dataset) (*Seeder, database.Database) {
	t.Helper()
	db := database.New(testutil.GetEmptyTestDB(t))
	return New(db, ds, WithHashCost(bcrypt.MinCost)), db
}

func TestProvisionAdmin_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := database.New(testutil.GetEmptyTestDB(t))

	first, err := New(db, DefaultDataset("admin@example.com", "first"), WithHashCost(bcrypt.MinCost)).ProvisionAdmin(ctx)
	require.NoError(t, err)

	second, err := New(db, DefaultDataset("admin@example.com", "second"), WithHashCost(bcrypt.MinCost)).ProvisionAdmin(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	count, err := db.UserRepo().Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	stored, err := db.UserRepo().FindByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("second")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("first")))
	assert.Equal(t, DefaultAdminName, stored.Name)
	assert.Equal(t, models.RoleAdmin, stored.Role)
}

func TestProvisionAdmin_EmptyEmail(t *testing.T) {
	s, _ := newTestSeeder(t, DefaultDataset("", "pw"))

	_, err := s.ProvisionAdmin(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, errs.ExitCode(err))
}

func TestMaterializeCategories_OverlappingNames(t *testing.T) {
	ctx := context.Background()
	db := database.New(testutil.GetEmptyTestDB(t))

	ds := DefaultDataset("a@example.com", "pw")
	n, err := New(db, ds).MaterializeCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	ds.Categories = []string{"Mobile", "Site Web", "Blog"}
	n, err = New(db, ds).MaterializeCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	all, err := db.CategoryRepo().FindAll(ctx)
	require.NoError(t, err)
	names := make(map[string]int)
	for _, c := range all {
		names[c.Name]++
	}
	assert.Len(t, names, 5)
	for name, count := range names {
		assert.Equal(t, 1, count, name)
	}
}

func TestMaterializeProjects_EmptyTable(t *testing.T) {
	ctx := context.Background()
	s, db := newTestSeeder(t, DefaultDataset("a@example.com", "pw"))

	created, skipped, err := s.MaterializeProjects(ctx)
	require.NoError(t, err)
	assert.False(t, skipped)
	assert.Equal(t, 6, created)

	projects, err := db.ProjectRepo().FindAll(ctx)
	require.NoError(t, err)
	slugs := make([]string, 0, len(projects))
	for _, p := range projects {
		slugs = append(slugs, p.Slug)
	}
	assert.ElementsMatch(t, []string{
		"cgepro",
		"eric-raby",
		"connect-talent",
		"soa-dia-travel",
		"site-e-commerce-fashion",
		"application-mobile-banking",
	}, slugs)

	banking, err := db.ProjectRepo().FindBySlug(ctx, "application-mobile-banking")
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusInProgress, banking.Status)
	assert.Equal(t, []string{"React Native", "Firebase", "Redux"}, []string(banking.Technologies))
	assert.Nil(t, banking.URL)
}

func TestMaterializeProjects_SkipsWhenAnyProjectExists(t *testing.T) {
	ctx := context.Background()
	s, db := newTestSeeder(t, DefaultDataset("a@example.com", "pw"))

	unrelated := Dataset{Projects: []ProjectSeed{{
		Title:        "Unrelated Project",
		Technologies: []string{"Go"},
		Status:       models.ProjectStatusCompleted,
		Date:         time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
	}}}
	_, _, err := New(db, unrelated).MaterializeProjects(ctx)
	require.NoError(t, err)

	created, skipped, err := s.MaterializeProjects(ctx)
	require.NoError(t, err)
	assert.True(t, skipped)
	assert.Zero(t, created)

	count, err := db.ProjectRepo().Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestLinkProjects_MissingCategory(t *testing.T) {
	ctx := context.Background()
	s, db := newTestSeeder(t, DefaultDataset("a@example.com", "pw"))

	_, _, err := s.MaterializeProjects(ctx)
	require.NoError(t, err)

	linked, found, err := s.LinkProjects(ctx)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, linked)

	count, err := db.ProjectCategoryRepo().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLinkProjects_LinksEveryProjectOnce(t *testing.T) {
	ctx := context.Background()
	s, db := newTestSeeder(t, DefaultDataset("a@example.com", "pw"))

	_, err := s.MaterializeCategories(ctx)
	require.NoError(t, err)
	_, _, err = s.MaterializeProjects(ctx)
	require.NoError(t, err)

	linked, found, err := s.LinkProjects(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 6, linked)

	category, err := db.CategoryRepo().FindByName(ctx, "Site Web")
	require.NoError(t, err)
	links, err := db.ProjectCategoryRepo().FindByCategory(ctx, category.ID)
	require.NoError(t, err)
	require.Len(t, links, 6)
	seen := make(map[string]bool)
	for _, l := range links {
		assert.Equal(t, category.ID, l.CategoryID)
		seen[l.ProjectID.String()] = true
	}
	assert.Len(t, seen, 6)

	linked, found, err = s.LinkProjects(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Zero(t, linked)

	count, err := db.ProjectCategoryRepo().Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 6, count)
}

func TestRun_FullSequenceIsRepeatable(t *testing.T) {
	ctx := context.Background()
	s, db := newTestSeeder(t, DefaultDataset("admin@example.com", "pw"))

	report, err := s.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", report.AdminEmail)
	assert.Equal(t, 4, report.CategoriesAttempted)
	assert.Equal(t, 6, report.ProjectsCreated)
	assert.False(t, report.ProjectsSkipped)
	assert.True(t, report.LinkCategoryFound)
	assert.Equal(t, 6, report.LinksCreated)

	again, err := s.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, report.AdminID, again.AdminID)
	assert.True(t, again.ProjectsSkipped)
	assert.Zero(t, again.ProjectsCreated)
	assert.Zero(t, again.LinksCreated)

	count, err := db.ProjectCategoryRepo().Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 6, count)
}

func TestRun_CustomDataset(t *testing.T) {
	ds := Dataset{
		Admin:        Admin{Email: "ops@example.com", Password: "pw", Name: "Ops", Role: models.RoleAdmin},
		Categories:   []string{"Mobile"},
		LinkCategory: "Mobile",
		Projects: []ProjectSeed{
			{Title: "One App", Technologies: []string{"Swift"}, Status: models.ProjectStatusCompleted, Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
			{Title: "Two App", Technologies: []string{"Kotlin"}, Status: models.ProjectStatusInProgress, Date: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)},
		},
	}
	s, _ := newTestSeeder(t, ds)

	report, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.ProjectsCreated)
	assert.Equal(t, 2, report.LinksCreated)
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s, _ := newTestSeeder(t, DefaultDataset("admin@example.com", "pw"))

	_, err := s.Run(ctx)
	require.Error(t, err)
	assert.True(t, errs.IsCanceled(err))
	assert.Equal(t, 130, errs.ExitCode(err))
}

func TestLinkProjects_WriteFailureFailsBatch(t *testing.T) {
	ctx := context.Background()
	s, db := newTestSeeder(t, DefaultDataset("a@example.com", "pw"))

	_, err := s.MaterializeCategories(ctx)
	require.NoError(t, err)
	_, _, err = s.MaterializeProjects(ctx)
	require.NoError(t, err)
	require.NoError(t, db.GetDB().Exec("DROP TABLE project_categories").Error)

	linked, found, err := s.LinkProjects(ctx)
	require.Error(t, err)
	assert.True(t, found)
	assert.Zero(t, linked)
	assert.Equal(t, errs.KindDatabase, errs.KindOf(err))
	assert.Equal(t, 1, errs.ExitCode(err))
	assert.Contains(t, err.Error(), StepLinks)
}

func TestRun_StopsAtFailedStepKeepingEarlierWrites(t *testing.T) {
	ctx := context.Background()
	s, db := newTestSeeder(t, DefaultDataset("admin@example.com", "pw"))
	require.NoError(t, db.GetDB().Exec("DROP TABLE project_categories").Error)

	report, err := s.Run(ctx)
	require.Error(t, err)
	assert.Equal(t, errs.KindDatabase, errs.KindOf(err))
	assert.Equal(t, "admin@example.com", report.AdminEmail)
	assert.Equal(t, 4, report.CategoriesAttempted)
	assert.Equal(t, 6, report.ProjectsCreated)
	assert.Zero(t, report.LinksCreated)

	users, err := db.UserRepo().Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, users)

	categories, err := db.CategoryRepo().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 4)

	projects, err := db.ProjectRepo().Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 6, projects)
}

func TestLinkProjects_BoundedConcurrency(t *testing.T) {
	ctx := context.Background()
	db := database.New(testutil.GetEmptyTestDB(t))
	s := New(db, DefaultDataset("a@example.com", "pw"), WithLinkConcurrency(1))

	_, err := s.MaterializeCategories(ctx)
	require.NoError(t, err)
	_, _, err = s.MaterializeProjects(ctx)
	require.NoError(t, err)

	linked, found, err := s.LinkProjects(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 6, linked)
	assert.Equal(t, 1, s.linkConcurrency)

	ignored := New(db, DefaultDataset("a@example.com", "pw"), WithLinkConcurrency(0))
	assert.Equal(t, defaultLinkConcurrency, ignored.linkConcurrency)
	assert.Equal(t, config.DefaultHashCost, ignored.hashCost)
}
