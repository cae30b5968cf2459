package seed

import (
	"slices"
	"time"

	"gorm.io/datatypes"

	"github.com/rpupo63/portfolio-seeder/models"
)

const (
	DefaultAdminName    = "Administrateur"
	DefaultLinkCategory = "Site Web"
)

type Admin struct {
	Email    string
	Password string
	Name     string
	Role     models.Role
}

// ProjectSeed is one literal portfolio entry before slug derivation.
type ProjectSeed struct {
	Title        string
	Description  string
	Technologies []string
	Client       string
	Duration     string
	Status       models.ProjectStatus
	ImageURL     *string
	Date         time.Time
	URL          *string
}

// Dataset is everything one seeding run writes. Every project found after the
// project step gets linked to LinkCategory.
type Dataset struct {
	Admin        Admin
	Categories   []string
	Projects     []ProjectSeed
	LinkCategory string
}

func strPtr(s string) *string {
	return &s
}

// DefaultDataset returns a fresh copy of the demonstration catalog.
func DefaultDataset(email, password string) Dataset {
	return Dataset{
		Admin: Admin{
			Email:    email,
			Password: password,
			Name:     DefaultAdminName,
			Role:     models.RoleAdmin,
		},
		Categories:   []string{"Site Web", "Application", "E-commerce", "Mobile"},
		LinkCategory: DefaultLinkCategory,
		Projects: []ProjectSeed{
			{
				Title:        "CGEPRO",
				Description:  "Votre spécialiste du bois exotique et des aménagements extérieurs sur La Réunion",
				Technologies: []string{"WordPress", "PHP", "MySQL", "SEO"},
				Client:       "CGEPRO",
				Duration:     "2 mois",
				Status:       models.ProjectStatusCompleted,
				ImageURL:     strPtr("/uploads/projects/cgepro.jpg"),
				Date:         time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
				URL:          strPtr("https://cgepro.com"),
			},
			{
				Title:        "ERIC RABY",
				Description:  "Coaching en compétences sociales et émotionnelles",
				Technologies: []string{"React", "Node.js", "Stripe", "Calendar API"},
				Client:       "Eric Raby Coaching",
				Duration:     "3 mois",
				Status:       models.ProjectStatusCompleted,
				ImageURL:     strPtr("/uploads/projects/eric.jpg"),
				Date:         time.Date(2024, time.April, 22, 0, 0, 0, 0, time.UTC),
				URL:          strPtr("https://eric-raby.com"),
			},
			{
				Title:        "CONNECT TALENT",
				Description:  "Plateforme de mise en relation entre entreprises et talents africains",
				Technologies: []string{"Vue.js", "Laravel", "PostgreSQL", "Socket.io"},
				Client:       "Connect Talent Inc",
				Duration:     "5 mois",
				Status:       models.ProjectStatusCompleted,
				ImageURL:     strPtr("/uploads/projects/connect.png"),
				Date:         mustParseDate("10/05/2024"),
				URL:          strPtr("https://connecttalent.cc"),
			},
			{
				Title:        "SOA DIA TRAVEL",
				Description:  "Transport & Logistique à Madagascar",
				Technologies: []string{"Angular", "Express.js", "MongoDB", "Maps API"},
				Client:       "SOA DIA TRAVEL",
				Duration:     "4 mois",
				Status:       models.ProjectStatusCompleted,
				ImageURL:     strPtr("/uploads/projects/soa.jpg"),
				Date:         mustParseDate("28/06/2024"),
				URL:          strPtr("https://soatransplus.mg"),
			},
			{
				Title:        "Site E-commerce Fashion",
				Description:  "Développement d'une plateforme e-commerce complète avec système de paiement intégré",
				Technologies: []string{"React", "Node.js", "MongoDB", "Stripe"},
				Client:       "Fashion Boutique",
				Duration:     "3 mois",
				Status:       models.ProjectStatusCompleted,
				Date:         mustParseDate("15/06/2024"),
				URL:          strPtr("https://fashion-boutique.com"),
			},
			{
				Title:        "Application Mobile Banking",
				Description:  "Application mobile sécurisée pour la gestion bancaire avec authentification biométrique",
				Technologies: []string{"React Native", "Firebase", "Redux"},
				Client:       "BankTech Solutions",
				Duration:     "6 mois",
				Status:       models.ProjectStatusInProgress,
				Date:         mustParseDate("01/07/2024"),
			},
		},
	}
}

// Model maps the seed entry to a storable project.
func (p ProjectSeed) Model() *models.Project {
	return &models.Project{
		Title:        p.Title,
		Slug:         Slugify(p.Title),
		Description:  p.Description,
		Technologies: slices.Clone(p.Technologies),
		Client:       p.Client,
		Duration:     p.Duration,
		Status:       p.Status,
		ImageURL:     p.ImageURL,
		Date:         datatypes.Date(p.Date),
		URL:          p.URL,
	}
}
