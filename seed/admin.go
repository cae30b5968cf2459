package seed

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/rpupo63/portfolio-seeder/errs"
	"github.com/rpupo63/portfolio-seeder/models"
)

// ProvisionAdmin creates the admin account, or resets its password, name and
// role when an account with the same email already exists.
func (s *Seeder) ProvisionAdmin(ctx context.Context) (*models.User, error) {
	admin := s.dataset.Admin
	if admin.Email == "" {
		return nil, errs.NewConfigError("ADMIN_EMAIL", "must not be empty")
	}

	s.logger.Info().Str("step", StepAdmin).Str("email", admin.Email).Msg("provisioning admin user")

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), s.hashCost)
	if err != nil {
		return nil, errs.NewHashingError(StepAdmin, err)
	}

	user, err := s.db.UserRepo().Upsert(ctx, &models.User{
		Email:    admin.Email,
		Password: string(hash),
		Name:     admin.Name,
		Role:     admin.Role,
	})
	if err != nil {
		return nil, errs.NewDatabaseError(StepAdmin, "upsert", "user", err)
	}

	s.logger.Info().
		Str("step", StepAdmin).
		Str("email", user.Email).
		Str("id", user.ID.String()).
		Msg("admin user created or updated")
	return user, nil
}
