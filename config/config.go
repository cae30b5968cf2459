package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/rpupo63/portfolio-seeder/errs"
)

const (
	DefaultAdminEmail    = "admin@aria-creative.com"
	DefaultAdminPassword = "admin123"
	DefaultHashCost      = 12
)

func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

// GetString treats an empty value the same as a missing one.
func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok && val != "" {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}

func GetBool(config map[string]string, key string) bool {
	return strings.EqualFold(GetString(config, key, ""), "true")
}

// Seed holds everything the seeding run reads from the environment.
type Seed struct {
	AdminEmail    string
	AdminPassword string
	HashCost      int
	LogLevel      string
}

func LoadSeed(c map[string]string) (Seed, error) {
	s := Seed{
		AdminEmail:    GetString(c, "ADMIN_EMAIL", DefaultAdminEmail),
		AdminPassword: GetString(c, "ADMIN_PASSWORD", DefaultAdminPassword),
		HashCost:      DefaultHashCost,
		LogLevel:      GetString(c, "LOG_LEVEL", "info"),
	}
	if raw := GetString(c, "BCRYPT_COST", ""); raw != "" {
		cost, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return Seed{}, errs.NewConfigError("BCRYPT_COST", fmt.Sprintf("%q is not a number", raw))
		}
		s.HashCost = cost
	}
	if s.HashCost < bcrypt.MinCost || s.HashCost > bcrypt.MaxCost {
		return Seed{}, errs.NewConfigError("BCRYPT_COST",
			fmt.Sprintf("%d is outside [%d, %d]", s.HashCost, bcrypt.MinCost, bcrypt.MaxCost))
	}
	return s, nil
}

// DatabaseDSN builds the postgres connection string for DB_TYPE.
// An unset DB_TYPE means postgres when DATABASE_URL is present.
func DatabaseDSN(c map[string]string) (string, error) {
	dbType := GetString(c, "DB_TYPE", "")
	if dbType == "" && GetString(c, "DATABASE_URL", "") != "" {
		dbType = "postgres"
	}
	switch dbType {
	case "supa":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
			GetString(c, "SUPABASE_DB_HOST", ""),
			GetString(c, "SUPABASE_DB_USER", ""),
			GetString(c, "SUPABASE_DB_PASSWORD", ""),
			GetString(c, "SUPABASE_DB_NAME", ""),
			GetString(c, "SUPABASE_DB_PORT", "5432"),
		), nil
	case "postgres":
		dsn := GetString(c, "DATABASE_URL", "")
		if dsn == "" {
			return "", errs.NewConfigError("DATABASE_URL", "required when DB_TYPE=postgres")
		}
		return dsn, nil
	default:
		return "", errs.NewConfigError("DB_TYPE", fmt.Sprintf("unsupported value %q", dbType))
	}
}
