package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-seeder/config"
	"github.com/rpupo63/portfolio-seeder/database"
	"github.com/rpupo63/portfolio-seeder/errs"
	"github.com/rpupo63/portfolio-seeder/models"
	"github.com/rpupo63/portfolio-seeder/seed"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, config.New())
	stop()

	if err != nil {
		var seedErr *errs.SeedErr
		if errors.As(err, &seedErr) {
			log.Error().Str("step", seedErr.Step).Str("kind", seedErr.Kind.String()).Msg(seedErr.GetFullError())
		} else {
			log.Error().Err(err).Msg("seeding failed")
		}
	}
	os.Exit(errs.ExitCode(err))
}

// run owns the database handle so it is always released before main exits.
func run(ctx context.Context, c map[string]string) error {
	seedCfg, err := config.LoadSeed(c)
	if err != nil {
		return err
	}
	if level, err := zerolog.ParseLevel(seedCfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	dsn, err := config.DatabaseDSN(c)
	if err != nil {
		return err
	}

	log.Info().Str("dbType", config.GetString(c, "DB_TYPE", "")).Msg("connecting to database")
	db, err := database.Open(dsn)
	if err != nil {
		return errs.NewDatabaseError("connect", "open", "database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn().Err(err).Msg("error closing database")
		}
	}()

	switch {
	case config.GetBool(c, "GENERATE_MODELS"):
		log.Info().Msg("generating models and query helpers")
		return models.GenerateModels(db.GetDB())
	case config.GetBool(c, "GENERATE_COLUMN_REPORT"):
		return models.PrintColumnMismatchReport(os.Stdout, db.GetDB())
	case config.GetBool(c, "MIGRATE"):
		log.Info().Msg("migrating models")
		if err := models.Migrate(db.GetDB()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	seeder := seed.New(db,
		seed.DefaultDataset(seedCfg.AdminEmail, seedCfg.AdminPassword),
		seed.WithHashCost(seedCfg.HashCost),
		seed.WithLogger(log.With().Str("component", "seeder").Logger()),
	)
	_, err = seeder.Run(ctx)
	return err
}
