package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	db                  *gorm.DB
	userRepo            *UserRepo
	categoryRepo        *CategoryRepo
	projectRepo         *ProjectRepo
	projectCategoryRepo *ProjectCategoryRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:                  db,
		userRepo:            NewUserRepo(db),
		categoryRepo:        NewCategoryRepo(db),
		projectRepo:         NewProjectRepo(db),
		projectCategoryRepo: NewProjectCategoryRepo(db),
	}
}

// Open connects to postgres and verifies the connection with a round trip.
func Open(dsn string) (Database, error) {
	sqlLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      sqlLogger,
	})
	if err != nil {
		return Database{}, fmt.Errorf("connect to database: %w", err)
	}

	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		d := New(db)
		d.Close()
		return Database{}, fmt.Errorf("test database connection: %w", err)
	}

	return New(db), nil
}

// GetDB returns the underlying database connection
func (d Database) GetDB() *gorm.DB {
	return d.db
}

// Close releases the connection pool. Safe to call on a zero Database.
func (d Database) Close() error {
	if d.db == nil {
		return nil
	}
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ProjectCategoryRepo() *ProjectCategoryRepo {
	return d.projectCategoryRepo
}
