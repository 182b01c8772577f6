package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Options are the connection parameters for Postgres.
type Options struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
}

// Connect opens the Postgres connection. TranslateError is enabled so that
// unique-constraint violations surface as gorm.ErrDuplicatedKey instead of a
// raw driver error; the services map that to a Conflict.
func Connect(opts Options) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		opts.Host, opts.User, opts.Password, opts.Name, opts.Port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	zap.L().Info("database connected", zap.String("host", opts.Host), zap.String("dbname", opts.Name))
	return db, nil
}
