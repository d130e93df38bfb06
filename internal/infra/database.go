package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/geraLv/sistema-gestion/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// to create / update all tables.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}

// RunMigrations creates or updates the schema. Idempotent.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Localidad{},
		&model.Producto{},
		&model.Vendedor{},
		&model.Cliente{},
		&model.Solicitud{},
		&model.Cuota{},
		&model.Adelanto{},
		&model.Comprobante{},
		&model.Usuario{},
		&model.AuditLog{},
	)
}
