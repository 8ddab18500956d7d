// Package store persists products in a single embedded table.
//
// Every operation opens the database, runs its statements and closes it
// again; no connection is held between calls.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pankajredekar/prodcat/internal/config"
	"github.com/pankajredekar/prodcat/internal/errs"
	"github.com/pankajredekar/prodcat/internal/product"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

const createTableSQL = `
	CREATE TABLE IF NOT EXISTS products (
		code TEXT PRIMARY KEY,
		name TEXT,
		format TEXT
	)
`

// Result is the outcome of a write that may legitimately do nothing.
type Result int

const (
	Ok Result = iota
	AlreadyExists
	NotFound
)

func (r Result) String() string {
	switch r {
	case Ok:
		return "ok"
	case AlreadyExists:
		return "already_exists"
	case NotFound:
		return "not_found"
	default:
		return fmt.Sprintf("result(%d)", int(r))
	}
}

// Store is the catalog table behind a database URL.
type Store struct {
	databaseURL string
	log         zerolog.Logger
}

// New creates a store for the database configured in cfg.
func New(cfg *config.Config, logger zerolog.Logger) *Store {
	return &Store{
		databaseURL: cfg.DatabaseURL,
		log:         logger.With().Str("component", "store").Logger(),
	}
}

// connectDB connects to the database based on the URL
func connectDB(databaseURL string) (*gorm.DB, error) {
	gcfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return gorm.Open(postgres.Open(databaseURL), gcfg)
	case strings.HasPrefix(databaseURL, "sqlite://"):
		return gorm.Open(sqlite.Open(strings.TrimPrefix(databaseURL, "sqlite://")), gcfg)
	}
	return nil, fmt.Errorf("unsupported database URL: %s", databaseURL)
}

// withDB opens the database, runs fn and closes the connection.
func (s *Store) withDB(fn func(db *gorm.DB) error) error {
	db, err := connectDB(s.databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access database handle: %w", err)
	}
	defer sqlDB.Close()

	return fn(db)
}

// Init creates the products table if it does not exist yet.
func (s *Store) Init() error {
	if path, ok := strings.CutPrefix(s.databaseURL, "sqlite://"); ok {
		if path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	return s.withDB(func(db *gorm.DB) error {
		if err := db.Exec(createTableSQL).Error; err != nil {
			return fmt.Errorf("failed to create products table: %w", err)
		}
		return nil
	})
}

// Insert adds p unless a product with the same code exists, in which case
// the stored product is left untouched and AlreadyExists is returned.
func (s *Store) Insert(p product.Product) (Result, error) {
	res := Ok
	err := s.withDB(func(db *gorm.DB) error {
		tx := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&p)
		if tx.Error != nil {
			return fmt.Errorf("failed to insert product: %w", tx.Error)
		}
		if tx.RowsAffected == 0 {
			res = AlreadyExists
		}
		return nil
	})
	if err != nil {
		return Ok, err
	}
	s.log.Debug().Str("code", p.Code).Stringer("result", res).Msg("insert")
	return res, nil
}

// Update sets name and format of the product with p.Code.
func (s *Store) Update(p product.Product) (Result, error) {
	res := Ok
	err := s.withDB(func(db *gorm.DB) error {
		tx := db.Model(&product.Product{}).
			Where("code = ?", p.Code).
			Updates(map[string]any{"name": p.Name, "format": p.Format})
		if tx.Error != nil {
			return fmt.Errorf("failed to update product: %w", tx.Error)
		}
		if tx.RowsAffected == 0 {
			res = NotFound
		}
		return nil
	})
	if err != nil {
		return Ok, err
	}
	s.log.Debug().Str("code", p.Code).Stringer("result", res).Msg("update")
	return res, nil
}

// Delete removes the product with code.
func (s *Store) Delete(code string) (Result, error) {
	res := Ok
	err := s.withDB(func(db *gorm.DB) error {
		tx := db.Where("code = ?", code).Delete(&product.Product{})
		if tx.Error != nil {
			return fmt.Errorf("failed to delete product: %w", tx.Error)
		}
		if tx.RowsAffected == 0 {
			res = NotFound
		}
		return nil
	})
	if err != nil {
		return Ok, err
	}
	s.log.Debug().Str("code", code).Stringer("result", res).Msg("delete")
	return res, nil
}

// Get returns the product with code, or an error matching errs.ErrNotFound.
// Surrounding whitespace in code is ignored, as on writes.
func (s *Store) Get(code string) (*product.Product, error) {
	code = strings.TrimSpace(code)
	var p product.Product
	err := s.withDB(func(db *gorm.DB) error {
		if err := db.Where("code = ?", code).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product %s: %w", code, errs.ErrNotFound)
			}
			return fmt.Errorf("failed to get product: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns every product ordered by name.
func (s *Store) List() ([]product.Product, error) {
	var products []product.Product
	err := s.withDB(func(db *gorm.DB) error {
		if err := db.Order("name ASC").Find(&products).Error; err != nil {
			return fmt.Errorf("failed to list products: %w", err)
		}
		return nil
	})
	return products, err
}

// Products returns every product in storage order.
func (s *Store) Products() ([]product.Product, error) {
	var products []product.Product
	err := s.withDB(func(db *gorm.DB) error {
		if err := db.Find(&products).Error; err != nil {
			return fmt.Errorf("failed to query products: %w", err)
		}
		return nil
	})
	return products, err
}

// Count returns the number of stored products.
func (s *Store) Count() (int64, error) {
	var count int64
	err := s.withDB(func(db *gorm.DB) error {
		if err := db.Model(&product.Product{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count products: %w", err)
		}
		return nil
	})
	return count, err
}
