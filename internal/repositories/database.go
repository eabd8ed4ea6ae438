package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/XSAM/otelsql"
	"github.com/inventoryapp/inventory-api/internal/config"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	_ "github.com/lib/pq"
)

type Repository struct {
	DB        *sql.DB
	Product   ProductRepository
	Inventory InventoryRepository
}

func New(cfg *config.Config) (*Repository, error) {
	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := waitForDatabase(db, cfg.Database.ConnectAttempts, cfg.Database.ConnectBackoff); err != nil {
		return nil, err
	}

	return &Repository{
		DB:        db,
		Product:   NewProductRepo(db),
		Inventory: NewInventoryRepo(db),
	}, nil
}

// waitForDatabase pings with a fixed backoff so the process can outlive a
// store that is still coming up, then fails for good.
func waitForDatabase(db *sql.DB, attempts int, backoff time.Duration) error {
	var err error

	for attempt := 1; attempt <= attempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = db.PingContext(ctx)
		cancel()

		if err == nil {
			return nil
		}

		if attempt < attempts {
			slog.Warn("database not reachable yet, retrying",
				slog.Int("attempt", attempt),
				slog.Duration("backoff", backoff),
				slog.String("error", err.Error()))
			time.Sleep(backoff)
		}
	}

	return fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
}

func (r *Repository) Close() error {
	return r.DB.Close()
}
