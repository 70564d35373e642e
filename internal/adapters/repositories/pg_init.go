package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"geo-round-service/internal/domain"
)

// InitSchema creates the regions table if it does not exist.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	query := `
	CREATE TABLE IF NOT EXISTS regions (
		name TEXT PRIMARY KEY,
		country TEXT NOT NULL,
		continent TEXT NOT NULL,
		region_type TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lng DOUBLE PRECISION NOT NULL,
		radius_km DOUBLE PRECISION NOT NULL
	);
	`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("init schema: create regions table: %w", err)
	}

	return nil
}

// SeedFromCatalog upserts the given catalog into the regions table, so a
// fresh database starts from the embedded regions file.
func SeedFromCatalog(ctx context.Context, db *sql.DB, catalog []domain.Region) error {
	if db == nil {
		return errors.New("seed regions: DB is nil")
	}
	if len(catalog) == 0 {
		return errors.New("seed regions: catalog is empty")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed regions: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO regions (name, country, continent, region_type, lat, lng, radius_km)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (name) DO UPDATE
	SET country = EXCLUDED.country,
		continent = EXCLUDED.continent,
		region_type = EXCLUDED.region_type,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		radius_km = EXCLUDED.radius_km;
	`)
	if err != nil {
		return fmt.Errorf("seed regions: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range catalog {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("seed regions: entry %d: %w", i, err)
		}
		if _, err := stmt.ExecContext(ctx, r.Name, r.Country, r.Continent, r.Type, r.Center.Lat, r.Center.Lng, r.RadiusKm); err != nil {
			return fmt.Errorf("seed regions: insert %q: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed regions: commit tx: %w", err)
	}

	return nil
}
