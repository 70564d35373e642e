package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"geo-round-service/internal/domain"
)

// Postgres-backed implementation of the RegionSource port, for deployments
// that manage the region catalog in a database instead of the embedded
// file.
type PgRegionRepository struct{ DB *sql.DB }

func NewPgRegionRepository(db *sql.DB) *PgRegionRepository {
	return &PgRegionRepository{DB: db}
}

// ListRegions returns the full catalog stored in the regions table.
func (s *PgRegionRepository) ListRegions(ctx context.Context) ([]domain.Region, error) {
	if s.DB == nil {
		return nil, errors.New("pg region repository: DB is nil")
	}

	query := `
	SELECT
		name,
		country,
		continent,
		region_type,
		lat,
		lng,
		radius_km
	FROM regions
	ORDER BY continent, name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list regions: query regions table: %w", err)
	}
	defer rows.Close()

	regs := make([]domain.Region, 0, 64)
	for rows.Next() {
		var r domain.Region
		err := rows.Scan(&r.Name, &r.Country, &r.Continent, &r.Type, &r.Center.Lat, &r.Center.Lng, &r.RadiusKm)
		if err != nil {
			return nil, fmt.Errorf("list regions: scan row: %w", err)
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("list regions: stored region: %w", err)
		}
		regs = append(regs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list regions: row iteration: %w", err)
	}

	return regs, nil
}
