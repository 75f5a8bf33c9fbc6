package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/entity"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación de LocationRepository (regiones y comunas).
type LocationRepo struct {
	q Querier
}

func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

func (r *LocationRepo) CreateRegion(region *entity.Region) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO regions (id, name) VALUES ($1, $2)`,
		region.ID, region.Name)
	if err != nil {
		return fmt.Errorf("insert region: %w", err)
	}
	return nil
}

func (r *LocationRepo) CreateCommune(commune *entity.Commune) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO communes (id, name, region_id) VALUES ($1, $2, $3)`,
		commune.ID, commune.Name, commune.RegionID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: región inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert commune: %w", err)
	}
	return nil
}

func (r *LocationRepo) GetCommune(id string) (*entity.Commune, error) {
	var c entity.Commune
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, region_id FROM communes WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.RegionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get commune: %w", err)
	}
	return &c, nil
}

func (r *LocationRepo) ListRegions() ([]*entity.Region, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name FROM regions ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Region
	for rows.Next() {
		var reg entity.Region
		if err := rows.Scan(&reg.ID, &reg.Name); err != nil {
			return nil, fmt.Errorf("scan region: %w", err)
		}
		list = append(list, &reg)
	}
	return list, rows.Err()
}

func (r *LocationRepo) ListCommunes(regionID string) ([]*entity.Commune, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, region_id FROM communes
		 WHERE ($1 = '' OR region_id::text = $1)
		 ORDER BY name`, regionID)
	if err != nil {
		return nil, fmt.Errorf("list communes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Commune
	for rows.Next() {
		var c entity.Commune
		if err := rows.Scan(&c.ID, &c.Name, &c.RegionID); err != nil {
			return nil, fmt.Errorf("scan commune: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
