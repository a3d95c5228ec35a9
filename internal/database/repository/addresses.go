package repository

import (
	"context"
	"database/sql"
)

// AddressRepo reads the address catalog.
type AddressRepo struct {
	db *sql.DB
}

func NewAddressRepo(db *sql.DB) *AddressRepo { return &AddressRepo{db: db} }

// List returns the whole catalog ordered by road address.
func (r *AddressRepo) List(ctx context.Context) ([]Address, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, road_address, requires_unit FROM addresses ORDER BY road_address`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Address
	for rows.Next() {
		var a Address
		var requires int
		if err := rows.Scan(&a.ID, &a.RoadAddress, &requires); err != nil {
			return nil, err
		}
		a.RequiresUnit = requires != 0
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetByRoad returns the catalog entry for road, or nil when absent.
func (r *AddressRepo) GetByRoad(ctx context.Context, road string) (*Address, error) {
	var a Address
	var requires int
	err := r.db.QueryRowContext(ctx, `
	SELECT id, road_address, requires_unit FROM addresses WHERE road_address = ?`, road).
		Scan(&a.ID, &a.RoadAddress, &requires)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	a.RequiresUnit = requires != 0
	return &a, nil
}
