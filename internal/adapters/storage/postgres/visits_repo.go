package postgres

import (
	"context"
	"database/sql"

	"petclinic/internal/domain/owners"
)

type VisitsRepo struct {
	db *sql.DB
}

func NewVisitsRepo(db *sql.DB) *VisitsRepo {
	return &VisitsRepo{db: db}
}

func (r *VisitsRepo) FindByPetID(ctx context.Context, petID int) ([]owners.Visit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, visit_date, description
		FROM visits
		WHERE pet_id = $1
		ORDER BY visit_date ASC, id ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]owners.Visit, 0)
	for rows.Next() {
		var v owners.Visit
		if err := rows.Scan(&v.ID, &v.PetID, &v.Date, &v.Description); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VisitsRepo) Save(ctx context.Context, v owners.Visit) (owners.Visit, error) {
	if v.IsNew() {
		err := r.db.QueryRowContext(ctx, `
			INSERT INTO visits (pet_id, visit_date, description)
			VALUES ($1,$2,$3)
			RETURNING id
		`, v.PetID, v.Date, v.Description).Scan(&v.ID)
		if err != nil {
			return owners.Visit{}, err
		}
		return v, nil
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE visits
		SET
			pet_id = $2,
			visit_date = $3,
			description = $4
		WHERE id = $1
	`, v.ID, v.PetID, v.Date, v.Description)
	if err != nil {
		return owners.Visit{}, err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return owners.Visit{}, owners.ErrNotFound
	}
	return v, nil
}
