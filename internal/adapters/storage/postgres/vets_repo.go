package postgres

import (
	"context"
	"database/sql"

	"petclinic/internal/domain/vets"
	"petclinic/internal/platform/paging"
)

type VetsRepo struct {
	db *sql.DB
}

func NewVetsRepo(db *sql.DB) *VetsRepo {
	return &VetsRepo{db: db}
}

func (r *VetsRepo) FindAll(ctx context.Context) ([]vets.Vet, error) {
	return r.query(ctx, `
		SELECT id, first_name, last_name FROM vets ORDER BY id ASC
	`)
}

func (r *VetsRepo) FindPage(ctx context.Context, page paging.Request) (paging.Page[vets.Vet], error) {
	page = paging.NewRequest(page.Number, page.Size)

	out := paging.Page[vets.Vet]{
		Number: page.Number,
		Size:   page.Size,
	}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vets`).Scan(&out.TotalItems); err != nil {
		return paging.Page[vets.Vet]{}, err
	}

	items, err := r.query(ctx, `
		SELECT id, first_name, last_name FROM vets ORDER BY id ASC LIMIT $1 OFFSET $2
	`, page.Size, page.Offset())
	if err != nil {
		return paging.Page[vets.Vet]{}, err
	}
	out.Items = items
	return out, nil
}

func (r *VetsRepo) query(ctx context.Context, q string, args ...any) ([]vets.Vet, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vets.Vet, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		v := vets.Vet{Specialties: []vets.Specialty{}}
		if err := rows.Scan(&v.ID, &v.FirstName, &v.LastName); err != nil {
			return nil, err
		}
		out = append(out, v)
		ids = append(ids, int64(v.ID))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return out, nil
	}

	specs, err := r.specialtiesByVet(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		if s, ok := specs[out[i].ID]; ok {
			out[i].Specialties = s
		}
	}
	return out, nil
}

func (r *VetsRepo) specialtiesByVet(ctx context.Context, vetIDs []int64) (map[int][]vets.Specialty, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT vs.vet_id, s.id, s.name
		FROM vet_specialties vs
		JOIN specialties s ON s.id = vs.specialty_id
		WHERE vs.vet_id = ANY($1)
		ORDER BY s.name ASC
	`, vetIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int][]vets.Specialty)
	for rows.Next() {
		var vetID int
		var s vets.Specialty
		if err := rows.Scan(&vetID, &s.ID, &s.Name); err != nil {
			return nil, err
		}
		out[vetID] = append(out[vetID], s)
	}
	return out, rows.Err()
}
