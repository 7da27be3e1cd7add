package postgres

import (
	"context"
	"database/sql"
	"errors"

	"petclinic/internal/domain/owners"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `
	p.id, p.owner_id, p.name, p.birth_date,
	t.id, t.name
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(s rowScanner) (owners.Pet, error) {
	var p owners.Pet
	var bd sql.NullTime
	if err := s.Scan(&p.ID, &p.OwnerID, &p.Name, &bd, &p.Type.ID, &p.Type.Name); err != nil {
		return owners.Pet{}, err
	}
	p.BirthDate = fromNullDate(bd)
	return p, nil
}

func (r *PetsRepo) FindPetTypes(ctx context.Context) ([]owners.PetType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM types ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]owners.PetType, 0)
	for rows.Next() {
		var t owners.PetType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PetsRepo) FindByID(ctx context.Context, id int) (owners.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+petColumns+`
		FROM pets p
		JOIN types t ON t.id = p.type_id
		WHERE p.id = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return owners.Pet{}, owners.ErrNotFound
		}
		return owners.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) Save(ctx context.Context, p owners.Pet) (owners.Pet, error) {
	if p.IsNew() {
		err := r.db.QueryRowContext(ctx, `
			INSERT INTO pets (name, birth_date, type_id, owner_id)
			VALUES ($1,$2,$3,$4)
			RETURNING id
		`, p.Name, toNullDate(p.BirthDate), p.Type.ID, p.OwnerID).Scan(&p.ID)
		if err != nil {
			return owners.Pet{}, err
		}
		return r.FindByID(ctx, p.ID)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			birth_date = $3,
			type_id = $4,
			owner_id = $5
		WHERE id = $1
	`, p.ID, p.Name, toNullDate(p.BirthDate), p.Type.ID, p.OwnerID)
	if err != nil {
		return owners.Pet{}, err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return owners.Pet{}, owners.ErrNotFound
	}
	return r.FindByID(ctx, p.ID)
}

// petsByOwner carga las mascotas (con tipo) de varios owners en una sola query.
func petsByOwner(ctx context.Context, db *sql.DB, ownerIDs []int64) (map[int][]owners.Pet, error) {
	out := make(map[int][]owners.Pet, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return out, nil
	}

	rows, err := db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pets p
		JOIN types t ON t.id = p.type_id
		WHERE p.owner_id = ANY($1)
	`, ownerIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out[p.OwnerID] = append(out[p.OwnerID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for id := range out {
		owners.SortPets(out[id])
	}
	return out, nil
}
