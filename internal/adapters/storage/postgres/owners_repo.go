package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"petclinic/internal/domain/owners"
	"petclinic/internal/platform/paging"
)

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *OwnersRepo) FindByLastName(ctx context.Context, lastName string, page paging.Request) (paging.Page[owners.Owner], error) {
	page = paging.NewRequest(page.Number, page.Size)
	pattern := likeEscaper.Replace(strings.TrimSpace(lastName)) + "%"

	out := paging.Page[owners.Owner]{
		Items:  make([]owners.Owner, 0),
		Number: page.Number,
		Size:   page.Size,
	}

	if err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM owners WHERE last_name ILIKE $1
	`, pattern).Scan(&out.TotalItems); err != nil {
		return paging.Page[owners.Owner]{}, err
	}
	if out.TotalItems == 0 {
		return out, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, address, city, telephone
		FROM owners
		WHERE last_name ILIKE $1
		ORDER BY id ASC
		LIMIT $2 OFFSET $3
	`, pattern, page.Size, page.Offset())
	if err != nil {
		return paging.Page[owners.Owner]{}, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var o owners.Owner
		if err := rows.Scan(&o.ID, &o.FirstName, &o.LastName, &o.Address, &o.City, &o.Telephone); err != nil {
			return paging.Page[owners.Owner]{}, err
		}
		out.Items = append(out.Items, o)
		ids = append(ids, int64(o.ID))
	}
	if err := rows.Err(); err != nil {
		return paging.Page[owners.Owner]{}, err
	}

	byOwner, err := petsByOwner(ctx, r.db, ids)
	if err != nil {
		return paging.Page[owners.Owner]{}, err
	}
	for i := range out.Items {
		out.Items[i].Pets = byOwner[out.Items[i].ID]
		if out.Items[i].Pets == nil {
			out.Items[i].Pets = []owners.Pet{}
		}
	}

	return out, nil
}

func (r *OwnersRepo) FindByID(ctx context.Context, id int) (owners.Owner, error) {
	var o owners.Owner
	err := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, address, city, telephone
		FROM owners
		WHERE id = $1
	`, id).Scan(&o.ID, &o.FirstName, &o.LastName, &o.Address, &o.City, &o.Telephone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return owners.Owner{}, owners.ErrNotFound
		}
		return owners.Owner{}, err
	}

	byOwner, err := petsByOwner(ctx, r.db, []int64{int64(id)})
	if err != nil {
		return owners.Owner{}, err
	}
	o.Pets = byOwner[id]
	if o.Pets == nil {
		o.Pets = []owners.Pet{}
	}
	return o, nil
}

func (r *OwnersRepo) Save(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	if o.IsNew() {
		err := r.db.QueryRowContext(ctx, `
			INSERT INTO owners (first_name, last_name, address, city, telephone)
			VALUES ($1,$2,$3,$4,$5)
			RETURNING id
		`, o.FirstName, o.LastName, o.Address, o.City, o.Telephone).Scan(&o.ID)
		if err != nil {
			return owners.Owner{}, err
		}
		return r.FindByID(ctx, o.ID)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE owners
		SET
			first_name = $2,
			last_name = $3,
			address = $4,
			city = $5,
			telephone = $6
		WHERE id = $1
	`, o.ID, o.FirstName, o.LastName, o.Address, o.City, o.Telephone)
	if err != nil {
		return owners.Owner{}, err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return owners.Owner{}, owners.ErrNotFound
	}
	return r.FindByID(ctx, o.ID)
}
