package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adopta-gatos/internal/domain"
)

// CatRepository define el contrato de persistencia para gatos.
type CatRepository interface {
	GetAll(ctx context.Context) ([]domain.Cat, error)
	GetByID(ctx context.Context, id string) (domain.Cat, error)
	Create(ctx context.Context, cat domain.Cat) error
	Update(ctx context.Context, cat domain.Cat) error
	Delete(ctx context.Context, id string) error
}

// PgCatRepository implementa CatRepository usando pgxpool.
type PgCatRepository struct {
	pool *pgxpool.Pool
}

func NewPgCatRepository(pool *pgxpool.Pool) *PgCatRepository {
	return &PgCatRepository{pool: pool}
}

func (r *PgCatRepository) GetAll(ctx context.Context) ([]domain.Cat, error) {
	const query = `
		SELECT id, name, breed, age_months, sex, description, photo_url, adopted, created_at, updated_at
		FROM cats
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cats := make([]domain.Cat, 0)
	for rows.Next() {
		var c domain.Cat
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Breed,
			&c.AgeMonths,
			&c.Sex,
			&c.Description,
			&c.PhotoURL,
			&c.Adopted,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (r *PgCatRepository) GetByID(ctx context.Context, id string) (domain.Cat, error) {
	const query = `
		SELECT id, name, breed, age_months, sex, description, photo_url, adopted, created_at, updated_at
		FROM cats
		WHERE id = $1
	`
	var c domain.Cat
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.Breed,
		&c.AgeMonths,
		&c.Sex,
		&c.Description,
		&c.PhotoURL,
		&c.Adopted,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Cat{}, domain.ErrNotFound
	}
	return c, err
}

func (r *PgCatRepository) Create(ctx context.Context, cat domain.Cat) error {
	const query = `
		INSERT INTO cats (id, name, breed, age_months, sex, description, photo_url, adopted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		cat.ID,
		cat.Name,
		cat.Breed,
		cat.AgeMonths,
		cat.Sex,
		cat.Description,
		cat.PhotoURL,
		cat.Adopted,
		cat.CreatedAt,
		cat.UpdatedAt,
	)
	return err
}

func (r *PgCatRepository) Update(ctx context.Context, cat domain.Cat) error {
	const query = `
		UPDATE cats
		SET name = $2, breed = $3, age_months = $4, sex = $5, description = $6, photo_url = $7, adopted = $8, updated_at = $9
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		cat.ID,
		cat.Name,
		cat.Breed,
		cat.AgeMonths,
		cat.Sex,
		cat.Description,
		cat.PhotoURL,
		cat.Adopted,
		cat.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PgCatRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM cats WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
