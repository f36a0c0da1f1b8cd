package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adopta-gatos/internal/domain"
)

// AdoptionRequestRepository define el contrato de persistencia para solicitudes.
type AdoptionRequestRepository interface {
	GetAll(ctx context.Context) ([]domain.AdoptionRequest, error)
	GetByID(ctx context.Context, id string) (domain.AdoptionRequest, error)
	Create(ctx context.Context, req domain.AdoptionRequest) error
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

// PgAdoptionRequestRepository implementa AdoptionRequestRepository usando pgxpool.
type PgAdoptionRequestRepository struct {
	pool *pgxpool.Pool
}

func NewPgAdoptionRequestRepository(pool *pgxpool.Pool) *PgAdoptionRequestRepository {
	return &PgAdoptionRequestRepository{pool: pool}
}

func (r *PgAdoptionRequestRepository) GetAll(ctx context.Context) ([]domain.AdoptionRequest, error) {
	const query = `
		SELECT id, cat_id, applicant_name, applicant_email, applicant_phone, applicant_address,
		       message, status, created_at, updated_at
		FROM adoption_requests
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reqs := make([]domain.AdoptionRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

func (r *PgAdoptionRequestRepository) GetByID(ctx context.Context, id string) (domain.AdoptionRequest, error) {
	const query = `
		SELECT id, cat_id, applicant_name, applicant_email, applicant_phone, applicant_address,
		       message, status, created_at, updated_at
		FROM adoption_requests
		WHERE id = $1
	`
	req, err := scanRequest(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.AdoptionRequest{}, domain.ErrNotFound
	}
	return req, err
}

func (r *PgAdoptionRequestRepository) Create(ctx context.Context, req domain.AdoptionRequest) error {
	const query = `
		INSERT INTO adoption_requests
			(id, cat_id, applicant_name, applicant_email, applicant_phone, applicant_address,
			 message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		req.ID,
		req.CatID,
		req.Applicant.Name,
		req.Applicant.Email,
		req.Applicant.Phone,
		req.Applicant.Address,
		req.Message,
		req.Status,
		req.CreatedAt,
		req.UpdatedAt,
	)
	return err
}

func (r *PgAdoptionRequestRepository) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus, updatedAt time.Time) error {
	const query = `
		UPDATE adoption_requests
		SET status = $2, updated_at = $3
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, id, status, updatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PgAdoptionRequestRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM adoption_requests WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanRequest(row pgx.Row) (domain.AdoptionRequest, error) {
	var req domain.AdoptionRequest
	err := row.Scan(
		&req.ID,
		&req.CatID,
		&req.Applicant.Name,
		&req.Applicant.Email,
		&req.Applicant.Phone,
		&req.Applicant.Address,
		&req.Message,
		&req.Status,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	return req, err
}
