package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adopta-gatos/internal/domain"
)

// AdminRepository define el contrato de persistencia para cuentas de administración.
type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (domain.AdminUser, error)
}

// PgAdminRepository implementa AdminRepository usando pgxpool.
type PgAdminRepository struct {
	pool *pgxpool.Pool
}

func NewPgAdminRepository(pool *pgxpool.Pool) *PgAdminRepository {
	return &PgAdminRepository{pool: pool}
}

func (r *PgAdminRepository) GetByUsername(ctx context.Context, username string) (domain.AdminUser, error) {
	const query = `
		SELECT id, username, name, password_hash, created_at
		FROM admin_users
		WHERE username = $1
	`
	var u domain.AdminUser
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&u.ID,
		&u.Username,
		&u.Name,
		&u.PasswordHash,
		&u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.AdminUser{}, domain.ErrNotFound
	}
	return u, err
}
