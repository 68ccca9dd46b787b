package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"portfolio-backend/internal/domains/admin/model"
)

// DBTX được thỏa mãn bởi *pgxpool.Pool và pgx.Tx
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*model.AdminUser, error)
	GetByID(ctx context.Context, id string) (*model.AdminUser, error)
	// Upsert tạo mới hoặc cập nhật password/name theo email
	Upsert(ctx context.Context, email, passwordHash string, name *string) (*model.AdminUser, error)
}

type postgresRepository struct {
	db DBTX
}

func NewPostgresRepository(db DBTX) Repository {
	return &postgresRepository{db: db}
}

const adminColumns = "id, email, password_hash, name, created_at, updated_at"

func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	query := "SELECT " + adminColumns + " FROM admin_users WHERE lower(email) = lower($1)"
	return r.queryOne(ctx, query, strings.TrimSpace(email))
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*model.AdminUser, error) {
	query := "SELECT " + adminColumns + " FROM admin_users WHERE id = $1::uuid"
	return r.queryOne(ctx, query, id)
}

func (r *postgresRepository) Upsert(ctx context.Context, email, passwordHash string, name *string) (*model.AdminUser, error) {
	query := `
		INSERT INTO admin_users (email, password_hash, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE
		SET password_hash = EXCLUDED.password_hash,
		    name = COALESCE(EXCLUDED.name, admin_users.name),
		    updated_at = NOW()
		RETURNING ` + adminColumns
	return r.queryOne(ctx, query, strings.ToLower(strings.TrimSpace(email)), passwordHash, name)
}

func (r *postgresRepository) queryOne(ctx context.Context, query string, args ...any) (*model.AdminUser, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query admin user: %w", err)
	}
	u, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.AdminUser])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan admin user: %w", err)
	}
	return u, nil
}
