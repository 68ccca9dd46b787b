package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"portfolio-backend/internal/domains/content/model"
)

// DBTX được thỏa mãn bởi *pgxpool.Pool và pgx.Tx
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Table là thao tác store cho một entity kind
type Table[T model.Record] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	// ExistingIDs trả về tập con của ids đã có trong bảng (một query cho cả batch)
	ExistingIDs(ctx context.Context, ids []string) ([]string, error)
	Insert(ctx context.Context, rec *T) (*T, error)
	Update(ctx context.Context, id string, rec *T) (*T, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
