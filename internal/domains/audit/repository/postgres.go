package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"portfolio-backend/internal/domains/audit/model"
)

// DBTX được thỏa mãn bởi *pgxpool.Pool và pgx.Tx
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository chỉ có Insert và đọc: audit_log là append-only
type Repository interface {
	Insert(ctx context.Context, e *model.Entry) error
	List(ctx context.Context, f model.Filter) ([]model.Entry, error)
}

type postgresRepository struct {
	db DBTX
}

func NewPostgresRepository(db DBTX) Repository {
	return &postgresRepository{db: db}
}

const insertEntrySQL = `
	INSERT INTO audit_log (id, admin_user_id, table_name, record_id, action, old_data, new_data, changes)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

const listEntriesSQL = `
	SELECT a.id, a.admin_user_id, u.email AS admin_email, a.table_name, a.record_id,
	       a.action, a.old_data, a.new_data, a.changes, a.created_at
	FROM audit_log a
	LEFT JOIN admin_users u ON u.id = a.admin_user_id
	WHERE ($1::text = '' OR a.table_name = $1)
	  AND ($2::text = '' OR a.record_id = $2)
	ORDER BY a.created_at DESC, a.id
	LIMIT $3
`

func (r *postgresRepository) Insert(ctx context.Context, e *model.Entry) error {
	_, err := r.db.Exec(ctx, insertEntrySQL,
		e.ID,
		e.AdminUserID,
		e.TableName,
		e.RecordID,
		string(e.Action),
		jsonArg(e.OldData),
		jsonArg(e.NewData),
		jsonArg(e.Changes),
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context, f model.Filter) ([]model.Entry, error) {
	f = f.Normalize()
	rows, err := r.db.Query(ctx, listEntriesSQL, f.TableName, f.RecordID, f.Limit)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	entries, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Entry])
	if err != nil {
		return nil, fmt.Errorf("scan audit entries: %w", err)
	}
	return entries, nil
}

// jsonArg: snapshot rỗng ghi NULL
func jsonArg(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}
