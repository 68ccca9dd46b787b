package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"portfolio-backend/internal/domains/content/model"
	"portfolio-backend/internal/shared/utils"
)

// postgresTable implements Table[T] cho mọi entity kind dựa trên Schema[T]
type postgresTable[T model.Record] struct {
	db     DBTX
	schema *model.Schema[T]
}

// NewPostgresTable creates a table repository for one entity kind
func NewPostgresTable[T model.Record](db DBTX, schema *model.Schema[T]) Table[T] {
	return &postgresTable[T]{db: db, schema: schema}
}

// ========================================
// QUERY BUILDERS
// ========================================

func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

// selectList: date trả về dạng 'YYYY-MM-DD', numeric trả về text để giữ nguyên độ chính xác
func (r *postgresTable[T]) selectList() string {
	cols := make([]string, 0, len(r.schema.Fields)+2)
	for _, f := range r.schema.Fields {
		col := ident(f.Name)
		switch f.Type {
		case model.FieldDate:
			cols = append(cols, fmt.Sprintf("to_char(%s, 'YYYY-MM-DD') AS %s", col, col))
		case model.FieldDecimal:
			cols = append(cols, fmt.Sprintf("%s::text AS %s", col, col))
		default:
			cols = append(cols, col)
		}
	}
	return strings.Join(append(cols, "created_at", "updated_at"), ", ")
}

func valueExpr(f model.Field, n int) string {
	switch f.Type {
	case model.FieldDate:
		return fmt.Sprintf("$%d::text::date", n)
	case model.FieldDecimal:
		return fmt.Sprintf("$%d::text::numeric", n)
	default:
		return fmt.Sprintf("$%d", n)
	}
}

func (r *postgresTable[T]) listQuery() string {
	return fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", r.selectList(), ident(r.schema.Table), r.schema.OrderBy)
}

func (r *postgresTable[T]) getQuery() string {
	return fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", r.selectList(), ident(r.schema.Table))
}

func (r *postgresTable[T]) insertQuery() string {
	cols := make([]string, len(r.schema.Fields))
	vals := make([]string, len(r.schema.Fields))
	for i, f := range r.schema.Fields {
		cols[i] = ident(f.Name)
		vals[i] = valueExpr(f, i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		ident(r.schema.Table), strings.Join(cols, ", "), strings.Join(vals, ", "), r.selectList())
}

// updateQuery: $1 là id, các field còn lại bắt đầu từ $2
func (r *postgresTable[T]) updateQuery() (string, []string) {
	var sets, cols []string
	n := 2
	for _, f := range r.schema.Fields {
		if f.Name == "id" {
			continue
		}
		sets = append(sets, fmt.Sprintf("%s = %s", ident(f.Name), valueExpr(f, n)))
		cols = append(cols, f.Name)
		n++
	}
	sets = append(sets, "updated_at = NOW()")
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = $1 RETURNING %s",
		ident(r.schema.Table), strings.Join(sets, ", "), r.selectList()), cols
}

// args lấy giá trị theo db tag; NullDecimal đổi sang *string cho cast ::text::numeric
func args[T model.Record](rec *T, columns []string) ([]any, error) {
	values, err := utils.StructArgsByTag(rec, "db", columns...)
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		if d, ok := v.(decimal.NullDecimal); ok {
			if !d.Valid {
				values[i] = nil
				continue
			}
			s := d.Decimal.String()
			values[i] = &s
		}
	}
	return values, nil
}

// ========================================
// OPERATIONS
// ========================================

func (r *postgresTable[T]) List(ctx context.Context) ([]T, error) {
	rows, err := r.db.Query(ctx, r.listQuery())
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.schema.Table, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", r.schema.Table, err)
	}
	return items, nil
}

func (r *postgresTable[T]) GetByID(ctx context.Context, id string) (*T, error) {
	rows, err := r.db.Query(ctx, r.getQuery(), id)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", r.schema.Table, err)
	}
	return collectOne[T](rows, r.schema.Table)
}

func (r *postgresTable[T]) ExistingIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf("SELECT id FROM %s WHERE id = ANY($1)", ident(r.schema.Table))
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("existing ids %s: %w", r.schema.Table, err)
	}
	existing, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan ids %s: %w", r.schema.Table, err)
	}
	return existing, nil
}

func (r *postgresTable[T]) Insert(ctx context.Context, rec *T) (*T, error) {
	values, err := args(rec, r.schema.Columns())
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, r.insertQuery(), values...)
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", r.schema.Table, err)
	}
	return collectOne[T](rows, r.schema.Table)
}

func (r *postgresTable[T]) Update(ctx context.Context, id string, rec *T) (*T, error) {
	query, cols := r.updateQuery()
	values, err := args(rec, cols)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, append([]any{id}, values...)...)
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", r.schema.Table, err)
	}
	return collectOne[T](rows, r.schema.Table)
}

func (r *postgresTable[T]) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", ident(r.schema.Table)), id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.schema.Table, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *postgresTable[T]) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", ident(r.schema.Table))).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", r.schema.Table, err)
	}
	return n, nil
}

// collectOne: pgx.ErrNoRows -> model.ErrNotFound
func collectOne[T model.Record](rows pgx.Rows, table string) (*T, error) {
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", table, err)
	}
	return item, nil
}
