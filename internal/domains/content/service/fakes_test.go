package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	auditModel "portfolio-backend/internal/domains/audit/model"
	"portfolio-backend/internal/domains/content/model"
)

// fakeTable giả lập bảng Postgres: id là primary key
type fakeTable[T model.Record] struct {
	mu          sync.Mutex
	rows        map[string]T
	insertFails map[string]error // id -> lỗi trả về khi insert
	existingErr error
	existingHit int
}

func newFakeTable[T model.Record]() *fakeTable[T] {
	return &fakeTable[T]{rows: map[string]T{}, insertFails: map[string]error{}}
}

var errUniqueViolation = &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}

func (f *fakeTable[T]) List(context.Context) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]string, 0, len(f.rows))
	for id := range f.rows {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.rows[id])
	}
	return out, nil
}

func (f *fakeTable[T]) GetByID(_ context.Context, id string) (*T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.rows[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &rec, nil
}

func (f *fakeTable[T]) ExistingIDs(ctx context.Context, ids []string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.existingHit++
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if f.existingErr != nil {
		return nil, f.existingErr
	}
	var out []string
	for _, id := range ids {
		if _, ok := f.rows[id]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

func (f *fakeTable[T]) Insert(ctx context.Context, rec *T) (*T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	id := (*rec).RecordID()
	if err, ok := f.insertFails[id]; ok {
		return nil, err
	}
	if _, ok := f.rows[id]; ok {
		return nil, errUniqueViolation
	}
	f.rows[id] = *rec
	out := *rec
	return &out, nil
}

func (f *fakeTable[T]) Update(_ context.Context, id string, rec *T) (*T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return nil, model.ErrNotFound
	}
	f.rows[id] = *rec
	out := *rec
	return &out, nil
}

func (f *fakeTable[T]) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return model.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeTable[T]) Count(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows), nil
}

type auditCall struct {
	actor    string
	table    string
	recordID string
	action   auditModel.Action
	oldData  any
	newData  any
}

type fakeAudit struct {
	mu    sync.Mutex
	calls []auditCall
}

func (a *fakeAudit) Record(_ context.Context, actor, table, recordID string, action auditModel.Action, oldData, newData any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls = append(a.calls, auditCall{actor, table, recordID, action, oldData, newData})
}

func (a *fakeAudit) count(action auditModel.Action) int {
	n := 0
	for _, c := range a.calls {
		if c.action == action {
			n++
		}
	}
	return n
}

// memCache là pkg/cache.Cache trong bộ nhớ
type memCache struct {
	mu      sync.Mutex
	data    map[string]any
	deletes int
	getErr  error
}

func newMemCache() *memCache { return &memCache{data: map[string]any{}} }

func (c *memCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return false, c.getErr
	}
	v, ok := c.data[key]
	if !ok {
		return false, nil
	}
	switch d := dest.(type) {
	case *[]model.Skill:
		*d = v.([]model.Skill)
	default:
		return false, errors.New("unsupported dest")
	}
	return true, nil
}

func (c *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deletes++
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *memCache) DeletePattern(context.Context, string) error { return nil }

