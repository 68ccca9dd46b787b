package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	auditModel "portfolio-backend/internal/domains/audit/model"
	"portfolio-backend/internal/domains/content/model"
	"portfolio-backend/internal/domains/content/repository"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/metrics"
)

// EntityService: mỗi mutation thành công = đúng một audit entry
type EntityService[T model.Record] struct {
	schema *model.Schema[T]
	table  repository.Table[T]
	audit  AuditRecorder
	lists  *listCache
	newID  func() string
}

var _ EntityServiceInterface[model.Skill] = (*EntityService[model.Skill])(nil)

func NewEntityService[T model.Record](
	schema *model.Schema[T],
	table repository.Table[T],
	audit AuditRecorder,
	c cache.Cache,
	listTTL time.Duration,
) *EntityService[T] {
	return &EntityService[T]{
		schema: schema,
		table:  table,
		audit:  audit,
		lists:  &listCache{cache: c, table: schema.Table, key: schema.ListCacheKey(), ttl: listTTL},
		newID:  uuid.NewString,
	}
}

func (s *EntityService[T]) List(ctx context.Context) ([]T, error) {
	items, err := s.table.List(ctx)
	if err != nil {
		return nil, model.WrapStore("list", err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// PublicList giống List nhưng đọc qua Redis cache
func (s *EntityService[T]) PublicList(ctx context.Context) ([]T, error) {
	var cached []T
	if s.lists.get(ctx, &cached) {
		return cached, nil
	}
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	s.lists.set(ctx, items)
	return items, nil
}

func (s *EntityService[T]) Get(ctx context.Context, id string) (*T, error) {
	rec, err := s.table.GetByID(ctx, id)
	if err != nil {
		return nil, model.WrapStore("get", err)
	}
	return rec, nil
}

func (s *EntityService[T]) Count(ctx context.Context) (int, error) {
	n, err := s.table.Count(ctx)
	if err != nil {
		return 0, model.WrapStore("count", err)
	}
	return n, nil
}

// Create: id không có thì sinh UUID, các required field còn lại giống import
func (s *EntityService[T]) Create(ctx context.Context, actor string, body model.RawRecord) (*T, error) {
	canon := Normalize(s.schema, body)
	if id, ok := canon["id"]; !ok || id == nil || id == "" {
		canon["id"] = s.newID()
	}

	rec, err := s.prepare(canon)
	if err != nil {
		return nil, err
	}

	inserted, err := s.table.Insert(ctx, rec)
	if err != nil {
		return nil, model.WrapStore("insert", err)
	}

	s.committed(ctx, actor, (*inserted).RecordID(), auditModel.ActionCreate, nil, inserted)
	return inserted, nil
}

// Update là partial update: field không gửi lên giữ nguyên giá trị cũ,
// record sau khi ghép được validate lại toàn bộ.
func (s *EntityService[T]) Update(ctx context.Context, actor, id string, body model.RawRecord) (*T, error) {
	old, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	merged, err := ToCanonical(s.schema, old)
	if err != nil {
		return nil, err
	}
	for k, v := range Normalize(s.schema, body) {
		merged[k] = v
	}
	merged["id"] = id

	rec, err := s.prepare(merged)
	if err != nil {
		return nil, err
	}

	updated, err := s.table.Update(ctx, id, rec)
	if err != nil {
		return nil, model.WrapStore("update", err)
	}

	s.committed(ctx, actor, id, auditModel.ActionUpdate, old, updated)
	return updated, nil
}

func (s *EntityService[T]) Delete(ctx context.Context, actor, id string) error {
	old, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.table.Delete(ctx, id); err != nil {
		return model.WrapStore("delete", err)
	}

	s.committed(ctx, actor, id, auditModel.ActionDelete, old, nil)
	return nil
}

func (s *EntityService[T]) prepare(c model.Canonical) (*T, error) {
	res, coerced := Validate(s.schema, c)
	if !res.OK {
		return nil, &model.ValidationError{Result: res}
	}
	return Decode(s.schema, coerced)
}

// committed chạy sau khi store đã ghi thành công
func (s *EntityService[T]) committed(ctx context.Context, actor, id string, action auditModel.Action, oldData, newData *T) {
	var oldSnap, newSnap any
	if oldData != nil {
		oldSnap = oldData
	}
	if newData != nil {
		newSnap = newData
	}
	s.audit.Record(ctx, actor, s.schema.Table, id, action, oldSnap, newSnap)
	s.lists.invalidate(ctx)
	metrics.RecordMutation(s.schema.Table, string(action))

	log.Info().
		Str("table", s.schema.Table).
		Str("record_id", id).
		Str("action", string(action)).
		Str("actor", actor).
		Msg("Content mutated")
}
