package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	auditModel "portfolio-backend/internal/domains/audit/model"
	"portfolio-backend/internal/domains/content/model"
	"portfolio-backend/internal/domains/content/repository"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/metrics"
)

// ImportService: normalize -> validate -> duplicate check -> insert -> audit, từng record một.
// Lỗi của một record không dừng batch, record đã insert không bị rollback.
type ImportService[T model.Record] struct {
	schema   *model.Schema[T]
	table    repository.Table[T]
	detector *DuplicateDetector[T]
	audit    AuditRecorder
	lists    *listCache
}

var _ ImportServiceInterface = (*ImportService[model.Skill])(nil)

func NewImportService[T model.Record](
	schema *model.Schema[T],
	table repository.Table[T],
	audit AuditRecorder,
	c cache.Cache,
	listTTL time.Duration,
) *ImportService[T] {
	return &ImportService[T]{
		schema:   schema,
		table:    table,
		detector: NewDuplicateDetector(table),
		audit:    audit,
		lists:    &listCache{cache: c, table: schema.Table, key: schema.ListCacheKey(), ttl: listTTL},
	}
}

// Import xử lý body { <table>: [...], skipDuplicates?: bool }.
// Chỉ trả error khi body sai dạng hoặc không query được tập id đã tồn tại.
func (s *ImportService[T]) Import(ctx context.Context, actor string, payload any) (*model.ImportResult, error) {
	records, skipDuplicates, err := s.parsePayload(payload)
	if err != nil {
		return nil, err
	}

	// batch đã bắt đầu thì chạy hết, không phụ thuộc client còn chờ hay không
	ctx = context.WithoutCancel(ctx)
	started := time.Now()

	existing, err := s.detector.FindExisting(ctx, candidateIDs(records))
	if err != nil {
		return nil, err
	}

	result := model.NewImportResult()
	for i, item := range records {
		s.importOne(ctx, actor, i, item, existing, skipDuplicates, result)
	}
	result.Finish()

	if result.Imported > 0 {
		s.lists.invalidate(ctx)
	}

	log.Info().
		Str("table", s.schema.Table).
		Str("actor", actor).
		Int("total", len(records)).
		Int("imported", result.Imported).
		Int("failed", result.Failed).
		Int("duplicates", len(result.Duplicates)).
		Bool("skip_duplicates", skipDuplicates).
		Dur("elapsed", time.Since(started)).
		Msg("Bulk import finished")

	return result, nil
}

func (s *ImportService[T]) importOne(
	ctx context.Context,
	actor string,
	index int,
	item any,
	existing map[string]struct{},
	skipDuplicates bool,
	result *model.ImportResult,
) {
	fail := func(msg string) {
		result.Fail(index, msg, item)
		metrics.RecordImport(s.schema.Table, metrics.ResultFailed)
		log.Debug().Str("table", s.schema.Table).Int("index", index).Str("error", msg).Msg("Import record failed")
	}

	raw, ok := item.(map[string]any)
	if !ok {
		fail("record must be a JSON object")
		return
	}

	res, coerced := Validate(s.schema, Normalize(s.schema, raw))
	if !res.OK {
		fail(res.Message())
		return
	}

	id, _ := coerced["id"].(string)
	if _, dup := existing[id]; dup {
		result.Duplicates = append(result.Duplicates, id)
		metrics.RecordImport(s.schema.Table, metrics.ResultDuplicate)
		if skipDuplicates {
			fail(model.DuplicateMessage(s.schema.Label, id))
			return
		}
	}

	rec, err := Decode(s.schema, coerced)
	if err != nil {
		fail(err.Error())
		return
	}

	inserted, err := s.table.Insert(ctx, rec)
	if err != nil {
		fail(model.WrapStore("insert", err).Error())
		return
	}

	s.audit.Record(ctx, actor, s.schema.Table, id, auditModel.ActionCreate, nil, inserted)
	metrics.RecordImport(s.schema.Table, metrics.ResultImported)
	result.Imported++
}

// parsePayload kiểm tra dạng { <table>: array }; skipDuplicates mặc định true,
// chỉ false khi client gửi đúng giá trị boolean false.
func (s *ImportService[T]) parsePayload(payload any) ([]any, bool, error) {
	body, ok := payload.(map[string]any)
	if !ok {
		return nil, false, s.shapeError()
	}
	records, ok := body[s.schema.Table].([]any)
	if !ok {
		return nil, false, s.shapeError()
	}

	skipDuplicates := true
	if v, ok := body["skipDuplicates"].(bool); ok && !v {
		skipDuplicates = false
	}
	return records, skipDuplicates, nil
}

func (s *ImportService[T]) shapeError() error {
	return model.NewPayloadError("Invalid format: expected { %s: [...] }", s.schema.Table)
}

// candidateIDs lấy id dạng string từ raw batch, bỏ qua phần tử không hợp lệ
func candidateIDs(records []any) []string {
	ids := make([]string, 0, len(records))
	for _, item := range records {
		raw, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if id, ok := raw["id"].(string); ok && id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
