package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/wI2L/jsondiff"

	"portfolio-backend/internal/domains/audit/model"
	"portfolio-backend/internal/domains/audit/repository"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/metrics"
)

const writeTimeout = 5 * time.Second

// Timestamps thay đổi ở mọi UPDATE, không đưa vào changes
var ignoredPaths = jsondiff.Ignores("/updated_at", "/created_at")

type ServiceInterface interface {
	Record(ctx context.Context, actor, tableName, recordID string, action model.Action, oldData, newData any)
	List(ctx context.Context, f model.Filter) ([]model.Entry, error)
	Recent(ctx context.Context, n int) ([]model.Entry, error)
}

type service struct {
	repo repository.Repository
	now  func() time.Time
}

func NewService(repo repository.Repository) ServiceInterface {
	return &service{repo: repo, now: time.Now}
}

// Record ghi một audit entry sau khi mutation đã commit.
// Best-effort: lỗi chỉ được log và đếm metric, không trả về caller.
func (s *service) Record(ctx context.Context, actor, tableName, recordID string, action model.Action, oldData, newData any) {
	entry, err := s.buildEntry(actor, tableName, recordID, action, oldData, newData)
	if err == nil {
		// mutation đã commit, request bị cancel cũng phải ghi xong
		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
		err = s.repo.Insert(writeCtx, entry)
		cancel()
	}
	if err != nil {
		metrics.RecordAuditFailure(tableName)
		log.Warn().
			Err(err).
			Str("table", tableName).
			Str("record_id", recordID).
			Str("action", string(action)).
			Msg("[AUDIT] Failed to write audit entry")
	}
}

func (s *service) buildEntry(actor, tableName, recordID string, action model.Action, oldData, newData any) (*model.Entry, error) {
	if !action.Valid() {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidAction, action)
	}
	oldJSON, err := snapshot(oldData)
	if err != nil {
		return nil, fmt.Errorf("marshal old_data: %w", err)
	}
	newJSON, err := snapshot(newData)
	if err != nil {
		return nil, fmt.Errorf("marshal new_data: %w", err)
	}

	entry := &model.Entry{
		ID:          uuid.New(),
		AdminUserID: utils.NullableUUID(actor),
		TableName:   tableName,
		RecordID:    recordID,
		Action:      action,
		OldData:     oldJSON,
		NewData:     newJSON,
		CreatedAt:   s.now(),
	}

	if action == model.ActionUpdate && oldJSON != nil && newJSON != nil {
		patch, err := jsondiff.CompareJSON(oldJSON, newJSON, ignoredPaths)
		if err != nil {
			return nil, fmt.Errorf("diff snapshots: %w", err)
		}
		if entry.Changes, err = json.Marshal(patch); err != nil {
			return nil, fmt.Errorf("marshal changes: %w", err)
		}
	}
	return entry, nil
}

// snapshot: nil -> không có snapshot (NULL)
func snapshot(v any) (json.RawMessage, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(data) == "null" {
		return nil, nil
	}
	return data, nil
}

func (s *service) List(ctx context.Context, f model.Filter) ([]model.Entry, error) {
	return s.repo.List(ctx, f.Normalize())
}

// Recent trả về n entry mới nhất của mọi bảng
func (s *service) Recent(ctx context.Context, n int) ([]model.Entry, error) {
	return s.repo.List(ctx, model.Filter{Limit: n})
}
