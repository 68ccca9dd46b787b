package service

import (
	"context"

	auditModel "portfolio-backend/internal/domains/audit/model"
	"portfolio-backend/internal/domains/content/model"
)

// AuditRecorder là best-effort: không trả lỗi về cho mutation đã commit
type AuditRecorder interface {
	Record(ctx context.Context, actor, tableName, recordID string, action auditModel.Action, oldData, newData any)
}

// EntityServiceInterface - get/list/create/update/delete cho một entity kind
type EntityServiceInterface[T model.Record] interface {
	List(ctx context.Context) ([]T, error)
	PublicList(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, actor string, body model.RawRecord) (*T, error)
	Update(ctx context.Context, actor, id string, body model.RawRecord) (*T, error)
	Delete(ctx context.Context, actor, id string) error
	Count(ctx context.Context) (int, error)
}

// ImportServiceInterface - bulk import JSON
type ImportServiceInterface interface {
	Import(ctx context.Context, actor string, payload any) (*model.ImportResult, error)
}
