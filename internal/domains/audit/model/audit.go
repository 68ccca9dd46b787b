package model

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Action là loại mutation được ghi vào audit_log
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

func (a Action) Valid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete:
		return true
	}
	return false
}

// Entry là một dòng audit_log, append-only: không có update hay delete
type Entry struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	AdminUserID *uuid.UUID      `json:"admin_user_id" db:"admin_user_id"`
	AdminEmail  *string         `json:"admin_email,omitempty" db:"admin_email"`
	TableName   string          `json:"table_name" db:"table_name"`
	RecordID    string          `json:"record_id" db:"record_id"`
	Action      Action          `json:"action" db:"action"`
	OldData     json.RawMessage `json:"old_data" db:"old_data"`
	NewData     json.RawMessage `json:"new_data" db:"new_data"`
	Changes     json.RawMessage `json:"changes,omitempty" db:"changes"` // RFC 6902 patch old -> new, chỉ có ở UPDATE
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

// Filter cho màn hình lịch sử
type Filter struct {
	TableName string
	RecordID  string
	Limit     int
}

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// Normalize đưa Limit về khoảng [1, MaxLimit]
func (f Filter) Normalize() Filter {
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	return f
}

var ErrInvalidAction = errors.New("invalid audit action")
