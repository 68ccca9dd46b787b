package model

import (
	"fmt"
	"strings"
)

// ========================================
// IMPORT PIPELINE TYPES
// ========================================

// RawRecord là một phần tử JSON chưa qua xử lý (key tùy ý, value tùy ý)
type RawRecord = map[string]any

// Canonical là record đã map về canonical field names.
// Field không có trong input thì vắng mặt trong map (không default).
type Canonical map[string]any

// ValidationResult gom toàn bộ lỗi của một record trong một lượt
type ValidationResult struct {
	OK            bool     `json:"ok"`
	MissingFields []string `json:"missing_fields,omitempty"`
	DomainErrors  []string `json:"domain_errors,omitempty"`
}

// Message: "Missing required fields: a, b; <domain error>; ..."
func (r ValidationResult) Message() string {
	parts := make([]string, 0, 1+len(r.DomainErrors))
	if len(r.MissingFields) > 0 {
		parts = append(parts, "Missing required fields: "+strings.Join(r.MissingFields, ", "))
	}
	parts = append(parts, r.DomainErrors...)
	return strings.Join(parts, "; ")
}

// ImportError mô tả một record thất bại, Index là vị trí trong payload gốc
type ImportError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
	Data  any    `json:"data"`
}

type ImportResult struct {
	Success    bool          `json:"success"`
	Imported   int           `json:"imported"`
	Failed     int           `json:"failed"`
	Errors     []ImportError `json:"errors"`
	Duplicates []string      `json:"duplicates"`
}

func NewImportResult() *ImportResult {
	return &ImportResult{
		Errors:     []ImportError{},
		Duplicates: []string{},
	}
}

// Fail ghi nhận lỗi cho record ở vị trí index
func (r *ImportResult) Fail(index int, msg string, data any) {
	r.Errors = append(r.Errors, ImportError{Index: index, Error: msg, Data: data})
	r.Failed++
}

// Finish chốt success sau khi xử lý hết batch
func (r *ImportResult) Finish() *ImportResult {
	r.Success = r.Failed == 0
	return r
}

// DuplicateMessage: "<Label> with ID '<id>' already exists"
func DuplicateMessage(label, id string) string {
	return fmt.Sprintf("%s with ID '%s' already exists", label, id)
}
