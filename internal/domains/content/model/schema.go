package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// ENTITY SCHEMA
// ========================================

// FieldType quyết định cách coerce giá trị JSON và cách cast khi ghi xuống Postgres
type FieldType int

const (
	FieldString FieldType = iota
	FieldDate             // "YYYY-MM-DD", format do database kiểm tra
	FieldURL
	FieldStringList
	FieldBool
	FieldInt
	FieldDecimal
)

// Field mô tả một canonical field của entity
type Field struct {
	Name     string
	Aliases  []string // thứ tự ưu tiên sau canonical name
	Type     FieldType
	Required bool
	Rules    []validation.Rule
	Message  string // message cố định khi field vi phạm domain rule
}

// Keys trả về canonical name và aliases theo thứ tự ưu tiên
func (f Field) Keys() []string {
	return append([]string{f.Name}, f.Aliases...)
}

// Record là constraint chung cho bốn loại entity
type Record interface {
	Project | Experience | Skill | Certification
	RecordID() string
}

// Schema gom toàn bộ metadata của một entity kind.
// Normalizer, validator, decoder, repository và routes đều đọc từ đây.
type Schema[T Record] struct {
	Table    string // tên bảng, đồng thời là key của import payload
	Label    string // tên hiển thị trong message lỗi
	Fields   []Field
	OrderBy  string
	Finalize func(*T)
}

// Field tìm field theo canonical name
func (s *Schema[T]) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Columns trả về danh sách canonical names theo thứ tự khai báo
func (s *Schema[T]) Columns() []string {
	cols := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		cols[i] = f.Name
	}
	return cols
}

// RequiredFields trả về các field bắt buộc theo thứ tự khai báo
func (s *Schema[T]) RequiredFields() []string {
	var out []string
	for _, f := range s.Fields {
		if f.Required {
			out = append(out, f.Name)
		}
	}
	return out
}

// ListCachePattern match mọi key do ListCacheKey sinh ra
const ListCachePattern = "content:*:list"

// ListCacheKey là key Redis của public list
func (s *Schema[T]) ListCacheKey() string {
	return "content:" + s.Table + ":list"
}

// clearEndDateIfCurrent: current=true thì end_date luôn là NULL
func clearEndDateIfCurrent(current bool, endDate **string) {
	if current {
		*endDate = nil
	}
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
