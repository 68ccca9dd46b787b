package service

import (
	"bytes"
	"encoding/json"
	"fmt"

	"portfolio-backend/internal/domains/content/model"
)

// Decode chuyển Canonical đã validate thành record T và áp dụng Finalize
func Decode[T model.Record](schema *model.Schema[T], coerced model.Canonical) (*T, error) {
	data, err := json.Marshal(coerced)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", schema.Table, err)
	}
	var rec T
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", schema.Table, err)
	}
	if schema.Finalize != nil {
		schema.Finalize(&rec)
	}
	return &rec, nil
}

// ToCanonical là chiều ngược lại: record đã lưu -> Canonical (dùng cho partial update)
func ToCanonical[T model.Record](schema *model.Schema[T], rec *T) (model.Canonical, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", schema.Table, err)
	}
	raw := model.RawRecord{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", schema.Table, err)
	}
	return Normalize(schema, raw), nil
}
