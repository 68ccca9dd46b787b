package service

import (
	"portfolio-backend/internal/domains/content/model"
)

// Normalize map các key của raw record (camelCase, snake_case, synonym) về canonical names.
// Với mỗi field: lấy key đầu tiên theo thứ tự ưu tiên có giá trị khác null.
// Nếu chỉ có key mang giá trị null thì field = nil (khác với vắng mặt).
// Field không có key nào thì vắng mặt trong kết quả. Key lạ bị bỏ qua.
func Normalize[T model.Record](schema *model.Schema[T], raw model.RawRecord) model.Canonical {
	out := make(model.Canonical, len(schema.Fields))
	for _, f := range schema.Fields {
		if v, ok := pick(raw, f.Keys()); ok {
			out[f.Name] = v
		}
	}
	return out
}

func pick(raw model.RawRecord, keys []string) (any, bool) {
	present := false
	for _, k := range keys {
		v, ok := raw[k]
		if !ok {
			continue
		}
		if v != nil {
			return v, true
		}
		present = true
	}
	return nil, present
}
