package utils

import (
	"fmt"
	"reflect"
	"strings"
)

// StructArgsByTag lấy giá trị các field theo tag (thường là `db`), giữ đúng thứ tự columns.
// Trả về lỗi nếu có column không map được field nào.
func StructArgsByTag(v any, tag string, columns ...string) ([]any, error) {
	rv := reflect.Indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("StructArgsByTag: expected struct, got %s", rv.Kind())
	}

	index := make(map[string]int, rv.NumField())
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		name, _, _ := strings.Cut(rt.Field(i).Tag.Get(tag), ",")
		if name != "" && name != "-" {
			index[name] = i
		}
	}

	args := make([]any, len(columns))
	for i, col := range columns {
		fi, ok := index[col]
		if !ok {
			return nil, fmt.Errorf("StructArgsByTag: no field tagged %s:%q on %s", tag, col, rt.Name())
		}
		args[i] = rv.Field(fi).Interface()
	}
	return args, nil
}
