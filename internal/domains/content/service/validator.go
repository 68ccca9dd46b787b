package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"portfolio-backend/internal/domains/content/model"
)

// Validate kiểm tra required fields và domain rules trong một lượt (không fail-fast).
// Trả về kèm bản Canonical đã coerce về kiểu Go (string, int, bool, []string, decimal.Decimal, nil).
func Validate[T model.Record](schema *model.Schema[T], c model.Canonical) (model.ValidationResult, model.Canonical) {
	var res model.ValidationResult
	coerced := make(model.Canonical, len(c))

	for _, f := range schema.Fields {
		v, present := c[f.Name]
		if isMissing(f, v, present) {
			if f.Required {
				res.MissingFields = append(res.MissingFields, f.Name)
			} else if present {
				coerced[f.Name] = nil
			}
			continue
		}

		val, err := coerce(f, v)
		if err != nil {
			res.DomainErrors = append(res.DomainErrors, err.Error())
			continue
		}
		coerced[f.Name] = val
	}

	res.OK = len(res.MissingFields) == 0 && len(res.DomainErrors) == 0
	return res, coerced
}

// isMissing: vắng mặt, null, hoặc mảng rỗng với list field.
// 0 và false là giá trị hợp lệ.
func isMissing(f model.Field, v any, present bool) bool {
	if !present || v == nil {
		return true
	}
	if f.Type == model.FieldStringList {
		switch list := v.(type) {
		case []any:
			return len(list) == 0
		case []string:
			return len(list) == 0
		}
	}
	return false
}

func coerce(f model.Field, v any) (any, error) {
	var (
		out any
		err error
	)

	switch f.Type {
	case model.FieldString, model.FieldDate, model.FieldURL:
		s, ok := v.(string)
		if !ok {
			return nil, fieldError(f, f.Name+" must be a string")
		}
		if strings.TrimSpace(s) == "" {
			if f.Required {
				return nil, fieldError(f, f.Name+" cannot be blank")
			}
			return nil, nil
		}
		out = s
	case model.FieldStringList:
		out, err = toStringList(v)
		if err != nil {
			return nil, fieldError(f, f.Name+" must be an array of strings")
		}
	case model.FieldBool:
		b, ok := v.(bool)
		if !ok {
			return nil, fieldError(f, f.Name+" must be a boolean")
		}
		out = b
	case model.FieldInt:
		out, err = toInt(v)
		if err != nil {
			return nil, fieldError(f, f.Name+" must be an integer")
		}
	case model.FieldDecimal:
		out, err = toDecimal(v)
		if err != nil {
			return nil, fieldError(f, f.Name+" must be a number")
		}
	default:
		return nil, fmt.Errorf("%s: unsupported field type %d", f.Name, f.Type)
	}

	if len(f.Rules) > 0 {
		if err := validation.Validate(out, f.Rules...); err != nil {
			return nil, fieldError(f, f.Name+" "+err.Error())
		}
	}
	return out, nil
}

// fieldError ưu tiên message cố định khai báo trên Field
func fieldError(f model.Field, fallback string) error {
	if f.Message != "" {
		return errors.New(f.Message)
	}
	return errors.New(fallback)
}

func toStringList(v any) ([]string, error) {
	switch list := v.(type) {
	case []string:
		return list, nil
	case []any:
		out := make([]string, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d is %T", i, item)
			}
			out[i] = s
		}
		return out, nil
	}
	return nil, fmt.Errorf("not an array: %T", v)
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int(n), nil
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, err
		}
		return toInt(f)
	case string:
		return strconv.Atoi(strings.TrimSpace(n))
	}
	return 0, fmt.Errorf("not a number: %T", v)
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case float64:
		return decimal.NewFromFloat(n), nil
	case json.Number:
		return decimal.NewFromString(n.String())
	case string:
		return decimal.NewFromString(strings.TrimSpace(n))
	}
	return decimal.Zero, fmt.Errorf("not a number: %T", v)
}
