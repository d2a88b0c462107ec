package training

import (
	"fmt"
	"strconv"
)

// lookupString reads an optional scalar key. Null reads as "".
func lookupString(meta map[string]any, record, key string) (string, bool, error) {
	v, ok := meta[key]
	if !ok {
		return "", false, nil
	}
	s, err := scalarString(record, key, v)
	if err != nil {
		return "", true, err
	}
	return s, true, nil
}

func requireString(meta map[string]any, record, key string) (string, error) {
	s, ok, err := lookupString(meta, record, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &MissingKeyError{Record: record, Key: key}
	}
	return s, nil
}

func scalarString(record, key string, v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", &FieldTypeError{Record: record, Key: key, Want: "a scalar", Got: v}
	}
}

func stringList(record, key string, v any) ([]string, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out, nil
	case []any:
		out := make([]string, 0, len(t))
		for i, item := range t {
			s, err := scalarString(record, fmt.Sprintf("%s[%d]", key, i), item)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, &FieldTypeError{Record: record, Key: key, Want: "a list", Got: v}
	}
}
