// Package enum defines the status and category values stored on sales records.
package enum

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

func parse[T ~string](s string, values []T) (T, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, v := range values {
		if string(v) == s {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func contains[T ~string](v T, values []T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func scanString(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("unsupported enum value type %T", value)
	}
}

func stringValue(s string) (driver.Value, error) {
	return s, nil
}
