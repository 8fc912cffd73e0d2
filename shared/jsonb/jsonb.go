// Package jsonb maps nested document fields onto Postgres jsonb columns.
// A Column[T] satisfies driver.Valuer and sql.Scanner, so it slots straight
// into the db-tagged structs the generic repository builds queries from.
package jsonb

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"reflect"
)

type Column[T any] struct {
	V T
}

// Of wraps a value for use in an update field map.
func Of[T any](value T) Column[T] {
	return Column[T]{V: value}
}

func (c Column[T]) Value() (driver.Value, error) {
	rv := reflect.ValueOf(c.V)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, nil
	}

	data, err := json.Marshal(c.V)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal jsonb column: %w", err)
	}

	return data, nil
}

func (c *Column[T]) Scan(src any) error {
	if src == nil {
		var zero T
		c.V = zero

		return nil
	}

	var data []byte

	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported source type for jsonb column: %T", src)
	}

	if err := json.Unmarshal(data, &c.V); err != nil {
		return fmt.Errorf("failed to unmarshal jsonb column: %w", err)
	}

	return nil
}

func (c Column[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.V) //nolint:wrapcheck
}

func (c *Column[T]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &c.V) //nolint:wrapcheck
}
