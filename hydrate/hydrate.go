// Package hydrate binds resolved mapping schemas to database/sql result
// rows (reads) and to column/value sets (writes). Statement construction
// and execution stay with the caller.
package hydrate

import (
	"database/sql"
	"fmt"
	"reflect"

	"github.com/shrek82/rowmap/mapping"
)

// ScanRow hydrates dest (a non-nil pointer to struct) from the current row
// of rows. Result columns are matched to properties by mapped name;
// unknown columns are ignored. Values pass through the property's codec
// when one is attached, then are written via the property's accessor.
func ScanRow(rows *sql.Rows, dest any, cfg mapping.Config) error {
	columns, err := rows.Columns()
	if err != nil {
		return err
	}

	schema, err := mapping.GetSchema(dest, cfg)
	if err != nil {
		return err
	}

	targets := make([]any, len(columns))
	props := make([]*mapping.Property, len(columns))
	for i, col := range columns {
		if p, ok := schema.Property(col); ok {
			props[i] = p
			if p.Codec() != nil {
				// codec decodes from the raw driver value
				var raw any
				targets[i] = &raw
			} else {
				targets[i] = reflect.New(p.Type()).Interface()
			}
		} else {
			var ignore any
			targets[i] = &ignore
		}
	}

	if err := rows.Scan(targets...); err != nil {
		return err
	}

	for i, p := range props {
		if p == nil {
			continue
		}
		var val any
		if c := p.Codec(); c != nil {
			raw := *(targets[i].(*any))
			val, err = c.Decode(raw, p.Type())
			if err != nil {
				return fmt.Errorf("column %s: %w", columns[i], err)
			}
		} else {
			val = reflect.ValueOf(targets[i]).Elem().Interface()
		}
		if err := p.SetValue(dest, val); err != nil {
			return err
		}
	}

	return nil
}

// ScanAll hydrates every remaining row of rows into destSlice, a pointer
// to a slice of structs.
func ScanAll(rows *sql.Rows, destSlice any, cfg mapping.Config) error {
	v := reflect.ValueOf(destSlice)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("destSlice must be a pointer to a slice, got %T", destSlice)
	}
	slice := v.Elem()
	elemType := slice.Type().Elem()
	if elemType.Kind() != reflect.Struct {
		return fmt.Errorf("destSlice element must be a struct, got %s", elemType)
	}

	for rows.Next() {
		item := reflect.New(elemType).Interface()
		if err := ScanRow(rows, item, cfg); err != nil {
			return err
		}
		slice.Set(reflect.Append(slice, reflect.ValueOf(item).Elem()))
	}
	return rows.Err()
}

// Columns returns the schema's column names ready for emission:
// case-sensitive names quoted, computed expressions included only on
// request (they are read-only selections, never insert targets).
func Columns(s *mapping.Schema, includeComputed bool) []string {
	var cols []string
	for _, p := range s.Properties {
		if p.IsComputed() && !includeComputed {
			continue
		}
		cols = append(cols, p.ColumnName())
	}
	return cols
}

// Values extracts the writable column/value pairs from entity: every
// non-computed property read through its accessor and encoded through its
// codec when one is attached.
func Values(entity any, cfg mapping.Config) ([]string, []any, error) {
	schema, err := mapping.GetSchema(entity, cfg)
	if err != nil {
		return nil, nil, err
	}

	var (
		cols []string
		vals []any
	)
	for _, p := range schema.Properties {
		if p.IsComputed() {
			continue
		}
		v, err := p.GetValue(entity)
		if err != nil {
			return nil, nil, err
		}
		if c := p.Codec(); c != nil {
			v, err = c.Encode(v)
			if err != nil {
				return nil, nil, fmt.Errorf("property %s: %w", p.Name(), err)
			}
		}
		cols = append(cols, p.ColumnName())
		vals = append(vals, v)
	}
	return cols, vals, nil
}
