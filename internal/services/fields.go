package services

import (
	"reflect"
	"strconv"
)

// Field is one tagged parameter value.
type Field struct {
	Name  string
	Value any
}

// Fields flattens a parameter struct, embedded structs included, into its
// tagged fields in declaration order. Untagged fields are skipped.
func Fields(params any) []Field {
	v := reflect.ValueOf(params)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	return appendFields(nil, v)
}

func appendFields(out []Field, v reflect.Value) []Field {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			out = appendFields(out, v.Field(i))
			continue
		}
		if !field.IsExported() {
			continue
		}
		name := field.Tag.Get("arg")
		if name == "" || name == "-" {
			continue
		}
		out = append(out, Field{Name: name, Value: v.Field(i).Interface()})
	}
	return out
}

// FieldNames returns just the names from Fields.
func FieldNames(params any) []string {
	fields := Fields(params)
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// FormatValue renders a field value the way the argument tree prints it.
func FormatValue(v any) string {
	switch x := v.(type) {
	case bool:
		if x {
			return "1"
		}
		return "0"
	case int:
		return strconv.Itoa(x)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return x
	default:
		return reflect.ValueOf(v).String()
	}
}
