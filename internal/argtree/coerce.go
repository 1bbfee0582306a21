package argtree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Value is the set of Go types a leaf can hold.
type Value interface {
	bool | int | uint | float64 | string
}

// coerce converts a raw command-line token into T by way of cty. The cty
// conversion rules are what give "1e-8" its meaning as a real. Integer leaves
// only take plain decimal digits, so "1.0" and "1e3" are rejected there.
func coerce[T Value](raw string) (T, error) {
	var out T
	ty, err := gocty.ImpliedType(out)
	if err != nil {
		return out, fmt.Errorf("no cty type for %T: %w", out, err)
	}

	switch any(out).(type) {
	case bool:
		raw = normalizeBool(raw)
	case int, uint:
		if !isIntegerLiteral(raw) {
			return out, fmt.Errorf("%q is not an integer", raw)
		}
	}

	val, err := convert.Convert(cty.StringVal(raw), ty)
	if err != nil {
		return out, err
	}
	if err := gocty.FromCtyValue(val, &out); err != nil {
		return out, err
	}
	return out, nil
}

func isIntegerLiteral(raw string) bool {
	digits := strings.TrimPrefix(strings.TrimPrefix(raw, "-"), "+")
	if digits == "" || len(digits) < len(raw)-1 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// normalizeBool maps the numeric spellings of a flag onto the literals cty
// understands.
func normalizeBool(raw string) string {
	switch raw {
	case "1":
		return "true"
	case "0":
		return "false"
	}
	return raw
}

// format renders v the way the parser reads it back: flags as 1/0 and reals
// in their shortest round-trip form.
func format[T Value](v T) string {
	switch x := any(v).(type) {
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
	}
	return fmt.Sprint(v)
}

// typeName is the placeholder shown in help output, e.g. "num_samples=<int>".
func typeName[T Value]() string {
	var zero T
	switch any(zero).(type) {
	case bool:
		return "boolean"
	case int:
		return "int"
	case uint:
		return "unsigned int"
	case float64:
		return "double"
	default:
		return "string"
	}
}
