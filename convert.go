package karyajson

import (
	"encoding/json"
	"fmt"
	"math"
)

// FromAny builds a Value tree from an untyped Go value, such as the trees
// produced by encoding/json or yaml decoders. It is the validating
// counterpart of the total printer: unsupported Go types fail with
// CodeInvalidType, and values that cannot be represented in JSON (NaN,
// ±Inf, non-string map keys, integers beyond 64 signed bits) fail with
// CodeInvalidValue.
//
// json.Number follows the parser's disambiguation rule: no fraction and no
// exponent yields Int, anything else (including 64-bit overflow) yields
// Float.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return Str(x), nil
	case int:
		return Int(x), nil
	case int8:
		return Int(x), nil
	case int16:
		return Int(x), nil
	case int32:
		return Int(x), nil
	case int64:
		return Int(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return Int(x), nil
	case uint16:
		return Int(x), nil
	case uint32:
		return Int(x), nil
	case uint64:
		return fromUint(x)
	case float32:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	case json.Number:
		return fromNumber(x)
	case []any:
		arr := make(Arr, 0, len(x))
		for _, el := range x {
			cv, err := FromAny(el)
			if err != nil {
				return nil, err
			}
			arr = append(arr, cv)
		}
		return arr, nil
	case []Value:
		return Arr(x), nil
	case map[string]any:
		obj := make(Obj, len(x))
		for k, el := range x {
			cv, err := FromAny(el)
			if err != nil {
				return nil, err
			}
			obj[k] = cv
		}
		return obj, nil
	case map[string]Value:
		return Obj(x), nil
	case map[any]any:
		// Some yaml decoders hand back any-keyed maps.
		obj := make(Obj, len(x))
		for k, el := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, &SerializeError{Code: CodeInvalidValue, Message: fmt.Sprintf("non-string object key: %v", k)}
			}
			cv, err := FromAny(el)
			if err != nil {
				return nil, err
			}
			obj[ks] = cv
		}
		return obj, nil
	default:
		return nil, &SerializeError{Code: CodeInvalidType, Message: fmt.Sprintf("unsupported type %T", v)}
	}
}

func fromUint(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return nil, &SerializeError{Code: CodeInvalidValue, Message: fmt.Sprintf("integer overflows 64 signed bits: %d", u)}
	}
	return Int(u), nil
}

func fromFloat(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, &SerializeError{Code: CodeInvalidValue, Message: fmt.Sprintf("value has no JSON representation: %v", f)}
	}
	return Float(f), nil
}

func fromNumber(n json.Number) (Value, error) {
	if i, err := n.Int64(); err == nil {
		return Int(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, &SerializeError{Code: CodeInvalidValue, Message: fmt.Sprintf("invalid number: %s", n.String())}
	}
	return Float(f), nil
}

// ToAny converts a Value tree into the untyped representation used by
// encoding/json: int64, float64, bool, string, []any, map[string]any, and
// nil. A nil Value converts to nil.
func ToAny(v Value) any {
	switch x := v.(type) {
	case Int:
		return int64(x)
	case Float:
		return float64(x)
	case Bool:
		return bool(x)
	case Str:
		return string(x)
	case Arr:
		out := make([]any, len(x))
		for i, el := range x {
			out[i] = ToAny(el)
		}
		return out
	case Obj:
		out := make(map[string]any, len(x))
		for k, el := range x {
			out[k] = ToAny(el)
		}
		return out
	default:
		return nil
	}
}
