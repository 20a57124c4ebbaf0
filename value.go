package karyajson

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindString
	KindArray
	KindObject
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// Value is one JSON value: an Int, Float, Bool, Str, Arr, Obj, or Null.
// The set of implementations is closed; a type switch over the seven
// variants is exhaustive. Values are immutable after construction (the
// parser builds trees strictly bottom-up, so they are finite and acyclic)
// and safe to share read-only across goroutines.
type Value interface {
	Kind() Kind

	// appendJSON renders the value in compact form. Unexported so the
	// variant set stays closed.
	appendJSON(dst []byte) []byte
}

// Int is a JSON number with no fractional part or exponent that fits in a
// signed 64-bit integer.
type Int int64

// Float is any other JSON number.
type Float float64

// Bool is a JSON true or false.
type Bool bool

// Str is a JSON string.
type Str string

// Arr is a JSON array. Element order is preserved.
type Arr []Value

// Obj is a JSON object. Keys are unique; iteration order is unspecified
// and need not match source order. Duplicate keys in input resolve
// last-write-wins.
type Obj map[string]Value

// Null is the JSON null value.
type Null struct{}

func (Int) Kind() Kind   { return KindInt }
func (Float) Kind() Kind { return KindFloat }
func (Bool) Kind() Kind  { return KindBool }
func (Str) Kind() Kind   { return KindString }
func (Arr) Kind() Kind   { return KindArray }
func (Obj) Kind() Kind   { return KindObject }
func (Null) Kind() Kind  { return KindNull }

// Equal reports structural equality of two value trees. Arrays compare
// element-wise in order; objects compare key-wise regardless of iteration
// order. Numeric variants never cross-match: Int(1) is not equal to
// Float(1).
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case Float:
		bv, ok := b.(Float)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	case Arr:
		bv, ok := b.(Arr)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Obj:
		bv, ok := b.(Obj)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			w, ok := bv[k]
			if !ok || !Equal(v, w) {
				return false
			}
		}
		return true
	case Null:
		_, ok := b.(Null)
		return ok
	case nil:
		return b == nil
	default:
		return false
	}
}
