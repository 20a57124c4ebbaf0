package karyajson

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

const hexdigits = "0123456789abcdef"

// Marshal renders a value tree as compact JSON with no inserted
// whitespace. It is total: there is no error path. Object members are
// emitted in map iteration order, which need not match source order.
// A nil Value renders as null.
func Marshal(v Value) []byte {
	if v == nil {
		return []byte("null")
	}
	return v.appendJSON(nil)
}

// MarshalString is Marshal returning a string.
func MarshalString(v Value) string { return string(Marshal(v)) }

// Append renders v onto dst and returns the extended slice.
func Append(dst []byte, v Value) []byte {
	if v == nil {
		return append(dst, "null"...)
	}
	return v.appendJSON(dst)
}

func (v Int) appendJSON(dst []byte) []byte {
	return strconv.AppendInt(dst, int64(v), 10)
}

func (v Float) appendJSON(dst []byte) []byte {
	return strconv.AppendFloat(dst, float64(v), 'g', -1, 64)
}

func (v Bool) appendJSON(dst []byte) []byte {
	return strconv.AppendBool(dst, bool(v))
}

func (v Str) appendJSON(dst []byte) []byte {
	return appendQuoted(dst, string(v))
}

func (v Arr) appendJSON(dst []byte) []byte {
	dst = append(dst, '[')
	for i, el := range v {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = Append(dst, el)
	}
	return append(dst, ']')
}

func (v Obj) appendJSON(dst []byte) []byte {
	dst = append(dst, '{')
	first := true
	for k, el := range v {
		if !first {
			dst = append(dst, ',')
		}
		first = false
		dst = appendQuoted(dst, k)
		dst = append(dst, ':')
		dst = Append(dst, el)
	}
	return append(dst, '}')
}

func (Null) appendJSON(dst []byte) []byte {
	return append(dst, "null"...)
}

// appendQuoted writes s as a JSON string. Quote, backslash, and every
// control character (Cc, the set the parser rejects when raw, DEL and C1
// included) are escaped; other non-ASCII text passes through verbatim.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for _, r := range s {
		switch r {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		default:
			if unicode.IsControl(r) {
				// Control runes are all below U+00A0, so two hex
				// digits always suffice.
				dst = append(dst, '\\', 'u', '0', '0', hexdigits[r>>4], hexdigits[r&0xf])
			} else {
				dst = utf8.AppendRune(dst, r)
			}
		}
	}
	return append(dst, '"')
}
