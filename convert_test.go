package karyajson_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	karyajson "github.com/karya-io/karyajson"
)

func TestFromAny(t *testing.T) {
	cases := []struct {
		in   any
		want karyajson.Value
	}{
		{nil, karyajson.Null{}},
		{true, karyajson.Bool(true)},
		{"s", karyajson.Str("s")},
		{42, karyajson.Int(42)},
		{int8(-3), karyajson.Int(-3)},
		{uint32(7), karyajson.Int(7)},
		{uint64(9), karyajson.Int(9)},
		{float32(0.5), karyajson.Float(0.5)},
		{2.5, karyajson.Float(2.5)},
		{json.Number("123"), karyajson.Int(123)},
		{json.Number("1.5"), karyajson.Float(1.5)},
		{json.Number("123e2"), karyajson.Float(12300)},
		{json.Number("9223372036854775808"), karyajson.Float(9223372036854775808)},
		{[]any{1, "x", nil}, karyajson.Arr{karyajson.Int(1), karyajson.Str("x"), karyajson.Null{}}},
		{map[string]any{"a": 1}, karyajson.Obj{"a": karyajson.Int(1)}},
		{map[any]any{"a": true}, karyajson.Obj{"a": karyajson.Bool(true)}},
		{karyajson.Int(5), karyajson.Int(5)},
		{[]karyajson.Value{karyajson.Null{}}, karyajson.Arr{karyajson.Null{}}},
		{map[string]karyajson.Value{"k": karyajson.Int(1)}, karyajson.Obj{"k": karyajson.Int(1)}},
	}
	for _, tc := range cases {
		got, err := karyajson.FromAny(tc.in)
		if err != nil {
			t.Errorf("FromAny(%#v) failed: %v", tc.in, err)
			continue
		}
		if !karyajson.Equal(got, tc.want) {
			t.Errorf("FromAny(%#v) = %#v, want %#v", tc.in, got, tc.want)
		}
	}
}

func TestFromAny_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   any
		code string
	}{
		{"NaN", math.NaN(), karyajson.CodeInvalidValue},
		{"positive infinity", math.Inf(1), karyajson.CodeInvalidValue},
		{"uint64 overflow", uint64(math.MaxUint64), karyajson.CodeInvalidValue},
		{"non-string map key", map[any]any{1: "x"}, karyajson.CodeInvalidValue},
		{"unsupported type", make(chan int), karyajson.CodeInvalidType},
		{"nested unsupported", []any{func() {}}, karyajson.CodeInvalidType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := karyajson.FromAny(tc.in)
			se, ok := karyajson.AsSerializeError(err)
			if !ok {
				t.Fatalf("FromAny(%T) error = %v, want *SerializeError", tc.in, err)
			}
			if se.Code != tc.code {
				t.Fatalf("code = %q, want %q", se.Code, tc.code)
			}
		})
	}
}

func TestToAny(t *testing.T) {
	v := karyajson.Obj{
		"n":    karyajson.Int(1),
		"f":    karyajson.Float(0.5),
		"s":    karyajson.Str("x"),
		"ok":   karyajson.Bool(true),
		"list": karyajson.Arr{karyajson.Null{}},
	}
	want := map[string]any{
		"n":    int64(1),
		"f":    0.5,
		"s":    "x",
		"ok":   true,
		"list": []any{nil},
	}
	if diff := cmp.Diff(want, karyajson.ToAny(v)); diff != "" {
		t.Fatalf("ToAny mismatch (-want +got):\n%s", diff)
	}
	if karyajson.ToAny(nil) != nil {
		t.Fatalf("ToAny(nil) should be nil")
	}
}

func TestToAny_RoundTrip(t *testing.T) {
	v, err := karyajson.Parse(`{"id":1,"tags":["x","y"],"ok":true,"note":null,"score":98.6}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	back, err := karyajson.FromAny(karyajson.ToAny(v))
	if err != nil {
		t.Fatalf("FromAny failed: %v", err)
	}
	if !karyajson.Equal(v, back) {
		t.Fatalf("ToAny/FromAny changed the tree: %#v vs %#v", v, back)
	}
}
