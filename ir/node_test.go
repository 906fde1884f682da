package ir

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromAny(t *testing.T) {
	tests := []struct {
		name string
		in   any
		typ  Type
	}{
		{"nil", nil, NullType},
		{"bool", true, BoolType},
		{"string", "x", StringType},
		{"float", 1.5, NumberType},
		{"int", 3, NumberType},
		{"int64", int64(3), NumberType},
		{"number", json.Number("42"), NumberType},
		{"big number", json.Number("12345678901234567890123"), NumberType},
		{"slice", []any{1.0, "a"}, ArrayType},
		{"map", map[string]any{"a": 1.0}, ObjectType},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			y, err := FromAny(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if y.Type != tc.typ {
				t.Errorf("type = %s, want %s", y.Type, tc.typ)
			}
		})
	}
}

func TestFromAnyInvalid(t *testing.T) {
	for _, in := range []any{make(chan int), struct{}{}, map[int]any{1: "x"}, []byte("x")} {
		if _, err := FromAny(in); !errors.Is(err, ErrInvalidObjectType) {
			t.Errorf("FromAny(%T): expected ErrInvalidObjectType, got %v", in, err)
		}
	}
}

func TestFromAnyNested(t *testing.T) {
	in := map[string]any{
		"a": []any{1.0, map[string]any{"b": nil}},
		"c": "d",
	}
	y, err := FromAny(in)
	if err != nil {
		t.Fatal(err)
	}
	out := ToAny(y)
	want := map[string]any{
		"a": []any{1.0, map[string]any{"b": nil}},
		"c": "d",
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("roundtrip mismatch (-want +got):\n%s", diff)
	}
}

func TestFromAnyInvalidNested(t *testing.T) {
	in := map[string]any{"a": []any{struct{}{}}}
	if _, err := FromAny(in); !errors.Is(err, ErrInvalidObjectType) {
		t.Errorf("expected ErrInvalidObjectType, got %v", err)
	}
}

func TestGet(t *testing.T) {
	y := FromMap(map[string]*Node{
		"a": FromInt(1),
		"b": FromString("x"),
	})
	if v := Get(y, "a"); v == nil || v.Int64 == nil || *v.Int64 != 1 {
		t.Errorf("Get a = %v", v)
	}
	if v := Get(y, "missing"); v != nil {
		t.Errorf("Get missing = %v", v)
	}
	if i := y.FieldIndex("b"); i != 1 {
		t.Errorf("FieldIndex b = %d", i)
	}
}

func TestFromNumber(t *testing.T) {
	y := fromNumber(json.Number("7"))
	if y.Int64 == nil || *y.Int64 != 7 {
		t.Errorf("int repr: %v", y)
	}
	y = fromNumber(json.Number("1.25"))
	if y.Float64 == nil || *y.Float64 != 1.25 {
		t.Errorf("float repr: %v", y)
	}
	y = fromNumber(json.Number("123456789012345678901234567890"))
	if y.Int64 != nil {
		t.Errorf("big int got int64 repr")
	}
}
