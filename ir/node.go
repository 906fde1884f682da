package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Node represents a single JSON value. The IR works as a recursive tagged
// union structure, where values are placed in fields depending on the node
// type.
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i], so
// there will always be the same number of fields as values. Field order is
// insertion order and is preserved through encoding; it does not participate
// in equality.
//
// Number values are placed under:
//   - Int64: if it is an integer (64-bit signed)
//   - Float64: if it is a floating point number (64-bit IEEE float)
//   - Number: as a string fallback if neither Int64 nor Float64 can represent it
//
// Container nodes additionally carry an ownership tag, see exclusive.go.
type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64

	exclusive bool
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromSlice(vs []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(vs)),
	}
	copy(res.Values, vs)
	return res
}

// FromMap builds an object node with the keys in sorted order, giving a
// deterministic field order for map inputs which have none.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, 0, len(m))
	res.Values = make([]*Node, 0, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Fields = append(res.Fields, FromString(key))
		res.Values = append(res.Values, m[key])
	}
	return res
}

// Get returns the value at field in an object node, or nil if absent.
func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// FieldIndex returns the index of field in an object node, or -1.
func (y *Node) FieldIndex(field string) int {
	for i := range y.Fields {
		if y.Fields[i].String == field {
			return i
		}
	}
	return -1
}

// FromAny converts a decoded value into a node. It accepts the shapes
// produced by encoding/json (with or without UseNumber) and goccy/go-yaml:
// map[string]any, []any, string, bool, json.Number, float64, int, int64,
// uint64 and nil. Anything else fails with ErrInvalidObjectType.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case json.Number:
		return fromNumber(x), nil
	case float64:
		return FromFloat(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint64:
		if x <= math.MaxInt64 {
			return FromInt(int64(x)), nil
		}
		return fromNumber(json.Number(strconv.FormatUint(x, 10))), nil
	case []any:
		vs := make([]*Node, len(x))
		for i, elt := range x {
			y, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			vs[i] = y
		}
		return FromSlice(vs), nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, elt := range x {
			y, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			m[k] = y
		}
		return FromMap(m), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidObjectType, v)
	}
}

func fromNumber(num json.Number) *Node {
	if i, err := num.Int64(); err == nil {
		return FromInt(i)
	}
	s := num.String()
	if !strings.ContainsAny(s, ".eE") {
		// an integer beyond int64, kept exact in literal form
		return &Node{Type: NumberType, Number: s}
	}
	if f, err := num.Float64(); err == nil {
		return FromFloat(f)
	}
	return &Node{Type: NumberType, Number: s}
}

// ToAny converts a node back into plain decoded-JSON shapes. Object field
// order is lost, as map[string]any has none.
func ToAny(y *Node) any {
	switch y.Type {
	case ObjectType:
		n := len(y.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[y.Fields[i].String] = ToAny(y.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, elt := range y.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return json.Number(y.Number)
	case BoolType:
		return y.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}
