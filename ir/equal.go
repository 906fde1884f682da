package ir

import "math/big"

// Equal reports structural equality of two nodes: null equals null, bools
// compare by truth value, numbers by numeric value regardless of integer
// or floating representation, strings by exact code sequence, arrays
// pairwise in order, and objects by key set with no regard to field order.
// Bool never equals a number, so true is distinct from 1.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case StringType:
		return a.String == b.String
	case NumberType:
		return equalNumbers(a, b)
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			bv := Get(b, a.Fields[i].String)
			if bv == nil {
				return false
			}
			if !Equal(a.Values[i], bv) {
				return false
			}
		}
		return true
	default:
		panic("type")
	}
}

func equalNumbers(a, b *Node) bool {
	if a.Int64 != nil && b.Int64 != nil {
		return *a.Int64 == *b.Int64
	}
	if a.Float64 != nil && b.Float64 != nil {
		return *a.Float64 == *b.Float64
	}
	// mixed representations compare by exact numeric value
	ra, oka := ratOf(a)
	rb, okb := ratOf(b)
	if !oka || !okb {
		return false
	}
	return ra.Cmp(rb) == 0
}

func ratOf(y *Node) (*big.Rat, bool) {
	switch {
	case y.Int64 != nil:
		return new(big.Rat).SetInt64(*y.Int64), true
	case y.Float64 != nil:
		r := new(big.Rat).SetFloat64(*y.Float64)
		return r, r != nil
	default:
		return new(big.Rat).SetString(y.Number)
	}
}
