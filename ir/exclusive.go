package ir

// Ownership of container nodes.
//
// A container is either shared or exclusive. Shared containers may be
// reachable from several document roots at once and must never be mutated
// in place. Exclusive containers were allocated during the patch
// application currently in progress and are reachable from the new root
// only along the spine being mutated, so writing to them cannot be
// observed through any prior reference.
//
// Promotion is shallow: ToExclusive copies a container's immediate
// Fields/Values slices and leaves the children shared. Walking a pointer
// of depth d therefore allocates O(d) nodes, not O(document).
//
// Exclusive nodes form a top-connected set: a node is only ever promoted
// after its parent, so every exclusive node's ancestors on the current
// root's spine are exclusive too. Share relies on this to reseal a tree
// without visiting shared subtrees.

// IsMutable reports whether y may be written in place. Only exclusive
// containers are mutable; leaves are replaced wholesale, never mutated.
func (y *Node) IsMutable() bool {
	return y.exclusive && !y.Type.IsLeaf()
}

// ToExclusive returns y when it is already exclusive or a leaf, and
// otherwise an exclusive shallow copy of y whose children remain shared.
func (y *Node) ToExclusive() *Node {
	if y.exclusive || y.Type.IsLeaf() {
		return y
	}
	res := &Node{
		Type:      y.Type,
		exclusive: true,
	}
	if y.Fields != nil {
		res.Fields = make([]*Node, len(y.Fields))
		copy(res.Fields, y.Fields)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		copy(res.Values, y.Values)
	}
	return res
}

// Clone returns a deep copy of y sharing no structure with it, exclusive
// at every container. Mutating the clone can never be observed through y
// and vice versa.
func (y *Node) Clone() *Node {
	res := &Node{
		Type:      y.Type,
		String:    y.String,
		Bool:      y.Bool,
		Number:    y.Number,
		exclusive: !y.Type.IsLeaf(),
	}
	if y.Int64 != nil {
		i := *y.Int64
		res.Int64 = &i
	}
	if y.Float64 != nil {
		f := *y.Float64
		res.Float64 = &f
	}
	if y.Fields != nil {
		res.Fields = make([]*Node, len(y.Fields))
		for i, yf := range y.Fields {
			res.Fields[i] = yf.Clone()
		}
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			res.Values[i] = yv.Clone()
		}
	}
	return res
}

// Share reseals a tree after a patch application: every exclusive
// container reachable from root becomes shared again, so a later
// application against the result copies its own spine instead of writing
// through nodes some other holder may still reference. Cost is bounded by
// the number of exclusive nodes, since shared subtrees are not entered.
func Share(root *Node) {
	if !root.exclusive {
		return
	}
	root.exclusive = false
	for _, yv := range root.Values {
		Share(yv)
	}
}
