package suffixtree

// Node is a single node of a suffix tree. The root is the only node with
// no incoming edge label (start == end == -1). Every other node carries
// the byte range [start, end] (inclusive on both ends) of its incoming
// edge label into S.
//
// Fields are frozen once Build returns: parent, start, end, depth,
// termNumber, suffixLink, and the sibling/child links never change
// after that (during Build, edge splits and suffix-link installation
// still update them). Node identity is pointer identity — the
// same *Node is always returned for the same tree position.
type Node struct {
	id int

	parent *Node
	start  int
	end    int
	depth  int

	// termNumber is the start index of the suffix this leaf represents,
	// or — for an internal node — the termNumber of some descendant
	// leaf, used as a witness for path-label reconstruction (invariant
	// 6: S[termNumber .. termNumber+depth-1] == path label of the node).
	termNumber int

	// suffixLink is nil for leaves. The root's suffix link points to
	// itself.
	suffixLink *Node

	firstChild *Node
	lastChild  *Node

	prev *Node
	next *Node
}

// IsLeaf reports whether v has no children.
func (v *Node) IsLeaf() bool {
	return v.firstChild == nil
}

// Start returns the starting index of v's incoming edge label, or -1 for
// the root.
func (v *Node) Start() int {
	return v.start
}

// End returns the ending index (inclusive) of v's incoming edge label,
// or -1 for the root.
func (v *Node) End() int {
	return v.end
}

// Index returns v's termNumber: for a leaf, the start index of the
// suffix it represents; for an internal node, the termNumber of some
// descendant leaf.
func (v *Node) Index() int {
	return v.termNumber
}

// StringDepth returns the length of the path label from the root to v.
func (v *Node) StringDepth() int {
	return v.depth
}

// Parent returns v's parent, or nil for the root.
func (v *Node) Parent() *Node {
	return v.parent
}

// Next returns v's next sibling in insertion order, or nil if v is the
// last child of its parent.
func (v *Node) Next() *Node {
	return v.next
}

// Prev returns v's previous sibling in insertion order, or nil if v is
// the first child of its parent.
func (v *Node) Prev() *Node {
	return v.prev
}

// FirstChild returns v's first child in insertion order, or nil if v is
// a leaf.
func (v *Node) FirstChild() *Node {
	return v.firstChild
}

// LastChild returns v's last child in insertion order, or nil if v is a
// leaf.
func (v *Node) LastChild() *Node {
	return v.lastChild
}

// edgeLen returns the length of v's incoming edge label. It is zero for
// the root.
func (v *Node) edgeLen() int {
	if v.start < 0 {
		return 0
	}
	return v.end - v.start + 1
}
