package suffixtree

// EdgeLabel returns v's incoming edge label, S[v.Start()..v.End()]. It is
// empty for the root.
//
// The returned slice is capped to its own length (a three-index slice
// expression) so that appending to it can never silently overwrite an
// adjacent edge's bytes in the tree's shared buffer.
func (t *Tree) EdgeLabel(v *Node) []byte {
	if v.start < 0 {
		return nil
	}
	return t.s[v.start : v.end+1 : v.end+1]
}

// PathLabel returns the concatenation of edge labels from the root to
// v, i.e. S[v.Index() .. v.Index()+v.StringDepth()-1]. It has length
// v.StringDepth(). Capped to its own length; see EdgeLabel.
func (t *Tree) PathLabel(v *Node) []byte {
	end := v.termNumber + v.depth
	return t.s[v.termNumber:end:end]
}

// Suffix returns S[v.Index()..] for a non-root node, or the full buffer
// S for the root. Capped to its own length; see EdgeLabel.
func (t *Tree) Suffix(v *Node) []byte {
	if v == t.root {
		return t.s[:len(t.s):len(t.s)]
	}
	end := len(t.s)
	return t.s[v.termNumber:end:end]
}
