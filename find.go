package suffixtree

// Find descends from the root following pattern byte by byte and
// returns the highest node whose path label has pattern as a prefix:
// the node where the pattern is exhausted, or, when the pattern is
// exhausted partway along an edge, the node that edge leads into.
//
// An empty pattern returns the root. If pattern is not a substring of
// the tree's string, Find returns (nil, false). When it returns
// (v, true), the termNumbers of the leaves in v's subtree are exactly
// the starting positions of pattern's occurrences in S.
//
// This mirrors the three-way case split of the original recursive
// find_helper (pattern exhausted mid-edge, pattern exhausted exactly at
// an edge boundary with more to match, mismatch/no matching child) but
// is written iteratively, in the teacher's iterative-traversal style.
func (t *Tree) Find(pattern []byte) (*Node, bool) {
	if len(pattern) == 0 {
		return t.root, true
	}

	s := t.s
	n := t.root
	i := 0
	for i < len(pattern) {
		c := childWithFirstByte(s, n, pattern[i])
		if c == nil {
			return nil, false
		}
		k := 0
		edgeLen := c.edgeLen()
		for k < edgeLen {
			if i >= len(pattern) {
				return c, true
			}
			if s[c.start+k] != pattern[i] {
				return nil, false
			}
			k++
			i++
		}
		n = c
	}
	return n, true
}
