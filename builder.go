package suffixtree

// build runs McCreight's construction over t.s, populating t.root and
// t.nodes. It is the sole place new nodes are created.
func build(t *Tree) {
	s := t.s
	l := len(s)

	root := t.newArenaNode()
	root.parent = nil
	root.start = -1
	root.end = -1
	root.depth = 0
	root.termNumber = 0
	root.suffixLink = root
	t.root = root

	term0 := t.newArenaNode()
	term0.start = 0
	term0.end = l - 1
	term0.depth = l
	term0.termNumber = 0
	appendChild(root, term0)

	headPrev := root
	termPrev := term0

	for i := 1; i < l; i++ {
		t.newNode = false

		var headI *Node
		if headPrev == root {
			headI = slowScan(t, root, termPrev.start+1, termPrev.end)
		} else {
			p := headPrev.parent
			var w *Node
			if p != root {
				w = fastScan(t, p.suffixLink, headPrev.start, headPrev.end)
			} else {
				w = fastScan(t, root, headPrev.start+1, headPrev.end)
			}
			headPrev.suffixLink = w
			if t.newNode {
				headI = w
			} else {
				headI = slowScan(t, w, termPrev.start, termPrev.end)
			}
		}

		termI := t.newArenaNode()
		termI.start = headI.depth + i
		termI.end = l - 1
		termI.depth = l - i
		termI.termNumber = i
		appendChild(headI, termI)

		headPrev = headI
		termPrev = termI
	}
}

// slowScan descends from n, byte by byte, matching s[start..end]
// against edge labels, splitting an edge via insertBefore if the match
// ends partway along one. Returns the node reached (existing or newly
// split).
func slowScan(t *Tree, n *Node, start, end int) *Node {
	s := t.s
	if start > end {
		return n
	}

	c := childWithFirstByte(s, n, s[start])
	if c == nil {
		return n
	}

	tailLen := end - start + 1
	k := 0
	for s[c.start+k] == s[start+k] {
		if k == c.end-c.start {
			// Whole edge matched.
			if k+1 == tailLen {
				return c
			}
			return slowScan(t, c, start+k+1, end)
		}
		if k+1 == tailLen {
			// Tail exhausted mid-edge.
			mid := insertBefore(t, c, c.start+k)
			t.newNode = true
			return mid
		}
		k++
	}
	// Mismatch mid-edge.
	return insertBefore(t, c, c.start+k-1)
}

// fastScan descends from n assuming s[start..end] is known to occur
// along some path from n (the suffix-link guarantee); it checks only the
// first byte of each edge, then skips by edge length.
func fastScan(t *Tree, n *Node, start, end int) *Node {
	s := t.s
	if start > end {
		return n
	}

	x := start
	var c *Node
	for x < end+1 {
		c = childWithFirstByte(s, n, s[x])
		n = c
		x += n.end - n.start + 1
	}
	if x > end+1 {
		mid := insertBefore(t, c, c.end+end-x+1)
		t.newNode = true
		return mid
	}
	return n
}

// insertBefore splits the edge leading into old at position pos (the
// last index of the upper fragment), inserting a fresh internal node
// mid between old.parent and old.
func insertBefore(t *Tree, old *Node, pos int) *Node {
	mid := t.newArenaNode()
	mid.parent = old.parent
	mid.start = old.start
	mid.end = pos
	mid.depth = old.parent.depth + (pos - old.start + 1)
	mid.termNumber = old.termNumber
	mid.suffixLink = nil

	replaceChild(old.parent, old, mid)

	old.start = pos + 1
	appendChild(mid, old)

	return mid
}
