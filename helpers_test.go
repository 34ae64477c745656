package suffixtree

import "sort"

// collectLeaves walks the subtree rooted at n and returns every leaf in
// it, in tree order.
func collectLeaves(n *Node) []*Node {
	if n.IsLeaf() {
		return []*Node{n}
	}
	var out []*Node
	for c := n.firstChild; c != nil; c = c.next {
		out = append(out, collectLeaves(c)...)
	}
	return out
}

// termNumbers returns the sorted termNumber set of a slice of nodes.
func termNumbers(nodes []*Node) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = n.Index()
	}
	sort.Ints(out)
	return out
}

// naiveOccurrences returns every starting offset of pattern within s,
// found by brute-force scanning, used to cross-check Find.
func naiveOccurrences(s, pattern []byte) []int {
	var out []int
	if len(pattern) == 0 {
		return out
	}
	for i := 0; i+len(pattern) <= len(s); i++ {
		match := true
		for j := range pattern {
			if s[i+j] != pattern[j] {
				match = false
				break
			}
		}
		if match {
			out = append(out, i)
		}
	}
	return out
}
