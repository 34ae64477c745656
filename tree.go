package suffixtree

import (
	"fmt"
	"io"
)

// Tree owns the terminated input buffer and the node arena for a single
// built suffix tree. A Tree is immutable once Build returns; multiple
// readers may traverse it concurrently without coordination.
type Tree struct {
	s    []byte
	root *Node

	// nodes is the arena: every node created during Build is appended
	// here and keeps its id for the tree's lifetime. Freeing the tree
	// frees every node with it.
	nodes []*Node

	// newNode communicates between slowScan/fastScan and the outer
	// construction loop: it is set whenever a split lands exactly on the
	// position the loop is probing for.
	newNode bool
}

// Root returns the tree's root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Bytes returns the terminated input buffer S, including the sentinel
// byte. The returned slice is capped to len(S) even though the
// underlying array reserves one extra trailing byte (see Build), so
// appending to it never touches that reserved byte.
func (t *Tree) Bytes() []byte {
	return t.s[:len(t.s):len(t.s)]
}

// Length returns L, the length of S (the user input plus one sentinel
// byte).
func (t *Tree) Length() int {
	return len(t.s)
}

// newArenaNode allocates a node into the tree's arena, assigning it the
// next sequential id. This mirrors the arena/NodeId identity scheme: a
// node's address is stable for the tree's life, and its id gives it a
// small, debuggable identity independent of that address.
func (t *Tree) newArenaNode() *Node {
	n := &Node{id: len(t.nodes)}
	t.nodes = append(t.nodes, n)
	return n
}

// Build constructs a suffix tree over input using McCreight's
// linear-time online algorithm. terminal must be a single byte that does
// not occur anywhere in input; it is appended to input to form the
// terminated buffer S (L = len(input)+1).
//
// Build validates the terminal before allocating anything, matching the
// precondition-first order of the construction this package is modeled
// on: a failed Build leaves no tree behind.
func Build(input []byte, terminal []byte) (tree *Tree, err error) {
	if len(terminal) != 1 {
		return nil, fmt.Errorf("%w: terminal must be exactly one byte, got %d", ErrInvalidTerminal, len(terminal))
	}
	term := terminal[0]
	for _, b := range input {
		if b == term {
			return nil, fmt.Errorf("%w: terminal byte %q occurs in input", ErrInvalidTerminal, term)
		}
	}

	defer func() {
		if r := recover(); r != nil {
			tree = nil
			err = fmt.Errorf("%w: %v", ErrOutOfMemory, r)
		}
	}()

	s := make([]byte, len(input)+1, len(input)+2)
	copy(s, input)
	s[len(input)] = term

	t := &Tree{s: s}
	build(t)
	return t, nil
}

// Dump writes a depth-indented pretty-print of the tree to w, modeled on
// a structural debug dumper rather than a logging call: this library has
// no request lifecycle to log against, only a tree to inspect.
func (t *Tree) Dump(w io.Writer) {
	dumpNode(w, t.s, t.root, 0)
}

func dumpNode(w io.Writer, s []byte, n *Node, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	label := ""
	if n.start >= 0 {
		label = string(s[n.start : n.end+1])
	}
	fmt.Fprintf(w, "%sid=%d depth=%d edge=%q termNumber=%d leaf=%v\n",
		indent, n.id, n.depth, label, n.termNumber, n.IsLeaf())
	for c := n.firstChild; c != nil; c = c.next {
		dumpNode(w, s, c, depth+1)
	}
}
