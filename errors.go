package suffixtree

import "errors"

// ErrInvalidTerminal is returned by Build when the terminal byte is not
// exactly one byte, or when it occurs somewhere inside the input.
var ErrInvalidTerminal = errors.New("suffixtree: invalid terminal byte")

// ErrOutOfMemory is returned by Build when allocating the terminated
// input buffer or the node arena fails.
var ErrOutOfMemory = errors.New("suffixtree: out of memory")
