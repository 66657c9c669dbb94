// Package radix implements an in-memory compressed (radix/PATRICIA) trie:
// an associative container keyed by arbitrary byte sequences. Sibling edges
// are dispatched through a map, so iteration order is not defined.
//
// The trie supports insertion, lookup, removal, longest-prefix matching,
// prefix enumeration, and several DFS-based traversals. It is
// single-threaded and non-reentrant: at most one mutating path into the
// structure is live at a time, and it performs no I/O and holds no
// persistent state.
//
// The implementation's central trick is the insert/remove asymmetry: insert
// is a simple iterative descent, but remove has no parent pointers to walk
// back up once it reaches the target node. Removal is therefore split into
// an immutable planning pass (capturePlan) that records every structural
// decision as a value-only plan, and a mutable replay pass (executeDelete)
// that applies that plan in a single top-down walk.
package radix
