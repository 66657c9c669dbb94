package radix

// residual classifies what is left over after matching a token against one
// edge label, once both are known to share at least one byte.
type residual int

const (
	residualEmpty         residual = iota // label and token both fully consumed
	residualOnlyToken                     // label consumed, token has more bytes
	residualOnlyEdge                      // token consumed mid-label
	residualBothEdgeToken                 // diverge mid-label, token still has bytes
)

// matchStep is the single-step matcher described in spec.md §4.2. Given a
// node and a non-empty token, it looks up the edge keyed by token[0]. found
// is false if there is no such edge.
type matchStep[V any] struct {
	found       bool
	child       *node[V]
	edgeKey     byte
	common      []byte
	residual    residual
	edgeSuffix  []byte
	tokenSuffix []byte
}

func traverseMatch[V any](n *node[V], token []byte) matchStep[V] {
	edgeKey := token[0]
	child, ok := n.getEdge(edgeKey)
	if !ok {
		return matchStep[V]{found: false}
	}

	l := commonPrefixLen(token, child.label)
	common := token[:l]
	edgeSuffix := child.label[l:]
	tokenSuffix := token[l:]

	var r residual
	switch {
	case len(edgeSuffix) == 0 && len(tokenSuffix) == 0:
		r = residualEmpty
	case len(edgeSuffix) == 0:
		r = residualOnlyToken
	case len(tokenSuffix) == 0:
		r = residualOnlyEdge
	default:
		r = residualBothEdgeToken
	}

	return matchStep[V]{
		found:       true,
		child:       child,
		edgeKey:     edgeKey,
		common:      common,
		residual:    r,
		edgeSuffix:  edgeSuffix,
		tokenSuffix: tokenSuffix,
	}
}

// terminalKind distinguishes the two positive outcomes of a Search-mode
// traversal.
type terminalKind int

const (
	terminalNone terminalKind = iota
	terminalExact
	terminalPartial
)

// searchResult is what traverse(..., modeSearch) produces: either nothing,
// an exact terminal node, or a node reached mid-label with a residual edge
// suffix (the query was a strict prefix of the edge label).
type searchResult[V any] struct {
	kind   terminalKind
	isKey  bool
	node   *node[V]
	suffix []byte // only meaningful when kind == terminalPartial
}

// frame is one entry of a Fold/FoldOrPartial path stack: the node matched at
// this level, the label consumed to reach it, its depth, and — backfilled
// once the next level is matched — the first byte of the edge taken out of
// it toward the next frame.
type frame[V any] struct {
	node    *node[V]
	label   []byte
	level   int
	nextKey byte
	hasNext bool
}

// traverseSearch implements traverse(..., modeSearch): descend without
// recording a path, returning the terminal node reached (exact or
// mid-label) or nothing if the token diverges from the tree.
func traverseSearch[V any](root *node[V], token []byte) searchResult[V] {
	current := root
	search := token

	for {
		if len(search) == 0 {
			return searchResult[V]{kind: terminalExact, isKey: current.isKey(), node: current}
		}

		m := traverseMatch(current, search)
		if !m.found {
			return searchResult[V]{}
		}

		switch m.residual {
		case residualEmpty:
			current = m.child
			return searchResult[V]{kind: terminalExact, isKey: current.isKey(), node: current}
		case residualOnlyToken:
			current = m.child
			search = m.tokenSuffix
		case residualOnlyEdge:
			return searchResult[V]{kind: terminalPartial, isKey: m.child.isKey(), node: m.child, suffix: m.edgeSuffix}
		case residualBothEdgeToken:
			return searchResult[V]{}
		}
	}
}

// traverseFold implements traverse(..., modeFold): descend, pushing a frame
// per matched node, requiring the whole token to be consumed by an exact
// label match. Returns ok=false if the token cannot be fully matched.
func traverseFold[V any](root *node[V], token []byte) (stack []frame[V], ok bool) {
	return traverseFoldImpl(root, token, false)
}

// traverseFoldOrPartial implements traverse(..., modeFoldOrPartial): like
// Fold, but a dead end (OnlyEdge or BothEdgeToken residual, or no edge once
// at least one label below the root has matched) returns the stack built so
// far — the longest prefix found.
func traverseFoldOrPartial[V any](root *node[V], token []byte) (stack []frame[V], ok bool) {
	return traverseFoldImpl(root, token, true)
}

func traverseFoldImpl[V any](root *node[V], token []byte, partialOK bool) ([]frame[V], bool) {
	stack := []frame[V]{{node: root, level: 0}}
	current := root
	search := token

	backfillNextKey := func(label []byte) {
		top := &stack[len(stack)-1]
		top.nextKey = label[0]
		top.hasNext = true
	}

	level := 0
	for {
		if len(search) == 0 {
			// Token fully exhausted by the previous iteration's exact match.
			return stack, true
		}

		m := traverseMatch(current, search)
		level++

		if !m.found {
			if partialOK && len(stack) > 1 {
				return stack, true
			}
			return nil, false
		}

		switch m.residual {
		case residualEmpty:
			current = m.child
			backfillNextKey(current.label)
			stack = append(stack, frame[V]{node: current, label: current.label, level: level})
			return stack, true
		case residualOnlyToken:
			current = m.child
			backfillNextKey(current.label)
			stack = append(stack, frame[V]{node: current, label: current.label, level: level})
			search = m.tokenSuffix
		case residualOnlyEdge:
			if partialOK {
				return stack, true
			}
			return nil, false
		case residualBothEdgeToken:
			if partialOK {
				return stack, true
			}
			return nil, false
		}
	}
}
