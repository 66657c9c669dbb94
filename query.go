package radix

// longestPrefix implements the C6 query helper described in spec.md §4.6:
// run traverse(..., FoldOrPartial), then scan the resulting path stack from
// the deepest frame back toward the root for the deepest Key node. Its
// ancestors' labels (from level 1, skipping the root's empty label) plus
// its own label, concatenated, is the longest key in the trie that is a
// prefix of token.
func longestPrefix[V any](root *node[V], token []byte) ([]byte, bool) {
	stack, ok := traverseFoldOrPartial(root, token)
	if !ok {
		return nil, false
	}

	for i := len(stack) - 1; i >= 1; i-- {
		if !stack[i].node.isKey() {
			continue
		}
		var out []byte
		for j := 1; j <= i; j++ {
			out = append(out, stack[j].label...)
		}
		return out, true
	}
	return nil, false
}

// allKeys implements the C6 query helper described in spec.md §4.6: run
// traverse(..., Search) to locate the subtree rooted at (or inside) the
// node reached by prefix, then BFS that subtree collecting the full byte
// string of every Key node found, seeded with prefix (plus any residual
// edge suffix if the search ended mid-label).
func allKeys[V any](root *node[V], prefix []byte) ([][]byte, bool) {
	res := traverseSearch(root, prefix)
	if res.kind == terminalNone {
		return nil, false
	}

	seed := append([]byte(nil), prefix...)
	if res.kind == terminalPartial {
		seed = append(seed, res.suffix...)
	}

	type queued struct {
		n     *node[V]
		bytes []byte
	}
	queue := []queued{{n: res.node, bytes: seed}}

	var out [][]byte
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, child := range cur.n.edges {
			childBytes := make([]byte, len(cur.bytes), len(cur.bytes)+len(child.label))
			copy(childBytes, cur.bytes)
			childBytes = append(childBytes, child.label...)
			queue = append(queue, queued{n: child, bytes: childBytes})
		}

		if cur.n.isKey() {
			out = append(out, cur.bytes)
		}
	}

	return out, true
}
