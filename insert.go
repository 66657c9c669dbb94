package radix

// insert implements the insertion engine (spec.md §4.3): an iterative
// descent driven by traverseMatch that either reuses an existing child,
// bridge-splits an edge, or appends a brand-new leaf. Returns the previous
// value and true if the key already existed (insert replaced its value
// rather than creating a new Key node).
func insert[V any](root *node[V], token []byte, value V) (old V, hadOld bool) {
	current := root
	search := token

	for {
		m := traverseMatch(current, search)

		if !m.found {
			// No edge at all: install a brand-new Key child labelled with
			// the entire remaining token.
			leaf := newKeyNode(append([]byte(nil), search...), value)
			current.setEdge(search[0], leaf)
			return old, false
		}

		switch m.residual {
		case residualEmpty:
			current = m.child
			return finalizeInsert(current, value)
		case residualOnlyToken:
			current = m.child
			search = m.tokenSuffix
		case residualOnlyEdge:
			bridge := bridgeSplit(current, m.edgeKey, m.common, m.edgeSuffix)
			current = bridge
			return finalizeInsert(current, value)
		case residualBothEdgeToken:
			bridge := bridgeSplit(current, m.edgeKey, m.common, m.edgeSuffix)
			current = bridge
			search = m.tokenSuffix
		}
	}
}

// bridgeSplit splits the edge byteKey -> oldChild at common-prefix length
// len(common), per spec.md §4.3's bridge-split protocol:
//  1. Detach oldChild from the parent.
//  2. Rewrite oldChild.label to its residual suffix.
//  3. Create a new Inner bridge node labelled with the common prefix.
//  4. Insert oldChild under the bridge, keyed by its new label's first byte.
//  5. Attach the bridge to the parent under the original byteKey.
func bridgeSplit[V any](parent *node[V], byteKey byte, common, oldSuffix []byte) *node[V] {
	if len(common) == 0 || len(oldSuffix) == 0 {
		panic("radix: bridge-split with empty common prefix or empty edge suffix")
	}

	oldChild := parent.takeEdge(byteKey)

	bridge := newInnerNode[V](common)
	oldChild.label = oldSuffix
	bridge.setEdge(oldSuffix[0], oldChild)

	parent.setEdge(byteKey, bridge)
	return bridge
}

// finalizeInsert writes value into target, completing the insertion engine's
// "finalization at the target node" step. If target is Inner, it is
// retagged Key and size should be incremented by the caller (hadOld=false).
// If target is already Key, its value is swapped and the previous value
// returned (hadOld=true); children and label are untouched.
func finalizeInsert[V any](target *node[V], value V) (old V, hadOld bool) {
	if target.tag == tagKey {
		old = target.value
		target.value = value
		return old, true
	}
	target.tag = tagKey
	target.value = value
	return old, false
}
