package radix

// directiveKind is the alphabet of stackless top-down operations the
// executor replays (spec.md §4.4). mergeTemp is scratch-only and never
// appears in a finished plan; it is tracked as a plain local variable
// during capture instead of being pushed onto the plan slice, which keeps
// the final plan exactly the directive sequence spec.md §8's S5-S7 assert
// against.
type directiveKind int

const (
	dUnmark directiveKind = iota
	dPrune
	dMerge
	dKeep
)

// directive is one entry of a delete plan. level identifies the node it
// applies to by depth from the root (root = 0). edgeKey is the edge byte
// used by Prune/Keep, and by Merge as the child edge c; grandchildKey is
// Merge's grandchild edge g.
type directive struct {
	kind          directiveKind
	level         int
	edgeKey       byte
	grandchildKey byte
}

// pending tracks the planner's running decision about what the *next*
// ancestor frame's directive should be, per spec.md §4.4's three-way
// classification (Prune / Merge / Noop).
type pending int

const (
	pendingNoop pending = iota
	pendingPrune
	pendingMerge
)

// capturePlan is the delete planner (C4). It runs an immutable Fold
// traversal and synthesizes a replay plan: a slice of directives built in
// the order discovered while walking from the matched node back up to the
// root (deepest directive first, root-level directive last — see
// SPEC_FULL.md §4). Returns ok=false if the token does not name an existing
// key.
func capturePlan[V any](root *node[V], token []byte) (plan []directive, ok bool) {
	stack, found := traverseFold(root, token)
	if !found {
		return nil, false
	}

	target := stack[len(stack)-1]
	stack = stack[:len(stack)-1]

	if !target.node.isKey() {
		return nil, false
	}

	plan = append(plan, directive{kind: dUnmark, level: target.level})

	var act pending
	var mergeGrandchild byte

	switch target.node.kind() {
	case edgeNone:
		act = pendingPrune
	case edgeSingle:
		mergeGrandchild = target.node.soleEdgeKey()
		act = pendingMerge
	case edgeBranching:
		act = pendingNoop
	}

	for len(stack) > 0 {
		a := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !a.hasNext {
			panic("radix: delete planner frame missing next-edge backfill")
		}

		switch act {
		case pendingPrune:
			plan = append(plan, directive{kind: dPrune, level: a.level, edgeKey: a.nextKey})
		case pendingMerge:
			plan = append(plan, directive{kind: dMerge, level: a.level, edgeKey: a.nextKey, grandchildKey: mergeGrandchild})
		case pendingNoop:
			plan = append(plan, directive{kind: dKeep, level: a.level, edgeKey: a.nextKey})
		}

		// Secondary-merge trigger (spec.md §4.4, §9 open question): fires
		// exactly when the directive just emitted was a Prune and the
		// ancestor it applied to is an Inner node left with a single
		// surviving edge (i.e. was Branching(2) before the prune).
		if act == pendingPrune && !a.node.isKey() && a.node.kind() == edgeBranching && len(a.node.edges) == 2 {
			mergeGrandchild = a.node.otherEdgeKey(a.nextKey)
			act = pendingMerge
		} else {
			act = pendingNoop
		}
	}

	if len(plan) == 0 {
		return nil, false
	}
	return plan, true
}

// executeDelete is the delete executor (C5). It consumes a capturePlan
// result in one top-down mutable walk from the root. The plan is stored in
// reverse-of-execution order (see capturePlan doc), so the executor walks
// it from the end backward, which yields increasing levels starting at the
// root — exactly the order the guard i == counter in spec.md §4.5 expects.
func executeDelete[V any](root *node[V], plan []directive) (removed V, ok bool) {
	current := root
	counter := 0

	for i := len(plan) - 1; i >= 0; i-- {
		d := plan[i]
		if d.level != counter {
			panic("radix: delete plan level/counter mismatch")
		}

		switch d.kind {
		case dKeep:
			child, found := current.getEdge(d.edgeKey)
			if !found {
				panic("radix: delete plan keep edge missing")
			}
			current = child
		case dMerge:
			current = passthroughMerge(current, d.edgeKey, d.grandchildKey)
		case dPrune:
			child := current.takeEdge(d.edgeKey)
			if child == nil {
				panic("radix: delete plan prune edge missing")
			}
			current = child
		case dUnmark:
			if current.tag != tagKey {
				panic("radix: delete plan unmark on non-key node")
			}
			removed = current.value
			ok = true
			current.tag = tagInner
			var zero V
			current.value = zero
		default:
			panic("radix: unknown delete directive")
		}

		counter++
	}

	return removed, ok
}

// passthroughMerge performs the compression step described in spec.md
// §4.5: detach child Y (keyed by childEdge) from C, detach Y's child Y'
// (keyed by grandchildEdge), prepend Y's label to the label of Y',
// and reinsert Y' into C under childEdge (still valid, since childEdge is
// Y's former label's first byte, which survives the concatenation).
//
// Returns Y, now fully detached from the tree. The executor advances its
// cursor into Y rather than Y', because any remaining plan directives
// still describe positions along the pre-merge path — either deeper inside
// Y's surviving edges ("merge before prune"), or Y itself is the very node
// about to be unmarked ("merge without prune").
func passthroughMerge[V any](c *node[V], childEdge, grandchildEdge byte) *node[V] {
	y := c.takeEdge(childEdge)
	yPrime := y.takeEdge(grandchildEdge)

	yPrime.label = concatLabels(y.label, yPrime.label)
	c.setEdge(childEdge, yPrime)

	return y
}
