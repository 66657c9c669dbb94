package radix

import "testing"

// TestInsertBuildsCompressedTrie checks the exact shape spec.md §8's S4
// documents as the "initial labels": {"an","d","hem","i","ion","t"}.
func TestInsertBuildsCompressedTrie(t *testing.T) {
	root := buildSample(t)

	a, ok := root.getEdge('a')
	if !ok || string(a.label) != "an" || a.isKey() {
		t.Fatalf("root->'a' = %+v", a)
	}

	d, ok := a.getEdge('d')
	if !ok || string(d.label) != "d" || !d.isKey() || d.value != 77 {
		t.Fatalf("an->'d' = %+v", d)
	}

	tr, ok := a.getEdge('t')
	if !ok || string(tr.label) != "t" || tr.isKey() {
		t.Fatalf("an->'t' = %+v", tr)
	}

	h, ok := tr.getEdge('h')
	if !ok || string(h.label) != "hem" || !h.isKey() || h.value != 1 {
		t.Fatalf("t->'h' = %+v", h)
	}

	ion, ok := h.getEdge('i')
	if !ok || string(ion.label) != "ion" || !ion.isKey() || ion.value != 7 {
		t.Fatalf("hem->'i' = %+v", ion)
	}

	i, ok := tr.getEdge('i')
	if !ok || string(i.label) != "i" || !i.isKey() || i.value != 2 {
		t.Fatalf("t->'i' = %+v", i)
	}

	if kind := a.kind(); kind != edgeBranching {
		t.Fatalf("'an' node should branch 2 ways, got %v", kind)
	}
	if kind := tr.kind(); kind != edgeBranching {
		t.Fatalf("'t' node should branch 2 ways, got %v", kind)
	}
}

// TestInsertReplaceReturnsOldValue matches S8: reinserting an existing key
// returns the prior value and leaves size untouched (checked at the Trie
// level in trie_test.go; this checks the node-level primitive).
func TestInsertReplaceReturnsOldValue(t *testing.T) {
	root := buildSample(t)

	old, hadOld := insert(root, []byte("anthem"), 98)
	if !hadOld || old != 1 {
		t.Fatalf("insert replace: got old=%d hadOld=%v, want old=1 hadOld=true", old, hadOld)
	}

	res := traverseSearch(root, []byte("anthem"))
	if res.kind != terminalExact || !res.isKey || res.node.value != 98 {
		t.Fatalf("after replace, search(anthem) = %+v", res)
	}
}

func TestInsertIntoEmptyRoot(t *testing.T) {
	root := newInnerNode[string](nil)
	if _, hadOld := insert(root, []byte("x"), "v"); hadOld {
		t.Fatalf("first insert should not report a replacement")
	}
	res := traverseSearch(root, []byte("x"))
	if res.kind != terminalExact || !res.isKey || res.node.value != "v" {
		t.Fatalf("search(x) = %+v", res)
	}
}

func TestBridgeSplitPanicsOnDegenerateInputs(t *testing.T) {
	parent := newInnerNode[int](nil)
	parent.setEdge('a', newKeyNode([]byte("abc"), 1))

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on empty common prefix or empty edge suffix")
		}
	}()
	bridgeSplit[int](parent, 'a', nil, []byte("abc"))
}
