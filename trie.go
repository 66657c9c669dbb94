package radix

// Trie is the outer handle: an optional root node plus a size counter
// (spec.md §3/§6). It is the only exported entry point; Node itself is an
// internal implementation detail so that the structural-surgery invariants
// in spec.md §3 can never be violated from outside the package.
type Trie[V any] struct {
	root *node[V]
	size int
}

// Pair is one (key, value) input to NewFromPairs.
type Pair[V any] struct {
	Key   []byte
	Value V
}

// New returns an empty Trie.
func New[V any]() *Trie[V] {
	return &Trie[V]{}
}

// NewFromPairs builds a Trie from a finite sequence of pairs, inserting
// each in order; later insertions overwrite earlier ones for the same key.
func NewFromPairs[V any](pairs ...Pair[V]) *Trie[V] {
	t := New[V]()
	for _, p := range pairs {
		t.Insert(p.Key, p.Value)
	}
	return t
}

// IsEmpty reports whether the trie holds no keys.
func (t *Trie[V]) IsEmpty() bool { return t.size == 0 }

// Len returns the number of keys stored in the trie.
func (t *Trie[V]) Len() int { return t.size }

// Clear releases the root and resets the size counter.
func (t *Trie[V]) Clear() {
	t.root = nil
	t.size = 0
}

// Search looks up token, returning its value and true if present.
func (t *Trie[V]) Search(token []byte) (value V, ok bool) {
	if t.root == nil || len(token) == 0 {
		return value, false
	}
	res := traverseSearch(t.root, token)
	if res.kind == terminalExact && res.isKey {
		return res.node.value, true
	}
	return value, false
}

// Insert adds or updates token's value. It returns the replaced value and
// true if token already existed; size is incremented iff it did not.
func (t *Trie[V]) Insert(token []byte, value V) (old V, hadOld bool) {
	if len(token) == 0 {
		return old, false
	}
	if t.root == nil {
		t.root = newInnerNode[V](nil)
	}
	old, hadOld = insert(t.root, token, value)
	if !hadOld {
		t.size++
	}
	return old, hadOld
}

// Remove deletes token, returning its value and true if it was present;
// size is decremented iff it was.
func (t *Trie[V]) Remove(token []byte) (removed V, ok bool) {
	if t.root == nil || len(token) == 0 {
		return removed, false
	}
	plan, found := capturePlan(t.root, token)
	if !found {
		return removed, false
	}
	removed, ok = executeDelete(t.root, plan)
	if ok {
		t.size--
	}
	return removed, ok
}

// LongestPrefix returns the longest key in the trie that is a prefix of
// token, or ok=false if none exists.
func (t *Trie[V]) LongestPrefix(token []byte) (key []byte, ok bool) {
	if t.root == nil || len(token) == 0 {
		return nil, false
	}
	return longestPrefix(t.root, token)
}

// AllKeys returns every inserted key that has prefix as a prefix, or
// ok=false if prefix is not present even partially. An empty prefix also
// returns ok=false.
func (t *Trie[V]) AllKeys(prefix []byte) (keys [][]byte, ok bool) {
	if t.root == nil || len(prefix) == 0 {
		return nil, false
	}
	return allKeys(t.root, prefix)
}

// Keys returns an iterator over the trie's edge labels.
func (t *Trie[V]) Keys() *LabelIter[V] { return newLabelIter(t.root, t.size) }

// Values returns an iterator over the trie's values.
func (t *Trie[V]) Values() *ValueIter[V] { return newValueIter(t.root, t.size) }

// ValuesMut returns a mutable iterator over the trie's values.
func (t *Trie[V]) ValuesMut() *ValueMutIter[V] { return newValueMutIter(t.root, t.size) }

// LeafPairs returns an iterator over (label, value) pairs.
func (t *Trie[V]) LeafPairs() *LeafPairIter[V] { return newLeafPairIter(t.root, t.size) }

// LeafPairsMut returns a mutable iterator over (label, value) pairs.
func (t *Trie[V]) LeafPairsMut() *LeafPairIterMut[V] { return newLeafPairIterMut(t.root, t.size) }

// IntoIter consumes the trie, returning an owning iterator over its values.
// After calling IntoIter, t is reset to empty.
func (t *Trie[V]) IntoIter() *OwningIter[V] {
	root, size := t.root, t.size
	t.root = nil
	t.size = 0
	return newOwningIter(root, size)
}
