package radix

import (
	"sort"
	"testing"
)

func TestLabelIterVisitsEveryNonRootLabel(t *testing.T) {
	root := buildSample(t)
	it := newLabelIter(root, 4)

	var labels []string
	for {
		l, ok := it.Next()
		if !ok {
			break
		}
		labels = append(labels, string(l))
	}
	sort.Strings(labels)

	want := []string{"an", "d", "hem", "i", "ion", "t"}
	if len(labels) != len(want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("labels = %v, want %v", labels, want)
		}
	}
	if it.SizeHint() != 4 {
		t.Fatalf("SizeHint() = %d, want 4", it.SizeHint())
	}
}

func TestValueIterVisitsOnlyKeyNodes(t *testing.T) {
	root := buildSample(t)
	it := newValueIter(root, 4)

	var values []int
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		values = append(values, v)
	}
	sort.Ints(values)
	want := []int{1, 2, 7, 77}
	if len(values) != len(want) {
		t.Fatalf("values = %v, want %v", values, want)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Fatalf("values = %v, want %v", values, want)
		}
	}
}

func TestValueMutIterMutatesInPlace(t *testing.T) {
	root := buildSample(t)
	it := newValueMutIter(root, 4)

	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		*v *= 10
	}

	res := traverseSearch(root, []byte("anthem"))
	if res.node.value != 10 {
		t.Fatalf("anthem value after mutation = %d, want 10", res.node.value)
	}
}

func TestLeafPairIter(t *testing.T) {
	root := buildSample(t)
	it := newLeafPairIter(root, 4)

	seen := map[string]int{}
	for {
		label, value, ok := it.Next()
		if !ok {
			break
		}
		seen[string(label)] = value
	}
	want := map[string]int{"d": 77, "ion": 7, "i": 2, "hem": 1}
	if len(seen) != len(want) {
		t.Fatalf("leaf pairs = %v, want %v", seen, want)
	}
	for k, v := range want {
		if seen[k] != v {
			t.Fatalf("leaf pairs = %v, want %v", seen, want)
		}
	}
}

func TestOwningIterOnEmptyTrieEndsImmediately(t *testing.T) {
	it := newOwningIter[int](nil, 0)
	if _, ok := it.Next(); ok {
		t.Fatalf("iterator over an empty trie should end immediately")
	}
}
