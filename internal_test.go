package linearmap

import "testing"

// identityHash returns an int hasher that returns the key unchanged,
// ignoring the seeds. It exists purely so that white-box tests can force
// specific, reproducible probe collisions without depending on the exact
// output of the production hashers in package linearmap/hash.
func identityHash(k int, _, _ uint64) uint64 { return uint64(k) }

// newTestMap builds a Map at an arbitrary (possibly sub-minimum) capacity
// for exercising the probe/search/remove internals directly, the way the
// exported constructors never allow a caller to. Capacity must be a power
// of two.
func newTestMap(capacity int) *Map[int, int] {
	return &Map[int, int]{
		hasher:   identityHash,
		slots:    make([]slot[int, int], capacity),
		resizeAt: resizeAt(capacity),
	}
}

// TestProbeConflictsAndChainRepair exercises spec scenarios 3 and 4: three
// keys that all start their probe at slot 1 of a 4-slot table, then
// removing the first of them must not strand the other two.
func TestProbeConflictsAndChainRepair(t *testing.T) {
	m := newTestMap(4)

	if !m.Insert(1, 2) {
		t.Fatal("insert(1, 2) should report newly added")
	}
	if !m.Insert(5, 3) {
		t.Fatal("insert(5, 3) should report newly added")
	}
	if !m.Insert(9, 4) {
		t.Fatal("insert(9, 4) should report newly added")
	}

	if v := m.Get(1); v != 2 {
		t.Fatalf("get(1) = %d, want 2", v)
	}
	if v := m.Get(5); v != 3 {
		t.Fatalf("get(5) = %d, want 3", v)
	}
	if v := m.Get(9); v != 4 {
		t.Fatalf("get(9) = %d, want 4", v)
	}

	if !m.Remove(1) {
		t.Fatal("remove(1) should report present")
	}
	if v := m.Get(5); v != 3 {
		t.Fatalf("after remove(1): get(5) = %d, want 3", v)
	}
	if v := m.Get(9); v != 4 {
		t.Fatalf("after remove(1): get(9) = %d, want 4", v)
	}
}

func TestSearchTableFullIsInternalError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected insert on a full table to panic")
		}
	}()
	m := newTestMap(4)
	// Bypass resizeAt (3) by writing directly into the slots, simulating a
	// corrupted table where every slot is occupied and the key is absent.
	for i := range m.slots {
		m.slots[i] = slot[int, int]{hash: uint64(i), key: i, value: i, used: true}
	}
	m.size = len(m.slots)
	m.resizeAt = len(m.slots) // prevent grow() from firing first
	m.insertWithHash(99, 99, 99)
}
