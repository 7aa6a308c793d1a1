package linearmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/linearmap"
)

func TestEmptyMapInsertFind(t *testing.T) {
	m := linearmap.New[int, int]()
	require.True(t, m.Insert(1, 2))
	require.Equal(t, 2, m.Get(1))
	require.True(t, m.Insert(2, 4))
	require.Equal(t, 4, m.Get(2))
}

func TestInsertOverwrite(t *testing.T) {
	m := linearmap.New[int, int]()
	require.True(t, m.Insert(1, 2))
	require.False(t, m.Insert(1, 3))
	require.Equal(t, 3, m.Get(1))
	require.Equal(t, 1, m.Len())
}

func TestGetMissingKeyPanics(t *testing.T) {
	m := linearmap.New[int, int]()
	assert.Panics(t, func() { m.Get(1) })
}

func TestRemoveIdempotence(t *testing.T) {
	m := linearmap.New[string, int]()
	m.Insert("a", 1)
	require.True(t, m.Remove("a"))
	require.False(t, m.Remove("a"))
	require.False(t, m.Contains("a"))
}

func TestPopAndSwap(t *testing.T) {
	m := linearmap.New[string, int]()
	m.Insert("a", 1)

	v, ok := m.Pop("a")
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.False(t, m.Contains("a"))

	_, ok = m.Pop("a")
	require.False(t, ok)

	old, existed := m.Swap("b", 10)
	require.False(t, existed)
	require.Equal(t, 0, old)
	require.Equal(t, 10, m.Get("b"))

	old, existed = m.Swap("b", 20)
	require.True(t, existed)
	require.Equal(t, 10, old)
	require.Equal(t, 20, m.Get("b"))
}

func TestGrowthPreservesContents(t *testing.T) {
	m := linearmap.New[int, int]()
	const n = 4096
	for i := 0; i < n; i++ {
		require.True(t, m.Insert(i, i*i))
	}
	require.Equal(t, n, m.Len())
	for i := 0; i < n; i++ {
		v, ok := m.Find(i)
		require.True(t, ok, "key %d should be findable after growth", i)
		require.Equal(t, i*i, v)
	}
	require.Greater(t, m.Cap(), 32, "table should have grown past its minimum capacity")
}

func TestSizeMatchesIteration(t *testing.T) {
	m := linearmap.New[int, int]()
	for i := 0; i < 200; i++ {
		m.Insert(i, i)
	}
	for i := 0; i < 200; i += 3 {
		m.Remove(i)
	}
	count := 0
	m.ForEach(func(k, v int) bool {
		count++
		return true
	})
	require.Equal(t, m.Len(), count)
}

func TestForEachEarlyStop(t *testing.T) {
	m := linearmap.New[int, int]()
	for i := 0; i < 10; i++ {
		m.Insert(i, i)
	}
	visited := 0
	m.ForEach(func(k, v int) bool {
		visited++
		return false
	})
	require.Equal(t, 1, visited)
}

func TestDrainEmptiesTheMapAndHandsOverEveryEntry(t *testing.T) {
	m := linearmap.New[int, string]()
	want := map[int]string{1: "a", 2: "b", 3: "c"}
	for k, v := range want {
		m.Insert(k, v)
	}

	got := map[int]string{}
	m.Drain(func(k int, v string) {
		got[k] = v
	})

	require.Equal(t, want, got)
	require.Equal(t, 0, m.Len())
	require.False(t, m.Contains(1))
}

func TestDrainLeavesConsistentMapOnPanic(t *testing.T) {
	m := linearmap.New[int, int]()
	m.Insert(1, 1)
	m.Insert(2, 2)

	func() {
		defer func() { recover() }()
		m.Drain(func(k, v int) {
			panic("boom")
		})
	}()

	require.Equal(t, 0, m.Len())
	require.False(t, m.Contains(1))
	require.False(t, m.Contains(2))
}

func TestEqualityIgnoresInsertionOrder(t *testing.T) {
	a := linearmap.New[int, string]()
	a.Insert(1, "x")
	a.Insert(2, "y")
	a.Insert(3, "z")

	b := linearmap.New[int, string]()
	b.Insert(3, "z")
	b.Insert(1, "x")
	b.Insert(2, "y")

	require.True(t, linearmap.Equal(a, b))

	b.Insert(4, "w")
	require.False(t, linearmap.Equal(a, b))
}

func TestForEachPanicsOnMutationFromWithinVisit(t *testing.T) {
	m := linearmap.New[int, int]()
	m.Insert(1, 1)
	m.Insert(2, 2)

	assert.Panics(t, func() {
		m.ForEach(func(k, v int) bool {
			m.Insert(3, 3)
			return true
		})
	})
}

func TestForEachAllowsNestedReadOnlyIteration(t *testing.T) {
	m := linearmap.New[int, int]()
	m.Insert(1, 1)
	m.Insert(2, 2)

	outer := 0
	require.NotPanics(t, func() {
		m.ForEach(func(k, v int) bool {
			inner := 0
			m.ForEach(func(k2, v2 int) bool {
				inner++
				return true
			})
			require.Equal(t, 2, inner)
			outer++
			return true
		})
	})
	require.Equal(t, 2, outer)
}

func TestDrainPanicsOnMutationFromWithinVisitAndStillEmpties(t *testing.T) {
	m := linearmap.New[int, int]()
	m.Insert(1, 1)
	m.Insert(2, 2)

	func() {
		defer func() { recover() }()
		m.Drain(func(k, v int) {
			m.Remove(1)
		})
	}()

	require.Equal(t, 0, m.Len())
}

func TestMapIsMutableAgainAfterIterationCompletes(t *testing.T) {
	m := linearmap.New[int, int]()
	m.Insert(1, 1)
	m.ForEach(func(k, v int) bool { return true })
	require.True(t, m.Insert(2, 2))
}

func TestReproducibleSeeds(t *testing.T) {
	a := linearmap.WithCapacityAndSeeds[int, int](7, 11, 8)
	b := linearmap.WithCapacityAndSeeds[int, int](7, 11, 8)
	for i := 0; i < 20; i++ {
		a.Insert(i, i)
		b.Insert(i, i)
	}
	require.True(t, linearmap.Equal(a, b))
}
