package orderedset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollapsesDuplicatesInFirstOccurrenceOrder(t *testing.T) {
	s := New(1, 6, 4, 3, 6, 1, 4)

	assert.Equal(t, []int{1, 6, 4, 3}, s.Values())
	assert.Equal(t, 4, s.Len())
}

func TestAddIsIdempotent(t *testing.T) {
	s := New("a", "b")
	s.Add("a")
	s.Add("a")

	assert.Equal(t, []string{"a", "b"}, s.Values())
	assert.Equal(t, 2, s.Len())
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	s := New(1, 2)
	s.Remove(99)

	assert.Equal(t, []int{1, 2}, s.Values())
}

func TestSizeAndClear(t *testing.T) {
	s := New(1, 6, 4, 3)
	require.Equal(t, 4, s.Len())
	require.False(t, s.IsEmpty())

	s.Clear()

	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Values())
}

func TestContains(t *testing.T) {
	s := New(1, 2, 3)

	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(99))
}

func TestZeroValueSetUsable(t *testing.T) {
	var s Set[string]

	assert.True(t, s.IsEmpty())
	s.Add("x")
	assert.Equal(t, []string{"x"}, s.Values())
}

func TestKeyMapRoundTripIsLossless(t *testing.T) {
	s := New(7, 3, 9, 1)

	rebuilt := fromKeyMap(s.KeyMap())

	assert.Equal(t, s.Values(), rebuilt.Values())
	assert.True(t, s.Equals(rebuilt))
}

func TestCloneIsIndependent(t *testing.T) {
	s := New(1, 2, 3)
	c := s.Clone()

	c.Add(4)
	c.Remove(1)

	assert.Equal(t, []int{1, 2, 3}, s.Values())
	assert.Equal(t, []int{2, 3, 4}, c.Values())
}

func TestAddAllIsUnionInPlace(t *testing.T) {
	s := New(1, 2)
	s.AddAll(New(2, 3, 4))

	assert.Equal(t, []int{1, 2, 3, 4}, s.Values())

	// existing members keep their positions on repeat
	s.AddAll(New(4, 1))
	assert.Equal(t, []int{1, 2, 3, 4}, s.Values())
}

func TestMutualAddAllMakesSetsEqual(t *testing.T) {
	s := New(1, 2, 5)
	u := New(2, 9)

	s.AddAll(u)
	u.AddAll(s)

	assert.True(t, s.Equals(u))
	assert.True(t, u.Equals(s))
}

func TestRemoveAllIsDifferenceInPlace(t *testing.T) {
	s := New(1, 2, 3, 4)
	s.RemoveAll(New(2, 4, 99))

	assert.Equal(t, []int{1, 3}, s.Values())
}

func TestRemoveAllThenAddAllRestoresMembership(t *testing.T) {
	s := New(1, 2, 3, 4)
	u := New(2, 4) // subset of s
	before := s.Clone()

	s.RemoveAll(u)
	s.AddAll(u)

	assert.True(t, s.Equals(before))
}

func TestRetainAllIsIntersectionInPlace(t *testing.T) {
	s := New(100, 200)
	s.RetainAll(New(200, 300))

	assert.Equal(t, []int{200}, s.Values())
}

func TestRetainAllAgainstNilEmpties(t *testing.T) {
	s := New(1, 2)
	s.RetainAll(nil)

	assert.True(t, s.IsEmpty())
}

func TestContainsAll(t *testing.T) {
	s := New(1, 2, 3)

	assert.True(t, s.ContainsAll(New(3, 1)))
	assert.False(t, s.ContainsAll(New(1, 99)))
	assert.True(t, s.ContainsAll(New[int]()))
	assert.True(t, s.ContainsAll(nil))
}

func TestEqualsIgnoresOrder(t *testing.T) {
	assert.True(t, New(1, 2, 3).Equals(New(3, 2, 1)))
	assert.False(t, New(1, 2).Equals(New(1, 2, 3)))
	assert.False(t, New(1, 2).Equals(New(1, 9)))
}

func TestEqualsTreatsNilAsEmpty(t *testing.T) {
	assert.True(t, New[int]().Equals(nil))
	assert.False(t, New(1).Equals(nil))
}

func TestAllYieldsSyntheticPositions(t *testing.T) {
	s := New("a", "b", "c")
	s.Remove("b") // positions re-index, they are not tied to insertion slots

	positions := []int{}
	members := []string{}
	for i, v := range s.All() {
		positions = append(positions, i)
		members = append(members, v)
	}

	assert.Equal(t, []int{0, 1}, positions)
	assert.Equal(t, []string{"a", "c"}, members)
}

func TestUnionOrdersByFirstOccurrenceAcrossInputs(t *testing.T) {
	u := Union(New(1, 2), New(2, 3), nil, New(4, 1))

	assert.Equal(t, []int{1, 2, 3, 4}, u.Values())
}

func TestIntersectLeavesInputsUntouched(t *testing.T) {
	a := New(100, 200)
	b := New(200, 300)

	got := Intersect(a, b)

	assert.Equal(t, []int{200}, got.Values())
	assert.Equal(t, []int{100, 200}, a.Values())
	assert.Equal(t, []int{200, 300}, b.Values())
}

func TestDifference(t *testing.T) {
	got := Difference(New(1, 2, 3), New(2, 99))

	assert.Equal(t, []int{1, 3}, got.Values())
}
