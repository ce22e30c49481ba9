package reaktor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testFoo struct {
	ID   string
	Name string
}

type testBar struct {
	ID   string
	Name string
	Foo  *testFoo
}

type testPlayer struct {
	Name string
}

type testGame struct {
	Team1 *Sequence[*testPlayer]
	Team2 *Sequence[*testPlayer]
}

func TestRecordMutationEmitsSingleChange(t *testing.T) {
	rk := New()
	root := &testBar{ID: "abc", Name: "foo"}
	_, err := rk.Activate(root)
	require.NoError(t, err)

	var changes []Change
	require.NoError(t, rk.On(root, func(c Change) { changes = append(changes, c) }))

	_, err = rk.SetField(root, "Name", "bar")
	require.NoError(t, err)

	require.Len(t, changes, 1)
	require.Equal(t, "Name", changes[0].Key.Render())
	require.Equal(t, "foo", changes[0].Old)
	require.Equal(t, "bar", changes[0].New)
	require.Equal(t, SourceAttr, changes[0].Source)
}

func TestNestedAssignmentThenMutationComposesPath(t *testing.T) {
	rk := New()
	root := &testBar{ID: "abc", Name: "foo"}
	_, err := rk.Activate(root)
	require.NoError(t, err)

	var paths []string
	require.NoError(t, rk.On(root, func(c Change) { paths = append(paths, c.Key.Render()) }))

	foo := &testFoo{ID: "x", Name: "n"}
	_, err = rk.SetField(root, "Foo", foo)
	require.NoError(t, err)
	_, err = rk.SetField(foo, "Name", "m")
	require.NoError(t, err)

	require.Equal(t, []string{"Foo", "Foo.Name"}, paths)
}

func TestSequenceGrowthEmitsPerIndex(t *testing.T) {
	rk := New()
	team := NewSequence([]*testPlayer{})
	_, err := rk.Activate(team)
	require.NoError(t, err)

	var keys []string
	require.NoError(t, rk.On(team, func(c Change) { keys = append(keys, c.Key.Render()) }))

	team.Append(&testPlayer{Name: "Ben"})
	team.Append(&testPlayer{Name: "Tom"})

	require.Equal(t, []string{"0", "1"}, keys)
}

func TestNestedSequenceBubblesOnceToRoot(t *testing.T) {
	rk := New()
	root := &testGame{
		Team1: NewSequence([]*testPlayer{}),
		Team2: NewSequence([]*testPlayer{}),
	}
	_, err := rk.Activate(root)
	require.NoError(t, err)

	var n int
	require.NoError(t, rk.On(root, func(Change) { n++ }))

	root.Team1.Append(&testPlayer{Name: "Ben"})

	require.Equal(t, 1, n)
}

type testInventory struct {
	Items *Sequence[*Sequence[int]]
	Names *Mapping[string, any]
}

// TestPatternMatchesLiteralCompositionOnly pins down how composed paths
// interact with a literal pattern: the assignment of Names["foo"] composes
// to exactly `Names["foo"]` and matches, but an append to the sequence
// stored there composes the inner hop first (`foo[0]`) and arrives at the
// root as `Names["foo[0]"]`, which the literal pattern no longer matches.
func TestPatternMatchesLiteralCompositionOnly(t *testing.T) {
	rk := New()
	root := &testInventory{
		Items: NewSequence([]*Sequence[int]{}),
		Names: NewMapping(map[string]any{}, StringKeyOf),
	}
	_, err := rk.Activate(root)
	require.NoError(t, err)

	var n int
	require.NoError(t, rk.On(root, func(Change) { n++ }, WithPattern(`Names["foo"]`)))

	root.Items.Append(NewSequence([]int{}))
	root.Items.Append(NewSequence([]int{}))
	root.Items.Get(0).Append(1)

	inner := NewSequence([]string{})
	root.Names.Set("foo", inner)
	inner.Append("bar")

	require.Equal(t, 1, n)
}

func TestEveryWriteDispatchesExactlyOneLocalChange(t *testing.T) {
	rk := New()
	s := NewSequence([]int{0})
	_, err := rk.Activate(s)
	require.NoError(t, err)

	var n int
	require.NoError(t, rk.On(s, func(Change) { n++ }))

	for i := 0; i < 5; i++ {
		s.Set(0, i)
	}
	require.Equal(t, 5, n)
}

// TestAliasedChildBubblesToBothParents: a value reachable from two parents
// keeps one BackRef per parent, and a mutation bubbles to each of them
// independently.
func TestAliasedChildBubblesToBothParents(t *testing.T) {
	rk := New()
	a := &holder{}
	b := &holder{}
	_, err := rk.Activate(a)
	require.NoError(t, err)
	_, err = rk.Activate(b)
	require.NoError(t, err)

	x := &leaf{F: 1}
	_, err = rk.SetField(a, "Child", x)
	require.NoError(t, err)
	_, err = rk.SetField(b, "Child", x)
	require.NoError(t, err)
	require.Len(t, rk.BackRefs(x), 2)

	var aEvents, bEvents int
	require.NoError(t, rk.On(a, func(Change) { aEvents++ }))
	require.NoError(t, rk.On(b, func(Change) { bEvents++ }))

	_, err = rk.SetField(x, "F", 2)
	require.NoError(t, err)

	require.Equal(t, 1, aEvents)
	require.Equal(t, 1, bEvents)
}

func TestActivateIsIdempotent(t *testing.T) {
	rk := New()
	root := &testGame{
		Team1: NewSequence([]*testPlayer{{Name: "Ben"}}),
		Team2: NewSequence([]*testPlayer{}),
	}
	_, err := rk.Activate(root)
	require.NoError(t, err)
	first := rk.BackRefs(root.Team1)

	_, err = rk.Activate(root)
	require.NoError(t, err)

	require.Equal(t, first, rk.BackRefs(root.Team1))
	require.Len(t, rk.BackRefs(root.Team1.Get(0)), 1)
}

func TestOffRemovesSubscription(t *testing.T) {
	rk := New()
	s := NewSequence([]int{0})
	_, err := rk.Activate(s)
	require.NoError(t, err)

	var muted, n int
	mutedCb := func(Change) { muted++ }
	require.NoError(t, rk.On(s, mutedCb))
	require.NoError(t, rk.On(s, func(Change) { n++ }))

	require.True(t, rk.Off(s, mutedCb))
	require.False(t, rk.Off(s, mutedCb))

	s.Set(0, 1)
	require.Equal(t, 0, muted)
	require.Equal(t, 1, n)
}

func TestReceiverRegistersAndReturnsCallback(t *testing.T) {
	rk := New()
	s := NewSequence([]int{0})
	_, err := rk.Activate(s)
	require.NoError(t, err)

	var n int
	got := rk.Receiver(s)(func(Change) { n++ })
	require.NotNil(t, got)

	s.Set(0, 1)
	require.Equal(t, 1, n)

	// The callback comes back unchanged and still works standalone.
	got(Change{})
	require.Equal(t, 2, n)
}

type testDocument struct {
	Reactive `reaktor:"-"`
	Title    string
}

func TestReactiveMixinActivatesOnConstruction(t *testing.T) {
	rk := New()
	d := &testDocument{Title: "draft"}
	d.BindEngine(rk)
	_, err := d.PostActivate(d)
	require.NoError(t, err)

	var changes []Change
	require.NoError(t, rk.On(d, func(c Change) { changes = append(changes, c) }))

	_, err = rk.SetField(d, "Title", "final")
	require.NoError(t, err)
	require.Len(t, changes, 1)
	require.Equal(t, "final", d.Title)
}

func TestPackageFacadeRoundTrip(t *testing.T) {
	root := &testBar{ID: "abc", Name: "foo"}
	_, err := Activate(root)
	require.NoError(t, err)

	var n int
	cb := func(Change) { n++ }
	require.NoError(t, On(root, cb))

	_, err = SetField(root, "Name", "bar")
	require.NoError(t, err)
	require.Equal(t, 1, n)

	require.True(t, Off(root, cb))
	Detach(root)
	require.ErrorIs(t, On(root, cb), ErrNotTracked)
}
