package reaktor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type leaf struct {
	F int
}

type rootRec struct {
	A *Sequence[*leaf]
}

// TestBubbleComposesMixedAttrItemPath exercises a chain that mixes an
// item hop (root.A[0]) with an attr hop (leaf.F): the composed path is
// driven by the source of the change being bubbled, not by how each hop
// itself relates parent to child, so the item hop's bracket only appears
// once the bubbling change's own source has become SourceItem: lf's "F"
// (attr) composes with its BackRef name 0 into "0.F", and that change,
// now carrying SourceItem, composes with the BackRef name "A" into
// `A["0.F"]`.
func TestBubbleComposesMixedAttrItemPath(t *testing.T) {
	lf := &leaf{F: 1}
	seq := NewSequence([]*leaf{lf})
	root := &rootRec{A: seq}

	rk := New()
	_, err := rk.Activate(root)
	require.NoError(t, err)

	var got string
	require.NoError(t, rk.On(root, func(c Change) {
		got = c.Key.Render()
	}))

	_, err = rk.SetField(lf, "F", 2)
	require.NoError(t, err)
	require.Equal(t, `A["0.F"]`, got)
}

// TestBubbledChangeTargetsTheAncestor: a Change delivered to
// an ancestor's own callback must carry that ancestor as Target, not the
// object the mutation actually happened on.
func TestBubbledChangeTargetsTheAncestor(t *testing.T) {
	lf := &leaf{F: 1}
	seq := NewSequence([]*leaf{lf})
	root := &rootRec{A: seq}

	rk := New()
	_, err := rk.Activate(root)
	require.NoError(t, err)

	var target any
	require.NoError(t, rk.On(root, func(c Change) {
		target = c.Target
	}))

	_, err = rk.SetField(lf, "F", 2)
	require.NoError(t, err)
	require.Same(t, root, target)
}

func TestDispatchBubblesBeforeLocalCallbacks(t *testing.T) {
	lf := &leaf{F: 1}
	seq := NewSequence([]*leaf{lf})
	root := &rootRec{A: seq}

	rk := New()
	_, err := rk.Activate(root)
	require.NoError(t, err)

	var order []string
	require.NoError(t, rk.On(root, func(c Change) {
		order = append(order, "root")
	}))
	require.NoError(t, rk.On(seq, func(c Change) {
		order = append(order, "seq")
	}))

	_, err = rk.SetField(lf, "F", 9)
	require.NoError(t, err)

	require.Equal(t, []string{"root", "seq"}, order)
}

func TestOnRejectsUntrackedObject(t *testing.T) {
	rk := New()
	err := rk.On(&rootRec{}, func(Change) {})
	require.ErrorIs(t, err, ErrNotTracked)
}

func TestCallbackPanicDoesNotStopSiblings(t *testing.T) {
	lf := &leaf{F: 1}
	root := &rootRec{A: NewSequence([]*leaf{lf})}

	rk := New()
	_, err := rk.Activate(root)
	require.NoError(t, err)

	var secondCalled bool
	require.NoError(t, rk.On(root, func(Change) {
		panic("boom")
	}))
	require.NoError(t, rk.On(root, func(Change) {
		secondCalled = true
	}))

	require.NotPanics(t, func() {
		_, _ = rk.SetField(lf, "F", 2)
	})
	require.True(t, secondCalled)
}
