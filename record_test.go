package reaktor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// plainStruct has no Fields/Get/Set/Del of its own, so activation must
// fall back to the reflection-based adapter.
type plainStruct struct {
	Name    string
	hidden  string //nolint:unused // proves unexported fields are skipped
	Ignored string `reaktor:"-"`
}

func TestReflectRecordSkipsUnexportedAndTaggedFields(t *testing.T) {
	rk := New()
	obj := &plainStruct{Name: "a", hidden: "b", Ignored: "c"}
	_, err := rk.Activate(obj)
	require.NoError(t, err)

	var names []string
	rec, ok := recordOf(obj)
	require.True(t, ok)
	for name := range rec.Fields() {
		names = append(names, name)
	}
	require.Equal(t, []string{"Name"}, names)
}

func TestReflectRecordSetAndDel(t *testing.T) {
	rk := New()
	obj := &plainStruct{Name: "a"}
	_, err := rk.Activate(obj)
	require.NoError(t, err)

	var changes []Change
	require.NoError(t, rk.On(obj, func(c Change) { changes = append(changes, c) }))

	old, err := rk.SetField(obj, "Name", "b")
	require.NoError(t, err)
	require.Equal(t, "a", old)
	require.Equal(t, "b", obj.Name)

	old, err = rk.DelField(obj, "Name")
	require.NoError(t, err)
	require.Equal(t, "b", old)
	require.Equal(t, "", obj.Name)

	require.Len(t, changes, 2)
	require.Equal(t, SourceAttr, changes[0].Source)
}

// storageInner stands in for an internal-storage field a record wants
// treated as if its own fields were the outer type's fields directly.
type storageInner struct {
	City string
	Tags *Sequence[string]
}

type withTransparentStorage struct {
	Name    string
	Storage *storageInner
}

func TestSetFieldRejectsTaggedField(t *testing.T) {
	rk := New()
	obj := &plainStruct{Name: "a", Ignored: "c"}
	_, err := rk.Activate(obj)
	require.NoError(t, err)

	var changes []Change
	require.NoError(t, rk.On(obj, func(c Change) { changes = append(changes, c) }))

	_, err = rk.SetField(obj, "Ignored", "x")
	require.Error(t, err)
	require.Equal(t, "c", obj.Ignored)
	require.Empty(t, changes)
}

func TestDelFieldRejectsTaggedField(t *testing.T) {
	rk := New()
	obj := &plainStruct{Name: "a", Ignored: "c"}
	_, err := rk.Activate(obj)
	require.NoError(t, err)

	var changes []Change
	require.NoError(t, rk.On(obj, func(c Change) { changes = append(changes, c) }))

	_, err = rk.DelField(obj, "Ignored")
	require.Error(t, err)
	require.Equal(t, "c", obj.Ignored)
	require.Empty(t, changes)
}

func TestTransparentFieldSkipsExtraPathSegment(t *testing.T) {
	rk := New(WithTransparentField("withTransparentStorage", "Storage"))
	obj := &withTransparentStorage{Name: "a", Storage: &storageInner{City: "x", Tags: NewSequence([]string{})}}
	_, err := rk.Activate(obj)
	require.NoError(t, err)

	var paths []string
	require.NoError(t, rk.On(obj, func(c Change) { paths = append(paths, c.Key.Render()) }))

	_, err = rk.SetField(obj, "Name", "b")
	require.NoError(t, err)
	require.Equal(t, []string{"Name"}, paths)

	// A change inside the transparent field reaches obj with no "Storage"
	// segment in its path.
	obj.Storage.Tags.Append("t")
	require.Equal(t, []string{"Name", "Tags[0]"}, paths)
}

func TestDetachCascadeRemovesSubgraph(t *testing.T) {
	rk := New()
	root := &rootRec{A: NewSequence([]*leaf{{F: 1}, {F: 2}})}
	_, err := rk.Activate(root)
	require.NoError(t, err)

	child := root.A.Get(0)
	require.True(t, rk.isActivated(root))
	require.True(t, rk.isActivated(root.A))
	require.True(t, rk.isActivated(child))

	rk.Detach(root)

	require.False(t, rk.isActivated(root))
	require.False(t, rk.isActivated(root.A))
	require.False(t, rk.isActivated(child))
	require.Empty(t, rk.backRefsOf(child))
}
