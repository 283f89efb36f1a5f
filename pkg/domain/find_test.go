package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/alcove/pkg/dsl"
)

func TestFindSpace_MatchesReceiverFirst(t *testing.T) {
	root := dsl.NewSpace().
		Name("x").
		Root(true).
		PushSpace(dsl.NewSpace().Name("x").Build()).
		Build()

	found := root.FindSpace("x")
	require.NotNil(t, found)
	assert.True(t, found.Root, "expected the receiver itself, not the child")
}

func TestFindSpace_ShallowMatchBeforeDeeperLaterOne(t *testing.T) {
	root := dsl.NewSpace().
		Name("root").
		PushSpace(dsl.NewSpace().
			Name("x").
			PushItem(dsl.NewItem().Name("marker").Description("shallow").Build()).
			Build()).
		PushSpace(dsl.NewSpace().
			Name("a").
			PushSpace(dsl.NewSpace().
				Name("x").
				PushItem(dsl.NewItem().Name("marker").Description("deep").Build()).
				Build()).
			Build()).
		Build()

	found := root.FindSpace("x")
	require.NotNil(t, found)
	assert.Equal(t, "shallow", found.Items[0].Description)
}

func TestFindSpace_ExhaustsEarlierSiblingSubtreeFirst(t *testing.T) {
	// Pre-order descends into a sibling's full subtree before moving on, so
	// a deep match inside an earlier sibling wins over a later shallow one.
	root := dsl.NewSpace().
		Name("root").
		PushSpace(dsl.NewSpace().
			Name("a").
			PushSpace(dsl.NewSpace().
				Name("x").
				PushItem(dsl.NewItem().Name("marker").Description("inside a").Build()).
				Build()).
			Build()).
		PushSpace(dsl.NewSpace().
			Name("x").
			PushItem(dsl.NewItem().Name("marker").Description("sibling of a").Build()).
			Build()).
		Build()

	found := root.FindSpace("x")
	require.NotNil(t, found)
	assert.Equal(t, "inside a", found.Items[0].Description)
}

func TestFindSpace_SameDepthSiblingOrder(t *testing.T) {
	root := dsl.NewSpace().
		Name("root").
		PushSpace(dsl.NewSpace().
			Name("x").
			PushItem(dsl.NewItem().Name("marker").Description("first").Build()).
			Build()).
		PushSpace(dsl.NewSpace().
			Name("x").
			PushItem(dsl.NewItem().Name("marker").Description("second").Build()).
			Build()).
		Build()

	found := root.FindSpace("x")
	require.NotNil(t, found)
	assert.Equal(t, "first", found.Items[0].Description)
}

func TestFindSpace_NotFound(t *testing.T) {
	root := dsl.NewSpace().Name("root").Build()
	assert.Nil(t, root.FindSpace("missing"))
}

func TestFindSpace_ChildWithItem(t *testing.T) {
	root := dsl.NewSpace().
		Name("root").
		Root(true).
		PushSpace(dsl.NewSpace().
			Name("child").
			PushItem(dsl.NewItem().Name("item1").Description("desc").Build()).
			Build()).
		Build()

	found := root.FindSpace("child")
	require.NotNil(t, found)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "item1", found.Items[0].Name)
}

func TestFindSpace_ReturnsLiveHandle(t *testing.T) {
	root := dsl.NewSpace().
		Name("root").
		PushSpace(dsl.NewSpace().Name("child").Build()).
		Build()

	root.FindSpace("child").SetName("renamed")
	assert.Equal(t, "renamed", root.Spaces[0].Name)
}

func TestFindItem_LocalOnly(t *testing.T) {
	root := dsl.NewSpace().
		Name("root").
		PushItem(dsl.NewItem().Name("local").Build()).
		PushSpace(dsl.NewSpace().
			Name("child").
			PushItem(dsl.NewItem().Name("nested").Build()).
			Build()).
		Build()

	assert.NotNil(t, root.FindItem("local"))
	assert.Nil(t, root.FindItem("nested"), "FindItem must not recurse into children")
}

func TestFindItem_FirstMatchMutable(t *testing.T) {
	root := dsl.NewSpace().
		Name("root").
		PushItem(dsl.NewItem().Name("dup").Description("first").Build()).
		PushItem(dsl.NewItem().Name("dup").Description("second").Build()).
		Build()

	item := root.FindItem("dup")
	require.NotNil(t, item)
	assert.Equal(t, "first", item.Description)

	item.SetDescription("edited")
	assert.Equal(t, "edited", root.Items[0].Description)
	assert.Equal(t, "second", root.Items[1].Description)
}
