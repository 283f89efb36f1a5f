package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/alcove/pkg/domain"
	"github.com/aretw0/alcove/pkg/dsl"
	"github.com/aretw0/alcove/pkg/ports"
)

// TreeStoreContractTest is a reusable suite that verifies an adapter complies
// with ports.TreeStore. The store must start empty.
func TreeStoreContractTest(t *testing.T, store ports.TreeStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load_Empty", func(t *testing.T) {
		_, err := store.Load(ctx)
		if !errors.Is(err, domain.ErrTreeNotFound) {
			t.Fatalf("expected ErrTreeNotFound, got %v", err)
		}
	})

	tree := dsl.NewSpace().
		Name("home").
		Root(true).
		PushItem(dsl.NewItem().Name("keys").Description("front door").Build()).
		PushSpace(dsl.NewSpace().
			Name("desk").
			PushItem(dsl.NewItem().Name("pen").Build()).
			PushItem(dsl.NewItem().Name("pen").Description("duplicate name").Build()).
			PushSpace(dsl.NewSpace().Name("drawer").Build()).
			Build()).
		Build()

	t.Run("Save_And_Load_RoundTrip", func(t *testing.T) {
		if err := store.Save(ctx, tree); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		loaded, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if !TreesEqual(loaded, tree) {
			t.Errorf("round trip mismatch.\ngot:  %#v\nwant: %#v", loaded, tree)
		}
	})

	t.Run("Save_Overwrites", func(t *testing.T) {
		replacement := dsl.NewSpace().Name("attic").Root(true).Build()
		if err := store.Save(ctx, replacement); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		loaded, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if loaded.Name != "attic" || len(loaded.Spaces) != 0 {
			t.Errorf("expected replacement document, got %#v", loaded)
		}
	})
}

// TreesEqual compares two trees field for field. Empty and nil lists count as
// equal; codecs are free to decode an absent list either way.
func TreesEqual(a, b *domain.Space) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Name != b.Name || a.Root != b.Root {
		return false
	}
	if len(a.Items) != len(b.Items) || len(a.Spaces) != len(b.Spaces) {
		return false
	}
	for i := range a.Items {
		if a.Items[i] != b.Items[i] {
			return false
		}
	}
	for i := range a.Spaces {
		if !TreesEqual(a.Spaces[i], b.Spaces[i]) {
			return false
		}
	}
	return true
}
