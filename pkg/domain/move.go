package domain

import "fmt"

// MoveItems moves the named items from the subtree of the space named from to
// the item list of the space named to. Both endpoints are resolved by
// whole-tree first-match search and validated before anything is mutated; a
// failed lookup leaves the tree untouched.
//
// Each requested name is removed by recursive search scoped to the source
// subtree. Names that do not resolve are skipped silently, and a name
// requested more than once moves at most as many instances as remain at
// removal time. The collected items are appended to the destination in the
// order the names were requested.
func MoveItems(root *Space, from, to string, names []string) error {
	source := root.FindSpace(from)
	if source == nil {
		return fmt.Errorf("source space %q: %w", from, ErrSpaceNotFound)
	}
	dest := root.FindSpace(to)
	if dest == nil {
		return fmt.Errorf("destination space %q: %w", to, ErrSpaceNotFound)
	}

	removed := make([]Item, 0, len(names))
	for _, name := range names {
		if item, ok := source.RemoveItem(name); ok {
			removed = append(removed, item)
		}
	}
	for _, item := range removed {
		dest.AddItem(item)
	}
	return nil
}

// MoveSpace detaches the first space named name found below root and appends
// it, subtree and all, to the child list of the space named to.
//
// The destination is resolved before the source is detached, over the tree as
// it will look after detachment (the moving subtree is masked out of the
// search). A destination that only exists inside the moving subtree therefore
// fails the lookup, and the tree is left untouched on any failure.
func MoveSpace(root *Space, name, to string) error {
	moving := root.findRemovableSpace(name)
	if moving == nil {
		return fmt.Errorf("space %q: %w", name, ErrSpaceNotFound)
	}
	dest := root.findSpaceExcept(to, moving)
	if dest == nil {
		return fmt.Errorf("destination space %q: %w", to, ErrSpaceNotFound)
	}

	moved := root.RemoveSpace(name)
	dest.AddSpace(moved)
	return nil
}

// DeleteMerge deletes the direct child of parent named name and folds its
// contents upward: every item found anywhere in the detached subtree is
// appended to parent's own item list, in depth-first pre-order. The child's
// sub-spaces do not survive; only items do.
func DeleteMerge(parent *Space, name string) error {
	removed := parent.RemoveDirectSpace(name)
	if removed == nil {
		return fmt.Errorf("space %q: %w", name, ErrSpaceNotFound)
	}
	for _, item := range removed.CollectItems() {
		parent.AddItem(item)
	}
	return nil
}
