package domain

// FindSpace searches the subtree rooted at s for the first space whose name
// equals name, depth-first in pre-order. The receiver itself is tested first,
// then each child subtree in stored order. The returned pointer is a live
// handle into the tree; mutations through it are visible without re-resolving.
// Returns nil when no space matches.
func (s *Space) FindSpace(name string) *Space {
	if s == nil {
		return nil
	}
	if s.Name == name {
		return s
	}
	for _, child := range s.Spaces {
		if found := child.FindSpace(name); found != nil {
			return found
		}
	}
	return nil
}

// FindItem returns a live handle to the first item in this space's own item
// list whose name equals name. The search is not recursive; descendant spaces
// are never consulted. Returns nil when no item matches.
//
// The handle points into the item slice and stays valid only until the slice
// is next modified.
func (s *Space) FindItem(name string) *Item {
	for i := range s.Items {
		if s.Items[i].Name == name {
			return &s.Items[i]
		}
	}
	return nil
}

// findSpaceExcept is FindSpace with one subtree masked out: the node skip and
// everything below it are invisible to the search. Used to resolve a move
// destination as if the moving subtree were already detached, without
// mutating anything.
func (s *Space) findSpaceExcept(name string, skip *Space) *Space {
	if s == nil || s == skip {
		return nil
	}
	if s.Name == name {
		return s
	}
	for _, child := range s.Spaces {
		if found := child.findSpaceExcept(name, skip); found != nil {
			return found
		}
	}
	return nil
}

// findRemovableSpace returns the space that RemoveSpace(name) would detach,
// without detaching it. Like RemoveSpace, the receiver itself is never a
// candidate.
func (s *Space) findRemovableSpace(name string) *Space {
	for _, child := range s.Spaces {
		if child.Name == name {
			return child
		}
		if found := child.findRemovableSpace(name); found != nil {
			return found
		}
	}
	return nil
}
