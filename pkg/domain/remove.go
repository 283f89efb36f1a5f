package domain

// RemoveItem searches the whole subtree rooted at s for the first item whose
// name equals name, depth-first in pre-order: this space's own items are
// checked first, then each child subtree in stored order. The item is removed
// from its owning list and returned; the relative order of the remaining
// siblings is preserved. The second return is false when no item matched, in
// which case the tree is untouched.
func (s *Space) RemoveItem(name string) (Item, bool) {
	if item, ok := s.RemoveItemLocal(name); ok {
		return item, true
	}
	for _, child := range s.Spaces {
		if item, ok := child.RemoveItem(name); ok {
			return item, true
		}
	}
	return Item{}, false
}

// RemoveItemLocal removes the first matching item from this space's own item
// list only. Descendant spaces are never consulted.
func (s *Space) RemoveItemLocal(name string) (Item, bool) {
	for i := range s.Items {
		if s.Items[i].Name == name {
			item := s.Items[i]
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return item, true
		}
	}
	return Item{}, false
}

// RemoveSpace detaches the first space named name found anywhere below s,
// depth-first in pre-order, and returns it as a standalone tree together with
// its entire subtree. The receiver itself is never a match: removal searches
// child lists only, so a root asked to remove its own name returns nil unless
// a descendant shares it. Returns nil when nothing matched.
func (s *Space) RemoveSpace(name string) *Space {
	for i, child := range s.Spaces {
		if child.Name == name {
			s.Spaces = append(s.Spaces[:i], s.Spaces[i+1:]...)
			return child
		}
		if removed := child.RemoveSpace(name); removed != nil {
			return removed
		}
	}
	return nil
}

// RemoveDirectSpace detaches the first matching space from this space's
// direct child list only. Grandchildren are never candidates; callers that
// must not reach across branches (delete-merge) rely on this.
func (s *Space) RemoveDirectSpace(name string) *Space {
	for i, child := range s.Spaces {
		if child.Name == name {
			s.Spaces = append(s.Spaces[:i], s.Spaces[i+1:]...)
			return child
		}
	}
	return nil
}

// CollectItems flattens every item contained anywhere in the subtree rooted
// at s into a single list, depth-first in pre-order: this space's own items
// first, then each child subtree's in stored order.
func (s *Space) CollectItems() []Item {
	items := append([]Item(nil), s.Items...)
	for _, child := range s.Spaces {
		items = append(items, child.CollectItems()...)
	}
	return items
}
