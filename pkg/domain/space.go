package domain

// Space is a node in the ownership tree. It owns its items and child spaces
// outright: no sharing, no parent back-references, no cycles. The order of
// both lists is insertion order and is semantically visible in listings.
//
// Root is an informational marker only. Nothing enforces that exactly one
// node carries it; several nodes may claim it at once.
type Space struct {
	Name   string   `json:"name" yaml:"name"`
	Items  []Item   `json:"items" yaml:"items"`
	Spaces []*Space `json:"spaces" yaml:"spaces"`
	Root   bool     `json:"root" yaml:"root"`
}

// SetName replaces the space name. No validation is performed.
func (s *Space) SetName(name string) {
	s.Name = name
}

// SetRoot replaces the root marker. No validation is performed.
func (s *Space) SetRoot(root bool) {
	s.Root = root
}

// AddItem appends an item to the end of the item list. Duplicates are not
// checked.
func (s *Space) AddItem(item Item) {
	s.Items = append(s.Items, item)
}

// AddSpace appends a child space to the end of the child list. Duplicates and
// cycles are not checked; attaching an ancestor as a descendant is undefined
// behavior.
func (s *Space) AddSpace(child *Space) {
	s.Spaces = append(s.Spaces, child)
}

// Clone returns a deep copy of the subtree rooted at s.
func (s *Space) Clone() *Space {
	if s == nil {
		return nil
	}
	clone := &Space{
		Name: s.Name,
		Root: s.Root,
	}
	if s.Items != nil {
		clone.Items = append([]Item(nil), s.Items...)
	}
	if s.Spaces != nil {
		clone.Spaces = make([]*Space, len(s.Spaces))
		for i, child := range s.Spaces {
			clone.Spaces[i] = child.Clone()
		}
	}
	return clone
}
