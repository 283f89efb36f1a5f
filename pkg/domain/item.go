package domain

// Item is a named leaf value owned by exactly one Space.
// The name is its identity for lookups, but the model does not enforce
// uniqueness; duplicate names are allowed and resolved first-match.
type Item struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// SetName replaces the item name. No validation is performed.
func (i *Item) SetName(name string) {
	i.Name = name
}

// SetDescription replaces the item description. No validation is performed.
func (i *Item) SetDescription(description string) {
	i.Description = description
}
