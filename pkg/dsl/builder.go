package dsl

import "github.com/aretw0/alcove/pkg/domain"

// ItemBuilder provides a fluent API for configuring an item.
type ItemBuilder struct {
	item domain.Item
}

// NewItem creates a new item builder.
func NewItem() *ItemBuilder {
	return &ItemBuilder{}
}

// Name sets the item name.
func (b *ItemBuilder) Name(name string) *ItemBuilder {
	b.item.Name = name
	return b
}

// Description sets the item description.
func (b *ItemBuilder) Description(description string) *ItemBuilder {
	b.item.Description = description
	return b
}

// Build returns the assembled item.
func (b *ItemBuilder) Build() domain.Item {
	return b.item
}

// SpaceBuilder provides a fluent API for configuring a space.
type SpaceBuilder struct {
	space domain.Space
}

// NewSpace creates a new space builder.
func NewSpace() *SpaceBuilder {
	return &SpaceBuilder{}
}

// Name sets the space name.
func (b *SpaceBuilder) Name(name string) *SpaceBuilder {
	b.space.Name = name
	return b
}

// Root sets the informational root marker.
func (b *SpaceBuilder) Root(root bool) *SpaceBuilder {
	b.space.Root = root
	return b
}

// Items replaces the item list.
func (b *SpaceBuilder) Items(items ...domain.Item) *SpaceBuilder {
	b.space.Items = items
	return b
}

// Spaces replaces the child space list.
func (b *SpaceBuilder) Spaces(spaces ...*domain.Space) *SpaceBuilder {
	b.space.Spaces = spaces
	return b
}

// PushItem appends one item to the item list.
func (b *SpaceBuilder) PushItem(item domain.Item) *SpaceBuilder {
	b.space.Items = append(b.space.Items, item)
	return b
}

// PushSpace appends one child to the space list.
func (b *SpaceBuilder) PushSpace(space *domain.Space) *SpaceBuilder {
	b.space.Spaces = append(b.space.Spaces, space)
	return b
}

// Build returns the assembled space.
func (b *SpaceBuilder) Build() *domain.Space {
	space := b.space
	return &space
}
