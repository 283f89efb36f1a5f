package alcove

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/alcove/internal/logging"
	"github.com/aretw0/alcove/pkg/domain"
	"github.com/aretw0/alcove/pkg/dsl"
	"github.com/aretw0/alcove/pkg/ports"
)

// Version is the current alcove release.
var Version = "0.3.0"

// Workspace binds a tree document to the operations the command surface
// needs. Each mutating method loads the document, applies exactly one tree
// operation, and saves; each query loads and reads. Any failed lookup
// returns before the save, so a failure never writes a partial tree.
type Workspace struct {
	store  ports.TreeStore
	logger *slog.Logger
}

// Option defines a functional option for configuring a Workspace.
type Option func(*Workspace)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Workspace) {
		w.logger = logger
	}
}

// New creates a Workspace over the given store.
func New(store ports.TreeStore, opts ...Option) *Workspace {
	w := &Workspace{
		store:  store,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// CreateRoot writes a fresh document holding a single space with the root
// marker set. Any existing document is replaced.
func (w *Workspace) CreateRoot(ctx context.Context, name string) error {
	root := dsl.NewSpace().Name(name).Root(true).Build()
	if err := w.store.Save(ctx, root); err != nil {
		return err
	}
	w.logger.Info("root space created", "name", name)
	return nil
}

// ShowTree returns the subtree rooted at the named space, or the whole
// document when name is empty.
func (w *Workspace) ShowTree(ctx context.Context, name string) (*domain.Space, error) {
	root, err := w.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return root, nil
	}
	target := root.FindSpace(name)
	if target == nil {
		return nil, fmt.Errorf("target space %q: %w", name, domain.ErrSpaceNotFound)
	}
	return target, nil
}

// AddItem appends a new item to the named space.
func (w *Workspace) AddItem(ctx context.Context, space, name, description string) error {
	root, err := w.store.Load(ctx)
	if err != nil {
		return err
	}
	target := root.FindSpace(space)
	if target == nil {
		return fmt.Errorf("target space %q: %w", space, domain.ErrSpaceNotFound)
	}
	target.AddItem(dsl.NewItem().Name(name).Description(description).Build())
	if err := w.store.Save(ctx, root); err != nil {
		return err
	}
	w.logger.Debug("item added", "space", space, "item", name)
	return nil
}

// AddSpace appends a new empty child space to the named parent.
func (w *Workspace) AddSpace(ctx context.Context, parent, child string) error {
	root, err := w.store.Load(ctx)
	if err != nil {
		return err
	}
	target := root.FindSpace(parent)
	if target == nil {
		return fmt.Errorf("parent space %q: %w", parent, domain.ErrSpaceNotFound)
	}
	target.AddSpace(dsl.NewSpace().Name(child).Build())
	if err := w.store.Save(ctx, root); err != nil {
		return err
	}
	w.logger.Debug("space added", "parent", parent, "child", child)
	return nil
}

// ListItems returns the named space's own items, in insertion order.
func (w *Workspace) ListItems(ctx context.Context, space string) ([]domain.Item, error) {
	target, err := w.ShowTree(ctx, space)
	if err != nil {
		return nil, err
	}
	return target.Items, nil
}

// List returns the named space for one-level listing: its items plus the
// names of its direct children. Callers render it; nothing deeper is
// traversed.
func (w *Workspace) List(ctx context.Context, space string) (*domain.Space, error) {
	return w.ShowTree(ctx, space)
}

// MoveItems moves the named items from one space's subtree to another
// space's item list. Missing item names are skipped silently; missing spaces
// fail before anything is written.
func (w *Workspace) MoveItems(ctx context.Context, from, to string, names ...string) error {
	root, err := w.store.Load(ctx)
	if err != nil {
		return err
	}
	if err := domain.MoveItems(root, from, to, names); err != nil {
		return err
	}
	if err := w.store.Save(ctx, root); err != nil {
		return err
	}
	w.logger.Debug("items moved", "from", from, "to", to, "requested", len(names))
	return nil
}

// MoveSpace moves the named space, subtree and all, under the destination
// space. Both lookups are validated before the tree is mutated.
func (w *Workspace) MoveSpace(ctx context.Context, name, to string) error {
	root, err := w.store.Load(ctx)
	if err != nil {
		return err
	}
	if err := domain.MoveSpace(root, name, to); err != nil {
		return err
	}
	if err := w.store.Save(ctx, root); err != nil {
		return err
	}
	w.logger.Debug("space moved", "space", name, "to", to)
	return nil
}

// EditItem updates the name and/or description of an item, looked up locally
// in the named space. Nil fields are left unchanged.
func (w *Workspace) EditItem(ctx context.Context, space, item string, newName, newDescription *string) error {
	root, err := w.store.Load(ctx)
	if err != nil {
		return err
	}
	target := root.FindSpace(space)
	if target == nil {
		return fmt.Errorf("target space %q: %w", space, domain.ErrSpaceNotFound)
	}
	found := target.FindItem(item)
	if found == nil {
		return fmt.Errorf("item %q in space %q: %w", item, space, domain.ErrItemNotFound)
	}
	if newName != nil {
		found.SetName(*newName)
	}
	if newDescription != nil {
		found.SetDescription(*newDescription)
	}
	return w.store.Save(ctx, root)
}

// RenameSpace renames the first space matching the given name.
func (w *Workspace) RenameSpace(ctx context.Context, space, newName string) error {
	root, err := w.store.Load(ctx)
	if err != nil {
		return err
	}
	target := root.FindSpace(space)
	if target == nil {
		return fmt.Errorf("target space %q: %w", space, domain.ErrSpaceNotFound)
	}
	target.SetName(newName)
	return w.store.Save(ctx, root)
}

// DeleteItem removes an item from the named space's own item list. The
// lookup is local; items in descendant spaces are out of reach on purpose.
func (w *Workspace) DeleteItem(ctx context.Context, space, item string) error {
	root, err := w.store.Load(ctx)
	if err != nil {
		return err
	}
	target := root.FindSpace(space)
	if target == nil {
		return fmt.Errorf("target space %q: %w", space, domain.ErrSpaceNotFound)
	}
	if _, ok := target.RemoveItemLocal(item); !ok {
		return fmt.Errorf("item %q in space %q: %w", item, space, domain.ErrItemNotFound)
	}
	return w.store.Save(ctx, root)
}

// DeleteSpace deletes a direct child of the named parent and merges every
// item from the deleted subtree into the parent's own item list. The child's
// sub-spaces are discarded.
func (w *Workspace) DeleteSpace(ctx context.Context, parent, child string) error {
	root, err := w.store.Load(ctx)
	if err != nil {
		return err
	}
	target := root.FindSpace(parent)
	if target == nil {
		return fmt.Errorf("parent space %q: %w", parent, domain.ErrSpaceNotFound)
	}
	if err := domain.DeleteMerge(target, child); err != nil {
		return err
	}
	if err := w.store.Save(ctx, root); err != nil {
		return err
	}
	w.logger.Debug("space deleted", "parent", parent, "child", child)
	return nil
}
