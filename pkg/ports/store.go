package ports

import (
	"context"

	"github.com/aretw0/alcove/pkg/domain"
)

// TreeStore defines the interface for persisting one space tree document.
// Each store instance is bound to a single document; every command performs
// at most one Load, one in-memory transformation, and one Save.
type TreeStore interface {
	// Save persists the full tree, overwriting any previous document.
	Save(ctx context.Context, tree *domain.Space) error

	// Load reconstructs the tree from the document.
	// Returns domain.ErrTreeNotFound if no document exists, and an error
	// wrapping domain.ErrInvalidDocument if the content does not parse.
	Load(ctx context.Context) (*domain.Space, error)
}
