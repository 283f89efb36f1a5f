package domain

import "errors"

// ErrSpaceNotFound is returned when a space name cannot be resolved in the tree.
// Call sites wrap it with the role of the failed lookup (source, destination,
// parent, target) so the caller can tell which resolution failed.
var ErrSpaceNotFound = errors.New("space not found")

// ErrItemNotFound is returned when an item name cannot be resolved.
var ErrItemNotFound = errors.New("item not found")

// ErrTreeNotFound is returned by stores when no document exists yet.
var ErrTreeNotFound = errors.New("tree document not found")

// ErrInvalidDocument is returned by stores when a document exists but does not
// parse into the expected tree shape.
var ErrInvalidDocument = errors.New("invalid tree document")
