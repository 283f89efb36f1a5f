/*
Package domain contains the core domain model for the alcove tree.

It defines the two fundamental entities (Space and Item) together with the
pure structural algorithms that operate on them: first-match lookup, local and
recursive removal, cross-branch moves, and delete-merge. This package is kept
free of I/O and persistence concerns; adapters serialize the tree through the
ports defined elsewhere.

# Key Entities

  - Item: a named leaf value with a description, owned by exactly one Space.
  - Space: a tree node owning an ordered list of Items and an ordered list of
    child Spaces, plus an informational root marker.

# Traversal Rules

Every lookup and recursive removal walks the tree depth-first in pre-order: a
node is visited before its descendants, and each child's full subtree is
exhausted before the next sibling. Names are not unique; the first match wins.
*/
package domain
