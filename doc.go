/*
Package alcove manages a personal hierarchy of named spaces, each holding
items and nested child spaces, persisted as a single structured document.

The Workspace facade binds the tree operations from pkg/domain to a document
store from pkg/ports. Every command is single-pass: one load, one in-memory
transformation, one save. A failed lookup aborts before anything is written.

# Usage

	store := file.New("space.json")
	ws := alcove.New(store)

	ctx := context.Background()
	if err := ws.CreateRoot(ctx, "home"); err != nil {
		log.Fatal(err)
	}
	if err := ws.AddSpace(ctx, "home", "desk"); err != nil {
		log.Fatal(err)
	}
	if err := ws.AddItem(ctx, "desk", "pen", "blue ballpoint"); err != nil {
		log.Fatal(err)
	}

Names are not unique. Every lookup walks the tree depth-first in pre-order
and acts on the first match; see pkg/domain for the exact traversal rules.
*/
package alcove
