package middleware_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/alcove/pkg/adapters/memory"
	"github.com/aretw0/alcove/pkg/dsl"
	"github.com/aretw0/alcove/pkg/persistence/middleware"
)

func TestRedaction_MasksMatchingItemsEverywhere(t *testing.T) {
	ctx := context.Background()
	inner := memory.NewStore()
	store := middleware.NewRedactionMiddleware([]string{"(?i)password", "token"})(inner)

	tree := dsl.NewSpace().
		Name("home").
		PushItem(dsl.NewItem().Name("wifi Password").Description("hunter2").Build()).
		PushSpace(dsl.NewSpace().
			Name("desk").
			PushItem(dsl.NewItem().Name("api token").Description("abc123").Build()).
			PushItem(dsl.NewItem().Name("pen").Description("blue").Build()).
			Build()).
		Build()

	require.NoError(t, store.Save(ctx, tree))

	persisted, err := inner.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "***", persisted.Items[0].Description)
	assert.Equal(t, "***", persisted.Spaces[0].Items[0].Description)
	assert.Equal(t, "blue", persisted.Spaces[0].Items[1].Description)
}

func TestRedaction_CallerTreeUntouched(t *testing.T) {
	ctx := context.Background()
	store := middleware.NewRedactionMiddleware([]string{"password"})(memory.NewStore())

	tree := dsl.NewSpace().
		Name("home").
		PushItem(dsl.NewItem().Name("password").Description("hunter2").Build()).
		Build()

	require.NoError(t, store.Save(ctx, tree))
	assert.Equal(t, "hunter2", tree.Items[0].Description)
}
