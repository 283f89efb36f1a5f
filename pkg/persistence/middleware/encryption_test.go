package middleware_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/alcove/pkg/adapters/memory"
	"github.com/aretw0/alcove/pkg/dsl"
	"github.com/aretw0/alcove/pkg/persistence/middleware"
	"github.com/aretw0/alcove/pkg/ports/tests"
)

func testKey(fill byte) []byte {
	return bytes.Repeat([]byte{fill}, 32)
}

func TestEncryption_RoundTrip(t *testing.T) {
	ctx := context.Background()
	inner := memory.NewStore()
	store := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey: testKey('a'),
	})(inner)

	tree := dsl.NewSpace().
		Name("home").
		Root(true).
		PushItem(dsl.NewItem().Name("keys").Description("front door").Build()).
		PushSpace(dsl.NewSpace().Name("desk").Build()).
		Build()

	require.NoError(t, store.Save(ctx, tree))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, tests.TreesEqual(tree, loaded))
}

func TestEncryption_EnvelopeHidesContent(t *testing.T) {
	ctx := context.Background()
	inner := memory.NewStore()
	store := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey: testKey('a'),
	})(inner)

	tree := dsl.NewSpace().
		Name("secret plans").
		PushItem(dsl.NewItem().Name("launch codes").Description("0000").Build()).
		Build()
	require.NoError(t, store.Save(ctx, tree))

	// The inner store must only ever see the opaque envelope.
	persisted, err := inner.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "encrypted", persisted.Name)
	assert.Empty(t, persisted.Spaces)
	require.Len(t, persisted.Items, 1)
	assert.NotContains(t, persisted.Items[0].Description, "launch")
}

func TestEncryption_KeyRotationFallback(t *testing.T) {
	ctx := context.Background()
	inner := memory.NewStore()

	oldStore := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey: testKey('o'),
	})(inner)
	require.NoError(t, oldStore.Save(ctx, dsl.NewSpace().Name("home").Build()))

	rotated := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey:    testKey('n'),
		FallbackKeys: [][]byte{testKey('o')},
	})(inner)

	loaded, err := rotated.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "home", loaded.Name)
}

func TestEncryption_WrongKeyFails(t *testing.T) {
	ctx := context.Background()
	inner := memory.NewStore()

	writer := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey: testKey('a'),
	})(inner)
	require.NoError(t, writer.Save(ctx, dsl.NewSpace().Name("home").Build()))

	reader := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey: testKey('b'),
	})(inner)
	_, err := reader.Load(ctx)
	assert.Error(t, err)
}

func TestEncryption_PlainDocumentRejected(t *testing.T) {
	ctx := context.Background()
	inner := memory.NewStore()
	require.NoError(t, inner.Save(ctx, dsl.NewSpace().Name("plain").Build()))

	store := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey: testKey('a'),
	})(inner)
	_, err := store.Load(ctx)
	assert.Error(t, err, "fail secure on documents without an envelope")
}

func TestEncryption_ShortKeyPanics(t *testing.T) {
	assert.Panics(t, func() {
		middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: []byte("short")})
	})
}
