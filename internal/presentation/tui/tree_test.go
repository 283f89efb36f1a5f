package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/alcove/internal/presentation/tui"
	"github.com/aretw0/alcove/pkg/dsl"
)

func TestRenderPlain_IndentsPerLevel(t *testing.T) {
	root := dsl.NewSpace().
		Name("home").
		Root(true).
		PushItem(dsl.NewItem().Name("keys").Description("front door").Build()).
		PushSpace(dsl.NewSpace().
			Name("desk").
			PushItem(dsl.NewItem().Name("pen").Build()).
			PushSpace(dsl.NewSpace().Name("drawer").Build()).
			Build()).
		Build()

	want := "home\n" +
		"  - keys\n" +
		"  desk\n" +
		"    - pen\n" +
		"    drawer\n"
	assert.Equal(t, want, tui.RenderPlain(root))
}

func TestRenderPlain_EmptySpace(t *testing.T) {
	root := dsl.NewSpace().Name("empty").Build()
	assert.Equal(t, "empty\n", tui.RenderPlain(root))
}

func TestRender_SameLinesAsPlain(t *testing.T) {
	root := dsl.NewSpace().
		Name("home").
		PushSpace(dsl.NewSpace().Name("desk").Build()).
		Build()

	// Styling may add escape codes but never changes the visible text, so
	// the plain rendering must be contained line for line.
	styled := tui.Render(root)
	assert.Contains(t, styled, "home")
	assert.Contains(t, styled, "desk")
}
