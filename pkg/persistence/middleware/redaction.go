package middleware

import (
	"context"
	"regexp"

	"github.com/aretw0/alcove/pkg/domain"
	"github.com/aretw0/alcove/pkg/ports"
)

type redactionMiddleware struct {
	next     ports.TreeStore
	patterns []*regexp.Regexp
}

// NewRedactionMiddleware creates a middleware that masks the descriptions of
// items whose names match any of the patterns before the tree is persisted.
// The in-memory tree handed to Save is never modified.
func NewRedactionMiddleware(patternStrings []string) Middleware {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		patterns[i] = regexp.MustCompile(p)
	}
	return func(next ports.TreeStore) ports.TreeStore {
		return &redactionMiddleware{next: next, patterns: patterns}
	}
}

func (m *redactionMiddleware) Save(ctx context.Context, tree *domain.Space) error {
	// Deep clone so masking never leaks into the tree the caller keeps using.
	cloned := tree.Clone()
	maskSpace(cloned, m.patterns)
	return m.next.Save(ctx, cloned)
}

func (m *redactionMiddleware) Load(ctx context.Context) (*domain.Space, error) {
	return m.next.Load(ctx)
}

func maskSpace(space *domain.Space, patterns []*regexp.Regexp) {
	for i := range space.Items {
		for _, p := range patterns {
			if p.MatchString(space.Items[i].Name) {
				space.Items[i].Description = "***"
				break
			}
		}
	}
	for _, child := range space.Spaces {
		maskSpace(child, patterns)
	}
}
