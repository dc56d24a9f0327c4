package catalogcache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-app/internal/domain/catalog"
)

type listFunc func(ctx context.Context) ([]catalog.Product, error)

func (f listFunc) ListProducts(ctx context.Context) ([]catalog.Product, error) { return f(ctx) }

func TestCache(t *testing.T) {
	c := New()
	err := c.Load(context.Background(), listFunc(func(context.Context) ([]catalog.Product, error) {
		return []catalog.Product{{ID: 1, Name: "A", IsFeatured: true}, {ID: 2, Name: "B"}, {ID: 3, Name: "C", IsFeatured: true}}, nil
	}))
	require.NoError(t, err)
	assert.Len(t, c.List(), 3)

	c.Replace(catalog.Product{ID: 2, Name: "B", Likes: 9})
	p, ok := c.Get(2)
	require.True(t, ok)
	assert.Equal(t, 9, p.Likes)

	c.Replace(catalog.Product{ID: 4})
	assert.Len(t, c.List(), 4)

	assert.Len(t, c.Featured(0), 2)
	assert.Len(t, c.Featured(1), 1)

	_, ok = c.Get(99)
	assert.False(t, ok)
}

func TestCache_LoadFailureKeepsContents(t *testing.T) {
	c := New()
	c.Set([]catalog.Product{{ID: 1}})
	err := c.Load(context.Background(), listFunc(func(context.Context) ([]catalog.Product, error) {
		return nil, errors.New("offline")
	}))
	require.Error(t, err)
	assert.Len(t, c.List(), 1)
}
