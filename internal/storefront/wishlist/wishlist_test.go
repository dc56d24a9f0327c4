package wishlist

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"storefront-app/internal/domain/catalog"
	"storefront-app/internal/storefront/catalogcache"
)

type fakeRemote struct {
	likes map[uint]int
	err   error
	calls []bool
}

func (f *fakeRemote) SetLiked(ctx context.Context, id uint, liked bool) (*catalog.Product, error) {
	f.calls = append(f.calls, liked)
	if f.err != nil {
		return nil, f.err
	}
	if liked {
		f.likes[id]++
	} else if f.likes[id] > 0 {
		f.likes[id]--
	}
	return &catalog.Product{ID: id, Likes: f.likes[id]}, nil
}

func TestToggle_ReconcilesCounter(t *testing.T) {
	cache := catalogcache.New()
	cache.Set([]catalog.Product{{ID: 7, Likes: 4}})
	remote := &fakeRemote{likes: map[uint]int{7: 4}}
	store := &MemoryStorage{}

	s, err := New(store, remote, cache, nil)
	require.NoError(t, err)

	assert.True(t, s.Toggle(context.Background(), 7))
	assert.True(t, s.Contains(7))
	p, _ := cache.Get(7)
	assert.Equal(t, 5, p.Likes)

	saved, _ := store.Load()
	assert.Equal(t, []uint{7}, saved)
}

func TestToggle_TwiceRestoresMembership(t *testing.T) {
	s, err := New(&MemoryStorage{}, &fakeRemote{likes: map[uint]int{}}, nil, nil)
	require.NoError(t, err)

	for _, id := range []uint{1, 2, 3} {
		before := s.Contains(id)
		s.Toggle(context.Background(), id)
		s.Toggle(context.Background(), id)
		assert.Equal(t, before, s.Contains(id))
	}
	assert.Zero(t, s.Len())
}

func TestToggle_RemoteFailureKeepsLocalFlip(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	remote := &fakeRemote{likes: map[uint]int{}, err: errors.New("503")}
	cache := catalogcache.New()
	cache.Set([]catalog.Product{{ID: 3, Likes: 10}})

	s, err := New(&MemoryStorage{}, remote, cache, zap.New(core))
	require.NoError(t, err)

	assert.True(t, s.Toggle(context.Background(), 3))
	assert.True(t, s.Contains(3))
	p, _ := cache.Get(3)
	assert.Equal(t, 10, p.Likes)
	assert.Equal(t, 1, logs.FilterMessage("Like counter sync failed").Len())
}

func TestToggle_StorageFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	s, err := New(&MemoryStorage{Err: errors.New("disk full")}, &fakeRemote{likes: map[uint]int{}}, nil, zap.New(core))
	require.NoError(t, err)

	assert.True(t, s.Toggle(context.Background(), 1))
	assert.Equal(t, 1, logs.FilterMessage("Wishlist not persisted").Len())
}

func TestFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "wishlist.json")
	fs := FileStorage{Path: path}

	ids, err := fs.Load()
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, fs.Save([]uint{2, 9}))
	ids, err = fs.Load()
	require.NoError(t, err)
	assert.Equal(t, []uint{2, 9}, ids)

	s, err := New(fs, &fakeRemote{likes: map[uint]int{}}, nil, nil)
	require.NoError(t, err)
	assert.True(t, s.Contains(9))
	assert.Equal(t, []uint{2, 9}, s.IDs())

	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	_, err = New(fs, &fakeRemote{}, nil, nil)
	assert.Error(t, err)
}
