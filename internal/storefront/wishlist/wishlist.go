// Package wishlist keeps the visitor's liked products and mirrors each toggle
// onto the product's like counter in the store.
package wishlist

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"storefront-app/internal/domain/catalog"
)

type Remote interface {
	SetLiked(ctx context.Context, productID uint, liked bool) (*catalog.Product, error)
}

// ProductCache receives the product the store returns after a counter change.
type ProductCache interface {
	Replace(p catalog.Product)
}

// Synchronizer owns local membership. The store owns the counter.
type Synchronizer struct {
	storage Storage
	remote  Remote
	cache   ProductCache
	logger  *zap.Logger

	mu      sync.Mutex
	members map[uint]struct{}
}

// New loads membership from storage. cache may be nil.
func New(storage Storage, remote Remote, cache ProductCache, logger *zap.Logger) (*Synchronizer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	ids, err := storage.Load()
	if err != nil {
		return nil, fmt.Errorf("load wishlist: %w", err)
	}
	members := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		members[id] = struct{}{}
	}
	return &Synchronizer{storage: storage, remote: remote, cache: cache, logger: logger, members: members}, nil
}

// Toggle flips membership of productID and returns the new state. The local
// flip is kept even when the store call fails; that failure is only logged and
// the next catalog load corrects the counter.
func (s *Synchronizer) Toggle(ctx context.Context, productID uint) bool {
	s.mu.Lock()
	_, liked := s.members[productID]
	liked = !liked
	if liked {
		s.members[productID] = struct{}{}
	} else {
		delete(s.members, productID)
	}
	ids := s.idsLocked()
	s.mu.Unlock()

	if err := s.storage.Save(ids); err != nil {
		s.logger.Warn("Wishlist not persisted", zap.Uint("product_id", productID), zap.Error(err))
	}

	p, err := s.remote.SetLiked(ctx, productID, liked)
	if err != nil {
		s.logger.Warn("Like counter sync failed",
			zap.Uint("product_id", productID),
			zap.Bool("liked", liked),
			zap.Error(err),
		)
		return liked
	}
	if s.cache != nil {
		s.cache.Replace(*p)
	}
	return liked
}

func (s *Synchronizer) Contains(productID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.members[productID]
	return ok
}

// IDs returns the members in ascending order.
func (s *Synchronizer) IDs() []uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idsLocked()
}

func (s *Synchronizer) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.members)
}

func (s *Synchronizer) idsLocked() []uint {
	ids := make([]uint, 0, len(s.members))
	for id := range s.members {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
