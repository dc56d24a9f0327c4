package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"storefront-app/internal/domain/site"
)

// SiteConfigRepository stores the document as JSON so reads go through the
// same decode and normalize path as the database.
type SiteConfigRepository struct {
	mu  sync.Mutex
	doc []byte
}

func NewSiteConfigRepository() *SiteConfigRepository {
	return &SiteConfigRepository{}
}

// Seed stores raw as the current document, bypassing validation.
func (r *SiteConfigRepository) Seed(raw []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc = append([]byte(nil), raw...)
}

func (r *SiteConfigRepository) Get(ctx context.Context) (*site.SiteConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.doc == nil {
		if err := r.store(site.DefaultConfig()); err != nil {
			return nil, err
		}
	}
	return site.DecodeConfig(r.doc)
}

func (r *SiteConfigRepository) Replace(ctx context.Context, cfg *site.SiteConfig) (*site.SiteConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.store(site.Normalize(cfg.Clone())); err != nil {
		return nil, err
	}
	return site.DecodeConfig(r.doc)
}

func (r *SiteConfigRepository) Merge(ctx context.Context, u site.Update) (*site.SiteConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current := site.DefaultConfig()
	if r.doc != nil {
		var err error
		if current, err = site.DecodeConfig(r.doc); err != nil {
			return nil, err
		}
	}
	if err := r.store(site.Apply(current, u)); err != nil {
		return nil, err
	}
	return site.DecodeConfig(r.doc)
}

func (r *SiteConfigRepository) store(cfg *site.SiteConfig) error {
	cfg.UpdatedAt = time.Now().UTC()
	b, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	r.doc = b
	return nil
}
