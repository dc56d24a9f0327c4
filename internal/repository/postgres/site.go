package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront-app/internal/domain/site"
)

type siteConfigRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSiteConfigRepository(db *gorm.DB, logger *zap.Logger) *siteConfigRepository {
	return &siteConfigRepository{db: db, logger: logger}
}

func (r *siteConfigRepository) Get(ctx context.Context) (*site.SiteConfig, error) {
	var out *site.SiteConfig
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := r.loadOrCreate(tx)
		if err != nil {
			return err
		}
		out, err = decodeRecord(rec)
		return err
	})
	if err != nil {
		r.logger.Error("Failed to load site config", zap.Error(err))
		return nil, err
	}
	return out, nil
}

func (r *siteConfigRepository) Replace(ctx context.Context, cfg *site.SiteConfig) (*site.SiteConfig, error) {
	var out *site.SiteConfig
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := r.loadOrCreate(tx); err != nil {
			return err
		}
		rec, err := r.save(tx, site.Normalize(cfg.Clone()))
		if err != nil {
			return err
		}
		out, err = decodeRecord(rec)
		return err
	})
	if err != nil {
		r.logger.Error("Failed to replace site config", zap.Error(err))
		return nil, err
	}
	return out, nil
}

func (r *siteConfigRepository) Merge(ctx context.Context, u site.Update) (*site.SiteConfig, error) {
	var out *site.SiteConfig
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := r.loadOrCreate(tx)
		if err != nil {
			return err
		}
		current, err := decodeRecord(rec)
		if err != nil {
			return err
		}
		rec, err = r.save(tx, site.Apply(current, u))
		if err != nil {
			return err
		}
		out, err = decodeRecord(rec)
		return err
	})
	if err != nil {
		r.logger.Error("Failed to merge site config", zap.Error(err))
		return nil, err
	}
	return out, nil
}

// loadOrCreate locks the singleton row, inserting the default document when
// the table is empty.
func (r *siteConfigRepository) loadOrCreate(tx *gorm.DB) (*site.Record, error) {
	var rec site.Record
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&rec, site.SingletonID).Error
	if err == nil {
		return &rec, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	doc, err := json.Marshal(site.DefaultConfig())
	if err != nil {
		return nil, err
	}
	rec = site.Record{ID: site.SingletonID, Document: doc}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rec).Error; err != nil {
		return nil, err
	}
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&rec, site.SingletonID).Error; err != nil {
		return nil, err
	}
	r.logger.Info("Created default site config")
	return &rec, nil
}

func (r *siteConfigRepository) save(tx *gorm.DB, cfg *site.SiteConfig) (*site.Record, error) {
	doc, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode site config: %w", err)
	}
	if err := tx.Model(&site.Record{}).
		Where("id = ?", site.SingletonID).
		Update("document", string(doc)).Error; err != nil {
		return nil, err
	}
	var rec site.Record
	if err := tx.First(&rec, site.SingletonID).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func decodeRecord(rec *site.Record) (*site.SiteConfig, error) {
	cfg, err := site.DecodeConfig(rec.Document)
	if err != nil {
		return nil, err
	}
	cfg.UpdatedAt = rec.UpdatedAt
	return cfg, nil
}
