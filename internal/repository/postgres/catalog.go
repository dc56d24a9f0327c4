package postgres

import (
	"context"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront-app/internal/domain/catalog"
	"storefront-app/internal/repository"
)

type productRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewProductRepository(db *gorm.DB, logger *zap.Logger) *productRepository {
	return &productRepository{db: db, logger: logger}
}

func productNotFound(id uint) error {
	return &repository.ErrNotFound{Resource: "product", ID: strconv.FormatUint(uint64(id), 10)}
}

func (r *productRepository) List(ctx context.Context, f repository.ProductFilter) ([]catalog.Product, error) {
	q := r.db.WithContext(ctx).Model(&catalog.Product{})
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.Featured {
		q = q.Where("is_featured = true")
	}
	var out []catalog.Product
	if err := q.Order("id DESC").Find(&out).Error; err != nil {
		r.logger.Error("Failed to list products", zap.Error(err))
		return nil, err
	}
	return out, nil
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*catalog.Product, error) {
	var p catalog.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if isNotFound(err) {
			return nil, productNotFound(id)
		}
		r.logger.Error("Failed to get product", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) Create(ctx context.Context, p *catalog.Product) error {
	p.ID = 0
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		r.logger.Error("Failed to create product", zap.Error(err))
		return err
	}
	return nil
}

func (r *productRepository) Update(ctx context.Context, p *catalog.Product) error {
	res := r.db.WithContext(ctx).Model(&catalog.Product{}).
		Where("id = ?", p.ID).
		Select("name", "description", "price", "discount_price", "category_id", "images", "sizes", "colors", "stock", "is_featured").
		Updates(p)
	if res.Error != nil {
		r.logger.Error("Failed to update product", zap.Uint("id", p.ID), zap.Error(res.Error))
		return res.Error
	}
	if res.RowsAffected == 0 {
		return productNotFound(p.ID)
	}
	return r.db.WithContext(ctx).First(p, p.ID).Error
}

func (r *productRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&catalog.Product{}, id)
	if res.Error != nil {
		r.logger.Error("Failed to delete product", zap.Uint("id", id), zap.Error(res.Error))
		return res.Error
	}
	if res.RowsAffected == 0 {
		return productNotFound(id)
	}
	return nil
}

func (r *productRepository) AdjustLikes(ctx context.Context, id uint, delta int) (*catalog.Product, error) {
	var p catalog.Product
	res := r.db.WithContext(ctx).Model(&p).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("GREATEST(likes + ?, 0)", delta))
	if res.Error != nil {
		r.logger.Error("Failed to adjust likes", zap.Uint("id", id), zap.Error(res.Error))
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, productNotFound(id)
	}
	return &p, nil
}

type categoryRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewCategoryRepository(db *gorm.DB, logger *zap.Logger) *categoryRepository {
	return &categoryRepository{db: db, logger: logger}
}

func categoryNotFound(id uint) error {
	return &repository.ErrNotFound{Resource: "category", ID: strconv.FormatUint(uint64(id), 10)}
}

func (r *categoryRepository) List(ctx context.Context) ([]catalog.Category, error) {
	var out []catalog.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error; err != nil {
		r.logger.Error("Failed to list categories", zap.Error(err))
		return nil, err
	}
	return out, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*catalog.Category, error) {
	var c catalog.Category
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if isNotFound(err) {
			return nil, categoryNotFound(id)
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) Create(ctx context.Context, c *catalog.Category) error {
	c.ID = 0
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if isDuplicate(err) {
			return &repository.ErrConflict{Resource: "category", Message: "name already exists"}
		}
		r.logger.Error("Failed to create category", zap.Error(err))
		return err
	}
	return nil
}

func (r *categoryRepository) Update(ctx context.Context, c *catalog.Category) error {
	res := r.db.WithContext(ctx).Model(&catalog.Category{}).
		Where("id = ?", c.ID).
		Select("name", "image_url").
		Updates(c)
	if res.Error != nil {
		if isDuplicate(res.Error) {
			return &repository.ErrConflict{Resource: "category", Message: "name already exists"}
		}
		r.logger.Error("Failed to update category", zap.Uint("id", c.ID), zap.Error(res.Error))
		return res.Error
	}
	if res.RowsAffected == 0 {
		return categoryNotFound(c.ID)
	}
	return r.db.WithContext(ctx).First(c, c.ID).Error
}

func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&catalog.Category{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return categoryNotFound(id)
		}
		// products outlive their category
		return tx.Model(&catalog.Product{}).Where("category_id = ?", id).Update("category_id", nil).Error
	})
	if err != nil && !repository.IsNotFound(err) {
		r.logger.Error("Failed to delete category", zap.Uint("id", id), zap.Error(err))
	}
	return err
}
