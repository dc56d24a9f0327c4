package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-app/internal/domain/catalog"
	"storefront-app/internal/domain/orders"
	"storefront-app/internal/domain/site"
	"storefront-app/internal/repository"
)

func TestSiteConfig_DefaultOnFirstRead(t *testing.T) {
	repo := NewSiteConfigRepository()
	cfg, err := repo.Get(context.Background())
	require.NoError(t, err)
	require.Len(t, cfg.HomeLayout, 5)
	assert.Equal(t, site.SectionHero, cfg.HomeLayout[0].Type)
	assert.Equal(t, site.SectionTrust, cfg.HomeLayout[4].Type)
}

func TestSiteConfig_HealsSeededDocument(t *testing.T) {
	repo := NewSiteConfigRepository()
	repo.Seed([]byte(`{"siteName":"Seeded","homeLayout":"broken"}`))

	cfg, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Seeded", cfg.SiteName)
	assert.Len(t, cfg.HomeLayout, 5)
}

func TestSiteConfig_MergeAndReplace(t *testing.T) {
	ctx := context.Background()
	repo := NewSiteConfigRepository()

	logo := "/logo.svg"
	merged, err := repo.Merge(ctx, site.Update{LogoURL: &logo})
	require.NoError(t, err)
	assert.Equal(t, "/logo.svg", merged.LogoURL)
	assert.Equal(t, site.DefaultSiteName, merged.SiteName)

	replacement := site.DefaultConfig()
	replacement.SiteName = "Fresh"
	replacement.HomeLayout = replacement.HomeLayout[:1]
	got, err := repo.Replace(ctx, replacement)
	require.NoError(t, err)
	assert.Equal(t, "Fresh", got.SiteName)
	assert.Equal(t, "", got.LogoURL)
	assert.Len(t, got.HomeLayout, 1)

	again, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, got.SiteName, again.SiteName)
}

func TestProduct_AdjustLikesFloorsAtZero(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()
	p := &catalog.Product{Name: "Tee", Price: 10, Likes: 1}
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.AdjustLikes(ctx, p.ID, -1)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Likes)

	got, err = repo.AdjustLikes(ctx, p.ID, -1)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Likes)

	got, err = repo.AdjustLikes(ctx, p.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Likes)

	_, err = repo.AdjustLikes(ctx, 999, 1)
	assert.True(t, repository.IsNotFound(err))
}

func TestProduct_UpdateKeepsLikes(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()
	p := &catalog.Product{Name: "Tee", Price: 10}
	require.NoError(t, repo.Create(ctx, p))
	_, err := repo.AdjustLikes(ctx, p.ID, 1)
	require.NoError(t, err)

	p.Name = "Shirt"
	p.Likes = 100
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shirt", got.Name)
	assert.Equal(t, 1, got.Likes)
}

func TestProduct_ListFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()
	cat := uint(2)
	require.NoError(t, repo.Create(ctx, &catalog.Product{Name: "A", CategoryID: &cat, IsFeatured: true}))
	require.NoError(t, repo.Create(ctx, &catalog.Product{Name: "B"}))

	all, err := repo.List(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "B", all[0].Name)

	byCat, err := repo.List(ctx, repository.ProductFilter{CategoryID: &cat})
	require.NoError(t, err)
	require.Len(t, byCat, 1)
	assert.Equal(t, "A", byCat[0].Name)

	featured, err := repo.List(ctx, repository.ProductFilter{Featured: true})
	require.NoError(t, err)
	assert.Len(t, featured, 1)
}

func TestCategory_UniqueName(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository()
	require.NoError(t, repo.Create(ctx, &catalog.Category{Name: "Shoes"}))
	err := repo.Create(ctx, &catalog.Category{Name: "shoes"})
	assert.True(t, repository.IsConflict(err))
}

func TestOrder_CreateAndUpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()
	o := &orders.Order{Status: orders.StatusPending, Items: orders.LineItems{{ProductID: 1, Quantity: 1}}}
	require.NoError(t, repo.Create(ctx, o))
	assert.NotEqual(t, uuid.Nil, o.ID)

	got, err := repo.UpdateStatus(ctx, o.ID, orders.StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, orders.StatusShipped, got.Status)

	_, err = repo.UpdateStatus(ctx, uuid.New(), orders.StatusShipped)
	assert.True(t, repository.IsNotFound(err))
}

func TestUser_DefaultAdminIsProtected(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	admin, err := repo.EnsureDefaultAdmin(ctx, "admin", "hash")
	require.NoError(t, err)
	assert.True(t, admin.IsDefault)
	assert.ElementsMatch(t, []string{"manage_site", "manage_products", "manage_categories", "manage_orders", "manage_users"}, []string(admin.Permissions))

	second, err := repo.EnsureDefaultAdmin(ctx, "other", "hash")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, second.ID)

	assert.ErrorIs(t, repo.Delete(ctx, admin.ID), repository.ErrProtected)
	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
