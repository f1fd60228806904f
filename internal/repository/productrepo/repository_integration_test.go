//go:build integration

package productrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"goloja/internal/domain"
	apperror "goloja/internal/errors"
	"goloja/internal/pkg/cache"
	"goloja/internal/pkg/logger"
	"goloja/internal/repository/productrepo"
	"goloja/internal/testutil"
)

func newRepo(t *testing.T) (*productrepo.ProductRepository, *cache.MemoryClient) {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	pg, err := testutil.NewPostgresContainer(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Close(ctx) })

	c := cache.NewMemoryClient()
	return productrepo.NewProductRepository(pg.DB, c, 5*time.Second, time.Minute, logger.NewNopLogger()), c
}

func camiseta() domain.Product {
	radius := 4
	return domain.Product{
		Enabled:           true,
		Name:              "Camiseta Básica",
		Slug:              "camiseta-basica",
		Stock:             100,
		Description:       "Camiseta de algodão com diversas cores disponíveis.",
		Price:             39.9,
		PriceWithDiscount: 29.9,
		CategoryIDs:       []int64{1, 15},
		Images: []domain.Image{
			{Path: "/images/products/camiseta-basica-frente.jpg", Enabled: true},
			{Path: "/images/products/camiseta-basica-verso.jpg", Enabled: true},
		},
		Options: []domain.Option{
			{Title: "Cor", Shape: "square", Radius: &radius, Type: "text", Values: `["PP","GG","M"]`},
		},
	}
}

func TestProductRepository_CreateAndFind(t *testing.T) {
	repo, c := newRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, camiseta())
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Camiseta Básica", found.Name)
	assert.Equal(t, []int64{1, 15}, found.CategoryIDs)
	require.Len(t, found.Images, 2)
	require.Len(t, found.Options, 1)
	assert.Equal(t, 4, *found.Options[0].Radius)

	// A segunda leitura vem do cache.
	_, err = c.Get(ctx, "product:1")
	assert.NoError(t, err)
}

func TestProductRepository_Search(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, camiseta())
	require.NoError(t, err)
	calca := camiseta()
	calca.Name, calca.Slug, calca.Price, calca.CategoryIDs = "Calça Jeans", "calca-jeans", 150, []int64{24}
	calca.Images, calca.Options = nil, nil
	_, err = repo.Create(ctx, calca)
	require.NoError(t, err)

	all, total, err := repo.Search(ctx, domain.ProductFilter{Limit: -1, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, all, 2)

	page, total, err := repo.Search(ctx, domain.ProductFilter{Limit: 1, Page: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, page, 1)
	assert.Equal(t, "Calça Jeans", page[0].Name)

	matched, _, err := repo.Search(ctx, domain.ProductFilter{Limit: 12, Page: 1, Match: "camiseta"})
	require.NoError(t, err)
	require.Len(t, matched, 1)

	byCategory, _, err := repo.Search(ctx, domain.ProductFilter{Limit: 12, Page: 1, CategoryIDs: []int64{24, 99}})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Calça Jeans", byCategory[0].Name)

	lo, hi := 100.0, 200.0
	byPrice, _, err := repo.Search(ctx, domain.ProductFilter{Limit: 12, Page: 1, PriceMin: &lo, PriceMax: &hi})
	require.NoError(t, err)
	require.Len(t, byPrice, 1)
}

func TestProductRepository_UpdateDeleteInvalidateCache(t *testing.T) {
	repo, c := newRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, camiseta())
	require.NoError(t, err)
	_, err = repo.FindByID(ctx, created.ID)
	require.NoError(t, err)

	stock := 7
	require.NoError(t, repo.Update(ctx, created.ID, domain.ProductPatch{Stock: &stock}))
	_, err = c.Get(ctx, "product:1")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, found.Stock)

	require.NoError(t, repo.Delete(ctx, created.ID))
	var notFound *apperror.NotFoundError
	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorAs(t, err, &notFound)
	assert.ErrorAs(t, repo.Delete(ctx, created.ID), &notFound)
}
