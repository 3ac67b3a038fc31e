package impl

import (
	"context"
	"testing"

	"faranah/internal/domain/entity"
	domainerrors "faranah/internal/domain/errors"
	"faranah/internal/domain/repository"
	mockRepo "faranah/internal/mocks/repository"
	mockService "faranah/internal/mocks/service"
	"faranah/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog tests.
type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	imageStore   *mockService.MockImageStore
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	imageStore := mockService.NewMockImageStore(t)

	service := NewCatalogService(CatalogServiceParams{
		ProductRepo:  productRepo,
		CategoryRepo: categoryRepo,
		ImageStore:   imageStore,
		Logger:       newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:      service,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		imageStore:   imageStore,
	}
}

func TestCatalogService_ListCategories_ResolvesPhotoURLs(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	withPhoto := &entity.Category{ID: uuid.New(), Name: "Robes", Photo: "categorie_1712_x.jpg"}
	withoutPhoto := &entity.Category{ID: uuid.New(), Name: "Accessoires"}

	fx.categoryRepo.EXPECT().
		List(ctx).
		Return([]*entity.Category{withPhoto, withoutPhoto}, nil)
	fx.imageStore.EXPECT().
		Exists(ctx, "categories/categorie_1712_x.jpg").
		Return(true, nil)
	fx.imageStore.EXPECT().
		PublicURL("categories/categorie_1712_x.jpg").
		Return("http://img/categories/categorie_1712_x.jpg")
	fx.imageStore.EXPECT().
		PublicURL(entity.DefaultImageName).
		Return("http://img/defaut.jpg")

	views, err := fx.service.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "http://img/categories/categorie_1712_x.jpg", views[0].PhotoURL)
	assert.Equal(t, "http://img/defaut.jpg", views[1].PhotoURL)
}

func TestCatalogService_GetCategory_WithProducts(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	category := &entity.Category{
		ID:   uuid.New(),
		Name: "Robes",
		Products: []*entity.Product{
			{ID: uuid.New(), Name: "Robe wax", Price: 120},
		},
	}

	fx.categoryRepo.EXPECT().
		FindByIDWithProducts(ctx, category.ID).
		Return(category, nil)
	fx.imageStore.EXPECT().
		PublicURL(entity.DefaultImageName).
		Return("http://img/defaut.jpg")

	view, err := fx.service.GetCategory(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, category, view.Category)
	require.Len(t, view.Products, 1)
	assert.Equal(t, "http://img/defaut.jpg", view.Products[0].ImageURL)
}

func TestCatalogService_GetCategory_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.categoryRepo.EXPECT().
		FindByIDWithProducts(ctx, id).
		Return(nil, repository.ErrCategoryNotFound)

	view, err := fx.service.GetCategory(ctx, id)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCatalogService_GetCategoryByName(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	category := &entity.Category{ID: uuid.New(), Name: "Robes"}

	fx.categoryRepo.EXPECT().
		FindByName(ctx, "robes").
		Return(category, nil)
	fx.imageStore.EXPECT().
		PublicURL(entity.DefaultImageName).
		Return("http://img/defaut.jpg")

	view, err := fx.service.GetCategoryByName(ctx, "robes")
	require.NoError(t, err)
	assert.Equal(t, category, view.Category)
}

func TestCatalogService_GetCategoryByName_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		FindByName(ctx, "inexistante").
		Return(nil, repository.ErrCategoryNotFound)

	view, err := fx.service.GetCategoryByName(ctx, "inexistante")
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCatalogService_ListProducts_FiltersByCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Name: "Robe wax", Image: "produit_1712_y.jpg", CategoryID: categoryID}

	fx.productRepo.EXPECT().
		List(ctx, &categoryID).
		Return([]*entity.Product{product}, nil)
	fx.imageStore.EXPECT().
		Exists(ctx, "produits/produit_1712_y.jpg").
		Return(true, nil)
	fx.imageStore.EXPECT().
		PublicURL("produits/produit_1712_y.jpg").
		Return("http://img/produits/produit_1712_y.jpg")

	views, err := fx.service.ListProducts(ctx, &categoryID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "http://img/produits/produit_1712_y.jpg", views[0].ImageURL)
}

func TestCatalogService_GetProduct_MissingStoredImageFallsBack(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Name: "Robe wax", Image: "produit_1712_z.jpg"}

	fx.productRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)
	fx.imageStore.EXPECT().
		Exists(ctx, "produits/produit_1712_z.jpg").
		Return(false, nil)
	fx.imageStore.EXPECT().
		PublicURL(entity.DefaultImageName).
		Return("http://img/defaut.jpg")

	view, err := fx.service.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "http://img/defaut.jpg", view.ImageURL)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrProductNotFound)

	view, err := fx.service.GetProduct(ctx, id)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
