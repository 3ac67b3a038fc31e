package impl

import (
	"context"
	"encoding/base64"
	"testing"

	"faranah/internal/domain/entity"
	domainerrors "faranah/internal/domain/errors"
	"faranah/internal/domain/repository"
	mockRepo "faranah/internal/mocks/repository"
	mockService "faranah/internal/mocks/service"
	"faranah/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productAdminServiceFixtures holds all test dependencies for admin product tests.
type productAdminServiceFixtures struct {
	service      usecase.ProductAdminUsecase
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	imageStore   *mockService.MockImageStore
}

func createTestProductAdminService(t *testing.T) productAdminServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	imageStore := mockService.NewMockImageStore(t)

	service := NewProductAdminService(ProductAdminServiceParams{
		ProductRepo:  productRepo,
		CategoryRepo: categoryRepo,
		ImageStore:   imageStore,
		Logger:       newDiscardLogger(),
	})

	return productAdminServiceFixtures{
		service:      service,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		imageStore:   imageStore,
	}
}

// testImageUpload builds a small valid JPEG data URI upload.
func testImageUpload(name string) entity.ImageUpload {
	return entity.ImageUpload{
		Name: name,
		Data: "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("jpeg-bytes")),
	}
}

func validProductInput(categoryID uuid.UUID) *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:        "Robe wax",
		Price:       120,
		Description: "Robe en tissu wax",
		CategoryID:  categoryID,
		Image:       testImageUpload("robe.jpg"),
	}
}

func TestProductAdminService_Create_Success(t *testing.T) {
	fx := createTestProductAdminService(t)

	ctx := context.Background()
	category := &entity.Category{ID: uuid.New(), Name: "Robes"}
	input := validProductInput(category.ID)

	fx.categoryRepo.EXPECT().
		FindByID(ctx, category.ID).
		Return(category, nil)
	fx.imageStore.EXPECT().
		Put(ctx, mock.MatchedBy(func(key string) bool {
			return len(key) > len("produits/") && key[:len("produits/")] == "produits/"
		}), []byte("jpeg-bytes"), "image/jpeg").
		Return(nil)
	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			product.ID = uuid.New()
			assert.Equal(t, "Robe wax", product.Name)
			assert.NotEmpty(t, product.Image)
		}).
		Return(nil)
	fx.imageStore.EXPECT().
		Exists(ctx, mock.AnythingOfType("string")).
		Return(true, nil)
	fx.imageStore.EXPECT().
		PublicURL(mock.AnythingOfType("string")).
		Return("http://img/produits/stored.jpg")

	view, err := fx.service.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "http://img/produits/stored.jpg", view.ImageURL)
	assert.Equal(t, category.ID, view.Product.CategoryID)
}

func TestProductAdminService_Create_MissingImage(t *testing.T) {
	fx := createTestProductAdminService(t)

	input := validProductInput(uuid.New())
	input.Image = entity.ImageUpload{}

	view, err := fx.service.Create(context.Background(), input)
	assert.Nil(t, view)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "image", validationErr.Fields()[0].Field)
}

func TestProductAdminService_Create_BadImagePayload(t *testing.T) {
	fx := createTestProductAdminService(t)

	ctx := context.Background()
	category := &entity.Category{ID: uuid.New()}
	input := validProductInput(category.ID)
	input.Image.Data = "data:text/plain;base64,aGVsbG8="

	fx.categoryRepo.EXPECT().
		FindByID(ctx, category.ID).
		Return(category, nil)

	view, err := fx.service.Create(ctx, input)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidImage)
}

func TestProductAdminService_Create_UnknownCategory(t *testing.T) {
	fx := createTestProductAdminService(t)

	ctx := context.Background()
	input := validProductInput(uuid.New())

	fx.categoryRepo.EXPECT().
		FindByID(ctx, input.CategoryID).
		Return(nil, repository.ErrCategoryNotFound)

	view, err := fx.service.Create(ctx, input)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestProductAdminService_Create_RowFailureCleansUpImage(t *testing.T) {
	fx := createTestProductAdminService(t)

	ctx := context.Background()
	category := &entity.Category{ID: uuid.New()}
	input := validProductInput(category.ID)

	var storedKey string
	fx.categoryRepo.EXPECT().
		FindByID(ctx, category.ID).
		Return(category, nil)
	fx.imageStore.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), []byte("jpeg-bytes"), "image/jpeg").
		Run(func(_ context.Context, key string, _ []byte, _ string) {
			storedKey = key
		}).
		Return(nil)
	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(errors.New("unique constraint violated"))
	fx.imageStore.EXPECT().
		Delete(ctx, mock.MatchedBy(func(key string) bool {
			return key == storedKey
		})).
		Return(nil)

	view, err := fx.service.Create(ctx, input)
	assert.Nil(t, view)
	assert.Error(t, err)
}

func TestProductAdminService_Update_KeepsImageWhenNoneUploaded(t *testing.T) {
	fx := createTestProductAdminService(t)

	ctx := context.Background()
	category := &entity.Category{ID: uuid.New()}
	product := &entity.Product{
		ID:         uuid.New(),
		Name:       "Ancien nom",
		Price:      100,
		Image:      "produit_1712_old.jpg",
		CategoryID: category.ID,
	}
	input := validProductInput(category.ID)
	input.Image = entity.ImageUpload{}

	fx.productRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)
	fx.categoryRepo.EXPECT().
		FindByID(ctx, category.ID).
		Return(category, nil)
	fx.productRepo.EXPECT().
		Update(ctx, product).
		Return(nil)
	fx.imageStore.EXPECT().
		Exists(ctx, "produits/produit_1712_old.jpg").
		Return(true, nil)
	fx.imageStore.EXPECT().
		PublicURL("produits/produit_1712_old.jpg").
		Return("http://img/produits/produit_1712_old.jpg")

	view, err := fx.service.Update(ctx, product.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Robe wax", view.Product.Name)
	assert.Equal(t, "produit_1712_old.jpg", view.Product.Image)
}

func TestProductAdminService_Update_ReplacesStoredImage(t *testing.T) {
	fx := createTestProductAdminService(t)

	ctx := context.Background()
	category := &entity.Category{ID: uuid.New()}
	product := &entity.Product{
		ID:         uuid.New(),
		Name:       "Ancien nom",
		Image:      "produit_1712_old.jpg",
		CategoryID: category.ID,
	}
	input := validProductInput(category.ID)

	fx.productRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)
	fx.categoryRepo.EXPECT().
		FindByID(ctx, category.ID).
		Return(category, nil)
	fx.imageStore.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), []byte("jpeg-bytes"), "image/jpeg").
		Return(nil)
	fx.productRepo.EXPECT().
		Update(ctx, product).
		Return(nil)
	fx.imageStore.EXPECT().
		Delete(ctx, "produits/produit_1712_old.jpg").
		Return(nil)
	fx.imageStore.EXPECT().
		Exists(ctx, mock.AnythingOfType("string")).
		Return(true, nil)
	fx.imageStore.EXPECT().
		PublicURL(mock.AnythingOfType("string")).
		Return("http://img/produits/stored.jpg")

	view, err := fx.service.Update(ctx, product.ID, input)
	require.NoError(t, err)
	assert.NotEqual(t, "produit_1712_old.jpg", view.Product.Image)
}

func TestProductAdminService_Delete_RemovesImage(t *testing.T) {
	fx := createTestProductAdminService(t)

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Image: "produit_1712_old.jpg"}

	fx.productRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)
	fx.productRepo.EXPECT().
		Delete(ctx, product.ID).
		Return(nil)
	fx.imageStore.EXPECT().
		Delete(ctx, "produits/produit_1712_old.jpg").
		Return(nil)

	err := fx.service.Delete(ctx, product.ID)
	require.NoError(t, err)
}

func TestProductAdminService_Delete_NeverDeletesPlaceholder(t *testing.T) {
	fx := createTestProductAdminService(t)

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Image: entity.DefaultImageName}

	fx.productRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)
	fx.productRepo.EXPECT().
		Delete(ctx, product.ID).
		Return(nil)

	err := fx.service.Delete(ctx, product.ID)
	require.NoError(t, err)
}

func TestProductAdminService_Delete_NotFound(t *testing.T) {
	fx := createTestProductAdminService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrProductNotFound)

	err := fx.service.Delete(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductAdminService_ListSales(t *testing.T) {
	fx := createTestProductAdminService(t)

	ctx := context.Background()
	filter := repository.ProductSearchFilter{Search: "robe"}
	row := &entity.ProductSales{
		Product:      entity.Product{ID: uuid.New(), Name: "Robe wax"},
		CategoryName: "Robes",
		Sales:        17,
	}

	fx.productRepo.EXPECT().
		ListSales(ctx, filter).
		Return([]*entity.ProductSales{row}, nil)
	fx.imageStore.EXPECT().
		PublicURL(entity.DefaultImageName).
		Return("http://img/defaut.jpg")

	views, err := fx.service.ListSales(ctx, filter)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(17), views[0].ProductSales.Sales)
	assert.Equal(t, "Robes", views[0].ProductSales.CategoryName)
}

func TestProductAdminService_GetSales_NotFound(t *testing.T) {
	fx := createTestProductAdminService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.productRepo.EXPECT().
		FindSales(ctx, id).
		Return(nil, repository.ErrProductNotFound)

	view, err := fx.service.GetSales(ctx, id)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
