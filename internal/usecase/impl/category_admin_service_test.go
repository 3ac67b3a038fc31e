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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// categoryAdminServiceFixtures holds all test dependencies for admin category tests.
type categoryAdminServiceFixtures struct {
	service      usecase.CategoryAdminUsecase
	categoryRepo *mockRepo.MockCategoryRepository
	imageStore   *mockService.MockImageStore
}

func createTestCategoryAdminService(t *testing.T) categoryAdminServiceFixtures {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	imageStore := mockService.NewMockImageStore(t)

	service := NewCategoryAdminService(CategoryAdminServiceParams{
		CategoryRepo: categoryRepo,
		ImageStore:   imageStore,
		Logger:       newDiscardLogger(),
	})

	return categoryAdminServiceFixtures{
		service:      service,
		categoryRepo: categoryRepo,
		imageStore:   imageStore,
	}
}

func TestCategoryAdminService_Create_Success(t *testing.T) {
	fx := createTestCategoryAdminService(t)

	ctx := context.Background()
	input := &usecase.CategoryInput{
		Name:        "Robes",
		Description: "Robes et ensembles",
		Photo:       testImageUpload("robes.jpg"),
	}

	fx.categoryRepo.EXPECT().
		FindByName(ctx, "Robes").
		Return(nil, repository.ErrCategoryNotFound)
	fx.imageStore.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), []byte("jpeg-bytes"), "image/jpeg").
		Return(nil)
	fx.categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(_ context.Context, category *entity.Category) {
			category.ID = uuid.New()
			assert.Equal(t, "Robes", category.Name)
			assert.NotEmpty(t, category.Photo)
		}).
		Return(nil)
	fx.imageStore.EXPECT().
		Exists(ctx, mock.AnythingOfType("string")).
		Return(true, nil)
	fx.imageStore.EXPECT().
		PublicURL(mock.AnythingOfType("string")).
		Return("http://img/categories/stored.jpg")

	view, err := fx.service.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "http://img/categories/stored.jpg", view.PhotoURL)
}

func TestCategoryAdminService_Create_WithoutPhoto(t *testing.T) {
	fx := createTestCategoryAdminService(t)

	ctx := context.Background()
	input := &usecase.CategoryInput{Name: "Accessoires"}

	fx.categoryRepo.EXPECT().
		FindByName(ctx, "Accessoires").
		Return(nil, repository.ErrCategoryNotFound)
	fx.categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Return(nil)
	fx.imageStore.EXPECT().
		PublicURL(entity.DefaultImageName).
		Return("http://img/defaut.jpg")

	view, err := fx.service.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "http://img/defaut.jpg", view.PhotoURL)
	assert.Empty(t, view.Category.Photo)
}

func TestCategoryAdminService_Create_DuplicateName(t *testing.T) {
	fx := createTestCategoryAdminService(t)

	ctx := context.Background()
	existing := &entity.Category{ID: uuid.New(), Name: "Robes"}

	fx.categoryRepo.EXPECT().
		FindByName(ctx, "Robes").
		Return(existing, nil)

	view, err := fx.service.Create(ctx, &usecase.CategoryInput{Name: "Robes"})
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestCategoryAdminService_Create_MissingName(t *testing.T) {
	fx := createTestCategoryAdminService(t)

	view, err := fx.service.Create(context.Background(), &usecase.CategoryInput{})
	assert.Nil(t, view)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "name", validationErr.Fields()[0].Field)
}

func TestCategoryAdminService_Update_RenameKeepsPhoto(t *testing.T) {
	fx := createTestCategoryAdminService(t)

	ctx := context.Background()
	category := &entity.Category{
		ID:    uuid.New(),
		Name:  "Robes",
		Photo: "categorie_1712_old.jpg",
	}

	fx.categoryRepo.EXPECT().
		FindByID(ctx, category.ID).
		Return(category, nil)
	fx.categoryRepo.EXPECT().
		FindByName(ctx, "Robes et ensembles").
		Return(nil, repository.ErrCategoryNotFound)
	fx.categoryRepo.EXPECT().
		Update(ctx, category).
		Return(nil)
	fx.imageStore.EXPECT().
		Exists(ctx, "categories/categorie_1712_old.jpg").
		Return(true, nil)
	fx.imageStore.EXPECT().
		PublicURL("categories/categorie_1712_old.jpg").
		Return("http://img/categories/categorie_1712_old.jpg")

	view, err := fx.service.Update(ctx, category.ID, &usecase.CategoryInput{Name: "Robes et ensembles"})
	require.NoError(t, err)
	assert.Equal(t, "Robes et ensembles", view.Category.Name)
	assert.Equal(t, "categorie_1712_old.jpg", view.Category.Photo)
}

func TestCategoryAdminService_Update_NameTakenByOtherCategory(t *testing.T) {
	fx := createTestCategoryAdminService(t)

	ctx := context.Background()
	category := &entity.Category{ID: uuid.New(), Name: "Robes"}
	other := &entity.Category{ID: uuid.New(), Name: "Accessoires"}

	fx.categoryRepo.EXPECT().
		FindByID(ctx, category.ID).
		Return(category, nil)
	fx.categoryRepo.EXPECT().
		FindByName(ctx, "Accessoires").
		Return(other, nil)

	view, err := fx.service.Update(ctx, category.ID, &usecase.CategoryInput{Name: "Accessoires"})
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestCategoryAdminService_Update_ReplacesPhoto(t *testing.T) {
	fx := createTestCategoryAdminService(t)

	ctx := context.Background()
	category := &entity.Category{
		ID:    uuid.New(),
		Name:  "Robes",
		Photo: "categorie_1712_old.jpg",
	}
	input := &usecase.CategoryInput{
		Name:  "Robes",
		Photo: testImageUpload("nouvelle.jpg"),
	}

	fx.categoryRepo.EXPECT().
		FindByID(ctx, category.ID).
		Return(category, nil)
	fx.categoryRepo.EXPECT().
		FindByName(ctx, "Robes").
		Return(category, nil)
	fx.imageStore.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), []byte("jpeg-bytes"), "image/jpeg").
		Return(nil)
	fx.categoryRepo.EXPECT().
		Update(ctx, category).
		Return(nil)
	fx.imageStore.EXPECT().
		Delete(ctx, "categories/categorie_1712_old.jpg").
		Return(nil)
	fx.imageStore.EXPECT().
		Exists(ctx, mock.AnythingOfType("string")).
		Return(true, nil)
	fx.imageStore.EXPECT().
		PublicURL(mock.AnythingOfType("string")).
		Return("http://img/categories/stored.jpg")

	view, err := fx.service.Update(ctx, category.ID, input)
	require.NoError(t, err)
	assert.NotEqual(t, "categorie_1712_old.jpg", view.Category.Photo)
}

func TestCategoryAdminService_Delete_Success(t *testing.T) {
	fx := createTestCategoryAdminService(t)

	ctx := context.Background()
	category := &entity.Category{ID: uuid.New(), Photo: "categorie_1712_old.jpg"}

	fx.categoryRepo.EXPECT().
		FindByID(ctx, category.ID).
		Return(category, nil)
	fx.categoryRepo.EXPECT().
		CountProducts(ctx, category.ID).
		Return(int64(0), nil)
	fx.categoryRepo.EXPECT().
		Delete(ctx, category.ID).
		Return(nil)
	fx.imageStore.EXPECT().
		Delete(ctx, "categories/categorie_1712_old.jpg").
		Return(nil)

	err := fx.service.Delete(ctx, category.ID)
	require.NoError(t, err)
}

func TestCategoryAdminService_Delete_RefusedWhileProductsAttached(t *testing.T) {
	fx := createTestCategoryAdminService(t)

	ctx := context.Background()
	category := &entity.Category{ID: uuid.New()}

	fx.categoryRepo.EXPECT().
		FindByID(ctx, category.ID).
		Return(category, nil)
	fx.categoryRepo.EXPECT().
		CountProducts(ctx, category.ID).
		Return(int64(3), nil)

	err := fx.service.Delete(ctx, category.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotEmpty)
}

func TestCategoryAdminService_Delete_NotFound(t *testing.T) {
	fx := createTestCategoryAdminService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.categoryRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrCategoryNotFound)

	err := fx.service.Delete(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}
