package impl

import (
	"context"
	"testing"

	"faranah/internal/domain/entity"
	domainerrors "faranah/internal/domain/errors"
	"faranah/internal/domain/repository"
	mockRepo "faranah/internal/mocks/repository"
	"faranah/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	txManager   *mockRepo.MockTransactionManager
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewCartService(CartServiceParams{
		TxManager:   txManager,
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:     service,
		txManager:   txManager,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func TestCartService_Add_SnapshotsProduct(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	owner := entity.OwnerKey("guest-abc")
	product := &entity.Product{
		ID:    uuid.New(),
		Name:  "T-shirt col rond",
		Price: 59.90,
	}

	fx.productRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)

	fx.cartRepo.EXPECT().
		Upsert(ctx, &entity.CartLine{
			OwnerKey:    owner,
			ProductID:   product.ID,
			ProductName: "T-shirt col rond",
			Size:        entity.SizeL,
			Quantity:    3,
			UnitPrice:   59.90,
			Total:       59.90 * 3,
		}).
		Return(nil)

	err := fx.service.Add(ctx, &usecase.AddToCartInput{
		Owner:     owner,
		ProductID: product.ID,
		Size:      "L",
		Quantity:  3,
	})
	require.NoError(t, err)
}

func TestCartService_Add_AcceptsTwoXLAlias(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Name: "Sweat", Price: 80}

	fx.productRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)

	fx.cartRepo.EXPECT().
		Upsert(ctx, &entity.CartLine{
			OwnerKey:    entity.OwnerKey("guest-abc"),
			ProductID:   product.ID,
			ProductName: "Sweat",
			Size:        entity.SizeXXL,
			Quantity:    1,
			UnitPrice:   80,
			Total:       80,
		}).
		Return(nil)

	err := fx.service.Add(ctx, &usecase.AddToCartInput{
		Owner:     "guest-abc",
		ProductID: product.ID,
		Size:      "2XL",
		Quantity:  1,
	})
	require.NoError(t, err)
}

func TestCartService_Add_InvalidSize(t *testing.T) {
	fx := createTestCartService(t)

	err := fx.service.Add(context.Background(), &usecase.AddToCartInput{
		Owner:     "guest-abc",
		ProductID: uuid.New(),
		Size:      "S",
		Quantity:  1,
	})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "size", validationErr.Fields()[0].Field)
}

func TestCartService_Add_QuantityBelowOne(t *testing.T) {
	fx := createTestCartService(t)

	err := fx.service.Add(context.Background(), &usecase.AddToCartInput{
		Owner:     "guest-abc",
		ProductID: uuid.New(),
		Size:      "M",
		Quantity:  0,
	})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "quantity", validationErr.Fields()[0].Field)
}

func TestCartService_Add_UnknownProduct(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	err := fx.service.Add(ctx, &usecase.AddToCartInput{
		Owner:     "guest-abc",
		ProductID: productID,
		Size:      "M",
		Quantity:  1,
	})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "product_id", validationErr.Fields()[0].Field)
}

func TestCartService_List(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	owner := entity.OwnerKeyForUser(uuid.New())
	expected := []*entity.CartLine{
		{OwnerKey: owner, Size: entity.SizeM, Quantity: 1, Total: 10},
		{OwnerKey: owner, Size: entity.SizeXL, Quantity: 2, Total: 40},
	}

	fx.cartRepo.EXPECT().
		ListByOwner(ctx, owner).
		Return(expected, nil)

	lines, err := fx.service.List(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, expected, lines)
}

func TestCartService_UpdateQuantity_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	owner := entity.OwnerKey("guest-abc")
	productID := uuid.New()

	fx.cartRepo.EXPECT().
		UpdateQuantity(ctx, owner, productID, entity.SizeM, 4).
		Return(nil)

	err := fx.service.UpdateQuantity(ctx, owner, productID, "M", 4)
	require.NoError(t, err)
}

func TestCartService_UpdateQuantity_BelowOne(t *testing.T) {
	fx := createTestCartService(t)

	err := fx.service.UpdateQuantity(context.Background(), "guest-abc", uuid.New(), "M", 0)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestCartService_UpdateQuantity_LineMissing(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	owner := entity.OwnerKey("guest-abc")
	productID := uuid.New()

	fx.cartRepo.EXPECT().
		UpdateQuantity(ctx, owner, productID, entity.SizeL, 2).
		Return(repository.ErrCartLineNotFound)

	err := fx.service.UpdateQuantity(ctx, owner, productID, "L", 2)
	assert.ErrorIs(t, err, domainerrors.ErrCartLineNotFound)
}

func TestCartService_ChangeSize_MovesLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	owner := entity.OwnerKey("guest-abc")
	productID := uuid.New()
	line := &entity.CartLine{
		OwnerKey:  owner,
		ProductID: productID,
		Size:      entity.SizeM,
		Quantity:  2,
		UnitPrice: 25,
		Total:     50,
	}

	txCarts := mockRepo.NewMockCartRepository(t)
	txFactory := mockRepo.NewMockRepositoryFactory(t)
	txFactory.EXPECT().Carts().Return(txCarts)

	txCarts.EXPECT().
		FindLine(ctx, owner, productID, entity.SizeM).
		Return(line, nil)
	txCarts.EXPECT().
		FindLine(ctx, owner, productID, entity.SizeL).
		Return(nil, repository.ErrCartLineNotFound)
	txCarts.EXPECT().
		UpdateLine(ctx, line).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(txFactory)
		})

	err := fx.service.ChangeSize(ctx, &usecase.ChangeSizeInput{
		Owner:     owner,
		ProductID: productID,
		OldSize:   "M",
		NewSize:   "L",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SizeL, line.Size)
}

func TestCartService_ChangeSize_MergesOntoExistingLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	owner := entity.OwnerKey("guest-abc")
	productID := uuid.New()
	oldLine := &entity.CartLine{
		OwnerKey:  owner,
		ProductID: productID,
		Size:      entity.SizeM,
		Quantity:  2,
		UnitPrice: 25,
		Total:     50,
	}
	target := &entity.CartLine{
		OwnerKey:  owner,
		ProductID: productID,
		Size:      entity.SizeL,
		Quantity:  3,
		UnitPrice: 25,
		Total:     75,
	}

	txCarts := mockRepo.NewMockCartRepository(t)
	txFactory := mockRepo.NewMockRepositoryFactory(t)
	txFactory.EXPECT().Carts().Return(txCarts)

	txCarts.EXPECT().
		FindLine(ctx, owner, productID, entity.SizeM).
		Return(oldLine, nil)
	txCarts.EXPECT().
		FindLine(ctx, owner, productID, entity.SizeL).
		Return(target, nil)
	txCarts.EXPECT().
		UpdateLine(ctx, target).
		Return(nil)
	txCarts.EXPECT().
		DeleteLine(ctx, owner, productID, entity.SizeM).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(txFactory)
		})

	err := fx.service.ChangeSize(ctx, &usecase.ChangeSizeInput{
		Owner:     owner,
		ProductID: productID,
		OldSize:   "M",
		NewSize:   "L",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, target.Quantity)
	assert.InDelta(t, 125, target.Total, 0.001)
}

func TestCartService_ChangeSize_SameSizeIsNoop(t *testing.T) {
	fx := createTestCartService(t)

	err := fx.service.ChangeSize(context.Background(), &usecase.ChangeSizeInput{
		Owner:     "guest-abc",
		ProductID: uuid.New(),
		OldSize:   "XXL",
		NewSize:   "2XL",
	})
	require.NoError(t, err)
}

func TestCartService_ChangeSize_SourceLineMissing(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	owner := entity.OwnerKey("guest-abc")
	productID := uuid.New()

	txCarts := mockRepo.NewMockCartRepository(t)
	txFactory := mockRepo.NewMockRepositoryFactory(t)
	txFactory.EXPECT().Carts().Return(txCarts)

	txCarts.EXPECT().
		FindLine(ctx, owner, productID, entity.SizeM).
		Return(nil, repository.ErrCartLineNotFound)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(txFactory)
		})

	err := fx.service.ChangeSize(ctx, &usecase.ChangeSizeInput{
		Owner:     owner,
		ProductID: productID,
		OldSize:   "M",
		NewSize:   "L",
	})
	assert.ErrorIs(t, err, domainerrors.ErrCartLineNotFound)
}

func TestCartService_Remove_AbsentLineIsNotAnError(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	owner := entity.OwnerKey("guest-abc")
	productID := uuid.New()

	fx.cartRepo.EXPECT().
		DeleteLine(ctx, owner, productID, entity.SizeXL).
		Return(nil)

	err := fx.service.Remove(ctx, owner, productID, "XL")
	require.NoError(t, err)
}

func TestCartService_Clear(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	owner := entity.OwnerKey("guest-abc")

	fx.cartRepo.EXPECT().
		Clear(ctx, owner).
		Return(nil)

	err := fx.service.Clear(ctx, owner)
	require.NoError(t, err)
}

func TestCartService_List_RepoError(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	owner := entity.OwnerKey("guest-abc")

	fx.cartRepo.EXPECT().
		ListByOwner(ctx, owner).
		Return(nil, errors.New("database error"))

	lines, err := fx.service.List(ctx, owner)
	assert.Error(t, err)
	assert.Nil(t, lines)
	assert.Contains(t, err.Error(), "failed to list cart")
}
