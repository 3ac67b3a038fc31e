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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutServiceFixtures holds all test dependencies for checkout tests.
type checkoutServiceFixtures struct {
	service   usecase.CheckoutUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	cartRepo  *mockRepo.MockCartRepository
	hasher    *mockService.MockPasswordHasher
	mailer    *mockService.MockMailer
	push      *mockService.MockPushService
	publisher *mockService.MockEventPublisher
	qrcode    *mockService.MockQRCodeService

	txUsers     *mockRepo.MockUserRepository
	txProducts  *mockRepo.MockProductRepository
	txOrders    *mockRepo.MockOrderRepository
	txAddresses *mockRepo.MockAddressRepository
	txFactory   *mockRepo.MockRepositoryFactory
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	mailer := mockService.NewMockMailer(t)
	push := mockService.NewMockPushService(t)
	publisher := mockService.NewMockEventPublisher(t)
	qrcode := mockService.NewMockQRCodeService(t)

	service := NewCheckoutService(CheckoutServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		CartRepo:  cartRepo,
		Hasher:    hasher,
		Mailer:    mailer,
		Push:      push,
		Publisher: publisher,
		QRCode:    qrcode,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return checkoutServiceFixtures{
		service:     service,
		txManager:   txManager,
		userRepo:    userRepo,
		cartRepo:    cartRepo,
		hasher:      hasher,
		mailer:      mailer,
		push:        push,
		publisher:   publisher,
		qrcode:      qrcode,
		txUsers:     mockRepo.NewMockUserRepository(t),
		txProducts:  mockRepo.NewMockProductRepository(t),
		txOrders:    mockRepo.NewMockOrderRepository(t),
		txAddresses: mockRepo.NewMockAddressRepository(t),
		txFactory:   mockRepo.NewMockRepositoryFactory(t),
	}
}

// runTransaction wires the transaction manager to invoke the callback with
// the fixture's transactional repositories.
func (fx checkoutServiceFixtures) runTransaction(ctx context.Context) {
	fx.txFactory.EXPECT().Users().Return(fx.txUsers).Maybe()
	fx.txFactory.EXPECT().Products().Return(fx.txProducts).Maybe()
	fx.txFactory.EXPECT().Orders().Return(fx.txOrders).Maybe()
	fx.txFactory.EXPECT().Addresses().Return(fx.txAddresses).Maybe()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.txFactory)
		})
}

// expectNotifications stubs out the best-effort fan-out after a commit.
func (fx checkoutServiceFixtures) expectNotifications(ctx context.Context, admins []*entity.User) {
	fx.qrcode.EXPECT().
		GeneratePNG(mock.AnythingOfType("string")).
		Return([]byte("png"), nil)
	fx.mailer.EXPECT().
		SendOrderConfirmation(ctx, mock.Anything, mock.Anything, mock.Anything, []byte("png")).
		Return(nil)
	fx.userRepo.EXPECT().
		ListAdmins(ctx).
		Return(admins, nil)
	for range admins {
		fx.mailer.EXPECT().
			SendNewOrderNotice(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil)
	}
	fx.push.EXPECT().
		SendToTopic(ctx, "commandes", "Nouvelle commande", mock.AnythingOfType("string"), mock.Anything).
		Return(nil)
	fx.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Return(nil)
}

func validCheckoutInput(productID uuid.UUID) *usecase.CheckoutInput {
	return &usecase.CheckoutInput{
		Owner:         "guest-abc",
		LastName:      "Diallo",
		FirstName:     "Aissatou",
		Email:         "aissatou@example.com",
		Phone:         "+224620000001",
		City:          "Conakry",
		Address1:      "Quartier Almamya",
		DeliveryPhone: "+224655000009",
		Items: []usecase.CheckoutItem{
			{ProductID: productID, Size: "M", Quantity: 2},
		},
	}
}

func TestCheckoutService_PlaceOrder_ExistingCustomer(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Name: "Robe wax", Price: 120}
	customer := &entity.User{
		ID:        uuid.New(),
		LastName:  "Diallo",
		FirstName: "Aissatou",
		Email:     "aissatou@example.com",
		Role:      entity.RoleClient,
	}
	input := validCheckoutInput(product.ID)

	fx.runTransaction(ctx)

	fx.txUsers.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(customer, nil)
	fx.txAddresses.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ShippingAddress")).
		Run(func(_ context.Context, address *entity.ShippingAddress) {
			assert.Equal(t, customer.ID, address.UserID)
			assert.Equal(t, "Diallo Aissatou", address.FullName)
			assert.Equal(t, "Conakry", address.City)
			assert.Equal(t, "+224655000009", address.Phone)
		}).
		Return(nil)
	fx.txProducts.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)
	fx.txOrders.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = uuid.New()
		}).
		Return(nil)

	fx.cartRepo.EXPECT().
		Clear(ctx, entity.OwnerKey("guest-abc")).
		Return(nil)
	fx.expectNotifications(ctx, []*entity.User{{ID: uuid.New(), Email: "admin@example.com", Role: entity.RoleAdmin}})

	output, err := fx.service.PlaceOrder(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, customer.ID, output.Order.UserID)
	assert.Equal(t, entity.OrderStatusPending, output.Order.Status)
	require.Len(t, output.Order.Lines, 1)
	assert.Equal(t, "Robe wax", output.Order.Lines[0].ProductName)
	assert.InDelta(t, 240, output.Order.Lines[0].Subtotal, 0.001)
	assert.InDelta(t, 240, output.Order.Total, 0.001)
}

func TestCheckoutService_PlaceOrder_CreatesGuestAccount(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Name: "Boubou brodé", Price: 150}
	input := validCheckoutInput(product.ID)

	fx.runTransaction(ctx)

	fx.txUsers.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().
		Hash(mock.AnythingOfType("string")).
		Return("$2a$12$generated", nil)
	fx.txUsers.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
			assert.Equal(t, entity.RoleClient, user.Role)
			assert.Equal(t, "$2a$12$generated", user.PasswordHash)
		}).
		Return(nil)
	fx.txAddresses.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ShippingAddress")).
		Return(nil)
	fx.txProducts.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)
	fx.txOrders.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	fx.cartRepo.EXPECT().
		Clear(ctx, entity.OwnerKey("guest-abc")).
		Return(nil)
	fx.expectNotifications(ctx, nil)

	output, err := fx.service.PlaceOrder(ctx, input)
	require.NoError(t, err)
	assert.InDelta(t, 300, output.Order.Total, 0.001)
}

func TestCheckoutService_PlaceOrder_ValidationWritesNothing(t *testing.T) {
	fx := createTestCheckoutService(t)

	input := &usecase.CheckoutInput{
		LastName: "Diallo",
		Email:    "aissatou@example.com",
		Items:    []usecase.CheckoutItem{},
	}

	output, err := fx.service.PlaceOrder(context.Background(), input)
	assert.Nil(t, output)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	fields := make([]string, 0, len(validationErr.Fields()))
	for _, f := range validationErr.Fields() {
		fields = append(fields, f.Field)
	}
	assert.Contains(t, fields, "first_name")
	assert.Contains(t, fields, "phone")
	assert.Contains(t, fields, "city")
	assert.Contains(t, fields, "address1")
	assert.Contains(t, fields, "delivery_phone")
	assert.Contains(t, fields, "items")
}

func TestCheckoutService_PlaceOrder_RejectsBadItem(t *testing.T) {
	fx := createTestCheckoutService(t)

	input := validCheckoutInput(uuid.New())
	input.Items[0].Size = "S"

	_, err := fx.service.PlaceOrder(context.Background(), input)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "items.size", validationErr.Fields()[0].Field)
}

func TestCheckoutService_PlaceOrder_UnknownProduct(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	productID := uuid.New()
	customer := &entity.User{ID: uuid.New(), Email: "aissatou@example.com"}
	input := validCheckoutInput(productID)

	fx.runTransaction(ctx)

	fx.txUsers.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(customer, nil)
	fx.txAddresses.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ShippingAddress")).
		Return(nil)
	fx.txProducts.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	output, err := fx.service.PlaceOrder(ctx, input)
	assert.Nil(t, output)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "items.product_id", validationErr.Fields()[0].Field)
}

func TestCheckoutService_PlaceOrder_TransactionFailure(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	input := validCheckoutInput(uuid.New())

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("deadlock detected"))

	output, err := fx.service.PlaceOrder(ctx, input)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOrderFailed)
}

func TestCheckoutService_PlaceOrder_NotificationFailuresDoNotFailOrder(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Name: "Pagne", Price: 45}
	customer := &entity.User{ID: uuid.New(), Email: "aissatou@example.com"}
	input := validCheckoutInput(product.ID)

	fx.runTransaction(ctx)

	fx.txUsers.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(customer, nil)
	fx.txAddresses.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ShippingAddress")).
		Return(nil)
	fx.txProducts.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)
	fx.txOrders.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	fx.cartRepo.EXPECT().
		Clear(ctx, entity.OwnerKey("guest-abc")).
		Return(errors.New("cart table unavailable"))
	fx.qrcode.EXPECT().
		GeneratePNG(mock.AnythingOfType("string")).
		Return(nil, errors.New("qr encoder broken"))
	fx.mailer.EXPECT().
		SendOrderConfirmation(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp down"))
	fx.userRepo.EXPECT().
		ListAdmins(ctx).
		Return(nil, errors.New("database error"))
	fx.push.EXPECT().
		SendToTopic(ctx, "commandes", "Nouvelle commande", mock.AnythingOfType("string"), mock.Anything).
		Return(errors.New("fcm unreachable"))
	fx.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Return(errors.New("broker unreachable"))

	output, err := fx.service.PlaceOrder(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)
}

func TestCheckoutService_PlaceOrder_NoOwnerSkipsCartClear(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Name: "Chemise lin", Price: 70}
	customer := &entity.User{ID: uuid.New(), Email: "aissatou@example.com"}
	input := validCheckoutInput(product.ID)
	input.Owner = ""

	fx.runTransaction(ctx)

	fx.txUsers.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(customer, nil)
	fx.txAddresses.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ShippingAddress")).
		Return(nil)
	fx.txProducts.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)
	fx.txOrders.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	fx.expectNotifications(ctx, nil)

	_, err := fx.service.PlaceOrder(ctx, input)
	require.NoError(t, err)
}
