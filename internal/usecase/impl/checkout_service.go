// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"faranah/config"
	deliverycontext "faranah/internal/delivery/context"
	"faranah/internal/domain/entity"
	domainerrors "faranah/internal/domain/errors"
	"faranah/internal/domain/repository"
	"faranah/internal/domain/service"
	"faranah/internal/usecase"
	"faranah/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// generatedPasswordLen is the length of the throwaway password given to
// accounts created implicitly at checkout. The customer can only replace it
// through the reset flow.
const generatedPasswordLen = 16

// defaultAdminTopic is the push topic nudged on new orders when none is
// configured.
const defaultAdminTopic = "commandes"

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	cartRepo   repository.CartRepository
	hasher     service.PasswordHasher
	mailer     service.Mailer
	push       service.PushService
	publisher  service.EventPublisher
	qrcode     service.QRCodeService
	adminTopic string
	logger     *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	CartRepo  repository.CartRepository
	Hasher    service.PasswordHasher
	Mailer    service.Mailer
	Push      service.PushService
	Publisher service.EventPublisher
	QRCode    service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	adminTopic := defaultAdminTopic
	if params.Config.Firebase != nil && params.Config.Firebase.AdminTopic != "" {
		adminTopic = params.Config.Firebase.AdminTopic
	}

	return &checkoutService{
		txManager:  params.TxManager,
		userRepo:   params.UserRepo,
		cartRepo:   params.CartRepo,
		hasher:     params.Hasher,
		mailer:     params.Mailer,
		push:       params.Push,
		publisher:  params.Publisher,
		qrcode:     params.QRCode,
		adminTopic: adminTopic,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder validates the input, finds or creates the customer account by
// email, snapshots live prices and writes the order atomically. After the
// transaction commits it clears the cart and fires the notification fan-out
// best-effort.
func (srv *checkoutService) PlaceOrder(ctx context.Context, input *usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	items, err := srv.validate(input)
	if err != nil {
		return nil, err
	}

	var (
		customer *entity.User
		address  *entity.ShippingAddress
		order    *entity.Order
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customer, err = srv.findOrCreateCustomer(ctx, repoFactory.Users(), input)
		if err != nil {
			return err
		}

		address = &entity.ShippingAddress{
			UserID:   customer.ID,
			FullName: strings.TrimSpace(input.LastName + " " + input.FirstName),
			Phone:    input.DeliveryPhone,
			City:     input.City,
			Address1: input.Address1,
			Address2: input.Address2,
		}
		if err := repoFactory.Addresses().Create(ctx, address); err != nil {
			return errors.Wrap(err, "failed to record shipping address")
		}

		order, err = srv.buildOrder(ctx, repoFactory.Products(), customer, items)
		if err != nil {
			return err
		}

		return repoFactory.Orders().Create(ctx, order)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to place order",
			slog.String("email", input.Email),
			slog.Any("error", err),
		)

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, domainerrors.ErrOrderFailed
	}

	srv.log(ctx).Info("Order placed",
		slog.String("orderID", order.ID.String()),
		slog.String("userID", customer.ID.String()),
		slog.Float64("total", order.Total),
	)

	// The order is committed; everything below is best-effort.
	if input.Owner != "" {
		if err := srv.cartRepo.Clear(ctx, input.Owner); err != nil {
			srv.log(ctx).Warn("Failed to clear cart after checkout",
				slog.String("owner", input.Owner.String()),
				slog.Any("error", err),
			)
		}
	}

	srv.notify(ctx, customer, order, address)

	return &usecase.CheckoutOutput{Order: order}, nil
}

// validate checks the shipping fields and normalizes the item list.
func (srv *checkoutService) validate(input *usecase.CheckoutInput) ([]usecase.CheckoutItem, error) {
	var fields []domainerrors.FieldError

	required := []struct {
		field string
		value string
	}{
		{"last_name", input.LastName},
		{"first_name", input.FirstName},
		{"email", input.Email},
		{"phone", input.Phone},
		{"city", input.City},
		{"address1", input.Address1},
		{"delivery_phone", input.DeliveryPhone},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			fields = append(fields, domainerrors.FieldError{Field: r.field, Message: r.field + " is required"})
		}
	}

	if len(input.Items) == 0 {
		fields = append(fields, domainerrors.FieldError{Field: "items", Message: "at least one item is required"})
	}

	items := make([]usecase.CheckoutItem, 0, len(input.Items))
	for _, item := range input.Items {
		size, ok := entity.ParseSize(item.Size)
		if !ok {
			fields = append(fields, domainerrors.FieldError{Field: "items.size", Message: "size must be one of M, L, XL, XXL"})

			continue
		}
		if item.Quantity < 1 {
			fields = append(fields, domainerrors.FieldError{Field: "items.quantity", Message: "quantity must be at least 1"})

			continue
		}
		items = append(items, usecase.CheckoutItem{
			ProductID: item.ProductID,
			Size:      size.String(),
			Quantity:  item.Quantity,
		})
	}

	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields...)
	}

	return items, nil
}

// findOrCreateCustomer resolves the account placing the order. Unknown
// emails get an implicit client account with a random throwaway password.
func (srv *checkoutService) findOrCreateCustomer(ctx context.Context, users repository.UserRepository, input *usecase.CheckoutInput) (*entity.User, error) {
	customer, err := users.FindByEmail(ctx, input.Email)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up checkout customer")
	}

	hash, err := srv.hasher.Hash(util.RandomString(generatedPasswordLen))
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash generated password")
	}

	customer = &entity.User{
		LastName:     input.LastName,
		FirstName:    input.FirstName,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: hash,
		Role:         entity.RoleClient,
	}
	if err := users.Create(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to create checkout customer")
	}

	return customer, nil
}

// buildOrder re-reads live prices and freezes them into order lines.
func (srv *checkoutService) buildOrder(ctx context.Context, products repository.ProductRepository, customer *entity.User, items []usecase.CheckoutItem) (*entity.Order, error) {
	order := &entity.Order{
		UserID: customer.ID,
		Status: entity.OrderStatusPending,
		Lines:  make([]*entity.OrderLine, 0, len(items)),
	}

	for _, item := range items {
		product, err := products.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, unknownProductError("items.product_id")
			}

			return nil, errors.Wrap(err, "failed to load ordered product")
		}

		subtotal := product.Price * float64(item.Quantity)
		order.Lines = append(order.Lines, &entity.OrderLine{
			ProductID:   product.ID,
			ProductName: product.Name,
			Size:        entity.Size(item.Size),
			Quantity:    item.Quantity,
			Subtotal:    subtotal,
		})
		order.Total += subtotal
	}

	return order, nil
}

// notify fans the committed order out to the customer, the admins and the
// event bus. Failures are logged, never surfaced.
func (srv *checkoutService) notify(ctx context.Context, customer *entity.User, order *entity.Order, address *entity.ShippingAddress) {
	qrPNG, err := srv.qrcode.GeneratePNG("commande:" + order.ID.String())
	if err != nil {
		srv.log(ctx).Warn("Failed to generate order QR code",
			slog.String("orderID", order.ID.String()),
			slog.Any("error", err),
		)
		qrPNG = nil
	}

	if err := srv.mailer.SendOrderConfirmation(ctx, customer, order, address, qrPNG); err != nil {
		srv.log(ctx).Warn("Failed to mail order confirmation",
			slog.String("orderID", order.ID.String()),
			slog.Any("error", err),
		)
	}

	admins, err := srv.userRepo.ListAdmins(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to list admins for order notice", slog.Any("error", err))
	}
	for _, admin := range admins {
		if err := srv.mailer.SendNewOrderNotice(ctx, admin, customer, order, address); err != nil {
			srv.log(ctx).Warn("Failed to mail admin order notice",
				slog.String("orderID", order.ID.String()),
				slog.String("admin", admin.Email),
				slog.Any("error", err),
			)
		}
	}

	if err := srv.push.SendToTopic(ctx, srv.adminTopic,
		"Nouvelle commande",
		"Commande de "+customer.FullName(),
		map[string]string{"order_id": order.ID.String()},
	); err != nil {
		srv.log(ctx).Warn("Failed to push order notice",
			slog.String("orderID", order.ID.String()),
			slog.Any("error", err),
		)
	}

	event := &service.OrderPlacedEvent{
		OrderID:    order.ID.String(),
		UserID:     customer.ID.String(),
		Email:      customer.Email,
		Total:      order.Total,
		LineCount:  len(order.Lines),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := srv.publisher.PublishOrderPlaced(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("orderID", order.ID.String()),
			slog.Any("error", err),
		)
	}
}
