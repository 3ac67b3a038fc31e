// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "faranah/internal/delivery/context"
	"faranah/internal/domain/entity"
	domainerrors "faranah/internal/domain/errors"
	"faranah/internal/domain/repository"
	"faranah/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderAdminService implements the OrderAdminUsecase interface.
type orderAdminService struct {
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderAdminServiceParams holds dependencies for OrderAdminService, injected by Fx.
type OrderAdminServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderAdminService is the constructor for orderAdminService.
func NewOrderAdminService(params OrderAdminServiceParams) usecase.OrderAdminUsecase {
	return &orderAdminService{
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search lists orders newest first, optionally filtered by a term.
func (srv *orderAdminService) Search(ctx context.Context, search string) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.Search(ctx, search)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search orders")
	}

	return orders, nil
}

// Get returns one order with lines and customer.
func (srv *orderAdminService) Get(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	return order, nil
}

// UpdateStatus sets the payment status. Only the known status labels are
// accepted.
func (srv *orderAdminService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Order, error) {
	next := entity.OrderStatus(status)
	if !next.IsValid() {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{
			Field:   "status",
			Message: "status must be one of en attente, payé, annulé",
		})
	}

	if err := srv.orderRepo.UpdateStatus(ctx, id, next); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("orderID", id.String()),
		slog.String("status", next.String()),
	)

	return srv.Get(ctx, id)
}

// Delete removes an order and its lines.
func (srv *orderAdminService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.orderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to delete order")
	}

	srv.log(ctx).Info("Order deleted", slog.String("orderID", id.String()))

	return nil
}
