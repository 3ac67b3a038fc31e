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

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager   repository.TransactionManager
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager:   params.TxManager,
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the cart lines of an owner, oldest first.
func (srv *cartService) List(ctx context.Context, owner entity.OwnerKey) ([]*entity.CartLine, error) {
	lines, err := srv.cartRepo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart")
	}

	return lines, nil
}

// Add puts items in the cart. Adding an existing (product, size) line
// increments its quantity and total instead of duplicating it.
func (srv *cartService) Add(ctx context.Context, input *usecase.AddToCartInput) error {
	size, err := parseSizeField(input.Size)
	if err != nil {
		return err
	}
	if input.Quantity < 1 {
		return quantityError()
	}

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return unknownProductError("product_id")
		}

		return errors.Wrap(err, "failed to load product for cart")
	}

	line := &entity.CartLine{
		OwnerKey:    input.Owner,
		ProductID:   product.ID,
		ProductName: product.Name,
		Size:        size,
		Quantity:    input.Quantity,
		UnitPrice:   product.Price,
		Total:       product.Price * float64(input.Quantity),
	}

	if err := srv.cartRepo.Upsert(ctx, line); err != nil {
		// The product can disappear between the read above and the write.
		if errors.Is(err, domainerrors.ErrProductNotFound) {
			return unknownProductError("product_id")
		}

		return err
	}

	srv.log(ctx).Debug("Cart line added",
		slog.String("owner", input.Owner.String()),
		slog.String("productID", product.ID.String()),
		slog.String("size", size.String()),
		slog.Int("quantity", input.Quantity),
	)

	return nil
}

// UpdateQuantity sets the quantity of an existing line.
func (srv *cartService) UpdateQuantity(ctx context.Context, owner entity.OwnerKey, productID uuid.UUID, rawSize string, quantity int) error {
	size, err := parseSizeField(rawSize)
	if err != nil {
		return err
	}
	if quantity < 1 {
		return quantityError()
	}

	if err := srv.cartRepo.UpdateQuantity(ctx, owner, productID, size, quantity); err != nil {
		if errors.Is(err, repository.ErrCartLineNotFound) {
			return domainerrors.ErrCartLineNotFound
		}

		return err
	}

	return nil
}

// ChangeSize moves a line to another size. When a line at the target size
// already exists the two lines are merged.
func (srv *cartService) ChangeSize(ctx context.Context, input *usecase.ChangeSizeInput) error {
	oldSize, err := parseSizeField(input.OldSize)
	if err != nil {
		return err
	}
	newSize, err := parseSizeField(input.NewSize)
	if err != nil {
		return err
	}
	if oldSize == newSize {
		return nil
	}

	// The read-merge-delete sequence must be atomic, otherwise a concurrent
	// size change could drop or double a line.
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		carts := repoFactory.Carts()

		oldLine, err := carts.FindLine(ctx, input.Owner, input.ProductID, oldSize)
		if err != nil {
			if errors.Is(err, repository.ErrCartLineNotFound) {
				return domainerrors.ErrCartLineNotFound
			}

			return errors.Wrap(err, "failed to load cart line")
		}

		target, err := carts.FindLine(ctx, input.Owner, input.ProductID, newSize)
		switch {
		case err == nil:
			// Merge onto the existing target line.
			target.Quantity += oldLine.Quantity
			target.Total += oldLine.Total
			if err := carts.UpdateLine(ctx, target); err != nil {
				return errors.Wrap(err, "failed to merge cart lines")
			}

			return carts.DeleteLine(ctx, input.Owner, input.ProductID, oldSize)

		case errors.Is(err, repository.ErrCartLineNotFound):
			oldLine.Size = newSize
			if err := carts.UpdateLine(ctx, oldLine); err != nil {
				return errors.Wrap(err, "failed to move cart line")
			}

			return nil

		default:
			return errors.Wrap(err, "failed to check target cart line")
		}
	})
}

// Remove deletes one line. Removing an absent line is not an error.
func (srv *cartService) Remove(ctx context.Context, owner entity.OwnerKey, productID uuid.UUID, rawSize string) error {
	size, err := parseSizeField(rawSize)
	if err != nil {
		return err
	}

	return srv.cartRepo.DeleteLine(ctx, owner, productID, size)
}

// Clear empties the cart. Idempotent.
func (srv *cartService) Clear(ctx context.Context, owner entity.OwnerKey) error {
	return srv.cartRepo.Clear(ctx, owner)
}

// parseSizeField normalizes a raw size string or fails with a field error.
func parseSizeField(raw string) (entity.Size, error) {
	size, ok := entity.ParseSize(raw)
	if !ok {
		return "", domainerrors.NewValidationError(domainerrors.FieldError{
			Field:   "size",
			Message: "size must be one of M, L, XL, XXL",
		})
	}

	return size, nil
}

// quantityError is the shared below-one quantity rejection.
func quantityError() error {
	return domainerrors.NewValidationError(domainerrors.FieldError{
		Field:   "quantity",
		Message: "quantity must be at least 1",
	})
}

// unknownProductError is the field rejection for a product id that does not
// reference an existing product.
func unknownProductError(field string) error {
	return domainerrors.NewValidationError(domainerrors.FieldError{
		Field:   field,
		Message: "product does not exist",
	})
}
