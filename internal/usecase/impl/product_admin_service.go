// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "faranah/internal/delivery/context"
	"faranah/internal/domain/entity"
	domainerrors "faranah/internal/domain/errors"
	"faranah/internal/domain/repository"
	"faranah/internal/domain/service"
	"faranah/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productAdminService implements the ProductAdminUsecase interface.
type productAdminService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	imageStore   service.ImageStore
	logger       *slog.Logger
}

// ProductAdminServiceParams holds dependencies for ProductAdminService, injected by Fx.
type ProductAdminServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	ImageStore   service.ImageStore
	Logger       *slog.Logger
}

// NewProductAdminService is the constructor for productAdminService.
func NewProductAdminService(params ProductAdminServiceParams) usecase.ProductAdminUsecase {
	return &productAdminService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		imageStore:   params.ImageStore,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *productAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListSales returns the product table rows matching the filter.
func (srv *productAdminService) ListSales(ctx context.Context, filter repository.ProductSearchFilter) ([]*usecase.ProductSalesView, error) {
	rows, err := srv.productRepo.ListSales(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product sales")
	}

	views := make([]*usecase.ProductSalesView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &usecase.ProductSalesView{
			ProductSales: row,
			ImageURL:     resolveImageURL(ctx, srv.imageStore, productImagePrefix, row.Image),
		})
	}

	return views, nil
}

// GetSales returns one product table row.
func (srv *productAdminService) GetSales(ctx context.Context, id uuid.UUID) (*usecase.ProductSalesView, error) {
	row, err := srv.productRepo.FindSales(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product sales")
	}

	return &usecase.ProductSalesView{
		ProductSales: row,
		ImageURL:     resolveImageURL(ctx, srv.imageStore, productImagePrefix, row.Image),
	}, nil
}

// Create stores the uploaded image and persists a new product.
func (srv *productAdminService) Create(ctx context.Context, input *usecase.ProductInput) (*usecase.ProductView, error) {
	if err := srv.validateInput(input, true); err != nil {
		return nil, err
	}

	if _, err := srv.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to check product category")
	}

	imageName, err := storeImageUpload(ctx, srv.imageStore, productImagePrefix, productImageBase, input.Image)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Image:       imageName,
		CategoryID:  input.CategoryID,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		// The product row failed; do not leave the image orphaned.
		if delErr := deleteStoredImage(ctx, srv.imageStore, productImagePrefix, imageName); delErr != nil {
			srv.log(ctx).Warn("Failed to clean up orphaned product image",
				slog.String("image", imageName),
				slog.Any("error", delErr),
			)
		}

		return nil, err
	}

	srv.log(ctx).Info("Product created",
		slog.String("productID", product.ID.String()),
		slog.String("name", product.Name),
	)

	return &usecase.ProductView{
		Product:  product,
		ImageURL: resolveImageURL(ctx, srv.imageStore, productImagePrefix, product.Image),
	}, nil
}

// Update modifies a product, replacing its stored image when a new upload is
// supplied.
func (srv *productAdminService) Update(ctx context.Context, id uuid.UUID, input *usecase.ProductInput) (*usecase.ProductView, error) {
	if err := srv.validateInput(input, false); err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	if _, err := srv.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to check product category")
	}

	previousImage := product.Image
	if !input.Image.IsEmpty() {
		imageName, err := storeImageUpload(ctx, srv.imageStore, productImagePrefix, productImageBase, input.Image)
		if err != nil {
			return nil, err
		}
		product.Image = imageName
	}

	product.Name = input.Name
	product.Price = input.Price
	product.Description = input.Description
	product.CategoryID = input.CategoryID

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	// Drop the replaced image only after the row update sticks.
	if product.Image != previousImage {
		if err := deleteStoredImage(ctx, srv.imageStore, productImagePrefix, previousImage); err != nil {
			srv.log(ctx).Warn("Failed to delete replaced product image",
				slog.String("image", previousImage),
				slog.Any("error", err),
			)
		}
	}

	return &usecase.ProductView{
		Product:  product,
		ImageURL: resolveImageURL(ctx, srv.imageStore, productImagePrefix, product.Image),
	}, nil
}

// Delete removes a product and its stored image.
func (srv *productAdminService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to load product")
	}

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return err
	}

	if err := deleteStoredImage(ctx, srv.imageStore, productImagePrefix, product.Image); err != nil {
		srv.log(ctx).Warn("Failed to delete product image",
			slog.String("image", product.Image),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("Product deleted", slog.String("productID", id.String()))

	return nil
}

// validateInput enforces field rules shared by create and update.
// requireImage is true only on create.
func (srv *productAdminService) validateInput(input *usecase.ProductInput, requireImage bool) error {
	var fields []domainerrors.FieldError

	if input.Name == "" {
		fields = append(fields, domainerrors.FieldError{Field: "name", Message: "name is required"})
	}
	if input.Price < 0 {
		fields = append(fields, domainerrors.FieldError{Field: "price", Message: "price cannot be negative"})
	}
	if input.CategoryID == uuid.Nil {
		fields = append(fields, domainerrors.FieldError{Field: "category_id", Message: "category is required"})
	}
	if requireImage && input.Image.IsEmpty() {
		fields = append(fields, domainerrors.FieldError{Field: "image", Message: "image is required"})
	}

	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields...)
	}

	return nil
}
