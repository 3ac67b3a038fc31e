// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "faranah/internal/delivery/context"
	domainerrors "faranah/internal/domain/errors"
	"faranah/internal/domain/repository"
	"faranah/internal/domain/service"
	"faranah/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	imageStore   service.ImageStore
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	ImageStore   service.ImageStore
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		imageStore:   params.ImageStore,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCategories returns every category.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*usecase.CategoryView, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	views := make([]*usecase.CategoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, &usecase.CategoryView{
			Category: category,
			PhotoURL: resolveImageURL(ctx, srv.imageStore, categoryImagePrefix, category.Photo),
		})
	}

	return views, nil
}

// GetCategory returns one category with its products.
func (srv *catalogService) GetCategory(ctx context.Context, id uuid.UUID) (*usecase.CategoryView, error) {
	category, err := srv.categoryRepo.FindByIDWithProducts(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to load category")
	}

	view := &usecase.CategoryView{
		Category: category,
		PhotoURL: resolveImageURL(ctx, srv.imageStore, categoryImagePrefix, category.Photo),
		Products: make([]*usecase.ProductView, 0, len(category.Products)),
	}
	for _, product := range category.Products {
		view.Products = append(view.Products, &usecase.ProductView{
			Product:  product,
			ImageURL: resolveImageURL(ctx, srv.imageStore, productImagePrefix, product.Image),
		})
	}

	return view, nil
}

// GetCategoryByName returns one category by case-insensitive name match.
func (srv *catalogService) GetCategoryByName(ctx context.Context, name string) (*usecase.CategoryView, error) {
	category, err := srv.categoryRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to load category")
	}

	return &usecase.CategoryView{
		Category: category,
		PhotoURL: resolveImageURL(ctx, srv.imageStore, categoryImagePrefix, category.Photo),
	}, nil
}

// ListProducts returns products, optionally restricted to one category.
func (srv *catalogService) ListProducts(ctx context.Context, categoryID *uuid.UUID) ([]*usecase.ProductView, error) {
	products, err := srv.productRepo.List(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	views := make([]*usecase.ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, &usecase.ProductView{
			Product:  product,
			ImageURL: resolveImageURL(ctx, srv.imageStore, productImagePrefix, product.Image),
		})
	}

	return views, nil
}

// GetProduct returns one product.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*usecase.ProductView, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			srv.log(ctx).Warn("Product lookup missed", slog.String("productID", id.String()))

			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return &usecase.ProductView{
		Product:  product,
		ImageURL: resolveImageURL(ctx, srv.imageStore, productImagePrefix, product.Image),
	}, nil
}
