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

// categoryAdminService implements the CategoryAdminUsecase interface.
type categoryAdminService struct {
	categoryRepo repository.CategoryRepository
	imageStore   service.ImageStore
	logger       *slog.Logger
}

// CategoryAdminServiceParams holds dependencies for CategoryAdminService, injected by Fx.
type CategoryAdminServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	ImageStore   service.ImageStore
	Logger       *slog.Logger
}

// NewCategoryAdminService is the constructor for categoryAdminService.
func NewCategoryAdminService(params CategoryAdminServiceParams) usecase.CategoryAdminUsecase {
	return &categoryAdminService{
		categoryRepo: params.CategoryRepo,
		imageStore:   params.ImageStore,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *categoryAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns every category for the admin table.
func (srv *categoryAdminService) List(ctx context.Context) ([]*usecase.CategoryView, error) {
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

// Create stores the uploaded photo and persists a new category.
func (srv *categoryAdminService) Create(ctx context.Context, input *usecase.CategoryInput) (*usecase.CategoryView, error) {
	if err := srv.validateInput(input); err != nil {
		return nil, err
	}

	// Category names are unique in practice; refuse case-insensitive duplicates.
	if _, err := srv.categoryRepo.FindByName(ctx, input.Name); err == nil {
		return nil, domainerrors.ErrConflict.WrapMessage("a category with this name already exists")
	} else if !errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, errors.Wrap(err, "failed to check category name")
	}

	photoName := ""
	if !input.Photo.IsEmpty() {
		name, err := storeImageUpload(ctx, srv.imageStore, categoryImagePrefix, categoryImageBase, input.Photo)
		if err != nil {
			return nil, err
		}
		photoName = name
	}

	category := &entity.Category{
		Name:        input.Name,
		Description: input.Description,
		Photo:       photoName,
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		if delErr := deleteStoredImage(ctx, srv.imageStore, categoryImagePrefix, photoName); delErr != nil {
			srv.log(ctx).Warn("Failed to clean up orphaned category photo",
				slog.String("photo", photoName),
				slog.Any("error", delErr),
			)
		}

		return nil, err
	}

	srv.log(ctx).Info("Category created",
		slog.String("categoryID", category.ID.String()),
		slog.String("name", category.Name),
	)

	return &usecase.CategoryView{
		Category: category,
		PhotoURL: resolveImageURL(ctx, srv.imageStore, categoryImagePrefix, category.Photo),
	}, nil
}

// Update modifies a category, replacing its stored photo when a new upload
// is supplied.
func (srv *categoryAdminService) Update(ctx context.Context, id uuid.UUID, input *usecase.CategoryInput) (*usecase.CategoryView, error) {
	if err := srv.validateInput(input); err != nil {
		return nil, err
	}

	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to load category")
	}

	// The name stays unique across the other categories.
	if existing, err := srv.categoryRepo.FindByName(ctx, input.Name); err == nil && existing.ID != id {
		return nil, domainerrors.ErrConflict.WrapMessage("a category with this name already exists")
	} else if err != nil && !errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, errors.Wrap(err, "failed to check category name")
	}

	previousPhoto := category.Photo
	if !input.Photo.IsEmpty() {
		photoName, err := storeImageUpload(ctx, srv.imageStore, categoryImagePrefix, categoryImageBase, input.Photo)
		if err != nil {
			return nil, err
		}
		category.Photo = photoName
	}

	category.Name = input.Name
	category.Description = input.Description

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	if category.Photo != previousPhoto {
		if err := deleteStoredImage(ctx, srv.imageStore, categoryImagePrefix, previousPhoto); err != nil {
			srv.log(ctx).Warn("Failed to delete replaced category photo",
				slog.String("photo", previousPhoto),
				slog.Any("error", err),
			)
		}
	}

	return &usecase.CategoryView{
		Category: category,
		PhotoURL: resolveImageURL(ctx, srv.imageStore, categoryImagePrefix, category.Photo),
	}, nil
}

// Delete removes a category and its stored photo. Deletion is refused while
// products still reference the category.
func (srv *categoryAdminService) Delete(ctx context.Context, id uuid.UUID) error {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to load category")
	}

	count, err := srv.categoryRepo.CountProducts(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to count category products")
	}
	if count > 0 {
		return domainerrors.ErrCategoryNotEmpty
	}

	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return err
	}

	if err := deleteStoredImage(ctx, srv.imageStore, categoryImagePrefix, category.Photo); err != nil {
		srv.log(ctx).Warn("Failed to delete category photo",
			slog.String("photo", category.Photo),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("Category deleted", slog.String("categoryID", id.String()))

	return nil
}

// validateInput enforces field rules shared by create and update.
func (srv *categoryAdminService) validateInput(input *usecase.CategoryInput) error {
	var fields []domainerrors.FieldError

	if input.Name == "" {
		fields = append(fields, domainerrors.FieldError{Field: "name", Message: "name is required"})
	}

	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields...)
	}

	return nil
}
