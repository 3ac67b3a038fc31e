// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"faranah/internal/domain/entity"
	domainerrors "faranah/internal/domain/errors"
	"faranah/internal/domain/repository"
	"faranah/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// productSalesRow is the scan target of the sales-joined listing queries.
type productSalesRow struct {
	model.ProductModel
	CategoryName string
	Sales        int64
}

// FindByID retrieves a product by its unique ID, with its category preloaded.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// List retrieves products with categories preloaded, optionally restricted
// to a single category.
func (repo *productRepository) List(ctx context.Context, categoryID *uuid.UUID) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).
		Preload("Category").
		Order("created_at DESC")

	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var productModels []*model.ProductModel
	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// ListSales lists products joined with their accumulated ordered quantity.
func (repo *productRepository) ListSales(ctx context.Context, filter repository.ProductSearchFilter) ([]*entity.ProductSales, error) {
	query := repo.salesQuery(ctx)

	if filter.Search != "" {
		query = query.Where("products.name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.CategoryID != nil {
		query = query.Where("products.category_id = ?", *filter.CategoryID)
	}

	var rows []*productSalesRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list product sales")
	}

	sales := make([]*entity.ProductSales, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, toProductSalesDomain(row))
	}

	return sales, nil
}

// FindSales retrieves one product with its accumulated ordered quantity.
func (repo *productRepository) FindSales(ctx context.Context, id uuid.UUID) (*entity.ProductSales, error) {
	var row productSalesRow

	result := repo.salesQuery(ctx).
		Where("products.id = ?", id).
		Scan(&row)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to find product sales")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrProductNotFound
	}

	return toProductSalesDomain(&row), nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        product.Name,
			"price":       product.Price,
			"description": product.Description,
			"image":       product.Image,
			"category_id": product.CategoryID,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product by ID.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// salesQuery builds the shared products-with-sales join.
func (repo *productRepository) salesQuery(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Select("products.*, categories.name AS category_name, COALESCE(SUM(order_lines.quantity), 0) AS sales").
		Joins("JOIN categories ON categories.id = products.category_id").
		Joins("LEFT JOIN order_lines ON order_lines.product_id = products.id").
		Group("products.id, categories.name").
		Order("products.created_at DESC")
}

// fromProductDomain converts a domain entity into its GORM model.
func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
		Image:       product.Image,
		CategoryID:  product.CategoryID,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// toProductDomain converts a GORM model into its domain entity.
func toProductDomain(productM *model.ProductModel) *entity.Product {
	product := &entity.Product{
		ID:          productM.ID,
		Name:        productM.Name,
		Price:       productM.Price,
		Description: productM.Description,
		Image:       productM.Image,
		CategoryID:  productM.CategoryID,
		CreatedAt:   productM.CreatedAt,
		UpdatedAt:   productM.UpdatedAt,
	}
	if productM.Category != nil {
		product.Category = toCategoryDomain(productM.Category)
	}

	return product
}

// toProductSalesDomain converts a sales join row into its domain entity.
func toProductSalesDomain(row *productSalesRow) *entity.ProductSales {
	return &entity.ProductSales{
		Product:      *toProductDomain(&row.ProductModel),
		CategoryName: row.CategoryName,
		Sales:        row.Sales,
	}
}
