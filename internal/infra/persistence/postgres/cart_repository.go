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
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// ListByOwner retrieves all cart lines for one owner key.
func (repo *cartRepository) ListByOwner(ctx context.Context, owner entity.OwnerKey) ([]*entity.CartLine, error) {
	var lineModels []*model.CartLineModel

	if err := repo.db.WithContext(ctx).
		Where("owner_key = ?", owner.String()).
		Order("created_at ASC").
		Find(&lineModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cart lines")
	}

	lines := make([]*entity.CartLine, 0, len(lineModels))
	for _, lineM := range lineModels {
		lines = append(lines, toCartLineDomain(lineM))
	}

	return lines, nil
}

// FindLine retrieves the line at (owner, product, size).
func (repo *cartRepository) FindLine(ctx context.Context, owner entity.OwnerKey, productID uuid.UUID, size entity.Size) (*entity.CartLine, error) {
	var lineM model.CartLineModel

	if err := repo.db.WithContext(ctx).
		Where("owner_key = ? AND product_id = ? AND size = ?", owner.String(), productID, size.String()).
		First(&lineM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartLineNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart line")
	}

	return toCartLineDomain(&lineM), nil
}

// Upsert inserts the line, or atomically adds its quantity and total onto
// the row already holding (owner, product, size). The unique index makes
// concurrent first inserts collapse into one row instead of racing.
func (repo *cartRepository) Upsert(ctx context.Context, line *entity.CartLine) error {
	lineM := fromCartLineDomain(line)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "owner_key"}, {Name: "product_id"}, {Name: "size"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":   gorm.Expr("cart_lines.quantity + excluded.quantity"),
				"total":      gorm.Expr("cart_lines.total + excluded.total"),
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).
		Create(lineM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert cart line")
	}

	return nil
}

// UpdateQuantity sets the quantity of an existing line and recomputes its
// total from the stored unit price.
func (repo *cartRepository) UpdateQuantity(ctx context.Context, owner entity.OwnerKey, productID uuid.UUID, size entity.Size, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartLineModel{}).
		Where("owner_key = ? AND product_id = ? AND size = ?", owner.String(), productID, size.String()).
		Updates(map[string]any{
			"quantity": quantity,
			"total":    gorm.Expr("unit_price * ?", quantity),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update cart line quantity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartLineNotFound
	}

	return nil
}

// UpdateLine rewrites an existing line's size, quantity and total by line ID.
func (repo *cartRepository) UpdateLine(ctx context.Context, line *entity.CartLine) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartLineModel{}).
		Where("id = ?", line.ID).
		Updates(map[string]any{
			"size":     line.Size.String(),
			"quantity": line.Quantity,
			"total":    line.Total,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update cart line")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartLineNotFound
	}

	return nil
}

// DeleteLine removes the line at (owner, product, size). Idempotent.
func (repo *cartRepository) DeleteLine(ctx context.Context, owner entity.OwnerKey, productID uuid.UUID, size entity.Size) error {
	if err := repo.db.WithContext(ctx).
		Where("owner_key = ? AND product_id = ? AND size = ?", owner.String(), productID, size.String()).
		Delete(&model.CartLineModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete cart line")
	}

	return nil
}

// Clear removes every line for the owner. Idempotent.
func (repo *cartRepository) Clear(ctx context.Context, owner entity.OwnerKey) error {
	if err := repo.db.WithContext(ctx).
		Where("owner_key = ?", owner.String()).
		Delete(&model.CartLineModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// fromCartLineDomain converts a domain entity into its GORM model.
func fromCartLineDomain(line *entity.CartLine) *model.CartLineModel {
	return &model.CartLineModel{
		ID:          line.ID,
		OwnerKey:    line.OwnerKey.String(),
		ProductID:   line.ProductID,
		ProductName: line.ProductName,
		Size:        line.Size.String(),
		Quantity:    line.Quantity,
		UnitPrice:   line.UnitPrice,
		Total:       line.Total,
	}
}

// toCartLineDomain converts a GORM model into its domain entity.
func toCartLineDomain(lineM *model.CartLineModel) *entity.CartLine {
	return &entity.CartLine{
		ID:          lineM.ID,
		OwnerKey:    entity.OwnerKey(lineM.OwnerKey),
		ProductID:   lineM.ProductID,
		ProductName: lineM.ProductName,
		Size:        entity.Size(lineM.Size),
		Quantity:    lineM.Quantity,
		UnitPrice:   lineM.UnitPrice,
		Total:       lineM.Total,
		CreatedAt:   lineM.CreatedAt,
		UpdatedAt:   lineM.UpdatedAt,
	}
}
