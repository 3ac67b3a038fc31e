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

// addressRepository implements the repository.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{
		db: db,
	}
}

// Create persists a new shipping address.
func (repo *addressRepository) Create(ctx context.Context, address *entity.ShippingAddress) error {
	addressM := &model.ShippingAddressModel{
		ID:       address.ID,
		UserID:   address.UserID,
		FullName: address.FullName,
		Phone:    address.Phone,
		City:     address.City,
		Address1: address.Address1,
		Address2: address.Address2,
	}

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shipping address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt

	return nil
}

// ListByUser retrieves all addresses captured for a user, newest first.
func (repo *addressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ShippingAddress, error) {
	var addressModels []*model.ShippingAddressModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&addressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shipping addresses")
	}

	addresses := make([]*entity.ShippingAddress, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, &entity.ShippingAddress{
			ID:        addressM.ID,
			UserID:    addressM.UserID,
			FullName:  addressM.FullName,
			Phone:     addressM.Phone,
			City:      addressM.City,
			Address1:  addressM.Address1,
			Address2:  addressM.Address2,
			CreatedAt: addressM.CreatedAt,
		})
	}

	return addresses, nil
}
