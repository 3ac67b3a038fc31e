package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTableNames(t *testing.T) {
	assert.Equal(t, "users", UserModel{}.TableName())
	assert.Equal(t, "access_tokens", AccessTokenModel{}.TableName())
	assert.Equal(t, "shipping_addresses", ShippingAddressModel{}.TableName())
	assert.Equal(t, "categories", CategoryModel{}.TableName())
	assert.Equal(t, "products", ProductModel{}.TableName())
	assert.Equal(t, "cart_lines", CartLineModel{}.TableName())
	assert.Equal(t, "orders", OrderModel{}.TableName())
	assert.Equal(t, "order_lines", OrderLineModel{}.TableName())
}

func TestUserModel_Associations(t *testing.T) {
	userID := uuid.New()
	user := UserModel{
		ID: userID,
		Addresses: []ShippingAddressModel{
			{UserID: userID, FullName: "Diallo Aissatou", City: "Conakry"},
		},
		Orders: []OrderModel{
			{UserID: userID, Status: "en attente"},
		},
	}

	assert.Len(t, user.Addresses, 1)
	assert.Equal(t, userID, user.Addresses[0].UserID)
	assert.Equal(t, userID, user.Orders[0].UserID)
}
