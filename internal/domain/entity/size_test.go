package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSize_CanonicalValues(t *testing.T) {
	for _, raw := range []string{"M", "L", "XL", "XXL"} {
		size, ok := ParseSize(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, raw, size.String())
	}
}

func TestParseSize_TwoXLAlias(t *testing.T) {
	size, ok := ParseSize("2XL")
	assert.True(t, ok)
	assert.Equal(t, SizeXXL, size)
}

func TestParseSize_Rejections(t *testing.T) {
	for _, raw := range []string{"", "S", "m", "xl", "XXXL", " M"} {
		_, ok := ParseSize(raw)
		assert.False(t, ok, raw)
	}
}

func TestSizes_ReturnsACopy(t *testing.T) {
	sizes := Sizes()
	assert.Equal(t, []Size{SizeM, SizeL, SizeXL, SizeXXL}, sizes)

	sizes[0] = "S"
	assert.Equal(t, SizeM, Sizes()[0])
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, OrderStatusPending.IsValid())
	assert.True(t, OrderStatusPaid.IsValid())
	assert.True(t, OrderStatusCanceled.IsValid())
	assert.False(t, OrderStatus("expédié").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}
