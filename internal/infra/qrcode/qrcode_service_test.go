package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faranah/config"
)

func newTestConfig(size int, level string) *config.Config {
	cfg := &config.Config{}
	cfg.QRCode = &config.QRCodeConfig{
		Size:                 size,
		ErrorCorrectionLevel: level,
	}

	return cfg
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(newTestConfig(tt.size, tt.errorCorrectionLevel))
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GeneratePNG(t *testing.T) {
	service := NewQRCodeService(newTestConfig(256, "M"))

	qrBytes, err := service.GeneratePNG("commande:0198f1c2-52a3-7d90-a2ce-2e4f27b1c001")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GeneratePNG_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(newTestConfig(tt.size, "M"))

			qrBytes, err := service.GeneratePNG("commande:test")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_GeneratePNG_EmptyContent(t *testing.T) {
	service := NewQRCodeService(newTestConfig(256, "M"))

	_, err := service.GeneratePNG("")
	assert.Error(t, err)
}

func TestQRCodeService_DefaultsWithoutConfig(t *testing.T) {
	service := NewQRCodeService(&config.Config{})

	qrBytes, err := service.GeneratePNG("commande:test")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}
