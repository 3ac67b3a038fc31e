// Package service defines interfaces for domain services.
package service

// QRCodeService renders QR code images. The storefront embeds one in the
// order confirmation mail, encoding the order reference.
type QRCodeService interface {
	// GeneratePNG encodes content into a PNG QR image.
	GeneratePNG(content string) ([]byte, error)
}
