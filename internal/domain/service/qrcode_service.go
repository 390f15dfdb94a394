package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders share codes for listings.
type QRCodeService interface {
	// ProductURL returns the public web URL of a product.
	ProductURL(productID uuid.UUID) string

	// GenerateProductQR renders the product's public URL as a PNG QR code.
	GenerateProductQR(productID uuid.UUID) ([]byte, error)
}
