// Package qrcode renders listing share codes.
package qrcode

import (
	"strings"

	"teka/config"
	"teka/internal/domain/service"
	"teka/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize       = 256
	productPathPrefix = "/product/"
)

type qrcodeService struct {
	webBaseURL           string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance from the qrcode and catalog sections.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := defaultSize, "M"
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	webBaseURL := ""
	if cfg.Catalog != nil {
		webBaseURL = strings.TrimRight(cfg.Catalog.WebBaseURL, "/")
	}

	return &qrcodeService{
		webBaseURL:           webBaseURL,
		size:                 size,
		errorCorrectionLevel: recoveryLevel(level),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// ProductURL returns the public web URL of a product.
func (s *qrcodeService) ProductURL(productID uuid.UUID) string {
	return s.webBaseURL + productPathPrefix + productID.String()
}

// GenerateProductQR renders the product's public URL as a PNG QR code.
func (s *qrcodeService) GenerateProductQR(productID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.ProductURL(productID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
