package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateCouponQR generates a QR code encoding a shareable coupon reference
	GenerateCouponQR(couponID uuid.UUID, code string) ([]byte, error)

	// ParseCouponQR parses QR code data and returns the coupon ID and code
	ParseCouponQR(qrData string) (uuid.UUID, string, error)
}
