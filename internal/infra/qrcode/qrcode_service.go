// Package qrcode generates and parses shareable coupon QR codes.
package qrcode

import (
	"encoding/json"
	"fmt"

	"cookify/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	CouponID string `json:"coupon_id"`
	Code     string `json:"code"`
	Type     string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateCouponQR generates a QR code encoding a shareable coupon reference
func (s *qrcodeService) GenerateCouponQR(couponID uuid.UUID, code string) ([]byte, error) {
	// Create QR code data
	data := QRCodeData{
		CouponID: couponID.String(),
		Code:     code,
		Type:     "coupon",
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseCouponQR parses QR code data and returns the coupon ID and code
func (s *qrcodeService) ParseCouponQR(qrData string) (uuid.UUID, string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "coupon" {
		return uuid.Nil, "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	// Parse UUID
	couponID, err := uuid.Parse(data.CouponID)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("failed to parse coupon ID: %w", err)
	}

	return couponID, data.Code, nil
}
