package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateCouponQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	couponID := uuid.New()

	qrBytes, err := service.GenerateCouponQR(couponID, "RAMADAN20")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_ParseCouponQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	couponID := uuid.New()

	payload, err := json.Marshal(QRCodeData{
		CouponID: couponID.String(),
		Code:     "RAMADAN20",
		Type:     "coupon",
	})
	require.NoError(t, err)

	parsedID, code, err := service.ParseCouponQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, couponID, parsedID)
	assert.Equal(t, "RAMADAN20", code)
}

func TestQRCodeService_ParseCouponQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M")

	// Not JSON at all
	_, _, err := service.ParseCouponQR("not json")
	assert.Error(t, err)

	// Wrong payload type
	payload, err := json.Marshal(QRCodeData{
		CouponID: uuid.New().String(),
		Code:     "RAMADAN20",
		Type:     "subscription",
	})
	require.NoError(t, err)
	_, _, err = service.ParseCouponQR(string(payload))
	assert.Error(t, err)

	// Malformed coupon ID
	payload, err = json.Marshal(QRCodeData{
		CouponID: "not-a-uuid",
		Code:     "RAMADAN20",
		Type:     "coupon",
	})
	require.NoError(t, err)
	_, _, err = service.ParseCouponQR(string(payload))
	assert.Error(t, err)
}
