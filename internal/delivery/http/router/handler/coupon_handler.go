package handler

import (
	"log/slog"
	"net/http"

	"cookify/internal/delivery/http/response"
	"cookify/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CouponHandler holds dependencies for coupon handlers.
type CouponHandler struct {
	uc     usecase.CouponUsecase
	logger *slog.Logger
}

// NewCouponHandler is the constructor for CouponHandler, injected by Fx.
func NewCouponHandler(uc usecase.CouponUsecase, logger *slog.Logger) *CouponHandler {
	return &CouponHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListCoupons returns every coupon, newest first. Admin only.
func (h *CouponHandler) ListCoupons(c echo.Context) error {
	coupons, err := h.uc.ListCoupons(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, coupons, "Coupons retrieved")
}

// CreateCoupon adds a new promotional coupon. Admin only.
func (h *CouponHandler) CreateCoupon(c echo.Context) error {
	var input *usecase.CreateCouponInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	coupon, err := h.uc.CreateCoupon(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, coupon, "Coupon created")
}

// UpdateCoupon modifies an existing coupon. Admin only.
func (h *CouponHandler) UpdateCoupon(c echo.Context) error {
	couponID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid coupon ID")
	}

	var input *usecase.UpdateCouponInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	coupon, err := h.uc.UpdateCoupon(c.Request().Context(), couponID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, coupon, "Coupon updated")
}

// previewCouponRequest is the request body for coupon previews.
type previewCouponRequest struct {
	Code     string  `json:"code" validate:"required,max=50"`
	Subtotal float64 `json:"subtotal" validate:"required,gt=0"`
}

// PreviewCoupon computes the discount a coupon would grant on a subtotal
// without consuming a redemption.
func (h *CouponHandler) PreviewCoupon(c echo.Context) error {
	var req *previewCouponRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preview input")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	preview, err := h.uc.PreviewCoupon(c.Request().Context(), req.Code, req.Subtotal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, preview, "Coupon preview computed")
}

// ShareQR streams a PNG QR code that encodes a shareable coupon reference.
func (h *CouponHandler) ShareQR(c echo.Context) error {
	couponID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid coupon ID")
	}

	png, err := h.uc.GenerateShareQR(c.Request().Context(), couponID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
