package router

import (
	"errors"
	"net/http"

	"github.com/DjordjeVuckovic/calcfin/internal/apperr"
	"github.com/DjordjeVuckovic/calcfin/internal/vat"
	"github.com/labstack/echo/v4"
)

type VATRouter struct {
	e           *echo.Echo
	presets     []float64
	defaultRate float64
}

func NewVATRouter(e *echo.Echo, presets []float64, defaultRate float64) *VATRouter {
	return &VATRouter{
		e:           e,
		presets:     presets,
		defaultRate: defaultRate,
	}
}

func (r *VATRouter) Bind() {
	r.e.POST("/api/v1/vat", r.computeHandler)
	r.e.GET("/api/v1/vat/presets", r.presetsHandler)
}

// VATRequest accepts amounts and rates as numbers or as user-typed strings ("12,5").
type VATRequest struct {
	Mode   string `json:"mode" example:"add"`
	Rate   string `json:"rate" example:"22"`
	Amount string `json:"amount" example:"100"`
}

type PresetsResponse struct {
	DefaultRate float64   `json:"defaultRate" example:"22"`
	Presets     []float64 `json:"presets"`
}

// computeHandler godoc
// @Summary Add or remove VAT
// @Tags vat
// @Accept json
// @Produce json
// @Param request body VATRequest true "VAT request"
// @Success 200 {object} vat.Breakdown
// @Failure 400 {object} apperr.ErrorResponse
// @Router /api/v1/vat [post]
func (r *VATRouter) computeHandler(c echo.Context) error {
	var req VATRequest
	if err := bindLenient(c, &req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	mode, err := vat.ParseMode(req.Mode)
	if err != nil {
		return apperr.NewValidationWrap("invalid vat mode", err).WithCode("invalid_mode")
	}

	rate := r.defaultRate
	if req.Rate != "" {
		rate = vat.ParseDecimal(req.Rate)
	}

	b, err := vat.Compute(mode, rate, vat.ParseDecimal(req.Amount))
	if err != nil {
		if errors.Is(err, vat.ErrInvalidRate) || errors.Is(err, vat.ErrInvalidAmount) {
			return apperr.NewValidationWrap("invalid vat input", err)
		}
		return err
	}

	return c.JSON(http.StatusOK, b)
}

// presetsHandler godoc
// @Summary VAT rate presets
// @Tags vat
// @Produce json
// @Success 200 {object} PresetsResponse
// @Router /api/v1/vat/presets [get]
func (r *VATRouter) presetsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, PresetsResponse{DefaultRate: r.defaultRate, Presets: r.presets})
}
