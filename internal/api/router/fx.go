package router

import (
	"errors"
	"net/http"

	"github.com/DjordjeVuckovic/calcfin/internal/apperr"
	"github.com/DjordjeVuckovic/calcfin/internal/fx"
	"github.com/labstack/echo/v4"
)

type FXRouter struct {
	e       *echo.Echo
	service *fx.Service
}

func NewFXRouter(e *echo.Echo, service *fx.Service) *FXRouter {
	return &FXRouter{
		e:       e,
		service: service,
	}
}

func (r *FXRouter) Bind() {
	g := r.e.Group("/api/v1/fx")
	g.GET("/rate", r.rateHandler)
	g.PUT("/rate", r.setRateHandler)
	g.POST("/refresh", r.refreshHandler)
	g.POST("/convert", r.convertHandler)
}

type SetRateRequest struct {
	Rate float64 `json:"rate" example:"1.1"`
}

// rateHandler godoc
// @Summary Current EUR→USD rate
// @Tags fx
// @Produce json
// @Success 200 {object} fx.Quote
// @Router /api/v1/fx/rate [get]
func (r *FXRouter) rateHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, r.service.Quote())
}

// setRateHandler godoc
// @Summary Set the EUR→USD rate manually
// @Tags fx
// @Accept json
// @Produce json
// @Param request body SetRateRequest true "Rate"
// @Success 200 {object} fx.Quote
// @Failure 400 {object} apperr.ErrorResponse
// @Router /api/v1/fx/rate [put]
func (r *FXRouter) setRateHandler(c echo.Context) error {
	var req SetRateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	q, err := r.service.SetRate(req.Rate)
	if err != nil {
		return apperr.NewValidationWrap("invalid rate", err)
	}
	return c.JSON(http.StatusOK, q)
}

// refreshHandler godoc
// @Summary Refresh the rate from Frankfurter (ECB)
// @Description On failure the manual rate is kept and returned with 502.
// @Tags fx
// @Produce json
// @Success 200 {object} fx.Quote
// @Failure 502 {object} fx.Quote
// @Router /api/v1/fx/refresh [post]
func (r *FXRouter) refreshHandler(c echo.Context) error {
	q, err := r.service.Refresh(c.Request().Context())
	if err != nil {
		if errors.Is(err, fx.ErrNoProvider) {
			return echo.NewHTTPError(http.StatusNotImplemented, "rate refresh is not configured")
		}
		return c.JSON(http.StatusBadGateway, q)
	}
	return c.JSON(http.StatusOK, q)
}

// convertHandler godoc
// @Summary Convert between EUR and USD
// @Description When both amounts are given the USD amount wins.
// @Tags fx
// @Accept json
// @Produce json
// @Param request body fx.ConvertRequest true "Amounts"
// @Success 200 {object} fx.Conversion
// @Failure 400 {object} apperr.ErrorResponse
// @Router /api/v1/fx/convert [post]
func (r *FXRouter) convertHandler(c echo.Context) error {
	var req fx.ConvertRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	conv, err := r.service.Convert(req)
	if err != nil {
		return apperr.NewValidationWrap("invalid amount", err)
	}
	return c.JSON(http.StatusOK, conv)
}
