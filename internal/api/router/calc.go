package router

import (
	"errors"
	"net/http"

	"github.com/DjordjeVuckovic/calcfin/internal/apperr"
	"github.com/DjordjeVuckovic/calcfin/internal/expr"
	"github.com/DjordjeVuckovic/calcfin/internal/quickcalc"
	"github.com/DjordjeVuckovic/calcfin/pkg/pagination"
	"github.com/labstack/echo/v4"
)

type CalcRouter struct {
	e          *echo.Echo
	calculator *quickcalc.Calculator
}

func NewCalcRouter(e *echo.Echo, calculator *quickcalc.Calculator) *CalcRouter {
	return &CalcRouter{
		e:          e,
		calculator: calculator,
	}
}

func (r *CalcRouter) Bind() {
	g := r.e.Group("/api/v1/calc")
	g.POST("/evaluate", r.evaluateHandler)
	g.GET("/history", r.listHistoryHandler)
	g.POST("/history", r.saveHistoryHandler)
	g.DELETE("/history", r.clearHistoryHandler)
}

type ExpressionRequest struct {
	Expression string `json:"expression" example:"=(12,5+7)*3"`
}

type EvaluateResponse struct {
	Expression string   `json:"expression" example:"(12.5+7)*3"`
	Value      *float64 `json:"value" example:"58.5"`
	Formatted  string   `json:"formatted" example:"58,5"`
	Finite     bool     `json:"finite" example:"true"`
}

// evaluateHandler godoc
// @Summary Evaluate an arithmetic expression
// @Description Supports + - * / × ÷, parentheses, unary minus, comma or dot decimals and a leading "=".
// @Tags calc
// @Accept json
// @Produce json
// @Param request body ExpressionRequest true "Expression"
// @Success 200 {object} EvaluateResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Router /api/v1/calc/evaluate [post]
func (r *CalcRouter) evaluateHandler(c echo.Context) error {
	var req ExpressionRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	res, err := r.calculator.Calculate(c.Request().Context(), req.Expression)
	if err != nil {
		return calcError(err)
	}

	return c.JSON(http.StatusOK, toEvaluateResponse(res))
}

// listHistoryHandler godoc
// @Summary List recent calculations
// @Tags calc
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} pagination.OffsetResult[domain.HistoryEntry]
// @Router /api/v1/calc/history [get]
func (r *CalcRouter) listHistoryHandler(c echo.Context) error {
	page := pagination.ParseOffsetRequest(c.QueryParam("page"), c.QueryParam("size"))

	entries, total, err := r.calculator.History(c.Request().Context(), page.Offset(), page.Size)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pagination.NewOffsetResult(entries, total, page))
}

// saveHistoryHandler godoc
// @Summary Evaluate an expression and store it in the history
// @Tags calc
// @Accept json
// @Produce json
// @Param request body ExpressionRequest true "Expression"
// @Success 201 {object} domain.HistoryEntry
// @Failure 400 {object} apperr.ErrorResponse
// @Router /api/v1/calc/history [post]
func (r *CalcRouter) saveHistoryHandler(c echo.Context) error {
	var req ExpressionRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	entry, err := r.calculator.Save(c.Request().Context(), req.Expression)
	if err != nil {
		return calcError(err)
	}

	return c.JSON(http.StatusCreated, entry)
}

// clearHistoryHandler godoc
// @Summary Clear the history
// @Tags calc
// @Success 204
// @Router /api/v1/calc/history [delete]
func (r *CalcRouter) clearHistoryHandler(c echo.Context) error {
	if err := r.calculator.ClearHistory(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toEvaluateResponse(res quickcalc.Result) EvaluateResponse {
	out := EvaluateResponse{
		Expression: res.Expression,
		Formatted:  res.Formatted,
		Finite:     res.Finite,
	}
	// JSON has no encoding for Inf/NaN.
	if res.Finite {
		v := res.Value
		out.Value = &v
	}
	return out
}

var calcErrorCodes = []struct {
	err  error
	code string
}{
	{quickcalc.ErrEmptyExpression, "empty_expression"},
	{quickcalc.ErrExpressionTooLong, "expression_too_long"},
	{expr.ErrInvalidToken, "invalid_token"},
	{expr.ErrInvalidNumber, "invalid_number"},
	{expr.ErrUnbalancedParentheses, "unbalanced_parentheses"},
	{expr.ErrMalformedExpression, "malformed_expression"},
}

// calcError turns evaluation failures into validation errors; anything else passes through.
func calcError(err error) error {
	for _, ce := range calcErrorCodes {
		if errors.Is(err, ce.err) {
			return apperr.NewValidationWrap("invalid expression", err).WithCode(ce.code)
		}
	}
	return err
}
