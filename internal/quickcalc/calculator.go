package quickcalc

import (
	"context"
	"errors"
	"strings"

	"github.com/DjordjeVuckovic/calcfin/internal/domain"
	"github.com/DjordjeVuckovic/calcfin/internal/expr"
	"github.com/DjordjeVuckovic/calcfin/internal/storage"
	"github.com/DjordjeVuckovic/calcfin/pkg/utils"
)

// DefaultMaxLength caps the normalized expression length accepted by Calculate.
const DefaultMaxLength = 256

var (
	ErrEmptyExpression   = errors.New("empty expression")
	ErrExpressionTooLong = errors.New("expression too long")
)

// Result is a successful evaluation. Value is not finite for results such as 5/0.
type Result struct {
	Expression string  `json:"expression"`
	Value      float64 `json:"-"`
	Formatted  string  `json:"formatted"`
	Finite     bool    `json:"finite"`
}

// Normalize turns raw keyboard input into evaluator input: it trims spaces,
// drops a leading "=" and reads commas as decimal points.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "=")
	return strings.ReplaceAll(s, ",", ".")
}

type Calculator struct {
	formatter *Formatter
	history   storage.HistoryStore
	maxLength int
}

type Option func(*Calculator)

func WithMaxLength(n int) Option {
	return func(c *Calculator) {
		if n > 0 {
			c.maxLength = n
		}
	}
}

func WithFormatter(f *Formatter) Option {
	return func(c *Calculator) {
		c.formatter = f
	}
}

// NewCalculator creates a calculator. history may be nil when results are never saved.
func NewCalculator(history storage.HistoryStore, opts ...Option) *Calculator {
	c := &Calculator{
		history:   history,
		maxLength: DefaultMaxLength,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.formatter == nil {
		c.formatter, _ = NewFormatter(DefaultLocale)
	}
	return c
}

func (c *Calculator) Calculate(ctx context.Context, raw string) (Result, error) {
	clean := Normalize(raw)
	if clean == "" {
		return Result{}, ErrEmptyExpression
	}
	if len(clean) > c.maxLength {
		return Result{}, ErrExpressionTooLong
	}

	v, err := expr.EvaluateExpression(clean)
	if err != nil {
		return Result{}, err
	}

	res := Result{Expression: clean, Value: v, Finite: utils.IsFinite(v)}
	if res.Finite {
		res.Formatted = c.formatter.Format(v)
	} else {
		res.Formatted = Placeholder
	}
	return res, nil
}

// Save evaluates raw and records it in the history. Failed evaluations are not recorded.
func (c *Calculator) Save(ctx context.Context, raw string) (domain.HistoryEntry, error) {
	if c.history == nil {
		return domain.HistoryEntry{}, errors.New("history is not configured")
	}

	res, err := c.Calculate(ctx, raw)
	if err != nil {
		return domain.HistoryEntry{}, err
	}

	return c.history.Add(ctx, domain.HistoryEntry{
		Expression: strings.TrimSpace(raw),
		Result:     res.Formatted,
	})
}

func (c *Calculator) History(ctx context.Context, offset, limit int) ([]domain.HistoryEntry, int64, error) {
	if c.history == nil {
		return []domain.HistoryEntry{}, 0, nil
	}
	return c.history.List(ctx, offset, limit)
}

func (c *Calculator) ClearHistory(ctx context.Context) error {
	if c.history == nil {
		return nil
	}
	return c.history.Clear(ctx)
}
