package fx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/calcfin/pkg/utils"
)

const (
	DefaultManualRate = 1.10
	rateDecimals      = 4
	centsDecimals     = 2
)

const (
	SourceManual      = "manual"
	SourceFrankfurter = "frankfurter"

	InfoUpdated      = "rate updated from Frankfurter (ECB)"
	InfoManual       = "manual rate"
	InfoUpdateFailed = "manual rate (update failed)"
)

var (
	ErrInvalidRate   = errors.New("invalid exchange rate")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrNoProvider    = errors.New("no rate provider configured")
)

// Quote is the rate currently used for conversions.
type Quote struct {
	Rate      float64   `json:"rate"`
	Source    string    `json:"source"`
	Info      string    `json:"info"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ConvertRequest struct {
	EUR *float64 `json:"eur,omitempty"`
	USD *float64 `json:"usd,omitempty"`
}

type Conversion struct {
	Rate float64 `json:"rate"`
	EUR  float64 `json:"eur"`
	USD  float64 `json:"usd"`
}

// Service converts between EUR and USD at a rate that can be set manually
// or refreshed from a RateProvider. It is safe for concurrent use.
type Service struct {
	mu       sync.RWMutex
	quote    Quote
	provider RateProvider
	now      func() time.Time
}

// NewService starts with manualRate; provider may be nil for manual-only use.
func NewService(provider RateProvider, manualRate float64) (*Service, error) {
	if !validRate(manualRate) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRate, manualRate)
	}
	s := &Service{provider: provider, now: time.Now}
	s.quote = Quote{Rate: manualRate, Source: SourceManual, Info: InfoManual, UpdatedAt: s.now().UTC()}
	return s, nil
}

func (s *Service) Quote() Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.quote
}

func (s *Service) SetRate(rate float64) (Quote, error) {
	if !validRate(rate) {
		return Quote{}, fmt.Errorf("%w: %v", ErrInvalidRate, rate)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.quote = Quote{Rate: rate, Source: SourceManual, Info: InfoManual, UpdatedAt: s.now().UTC()}
	return s.quote, nil
}

// Refresh asks the provider for the latest rate. On failure the current rate
// is kept and the quote is marked as a manual fallback; the error is returned.
func (s *Service) Refresh(ctx context.Context) (Quote, error) {
	if s.provider == nil {
		return s.Quote(), ErrNoProvider
	}

	rate, err := s.provider.Latest(ctx)
	if err == nil {
		raw := rate
		rate = utils.RoundDecimal(raw, rateDecimals)
		if !validRate(rate) {
			err = fmt.Errorf("%w: %v rounds to zero", ErrInvalidRate, raw)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		slog.Warn("Failed to refresh exchange rate, keeping manual rate", "rate", s.quote.Rate, "error", err)
		s.quote.Source = SourceManual
		s.quote.Info = InfoUpdateFailed
		return s.quote, err
	}

	s.quote = Quote{
		Rate:      rate,
		Source:    SourceFrankfurter,
		Info:      InfoUpdated,
		UpdatedAt: s.now().UTC(),
	}
	slog.Info("Exchange rate refreshed", "rate", s.quote.Rate)
	return s.quote, nil
}

// Convert derives the missing side of an EUR/USD pair, rounded to cents.
// When both amounts are given the USD amount wins and EUR is recomputed.
func (s *Service) Convert(req ConvertRequest) (Conversion, error) {
	rate := s.Quote().Rate
	c := Conversion{Rate: rate}

	if req.EUR != nil {
		if !utils.IsFinite(*req.EUR) {
			return Conversion{}, fmt.Errorf("%w: %v", ErrInvalidAmount, *req.EUR)
		}
		c.EUR = *req.EUR
		c.USD = utils.RoundDecimal(*req.EUR*rate, centsDecimals)
	}
	if req.USD != nil {
		if !utils.IsFinite(*req.USD) {
			return Conversion{}, fmt.Errorf("%w: %v", ErrInvalidAmount, *req.USD)
		}
		c.USD = *req.USD
		c.EUR = utils.RoundDecimal(*req.USD/rate, centsDecimals)
	}

	return c, nil
}

func validRate(rate float64) bool {
	return utils.IsFinite(rate) && rate > 0
}
