package fx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/DjordjeVuckovic/calcfin/pkg/utils"
)

const (
	DefaultFrankfurterURL = "https://api.frankfurter.app"
	defaultTimeout        = 10 * time.Second
)

// RateProvider returns the latest EUR→USD exchange rate.
type RateProvider interface {
	Latest(ctx context.Context) (float64, error)
}

type FrankfurterConfig func(client *FrankfurterClient)

// FrankfurterClient reads ECB reference rates from the Frankfurter API.
type FrankfurterClient struct {
	base url.URL
	http *http.Client
}

func NewFrankfurterClient(baseUrl string, opts ...FrankfurterConfig) (*FrankfurterClient, error) {
	base, err := url.Parse(baseUrl)
	if err != nil {
		return nil, err
	}

	client := &FrankfurterClient{
		base: *base,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, cfg := range opts {
		cfg(client)
	}

	return client, nil
}

func WithHttpClient(httpClient *http.Client) FrankfurterConfig {
	return func(client *FrankfurterClient) {
		client.http = httpClient
	}
}

func WithTimeout(timeout time.Duration) FrankfurterConfig {
	return func(client *FrankfurterClient) {
		if timeout > 0 {
			client.http.Timeout = timeout
		}
	}
}

type latestResponse struct {
	Amount float64            `json:"amount"`
	Base   string             `json:"base"`
	Date   string             `json:"date"`
	Rates  map[string]float64 `json:"rates"`
}

func (fc *FrankfurterClient) Latest(ctx context.Context) (float64, error) {
	reqURL := fc.base.JoinPath("/latest")
	q := reqURL.Query()
	q.Set("from", "EUR")
	q.Set("to", "USD")
	reqURL.RawQuery = q.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return 0, err
	}
	request.Header.Set("Accept", "application/json")

	resp, err := fc.http.Do(request)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(body))
	}

	var latest latestResponse
	if err := json.Unmarshal(body, &latest); err != nil {
		return 0, fmt.Errorf("unmarshal response: %w", err)
	}

	rate, ok := latest.Rates["USD"]
	if !ok {
		return 0, fmt.Errorf("response has no USD rate")
	}
	if !utils.IsFinite(rate) || rate <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRate, rate)
	}
	return rate, nil
}
