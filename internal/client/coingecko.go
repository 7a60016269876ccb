package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	coingeckoAPI = "https://api.coingecko.com/api/v3"
)

// ErrPriceNotFound is returned when the index has no entry for the requested asset
var ErrPriceNotFound = errors.New("price not found")

// CoinGeckoClient client for CoinGecko API
type CoinGeckoClient struct {
	baseURL  string
	platform string
	client   *http.Client
}

// NewCoinGeckoClient creates a new CoinGecko client.
// platform is the asset platform contract addresses are looked up on (e.g. "ethereum").
func NewCoinGeckoClient(baseURL, platform string, timeout time.Duration) *CoinGeckoClient {
	if baseURL == "" {
		baseURL = coingeckoAPI
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &CoinGeckoClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		platform: platform,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Quote is one entry of a simple price response
type Quote struct {
	USD       *float64 `json:"usd"`
	Change24h *float64 `json:"usd_24h_change"`
}

// TokenPrice gets the USD price and 24h change of a token by contract address
func (c *CoinGeckoClient) TokenPrice(ctx context.Context, contractAddress string) (*Quote, error) {
	params := url.Values{}
	params.Set("contract_addresses", contractAddress)
	params.Set("vs_currencies", "usd")
	params.Set("include_24hr_change", "true")

	endpoint := fmt.Sprintf("%s/simple/token_price/%s?%s", c.baseURL, url.PathEscape(c.platform), params.Encode())

	var prices map[string]Quote
	if err := c.get(ctx, endpoint, &prices); err != nil {
		return nil, err
	}

	// CoinGecko keys the response by the lowercased address
	quote, ok := prices[strings.ToLower(contractAddress)]
	if !ok {
		return nil, ErrPriceNotFound
	}
	return &quote, nil
}

// AssetPrice gets the USD price and 24h change of an asset by its CoinGecko id (e.g. "ethereum")
func (c *CoinGeckoClient) AssetPrice(ctx context.Context, assetID string) (*Quote, error) {
	params := url.Values{}
	params.Set("ids", assetID)
	params.Set("vs_currencies", "usd")
	params.Set("include_24hr_change", "true")

	endpoint := fmt.Sprintf("%s/simple/price?%s", c.baseURL, params.Encode())

	var prices map[string]Quote
	if err := c.get(ctx, endpoint, &prices); err != nil {
		return nil, err
	}

	quote, ok := prices[assetID]
	if !ok {
		return nil, ErrPriceNotFound
	}
	return &quote, nil
}

func (c *CoinGeckoClient) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to get price: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ErrHTTP{Status: resp.StatusCode, URL: endpoint}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode price: %w", err)
	}
	return nil
}
