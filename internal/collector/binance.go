package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// DefaultBinanceBaseURL is the Binance.US REST endpoint.
const DefaultBinanceBaseURL = "https://api.binance.us"

// BinanceFetcher implements Fetcher using the Binance.US ticker API.
type BinanceFetcher struct {
	BaseURL   string
	APIKey    string
	UserAgent string
	Client    *http.Client
}

// NewBinanceFetcher creates a fetcher with optional proxy support. Each
// process embeds a random client id in the User-Agent so requests from
// separate instances stay distinguishable on the provider side.
func NewBinanceFetcher(baseURL, apiKey, proxyURL string) *BinanceFetcher {
	if baseURL == "" {
		baseURL = DefaultBinanceBaseURL
	}
	clientID := strings.ReplaceAll(uuid.NewString(), "-", "")
	return &BinanceFetcher{
		BaseURL:   strings.TrimSuffix(baseURL, "/"),
		APIKey:    apiKey,
		UserAgent: "crypto-rsi-tracker-" + clientID,
		Client:    newHTTPClient(proxyURL),
	}
}

func (f *BinanceFetcher) Name() string { return "binance" }

// FetchCurrentPrice fetches the latest ticker price for the symbol.
func (f *BinanceFetcher) FetchCurrentPrice(symbol string) (float64, error) {
	endpoint := fmt.Sprintf("%s/api/v3/ticker/price?symbol=%s",
		f.BaseURL, url.QueryEscape(NormalizeSymbol(symbol)))

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, &FetchError{Kind: KindUnexpected, Source: f.Name(), Err: err}
	}
	req.Header.Set("User-Agent", f.UserAgent)
	req.Header.Set("Accept", "application/json")
	if f.APIKey != "" {
		req.Header.Set("X-MBX-APIKEY", f.APIKey)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return 0, transportErr(f.Name(), err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, transportErr(f.Name(), fmt.Errorf("status %d, body: %s", resp.StatusCode, string(body)))
	}

	// Binance returns the price as a decimal string.
	var result struct {
		Price string `json:"price"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, parseErr(f.Name(), fmt.Errorf("decode ticker: %w", err))
	}
	if result.Price == "" {
		return 0, parseErr(f.Name(), fmt.Errorf("ticker response missing price"))
	}
	price, err := strconv.ParseFloat(result.Price, 64)
	if err != nil {
		return 0, parseErr(f.Name(), fmt.Errorf("parse price %q: %w", result.Price, err))
	}
	return price, nil
}
