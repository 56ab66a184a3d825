package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultCoinGeckoBaseURL is the CoinGecko public API endpoint.
const DefaultCoinGeckoBaseURL = "https://api.coingecko.com"

// CoinGeckoFetcher implements Fetcher using CoinGecko's simple-price API.
// Prices are quoted in USD, which is close enough for USDT pairs.
type CoinGeckoFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewCoinGeckoFetcher creates a fetcher with optional proxy support.
func NewCoinGeckoFetcher(proxyURL string) *CoinGeckoFetcher {
	return &CoinGeckoFetcher{
		BaseURL: DefaultCoinGeckoBaseURL,
		Client:  newHTTPClient(proxyURL),
	}
}

func (f *CoinGeckoFetcher) Name() string { return "coingecko" }

// CoinID maps an exchange pair to a CoinGecko coin id: anything containing
// BTC maps to "bitcoin", otherwise the lowercased base asset (the part
// before the usdt suffix).
func CoinID(symbol string) string {
	s := NormalizeSymbol(symbol)
	if strings.Contains(s, "BTC") {
		return "bitcoin"
	}
	return strings.Split(strings.ToLower(s), "usdt")[0]
}

// FetchCurrentPrice fetches the latest USD price for the symbol's coin.
func (f *CoinGeckoFetcher) FetchCurrentPrice(symbol string) (float64, error) {
	coinID := CoinID(symbol)
	endpoint := fmt.Sprintf("%s/api/v3/simple/price?ids=%s&vs_currencies=usd",
		strings.TrimSuffix(f.BaseURL, "/"), url.QueryEscape(coinID))

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, &FetchError{Kind: KindUnexpected, Source: f.Name(), Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return 0, transportErr(f.Name(), err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, transportErr(f.Name(), fmt.Errorf("status %d, body: %s", resp.StatusCode, string(body)))
	}

	var result map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, parseErr(f.Name(), fmt.Errorf("decode simple price: %w", err))
	}
	price, ok := result[coinID]["usd"]
	if !ok {
		return 0, parseErr(f.Name(), fmt.Errorf("no usd price for coin %q", coinID))
	}
	return price, nil
}
