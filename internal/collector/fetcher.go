package collector

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

// fetchTimeout bounds every provider request; a slow provider is a
// transport failure, not a hung loop.
const fetchTimeout = 10 * time.Second

// Fetcher yields the latest price for a trading symbol.
type Fetcher interface {
	FetchCurrentPrice(symbol string) (float64, error)
	Name() string
}

// NormalizeSymbol converts a pair like "BTC/USDT" to exchange form "BTCUSDT".
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.ReplaceAll(symbol, "/", ""))
}

// newHTTPClient builds a client with the fetch timeout and optional proxy.
func newHTTPClient(proxyURL string) *http.Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &http.Client{
		Timeout:   fetchTimeout,
		Transport: transport,
	}
}
