package collector

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoinID(t *testing.T) {
	tests := []struct {
		symbol string
		want   string
	}{
		{"BTC/USDT", "bitcoin"},
		{"BTCUSDT", "bitcoin"},
		{"ETH/USDT", "eth"},
		{"SOL/USDT", "sol"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CoinID(tt.symbol), "symbol %s", tt.symbol)
	}
}

func TestCoinGeckoFetcher_FetchCurrentPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/simple/price", r.URL.Path)
		assert.Equal(t, "bitcoin", r.URL.Query().Get("ids"))
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currencies"))
		w.Write([]byte(`{"bitcoin":{"usd":64120.12}}`))
	}))
	defer srv.Close()

	f := NewCoinGeckoFetcher("")
	f.BaseURL = srv.URL
	price, err := f.FetchCurrentPrice("BTC/USDT")
	require.NoError(t, err)
	assert.Equal(t, 64120.12, price)
}

func TestCoinGeckoFetcher_MissingCoin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	f := NewCoinGeckoFetcher("")
	f.BaseURL = srv.URL
	_, err := f.FetchCurrentPrice("BTC/USDT")
	require.Error(t, err)
	assert.Equal(t, KindParse, Classify(err))
}
