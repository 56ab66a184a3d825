package collector

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
)

// Chain tries fetchers in order until one succeeds. Which source answered is
// a provider-internal detail; callers only see a price or the last failure.
type Chain struct {
	fetchers []Fetcher
	log      logrus.FieldLogger
}

// NewChain creates a Chain over the given fetchers, tried in argument order.
func NewChain(log logrus.FieldLogger, fetchers ...Fetcher) *Chain {
	return &Chain{fetchers: fetchers, log: log}
}

func (c *Chain) Name() string {
	names := make([]string, len(c.fetchers))
	for i, f := range c.fetchers {
		names[i] = f.Name()
	}
	return "chain(" + strings.Join(names, ",") + ")"
}

// FetchCurrentPrice returns the first successful fetch. If every fetcher
// fails, the last error is returned.
func (c *Chain) FetchCurrentPrice(symbol string) (float64, error) {
	if len(c.fetchers) == 0 {
		return 0, &FetchError{Kind: KindUnexpected, Source: c.Name(), Err: errors.New("no fetchers configured")}
	}
	var lastErr error
	for i, f := range c.fetchers {
		price, err := f.FetchCurrentPrice(symbol)
		if err == nil {
			return price, nil
		}
		lastErr = err
		if i < len(c.fetchers)-1 {
			c.log.WithError(err).WithField("source", f.Name()).Warn("price fetch failed, trying next source")
		}
	}
	return 0, lastErr
}
