package collector

import (
	"errors"
	"fmt"
)

// ErrorKind classifies fetch failures so the tracker can log them distinctly.
type ErrorKind int

const (
	// KindTransport covers unreachable providers, timeouts and non-2xx statuses.
	KindTransport ErrorKind = iota + 1
	// KindParse covers responses that could not be interpreted into a price.
	KindParse
	// KindUnexpected covers everything else.
	KindUnexpected
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindParse:
		return "parse"
	default:
		return "unexpected"
	}
}

// FetchError is the error type returned by fetchers.
type FetchError struct {
	Kind   ErrorKind
	Source string // fetcher name
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %s error: %v", e.Source, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func transportErr(source string, err error) error {
	return &FetchError{Kind: KindTransport, Source: source, Err: err}
}

func parseErr(source string, err error) error {
	return &FetchError{Kind: KindParse, Source: source, Err: err}
}

// Classify reports the kind of a fetch error. Errors that did not come from
// a fetcher are unexpected.
func Classify(err error) ErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnexpected
}
