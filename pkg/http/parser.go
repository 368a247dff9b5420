package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/klwxsrx/ticketgate/pkg/strings"
)

type DataExtractor[T any] func(*http.Request) (T, error)

var ErrParsingError = errors.New("parsing error")

func ParseRequest[T any](r *http.Request, extractor DataExtractor[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	return extractor(r)
}

func CookieValue[T strings.SupportedValueParsingTypes](name string) DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		cookie, err := r.Cookie(name)
		if err != nil || cookie.Value == "" {
			var result T
			return result, fmt.Errorf("%w: cookie with name %s not found", ErrParsingError, name)
		}

		return parseTypedValueImpl[T](cookie.Value)
	}
}

func parseTypedValueImpl[T strings.SupportedValueParsingTypes](value string) (T, error) {
	v, err := strings.ParseTypedValue[T](value)
	if err == nil {
		return v, nil
	}

	return v, fmt.Errorf("%w: %w", ErrParsingError, err)
}
