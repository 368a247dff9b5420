package env

import (
	"fmt"
	"os"

	"github.com/klwxsrx/ticketgate/pkg/strings"
)

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("parse environment: %w", err))
	}
	return val
}

func Parse[T strings.SupportedValueParsingTypes](key string) (T, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		var blank T
		return blank, fmt.Errorf("env %s with type %T not found", key, blank)
	}

	return parse[T](key, str)
}

func ParseOptional[T strings.SupportedValueParsingTypes](key string) (*T, error) {
	str, ok := os.LookupEnv(key)
	if !ok || str == "" {
		return nil, nil
	}

	v, err := parse[T](key, str)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func ParseWithDefault[T strings.SupportedValueParsingTypes](key string, defaultValue T) (T, error) {
	v, err := ParseOptional[T](key)
	if err != nil {
		return defaultValue, err
	}
	if v == nil {
		return defaultValue, nil
	}

	return *v, nil
}

func parse[T strings.SupportedValueParsingTypes](key, str string) (T, error) {
	v, err := strings.ParseTypedValue[T](str)
	if err != nil {
		return v, fmt.Errorf("env %s with type %T has invalid value: %w", key, v, err)
	}

	return v, nil
}
