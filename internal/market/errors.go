package market

import (
	"errors"
	"fmt"
)

// ErrNoPriceListed means the market answered successfully but carries no
// tradable price for the name. Not retried within an attempt stage.
var ErrNoPriceListed = errors.New("no price listed")

// ErrAPIUnsuccessful means the market answered 200 with success=false.
var ErrAPIUnsuccessful = errors.New("market api unsuccessful")

// TransportError covers network failures, non-200 statuses and malformed
// payloads. Retried up to the configured budget.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func errorTypeLabel(err error) string {
	if err == nil {
		return "unknown"
	}
	if errors.Is(err, ErrAPIUnsuccessful) {
		return "api_unsuccessful"
	}
	if errors.Is(err, ErrNoPriceListed) {
		return "no_price"
	}
	var transport *TransportError
	if errors.As(err, &transport) {
		return transport.Op
	}
	return "other"
}
