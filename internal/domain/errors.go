package domain

import "errors"

// failure kinds returned by the calculators. callers match them with
// errors.Is; the wrapped message carries the ticker or date involved
var (
	ErrMissingTicker     = errors.New("missing ticker")
	ErrNoPriceBeforeDate = errors.New("no price before date")
	ErrInvalidTotalValue = errors.New("invalid total value")
	ErrDivisionByZero    = errors.New("division by zero")
)

// ErrInvalidInput marks a malformed request, as opposed to a request the
// calculators could not satisfy
var ErrInvalidInput = errors.New("invalid input")

// FailureKind names the failure for API responses. Empty when err is
// not one of the calculator failures
func FailureKind(err error) string {
	switch {
	case errors.Is(err, ErrMissingTicker):
		return "MissingTicker"
	case errors.Is(err, ErrNoPriceBeforeDate):
		return "NoPriceBeforeDate"
	case errors.Is(err, ErrInvalidTotalValue):
		return "InvalidTotalValue"
	case errors.Is(err, ErrDivisionByZero):
		return "DivisionByZero"
	}
	return ""
}
