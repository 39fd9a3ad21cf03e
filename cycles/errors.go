package cycles

import "errors"

// ErrInvalidParameter indicates an out-of-contract (length, order, sigma) triple.
// Usage: if errors.Is(err, ErrInvalidParameter) { /* reject input */ }.
var ErrInvalidParameter = errors.New("cycles: invalid parameter")

// ErrTooLarge indicates σ^order does not fit the platform int.
var ErrTooLarge = errors.New("cycles: parameters too large")

// Method tags used as error prefixes.
const (
	methodEnumFixed     = "EnumFixedLength"
	methodEnumBounded   = "EnumBoundedLength"
	methodEnumAll       = "EnumAll"
	methodCountOnlyEnum = "CountOnlyEnum"
	methodCountFormula  = "CountWithFormula"
)
