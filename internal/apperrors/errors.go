package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrHoldingNotFound indicates that a holding with the given ID does not exist.
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrSettingNotFound indicates that a settings key has never been stored.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrAPIKeyNotConfigured indicates the market-data API key has not been set up.
	ErrAPIKeyNotConfigured = errors.New("market data API key not configured")
)

// Data availability errors are soft signals, not hard failures. Callers
// recover locally (fall back to synthetic data or skip the symbol) and must
// never surface these to the end user as errors.
var (
	// ErrDataUnavailable indicates the provider could not obtain live data
	// for a symbol.
	ErrDataUnavailable = errors.New("market data unavailable")

	// ErrRateLimitExceeded indicates the provider's call budget is exhausted.
	// Throttled locally; fetches should prefer synthetic data instead of
	// attempting a live call that will fail.
	ErrRateLimitExceeded = errors.New("market data rate limit exceeded")
)

// Domain errors represent numeric preconditions of the projection engine.
// They are caught at the estimator/valuator boundary and turned into an
// undefined result, never allowed to escape as a raw numeric fault.
var (
	// ErrNonPositivePrice indicates a zero or negative price reached a
	// logarithm. The estimator fails fast rather than emitting NaN.
	ErrNonPositivePrice = errors.New("non-positive price in series")

	// ErrNegativeValue indicates a negative portfolio value was passed to
	// the projection generator.
	ErrNegativeValue = errors.New("projection value cannot be negative")

	// ErrNegativeHorizon indicates a negative projection horizon.
	ErrNegativeHorizon = errors.New("projection horizon cannot be negative")
)

// Business logic errors represent validation failures or constraint
// violations. These propagate to the caller for user correction.
var (
	// ErrNegativeUnits indicates a holding with a negative unit count.
	ErrNegativeUnits = errors.New("units cannot be negative")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrInvalidSymbol indicates a missing or malformed ticker symbol.
	ErrInvalidSymbol = errors.New("symbol is required")

	// ErrInvalidDate indicates an unparseable date parameter.
	ErrInvalidDate = errors.New("invalid date")
)

// Operation failure errors represent system-level failures when retrieving
// or processing data.
var (
	ErrFailedToRetrieveHoldings = errors.New("failed to retrieve holdings")
	ErrFailedToGetSummary       = errors.New("failed to get portfolio summary")
	ErrFailedToGetHistory       = errors.New("failed to get portfolio history")
)
