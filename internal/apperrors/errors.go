package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidAmount indicates a non-positive conversion amount. It is also an ErrValidation.
var ErrInvalidAmount = NewValidationError("Amount must be greater than 0")

// ErrAmountOutOfRange indicates an amount with too many integer or fractional digits. It is also an ErrValidation.
var ErrAmountOutOfRange = NewValidationError("Amount is out of the supported range")

// ErrFutureDate indicates a date based lookup for a day after today. It is also an ErrValidation.
var ErrFutureDate = NewValidationError("Transaction date cannot be in the future")

// ErrMissingRate indicates the provider answered successfully but did not quote the requested pair.
var ErrMissingRate = errors.New("exchange rate missing from provider quotes")

// ErrTransport indicates the rate provider could not be reached or answered with an unexpected shape.
var ErrTransport = errors.New("rate provider transport error")

// ErrPersistence indicates the transaction store failed to read or write.
var ErrPersistence = errors.New("persistence error")

// AppError carries an HTTP-ish status code and a message together with the
// sentinel kind and the underlying cause.
type AppError struct {
	Code    int
	Message string
	Kind    error
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is / errors.As.
func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// MessageOf returns the client-facing message of err: the Message of the
// outermost AppError, or err.Error() when there is none.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// NewAppError creates a generic application error with the given status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an error matching ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Kind: ErrNotFound}
}

// NewValidationError creates an error matching ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Kind: ErrValidation}
}

// NewPersistenceError creates an error matching ErrPersistence.
func NewPersistenceError(message string, err error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message, Kind: ErrPersistence, Err: err}
}

// NewTransportError creates an error matching ErrTransport.
func NewTransportError(message string, err error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message, Kind: ErrTransport, Err: err}
}

// ProviderError is returned when the rate provider responded but reported a failure.
type ProviderError struct {
	Code int
	Info string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("CurrencyLayer API error %d: %s", e.Code, e.Info)
}

// Provider error codes that are caused by the caller's input.
const (
	ProviderCodeInvalidSourceCurrency = 201
	ProviderCodeInvalidTargetCurrency = 202
)
