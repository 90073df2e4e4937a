// Package error defines domain-specific errors for the ProfitPulse application.
package error

import "errors"

// Integration domain errors.
var (
	// ErrMissingShopDomain is returned when a Shopify connect request has no shop domain.
	ErrMissingShopDomain = errors.New("shop domain is required")

	// ErrInvalidOAuthState is returned when an OAuth callback carries an unknown
	// or expired state token.
	ErrInvalidOAuthState = errors.New("invalid or expired oauth state token")

	// ErrInvalidHMAC is returned when the callback signature does not match.
	ErrInvalidHMAC = errors.New("callback hmac verification failed")

	// ErrUnknownProvider is returned for an unrecognized integration provider.
	ErrUnknownProvider = errors.New("unknown integration provider")

	// ErrIntegrationNotFound is returned when an integration does not exist.
	ErrIntegrationNotFound = errors.New("integration not found")
)

// IntegrationErrorCode defines error codes for integration errors.
// Format: INT-XXYYYY where XX is category and YYYY is specific error.
type IntegrationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingShopDomain IntegrationErrorCode = "INT-010001"
	ErrCodeUnknownProvider   IntegrationErrorCode = "INT-010002"

	// OAuth errors (02XXXX)
	ErrCodeInvalidOAuthState IntegrationErrorCode = "INT-020001"
	ErrCodeInvalidHMAC       IntegrationErrorCode = "INT-020002"
	ErrCodeTokenExchange     IntegrationErrorCode = "INT-020003"

	// Resource errors (03XXXX)
	ErrCodeIntegrationNotFound IntegrationErrorCode = "INT-030001"
)

// IntegrationError represents an integration error with code and message.
type IntegrationError struct {
	Code    IntegrationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *IntegrationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *IntegrationError) Unwrap() error {
	return e.Err
}

// NewIntegrationError creates a new IntegrationError with the given code and message.
func NewIntegrationError(code IntegrationErrorCode, message string, err error) *IntegrationError {
	return &IntegrationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
