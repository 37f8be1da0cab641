package models

import "errors"

// Error constants for address validation operations
var (
	ErrCredentialsNotConfigured = errors.New("Smarty authentication credentials not configured")
	ErrValidationFailed         = errors.New("Validation failed")
	ErrNoAddressesFound         = errors.New("No matching addresses found")
)
