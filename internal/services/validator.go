package services

import (
	"fmt"

	"github.com/prefeitura-rio/app-address/internal/models"
)

// Field length limits imposed by the Smarty US Street Address API
const (
	maxStreetLength    = 100
	maxStreet2Length   = 100
	maxCityLength      = 64
	maxStateLength     = 32
	maxZipcodeLength   = 10
	maxAddresseeLength = 64

	minCandidates = 1
	maxCandidates = 10
)

// ValidateAddressInput checks structural constraints on a validation request
// before any network call. Every violated rule produces its own note; an
// empty slice means the request is valid. Pure function, no side effects.
func ValidateAddressInput(req *models.ValidationRequest) []string {
	var errors []string

	// At least one address component is needed to query the provider
	if req.Street == "" && req.City == "" && req.State == "" && req.Zipcode == "" {
		errors = append(errors, "At least one of street, city, state, or zipcode must be provided")
	}

	if len(req.Street) > maxStreetLength {
		errors = append(errors, lengthError("Street", maxStreetLength))
	}
	if len(req.Street2) > maxStreet2Length {
		errors = append(errors, lengthError("Street2", maxStreet2Length))
	}
	if len(req.City) > maxCityLength {
		errors = append(errors, lengthError("City", maxCityLength))
	}
	if len(req.State) > maxStateLength {
		errors = append(errors, lengthError("State", maxStateLength))
	}
	if len(req.Zipcode) > maxZipcodeLength {
		errors = append(errors, lengthError("Zipcode", maxZipcodeLength))
	}
	if len(req.Addressee) > maxAddresseeLength {
		errors = append(errors, lengthError("Addressee", maxAddresseeLength))
	}

	// Zero means the caller did not ask for a specific candidate count
	if req.Candidates != 0 && (req.Candidates < minCandidates || req.Candidates > maxCandidates) {
		errors = append(errors, "Candidates must be between 1 and 10")
	}

	if req.Match != "" && req.Match != "strict" && req.Match != "range" && req.Match != "invalid" {
		errors = append(errors, "Match parameter must be one of: strict, range, invalid")
	}

	return errors
}

func lengthError(field string, max int) string {
	return fmt.Sprintf("%s field exceeds maximum length of %d characters", field, max)
}
