package models

// ValidationRequest represents an address validation request.
// It binds from a JSON body (POST) or from query parameters (GET).
type ValidationRequest struct {
	// Opaque tracking token threaded through the request lifecycle
	CorrelationID string `json:"correlationId" form:"correlationId" binding:"required"`
	// Primary street line
	Street string `json:"street,omitempty" form:"street"`
	// Secondary line (apartment/suite/unit)
	Street2 string `json:"street2,omitempty" form:"street2"`
	City    string `json:"city,omitempty" form:"city"`
	State   string `json:"state,omitempty" form:"state"`
	Zipcode string `json:"zipcode,omitempty" form:"zipcode"`
	// Intended recipient
	Addressee string `json:"addressee,omitempty" form:"addressee"`
	// Desired number of candidate matches, 1-10; zero means provider default
	Candidates int `json:"candidates,omitempty" form:"candidates"`
	// Match mode: strict, range or invalid
	Match string `json:"match,omitempty" form:"match"`
	// Output formatting hint, passed through verbatim
	Format string `json:"format,omitempty" form:"format"`
}

// ValidationResult is the normalized verdict for one validation request
type ValidationResult struct {
	// Address exists in the provider's reference data
	Validated bool `json:"validated"`
	// Address can receive mail per the provider's delivery-point signals.
	// Deliverable implies validated, never the reverse.
	Deliverable bool `json:"deliverable"`
	// Best candidate in provider order
	Address *SmartyCandidate `json:"address,omitempty"`
	// Remaining candidates, provider order preserved
	Suggestions []SmartyCandidate `json:"suggestions,omitempty"`
	// Human-readable explanations, in rule-evaluation order
	ValidationNotes []string `json:"validation_notes,omitempty"`
}

// ValidationResponse is the envelope returned to callers
type ValidationResponse struct {
	Success       bool              `json:"success"`
	CorrelationID string            `json:"correlationId"`
	Data          *ValidationResult `json:"data,omitempty"`
	Error         string            `json:"error,omitempty"`
}

// ErrorResponse represents an error response at the transport boundary
type ErrorResponse struct {
	Error string `json:"error"`
}
