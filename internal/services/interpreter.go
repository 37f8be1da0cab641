package services

import (
	"strings"

	"github.com/prefeitura-rio/app-address/internal/models"
)

// InterpretCandidates maps the provider's candidate list onto a normalized
// validation verdict. The first candidate in provider order is the primary
// address; the rest become suggestions with their order preserved. The
// interpreter never errors: unexpected payload shapes (missing analysis or
// metadata) degrade to a not-validated verdict.
func InterpretCandidates(candidates []models.SmartyCandidate) *models.ValidationResult {
	if len(candidates) == 0 {
		return &models.ValidationResult{
			Validated:       false,
			Deliverable:     false,
			ValidationNotes: []string{models.ErrNoAddressesFound.Error()},
		}
	}

	best := candidates[0]
	validated, deliverable, notes := interpretCandidate(&best)

	result := &models.ValidationResult{
		Validated:       validated,
		Deliverable:     deliverable,
		Address:         &best,
		ValidationNotes: notes,
	}

	if len(candidates) > 1 {
		result.Suggestions = candidates[1:]
	}

	return result
}

// interpretCandidate classifies a single candidate using the provider's
// match signals. enhanced_match is the primary indicator; dpv_match_code is
// the fallback when it is absent.
func interpretCandidate(candidate *models.SmartyCandidate) (validated, deliverable bool, notes []string) {
	notes = []string{}

	var enhancedMatch, dpvFootnotes, dpvMatchCode string
	if candidate.Analysis != nil {
		enhancedMatch = candidate.Analysis.EnhancedMatch
		dpvFootnotes = candidate.Analysis.DPVFootnotes
		dpvMatchCode = candidate.Analysis.DPVMatchCode
	}

	if enhancedMatch != "" {
		if hasMatchTag(enhancedMatch, "postal-match") {
			validated = true
			notes = append(notes, "Address found in USPS database")

			if hasMatchTag(enhancedMatch, "missing-secondary") {
				if strings.Contains(dpvFootnotes, "N1") {
					notes = append(notes, "Secondary information (apartment/suite) is required for delivery")
				} else {
					notes = append(notes, "Secondary information is available but not required")
				}
			}

			if hasMatchTag(enhancedMatch, "unknown-secondary") {
				if strings.Contains(dpvFootnotes, "C1") {
					notes = append(notes, "Secondary information provided but not recognized - correction needed")
				} else if strings.Contains(dpvFootnotes, "CC") {
					notes = append(notes, "Secondary information provided but not needed for delivery")
				}
			}

			if isDeliverable(candidate.Analysis) {
				deliverable = true
				notes = append(notes, "Address is deliverable by USPS")
			} else {
				notes = append(notes, "Address may not be deliverable by USPS")
			}
		} else if hasMatchTag(enhancedMatch, "non-postal-match") {
			validated = true
			notes = append(notes, "Address found in Smarty proprietary data (non-USPS)")

			// Non-USPS addresses are never deliverable by USPS
			if hasMatchTag(enhancedMatch, "missing-secondary") {
				notes = append(notes, "Secondary information might be needed for delivery")
			}
			if hasMatchTag(enhancedMatch, "unknown-secondary") {
				notes = append(notes, "Secondary information provided but not recognized")
			}
		}
		// Any other enhanced_match value falls through with no note and
		// validated/deliverable left false, pending clarification from the
		// domain owner.
	} else {
		switch dpvMatchCode {
		case "Y":
			validated = true
			notes = append(notes, "Address validated using DPV match code")

			if isDeliverable(candidate.Analysis) {
				deliverable = true
				notes = append(notes, "Address is deliverable by USPS")
			} else {
				notes = append(notes, "Address may not be deliverable by USPS")
			}

			if strings.Contains(dpvFootnotes, "N1") {
				notes = append(notes, "Secondary information (apartment/suite) is required for delivery")
			} else if strings.Contains(dpvFootnotes, "C1") {
				notes = append(notes, "Secondary information provided but not recognized - correction needed")
			} else if strings.Contains(dpvFootnotes, "CC") {
				notes = append(notes, "Secondary information provided but not needed for delivery")
			}
		case "N":
			validated = false
			notes = append(notes, "Address not found in USPS database (DPV match code: N)")
		case "S":
			validated = true
			notes = append(notes, "Address validated (DPV match code: S - Secondary information missing)")
			notes = append(notes, "Secondary information might be needed for delivery")
		case "D":
			validated = true
			notes = append(notes, "Address validated (DPV match code: D - Secondary information missing)")
			notes = append(notes, "Secondary information might be needed for delivery")
		default:
			// The provider returned an address without clear validation
			// flags; assume it is valid rather than erroring.
			validated = true
			notes = append(notes, "Address appears to be valid based on returned data")

			if candidate.Analysis != nil &&
				candidate.Analysis.DPVVacant == "N" &&
				candidate.Analysis.DPVNoStat == "N" {
				deliverable = true
				notes = append(notes, "Address appears to be deliverable")
			} else {
				notes = append(notes, "Deliverability cannot be determined")
			}
		}
	}

	// PO Boxes are served exclusively by USPS
	if candidate.Metadata != nil && candidate.Metadata.RecordType == "P" {
		notes = append(notes, "PO Box address - not deliverable by FedEx, UPS, or other non-USPS carriers")
	}

	return validated, deliverable, notes
}

// isDeliverable reports whether the delivery-point signals allow USPS
// delivery: not vacant, not no-stat, and no R7 (phantom route) footnote
func isDeliverable(analysis *models.SmartyAnalysis) bool {
	if analysis == nil {
		return false
	}
	return analysis.DPVVacant == "N" &&
		analysis.DPVNoStat == "N" &&
		!strings.Contains(analysis.DPVFootnotes, "R7")
}

// hasMatchTag checks for an exact tag within the comma-separated
// enhanced_match value. Substring matching would conflate postal-match with
// non-postal-match.
func hasMatchTag(enhancedMatch, tag string) bool {
	for _, part := range strings.Split(enhancedMatch, ",") {
		if strings.TrimSpace(part) == tag {
			return true
		}
	}
	return false
}
