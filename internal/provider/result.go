package provider

import (
	"encoding/json"

	"github.com/heartmarshall/dictproxy/internal/domain"
)

// LookupResult is the structured result from a dictionary API provider.
type LookupResult struct {
	// Form is the signed form that was sent upstream.
	Form domain.SignedForm
	// Senses is the normalized sense list, in provider order.
	Senses []domain.SenseEntry
	// Text is the flattened, human-readable rendering of Senses.
	Text string
	// Source identifies the upstream endpoint.
	Source string
	// Raw is the provider's response body, untouched.
	Raw json.RawMessage
}
