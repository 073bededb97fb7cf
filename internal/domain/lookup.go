package domain

import (
	"encoding/json"
	"net/url"
)

// DefaultLanguage is used when a lookup does not name a language.
const DefaultLanguage = "en"

// LookupRequest is a single word lookup as received from a caller.
type LookupRequest struct {
	Word     string
	Language string
	// Raw asks for the provider's untouched document to be echoed back.
	Raw bool
}

// SignedForm is the form body sent to the provider. It is derived
// deterministically from a LookupRequest.
type SignedForm struct {
	Query    string
	Language string
	T        string
	Client   string
	KeyFrom  string
	Sign     string
}

// Values renders the form using the provider's field names.
func (f SignedForm) Values() url.Values {
	return url.Values{
		"q":       {f.Query},
		"le":      {f.Language},
		"t":       {f.T},
		"client":  {f.Client},
		"keyfrom": {f.KeyFrom},
		"sign":    {f.Sign},
	}
}

// SenseEntry is one part-of-speech/translation pairing for a word.
type SenseEntry struct {
	PartOfSpeech string `json:"pos,omitempty"`
	Translation  string `json:"tran"`
}

// NormalizedResult is the response payload of a lookup.
type NormalizedResult struct {
	Word        string          `json:"word"`
	Lang        string          `json:"lang"`
	Sign        string          `json:"sign"`
	Definitions []SenseEntry    `json:"definitions"`
	Text        string          `json:"text"`
	Source      string          `json:"source"`
	Raw         json.RawMessage `json:"raw,omitempty"`
}
