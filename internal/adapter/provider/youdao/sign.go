package youdao

import (
	"crypto/md5"
	"encoding/hex"

	"github.com/heartmarshall/dictproxy/internal/domain"
)

const (
	// DefaultKeyFrom is the client suffix the web dictionary signs with.
	DefaultKeyFrom = "webdict"

	formClient = "web"
	formT      = "1"
)

// Sign returns the provider signature for word: the lowercase hex MD5 of the
// trimmed word followed by keyFrom. The provider rejects any other encoding.
func Sign(word, keyFrom string) string {
	sum := md5.Sum([]byte(domain.NormalizeWord(word) + keyFrom))
	return hex.EncodeToString(sum[:])
}

// BuildForm produces the signed form body for a lookup. An empty language
// falls back to domain.DefaultLanguage.
func BuildForm(word, lang, keyFrom string) domain.SignedForm {
	q := domain.NormalizeWord(word)
	return domain.SignedForm{
		Query:    q,
		Language: domain.NormalizeLanguage(lang),
		T:        formT,
		Client:   formClient,
		KeyFrom:  keyFrom,
		Sign:     Sign(q, keyFrom),
	}
}
