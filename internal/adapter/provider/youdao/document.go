package youdao

import (
	"strconv"
	"strings"

	"github.com/heartmarshall/dictproxy/internal/domain"
)

// translationSeparator joins fallback translation fragments (U+FF1B).
const translationSeparator = "；"

// ExtractSenses pulls the basic sense list out of a decoded jsonapi_s document.
//
// Every step is a guarded lookup; anything unexpected yields fewer senses,
// never an error.
// The returned slice is never nil.
func ExtractSenses(doc any) []domain.SenseEntry {
	senses := []domain.SenseEntry{}

	entry, ok := wordEntry(doc)
	if !ok {
		return senses
	}
	items, ok := array(entry["trs"])
	if !ok {
		return senses
	}

	for _, it := range items {
		item, ok := object(it)
		if !ok {
			continue
		}

		pos := trimmedString(item["pos"])
		tran := trimmedString(item["tran"])
		if tran == "" {
			tran = fallbackTranslation(item["tr"])
		}
		if tran == "" {
			continue
		}

		senses = append(senses, domain.SenseEntry{PartOfSpeech: pos, Translation: tran})
	}

	return senses
}

// RenderText flattens senses into "pos\ntran" blocks joined by newlines.
// Senses without a part of speech render as the translation alone.
func RenderText(senses []domain.SenseEntry) string {
	parts := make([]string, 0, len(senses))
	for _, s := range senses {
		if s.PartOfSpeech != "" {
			parts = append(parts, s.PartOfSpeech+"\n"+s.Translation)
			continue
		}
		parts = append(parts, s.Translation)
	}
	return strings.Join(parts, "\n")
}

// wordEntry resolves doc.ec.word, which is either an object or a list whose
// first element is the entry.
func wordEntry(doc any) (map[string]any, bool) {
	root, ok := object(doc)
	if !ok {
		return nil, false
	}
	ec, ok := object(root["ec"])
	if !ok {
		return nil, false
	}

	switch w := ec["word"].(type) {
	case map[string]any:
		return w, true
	case []any:
		if len(w) == 0 {
			return nil, false
		}
		return object(w[0])
	default:
		return nil, false
	}
}

// fallbackTranslation collects tr[].l.i leaves and tr[].tran siblings for
// senses whose primary tran is empty.
func fallbackTranslation(v any) string {
	trs, ok := array(v)
	if !ok {
		return ""
	}

	var texts []string
	for _, t := range trs {
		tr, ok := object(t)
		if !ok {
			continue
		}

		if l, ok := object(tr["l"]); ok {
			switch i := l["i"].(type) {
			case []any:
				for _, leaf := range i {
					if s := strings.TrimSpace(leafText(leaf)); s != "" {
						texts = append(texts, s)
					}
				}
			case string:
				if s := strings.TrimSpace(i); s != "" {
					texts = append(texts, s)
				}
			}
		}

		if s := trimmedString(tr["tran"]); s != "" {
			texts = append(texts, s)
		}
	}

	return strings.Join(texts, translationSeparator)
}

func object(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func array(v any) ([]any, bool) {
	a, ok := v.([]any)
	return a, ok
}

// trimmedString returns the trimmed value when v is a string, "" otherwise.
func trimmedString(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// leafText renders a scalar list item as text. Nested containers and nulls
// carry no readable translation and render empty.
func leafText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}
