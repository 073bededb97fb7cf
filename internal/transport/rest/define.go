package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/dictproxy/internal/domain"
)

type definer interface {
	Define(ctx context.Context, req domain.LookupRequest) (*domain.NormalizedResult, error)
}

// DefineHandler serves word lookups.
type DefineHandler struct {
	lookup definer
	log    *slog.Logger
}

// NewDefineHandler creates a DefineHandler.
func NewDefineHandler(lookup definer, logger *slog.Logger) *DefineHandler {
	return &DefineHandler{
		lookup: lookup,
		log:    logger.With("handler", "define"),
	}
}

// Define looks a word up and returns the normalized result.
// GET /define?word=hello&lang=en&raw=false
func (h *DefineHandler) Define(w http.ResponseWriter, r *http.Request) {
	req, err := ParseLookupQuery(r.URL.Query().Get("word"), r.URL.Query().Get("lang"), r.URL.Query().Get("raw"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.lookup.Define(r.Context(), req)
	if err != nil {
		status, detail := ErrorStatus(err)
		if status >= http.StatusInternalServerError {
			h.log.ErrorContext(r.Context(), "define failed",
				slog.String("word", req.Word),
				slog.Int("status", status),
				slog.String("error", err.Error()),
			)
		}
		writeError(w, status, detail)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ParseLookupQuery builds a LookupRequest from raw query values. Only the
// presence of word and the syntax of raw are checked here; the lookup
// service owns the remaining validation.
func ParseLookupQuery(word, lang, raw string) (domain.LookupRequest, error) {
	req := domain.LookupRequest{Word: word, Language: lang}

	if domain.NormalizeWord(word) == "" {
		return req, domain.NewValidationError("word", "required")
	}

	if raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return req, domain.NewValidationError("raw", "must be a boolean")
		}
		req.Raw = b
	}

	return req, nil
}
