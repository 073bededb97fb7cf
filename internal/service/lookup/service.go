package lookup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/dictproxy/internal/config"
	"github.com/heartmarshall/dictproxy/internal/domain"
	"github.com/heartmarshall/dictproxy/internal/provider"
)

type dictionaryProvider interface {
	Lookup(ctx context.Context, req domain.LookupRequest) (*provider.LookupResult, error)
}

// Service implements the define use case: validate, look up once, shape the result.
type Service struct {
	log           *slog.Logger
	dictProvider  dictionaryProvider
	defaultLang   string
	maxWordLength int
}

// NewService creates a new lookup Service.
func NewService(logger *slog.Logger, dictProvider dictionaryProvider, cfg config.LookupConfig) *Service {
	lang := cfg.DefaultLang
	if lang == "" {
		lang = domain.DefaultLanguage
	}
	return &Service{
		log:           logger.With("service", "lookup"),
		dictProvider:  dictProvider,
		defaultLang:   lang,
		maxWordLength: cfg.MaxWordLength,
	}
}

// Define looks a word up and returns the normalized result.
//
// The result echoes the word as the caller sent it; the provider sees the
// trimmed form. Raw is only populated when req.Raw is set. Provider errors
// are returned wrapped so errors.Is/As still see the domain error types.
func (s *Service) Define(ctx context.Context, req domain.LookupRequest) (*domain.NormalizedResult, error) {
	word := domain.NormalizeWord(req.Word)
	if err := domain.ValidateWord(word, s.maxWordLength); err != nil {
		return nil, err
	}

	lang := req.Language
	if lang == "" {
		lang = s.defaultLang
	}

	result, err := s.dictProvider.Lookup(ctx, domain.LookupRequest{Word: word, Language: lang, Raw: req.Raw})
	if err != nil {
		s.log.WarnContext(ctx, "dictionary provider error",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("lookup %q: %w", word, err)
	}

	definitions := result.Senses
	if definitions == nil {
		definitions = []domain.SenseEntry{}
	}

	out := &domain.NormalizedResult{
		Word:        req.Word,
		Lang:        lang,
		Sign:        result.Form.Sign,
		Definitions: definitions,
		Text:        result.Text,
		Source:      result.Source,
	}
	if req.Raw {
		out.Raw = result.Raw
	}

	s.log.DebugContext(ctx, "word defined",
		slog.String("word", word),
		slog.String("lang", lang),
		slog.Int("senses", len(definitions)),
	)

	return out, nil
}
