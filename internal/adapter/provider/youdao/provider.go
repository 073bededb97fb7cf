package youdao

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/heartmarshall/dictproxy/internal/config"
	"github.com/heartmarshall/dictproxy/internal/domain"
	"github.com/heartmarshall/dictproxy/internal/httpclient"
	"github.com/heartmarshall/dictproxy/internal/provider"
)

// Provider looks words up through the Youdao web dictionary's jsonapi_s endpoint.
type Provider struct {
	endpoint   string
	keyFrom    string
	header     http.Header
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from cfg. The HTTP client ignores ambient
// proxy settings, dials over IPv4 and times out after cfg.Timeout.
func NewProvider(cfg config.ProviderConfig, logger *slog.Logger) *Provider {
	return NewProviderWithClient(cfg, httpclient.NewClient(cfg.Timeout), logger)
}

// NewProviderWithClient creates a Provider with a caller-supplied client (for testing).
func NewProviderWithClient(cfg config.ProviderConfig, client *http.Client, logger *slog.Logger) *Provider {
	header := make(http.Header)
	header.Set("Accept", cfg.Accept)
	header.Set("Accept-Language", cfg.AcceptLanguage)
	header.Set("Origin", cfg.Origin)
	header.Set("Referer", cfg.Referer)
	header.Set("User-Agent", cfg.UserAgent)
	header.Set("Content-Type", "application/x-www-form-urlencoded")

	return &Provider{
		endpoint:   cfg.BaseURL,
		keyFrom:    cfg.KeyFrom,
		header:     header,
		httpClient: client,
		log:        logger.With("adapter", "youdao"),
	}
}

// Lookup signs the request, performs exactly one POST and normalizes the response.
//
// A 4xx/5xx answer is returned as *domain.UpstreamStatusError. Network failures
// and bodies that are not JSON are returned as *domain.UpstreamTransportError.
// A JSON body of an unexpected shape is not an error: it yields no senses.
func (p *Provider) Lookup(ctx context.Context, req domain.LookupRequest) (*provider.LookupResult, error) {
	form := BuildForm(req.Word, req.Language, p.keyFrom)

	reqURL, err := p.requestURL()
	if err != nil {
		return nil, fmt.Errorf("youdao: build url: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(form.Values().Encode()))
	if err != nil {
		return nil, fmt.Errorf("youdao: create request: %w", err)
	}
	httpReq.Header = p.header.Clone()

	p.log.DebugContext(ctx, "youdao request",
		slog.String("word", form.Query),
		slog.String("lang", form.Language),
	)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		p.log.ErrorContext(ctx, "youdao request failed", slog.String("word", form.Query), slog.String("error", err.Error()))
		return nil, fmt.Errorf("youdao: %w", domain.NewUpstreamTransportError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		p.log.WarnContext(ctx, "youdao unexpected status",
			slog.String("word", form.Query),
			slog.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("youdao: %w", &domain.UpstreamStatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        reqURL,
		})
	}

	body, err := httpclient.ReadBody(resp)
	if err != nil {
		return nil, fmt.Errorf("youdao: %w", domain.NewUpstreamTransportError(err))
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("youdao: %w", domain.NewUpstreamTransportError(fmt.Errorf("decode json: %w", err)))
	}

	senses := ExtractSenses(doc)

	p.log.DebugContext(ctx, "youdao response",
		slog.String("word", form.Query),
		slog.Int("status", resp.StatusCode),
		slog.Int("senses", len(senses)),
	)

	return &provider.LookupResult{
		Form:   form,
		Senses: senses,
		Text:   RenderText(senses),
		Source: p.endpoint,
		Raw:    json.RawMessage(body),
	}, nil
}

// requestURL appends the fixed doctype/jsonversion parameters to the endpoint.
func (p *Provider) requestURL() (string, error) {
	u, err := url.Parse(p.endpoint)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("doctype", "json")
	q.Set("jsonversion", "4")
	u.RawQuery = q.Encode()
	return u.String(), nil
}
