// Package lambda serves /define and /healthz behind an API Gateway HTTP API
// (payload format 2.0) Lambda integration.
package lambda

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/heartmarshall/dictproxy/internal/domain"
	"github.com/heartmarshall/dictproxy/internal/transport/rest"
	"github.com/heartmarshall/dictproxy/pkg/ctxutil"
)

type definer interface {
	Define(ctx context.Context, req domain.LookupRequest) (*domain.NormalizedResult, error)
}

// Handler routes API Gateway events to the lookup service.
type Handler struct {
	lookup definer
	warmer *Warmer
	log    *slog.Logger
}

// NewHandler creates a Handler. warmer may be nil, in which case warmup
// events are answered without fan-out.
func NewHandler(lookup definer, warmer *Warmer, logger *slog.Logger) *Handler {
	return &Handler{
		lookup: lookup,
		warmer: warmer,
		log:    logger.With("handler", "lambda"),
	}
}

// Handle is the lambda.Start entrypoint. Warmup pings are detected first;
// everything else is decoded as an HTTP API request.
func (h *Handler) Handle(ctx context.Context, event json.RawMessage) (any, error) {
	if warmup, ok := IsWarmupEvent(event); ok {
		return h.warmer.Warm(ctx, warmup), nil
	}

	var req events.APIGatewayV2HTTPRequest
	if err := json.Unmarshal(event, &req); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}

	return h.HandleHTTP(ctx, req), nil
}

// HandleHTTP serves a single API Gateway HTTP API request.
func (h *Handler) HandleHTTP(ctx context.Context, req events.APIGatewayV2HTTPRequest) events.APIGatewayV2HTTPResponse {
	requestID := req.RequestContext.RequestID
	if requestID != "" {
		ctx = ctxutil.WithRequestID(ctx, requestID)
	}

	method := req.RequestContext.HTTP.Method
	path := req.RawPath
	if path == "" {
		path = req.RequestContext.HTTP.Path
	}

	var resp events.APIGatewayV2HTTPResponse
	switch {
	case path == "/healthz" && isGet(method):
		resp = jsonResponse(http.StatusOK, rest.HealthResponse{OK: true})
	case path == "/define" && isGet(method):
		resp = h.define(ctx, req.QueryStringParameters)
	case path == "/healthz" || path == "/define":
		resp = jsonResponse(http.StatusMethodNotAllowed, rest.ErrorResponse{Detail: "method not allowed"})
	default:
		resp = jsonResponse(http.StatusNotFound, rest.ErrorResponse{Detail: "not found"})
	}

	if requestID != "" {
		resp.Headers["X-Request-Id"] = requestID
	}

	h.log.InfoContext(ctx, "lambda.request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
	)

	return resp
}

func (h *Handler) define(ctx context.Context, query map[string]string) events.APIGatewayV2HTTPResponse {
	req, err := rest.ParseLookupQuery(query["word"], query["lang"], query["raw"])
	if err != nil {
		return jsonResponse(http.StatusBadRequest, rest.ErrorResponse{Detail: err.Error()})
	}

	result, err := h.lookup.Define(ctx, req)
	if err != nil {
		status, detail := rest.ErrorStatus(err)
		if status >= http.StatusInternalServerError {
			h.log.ErrorContext(ctx, "define failed",
				slog.String("word", req.Word),
				slog.Int("status", status),
				slog.String("error", err.Error()),
			)
		}
		return jsonResponse(status, rest.ErrorResponse{Detail: detail})
	}

	return jsonResponse(http.StatusOK, result)
}

func isGet(method string) bool {
	return strings.EqualFold(method, http.MethodGet) || strings.EqualFold(method, http.MethodHead)
}

func jsonResponse(status int, v any) events.APIGatewayV2HTTPResponse {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"detail":"internal server error"}`)
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(body),
	}
}
