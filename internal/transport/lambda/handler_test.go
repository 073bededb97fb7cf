package lambda

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/dictproxy/internal/domain"
)

type definerMock struct {
	DefineFunc func(ctx context.Context, req domain.LookupRequest) (*domain.NormalizedResult, error)
}

func (m *definerMock) Define(ctx context.Context, req domain.LookupRequest) (*domain.NormalizedResult, error) {
	return m.DefineFunc(ctx, req)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func httpEvent(method, path string, query map[string]string) events.APIGatewayV2HTTPRequest {
	req := events.APIGatewayV2HTTPRequest{
		RawPath:               path,
		QueryStringParameters: query,
	}
	req.RequestContext.RequestID = "req-1"
	req.RequestContext.HTTP.Method = method
	req.RequestContext.HTTP.Path = path
	return req
}

func decodeBody(t *testing.T, resp events.APIGatewayV2HTTPResponse) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body), resp.Body)
	return body
}

func TestHandleHTTP_Define(t *testing.T) {
	t.Parallel()

	var got domain.LookupRequest
	h := NewHandler(&definerMock{
		DefineFunc: func(_ context.Context, req domain.LookupRequest) (*domain.NormalizedResult, error) {
			got = req
			return &domain.NormalizedResult{
				Word:        req.Word,
				Lang:        "en",
				Definitions: []domain.SenseEntry{{PartOfSpeech: "n.", Translation: "测试"}},
				Text:        "n.\n测试",
				Source:      "youdao",
			}, nil
		},
	}, nil, testLogger())

	resp := h.HandleHTTP(context.Background(), httpEvent("GET", "/define", map[string]string{"word": "test", "raw": "1"}))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.Equal(t, "req-1", resp.Headers["X-Request-Id"])
	assert.Equal(t, domain.LookupRequest{Word: "test", Raw: true}, got)

	body := decodeBody(t, resp)
	assert.Equal(t, "test", body["word"])
	assert.Equal(t, "n.\n测试", body["text"])
}

func TestHandleHTTP_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      map[string]string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "missing word",
			query:      nil,
			wantStatus: http.StatusBadRequest,
			wantDetail: "validation: word: required",
		},
		{
			name:       "invalid raw",
			query:      map[string]string{"word": "hi", "raw": "maybe"},
			wantStatus: http.StatusBadRequest,
			wantDetail: "validation: raw: must be a boolean",
		},
		{
			name:       "upstream status",
			query:      map[string]string{"word": "hi"},
			err:        &domain.UpstreamStatusError{StatusCode: http.StatusTooManyRequests, Status: "429 Too Many Requests"},
			wantStatus: http.StatusTooManyRequests,
			wantDetail: "upstream status 429 Too Many Requests",
		},
		{
			name:       "upstream transport",
			query:      map[string]string{"word": "hi"},
			err:        domain.NewUpstreamTransportError(errors.New("dial tcp: connection refused")),
			wantStatus: http.StatusBadGateway,
			wantDetail: "upstream error: dial tcp: connection refused",
		},
		{
			name:       "unexpected",
			query:      map[string]string{"word": "hi"},
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHandler(&definerMock{
				DefineFunc: func(context.Context, domain.LookupRequest) (*domain.NormalizedResult, error) {
					return nil, tt.err
				},
			}, nil, testLogger())

			resp := h.HandleHTTP(context.Background(), httpEvent("GET", "/define", tt.query))

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantDetail, decodeBody(t, resp)["detail"])
		})
	}
}

func TestHandleHTTP_Routes(t *testing.T) {
	t.Parallel()

	h := NewHandler(&definerMock{}, nil, testLogger())

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{"GET", "/healthz", http.StatusOK},
		{"get", "/healthz", http.StatusOK},
		{"POST", "/healthz", http.StatusMethodNotAllowed},
		{"DELETE", "/define", http.StatusMethodNotAllowed},
		{"GET", "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		resp := h.HandleHTTP(context.Background(), httpEvent(tt.method, tt.path, nil))
		assert.Equal(t, tt.wantStatus, resp.StatusCode, "%s %s", tt.method, tt.path)
	}

	resp := h.HandleHTTP(context.Background(), httpEvent("GET", "/healthz", nil))
	assert.Equal(t, map[string]any{"ok": true}, decodeBody(t, resp))
}

func TestHandle_DecodesRawEvent(t *testing.T) {
	t.Parallel()

	h := NewHandler(&definerMock{}, nil, testLogger())

	event := json.RawMessage(`{"version":"2.0","rawPath":"/healthz","requestContext":{"requestId":"abc","http":{"method":"GET","path":"/healthz"}}}`)
	out, err := h.Handle(context.Background(), event)
	require.NoError(t, err)

	resp, ok := out.(events.APIGatewayV2HTTPResponse)
	require.True(t, ok, "unexpected response type %T", out)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "abc", resp.Headers["X-Request-Id"])
}

func TestHandle_InvalidEvent(t *testing.T) {
	t.Parallel()

	h := NewHandler(&definerMock{}, nil, testLogger())

	_, err := h.Handle(context.Background(), json.RawMessage(`[1,2]`))
	assert.Error(t, err)
}

func TestHandle_Warmup(t *testing.T) {
	t.Parallel()

	h := NewHandler(&definerMock{}, nil, testLogger())

	out, err := h.Handle(context.Background(), json.RawMessage(`{"source":"warmup"}`))
	require.NoError(t, err)
	assert.Equal(t, WarmupResponse{Status: "warm", InstancesWarmed: 1}, out)
}
