package lambda

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"golang.org/x/sync/errgroup"
)

const (
	// WarmupSource marks scheduled keep-warm events.
	WarmupSource = "warmup"

	// WarmupDelay keeps this instance busy long enough for the fan-out
	// invocations to land on other instances.
	WarmupDelay = 75 * time.Millisecond

	maxWarmupConcurrency = 50
)

// WarmupEvent is the scheduled event payload.
type WarmupEvent struct {
	Source      string `json:"source"`
	Concurrency int    `json:"concurrency"`
}

// WarmupResponse is returned for warmup events.
type WarmupResponse struct {
	Status          string `json:"status"`
	InstancesWarmed int    `json:"instancesWarmed"`
}

// IsWarmupEvent reports whether event is a keep-warm ping.
func IsWarmupEvent(event json.RawMessage) (*WarmupEvent, bool) {
	var fields map[string]any
	if err := json.Unmarshal(event, &fields); err != nil {
		return nil, false
	}

	source, ok := fields["source"].(string)
	if !ok || source != WarmupSource {
		return nil, false
	}

	warmup := &WarmupEvent{Source: source}
	if n, ok := fields["concurrency"].(float64); ok && n > 0 {
		warmup.Concurrency = min(int(n), maxWarmupConcurrency)
	}

	return warmup, true
}

// Invoker is the subset of the Lambda API client used for fan-out.
type Invoker interface {
	Invoke(ctx context.Context, params *lambdasdk.InvokeInput, optFns ...func(*lambdasdk.Options)) (*lambdasdk.InvokeOutput, error)
}

// Warmer answers warmup events and optionally invokes the function
// asynchronously to keep additional instances warm.
type Warmer struct {
	invoker      Invoker
	functionName string
	delay        time.Duration
	log          *slog.Logger
}

// NewWarmer creates a Warmer. A nil invoker disables fan-out.
func NewWarmer(invoker Invoker, functionName string, logger *slog.Logger) *Warmer {
	return &Warmer{
		invoker:      invoker,
		functionName: functionName,
		delay:        WarmupDelay,
		log:          logger.With("component", "warmer"),
	}
}

// NewInvoker builds a Lambda API client from the default AWS credential chain.
func NewInvoker(ctx context.Context) (*lambdasdk.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return lambdasdk.NewFromConfig(cfg), nil
}

// Warm handles a warmup event. It is safe to call on a nil Warmer.
func (w *Warmer) Warm(ctx context.Context, event *WarmupEvent) WarmupResponse {
	warmed := 1
	if w == nil {
		return WarmupResponse{Status: "warm", InstancesWarmed: warmed}
	}

	if event.Concurrency > 0 && w.invoker != nil && w.functionName != "" {
		if err := w.fanOut(ctx, event.Concurrency); err != nil {
			w.log.WarnContext(ctx, "warmup fan-out failed", slog.String("error", err.Error()))
		} else {
			warmed += event.Concurrency
		}
	}

	if w.delay > 0 {
		select {
		case <-time.After(w.delay):
		case <-ctx.Done():
		}
	}

	return WarmupResponse{Status: "warm", InstancesWarmed: warmed}
}

func (w *Warmer) fanOut(ctx context.Context, count int) error {
	// Child events carry zero concurrency so they never fan out again.
	payload, err := json.Marshal(WarmupEvent{Source: WarmupSource})
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	for range count {
		g.Go(func() error {
			_, err := w.invoker.Invoke(gctx, &lambdasdk.InvokeInput{
				FunctionName:   aws.String(w.functionName),
				InvocationType: types.InvocationTypeEvent,
				Payload:        payload,
			})
			return err
		})
	}

	return g.Wait()
}
