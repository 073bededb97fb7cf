// Command lambda runs dictproxy as an AWS Lambda function behind an
// API Gateway HTTP API.
//
// Configuration comes from the environment (and CONFIG_PATH, if set), the
// same as the HTTP server. Scheduled events of the form
// {"source":"warmup","concurrency":N} keep N extra instances warm.
package main

import (
	"context"
	"log/slog"
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"github.com/heartmarshall/dictproxy/internal/app"
	"github.com/heartmarshall/dictproxy/internal/config"
	"github.com/heartmarshall/dictproxy/internal/transport/lambda"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting lambda", slog.String("version", app.BuildVersion()))

	var warmer *lambda.Warmer
	if fn := os.Getenv("AWS_LAMBDA_FUNCTION_NAME"); fn != "" {
		invoker, err := lambda.NewInvoker(context.Background())
		if err != nil {
			logger.Warn("warmup fan-out disabled", slog.String("error", err.Error()))
			warmer = lambda.NewWarmer(nil, fn, logger)
		} else {
			warmer = lambda.NewWarmer(invoker, fn, logger)
		}
	}

	h := lambda.NewHandler(app.NewLookupService(cfg, logger), warmer, logger)
	awslambda.Start(h.Handle)
}
