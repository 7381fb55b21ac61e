// Package main is the serverless entry point: the same application the
// HTTP server runs, invoked per request through an API Gateway proxy event.
package main

import (
	"context"
	"log"

	"movie-catalog/internal/wire"
	"movie-catalog/pkg/utils"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

var app *wire.App

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The Lambda filesystem is read-only outside /tmp; log to stdout only
	// and let the platform collect it.
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	// Cold start: clients, repositories, services, and routes are built
	// once and reused across invocations.
	app, err = wire.BuildApp(context.Background(), config, logger)
	if err != nil {
		logger.Fatal("Failed to build application", zap.Error(err))
	}

	lambda.Start(handleRequest)
}

func handleRequest(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return serveEvent(ctx, app.Router, event)
}
