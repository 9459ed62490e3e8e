package main

// Build the Lambda handler binary:
//   GOOS=linux GOARCH=arm64 CGO_ENABLED=0 go build -o bootstrap ./cmd/lambda-http

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"

	"idea-feasibility-backend/internal/bootstrap"
	"idea-feasibility-backend/internal/shared/config"
	"idea-feasibility-backend/internal/shared/telemetry"
)

type proxyHandler func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error)

// newHandler builds the router on the first invocation and reuses it for the lifetime
// of the execution environment.
func newHandler(build func() (*gin.Engine, error)) proxyHandler {
	var (
		once      sync.Once
		initErr   error
		ginLambda *ginadapter.GinLambdaV2
	)
	return func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		once.Do(func() {
			router, err := build()
			if err != nil {
				initErr = err
				return
			}
			ginLambda = ginadapter.NewV2(router)
			telemetry.Info("lambda.cold_start", nil)
		})
		if initErr != nil {
			telemetry.Error("lambda.bootstrap_failed", map[string]any{"err": initErr.Error()})
			return errorResponse("bootstrap failed"), initErr
		}
		return ginLambda.ProxyWithContext(ctx, req)
	}
}

func errorResponse(message string) events.APIGatewayV2HTTPResponse {
	body, _ := json.Marshal(map[string]string{"error": message})
	return events.APIGatewayV2HTTPResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       string(body),
		Headers:    map[string]string{"Content-Type": "application/json"},
	}
}

func buildRouter() (*gin.Engine, error) {
	app, err := bootstrap.Build(config.Load())
	if err != nil {
		return nil, err
	}
	return app.Router, nil
}

func main() {
	lambda.Start(newHandler(buildRouter))
}
