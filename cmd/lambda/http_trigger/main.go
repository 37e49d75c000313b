package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"funcapp-api/internal/config"
	"funcapp-api/internal/handlers"
	"funcapp-api/internal/logging"
	"funcapp-api/internal/middleware"
	"funcapp-api/pkg/lambda"
	"funcapp-api/pkg/server"
)

var container *server.Container

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	if err := logging.Configure(cfg.Logging.Level, cfg.Logging.Format, os.Stdout); err != nil {
		panic("Failed to configure logging: " + err.Error())
	}

	container, err = server.NewContainer(cfg)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	logrus.WithFields(config.GetServerlessConfig().LogFields()).
		WithField("auth", cfg.AuthRequired()).
		Info("Function initialized")
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req, err := lambda.FromAPIGateway(event)
	if err != nil {
		logrus.WithError(err).Warn("Rejected undecodable request body")
		resp, _ := lambda.JSON(http.StatusBadRequest, handlers.ErrorResponse{Error: "Invalid request body encoding"})
		return resp.ToAPIGateway(), nil
	}

	if !middleware.FunctionKeyValid(container.Config.FunctionKey, req) {
		return middleware.Unauthorized().ToAPIGateway(), nil
	}

	greetingHandler := handlers.NewGreetingHandler(container.GreetingService, container.Metrics)

	var resp *lambda.Response

	switch handlers.FunctionName(container.Config.RoutePrefix, req.Path) {
	case handlers.FunctionHTTPTrigger:
		resp, err = greetingHandler.HandleHTTPTrigger(ctx, req)
	default:
		resp = lambda.NotFound()
	}

	if err != nil {
		logrus.WithError(err).Error("Function handler failed")
		return lambda.InternalError().ToAPIGateway(), nil
	}

	return resp.ToAPIGateway(), nil
}

func main() {
	awslambda.Start(handler)
}
