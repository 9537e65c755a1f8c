// Command update is the Lambda entry point for PUT /todo.
package main

import (
	"context"

	"serverless-todos-api/pkg/lambda"
	"serverless-todos-api/pkg/server"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"
)

func main() {
	container, err := server.Bootstrap(context.Background())
	if err != nil {
		logrus.WithError(err).Fatal("Failed to start update handler")
	}

	awslambda.Start(lambda.APIGatewayProxyHandler(container.TodoHandler.HandleUpdate, container.Logger))
}
