// Command delete is the Lambda entry point for DELETE /todo/{id}.
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
		logrus.WithError(err).Fatal("Failed to start delete handler")
	}

	awslambda.Start(lambda.APIGatewayProxyHandler(container.TodoHandler.HandleDelete, container.Logger))
}
