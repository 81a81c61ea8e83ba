// Command lambda serves the same router behind API Gateway (HTTP API, payload v2).
package main

import (
	"context"

	intconfig "travelplanner/internal/config"
	router "travelplanner/internal/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var ginLambdaV2 *ginadapter.GinLambdaV2

func init() {
	env := intconfig.LoadEnv()
	env.ConfigureLogging()
	gin.SetMode(gin.ReleaseMode)

	if _, err := intconfig.ConnectDB(context.Background(), env); err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	r, err := router.NewRouter(env)
	if err != nil {
		logrus.WithError(err).Fatal("router setup failed")
	}
	ginLambdaV2 = ginadapter.NewV2(r)
}

func handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return ginLambdaV2.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
