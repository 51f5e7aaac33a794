package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/chitsa/order-service/internal/auth"
	awsclients "github.com/chitsa/order-service/internal/aws"
	"github.com/chitsa/order-service/internal/config"
	"github.com/chitsa/order-service/internal/handlers"
	"github.com/chitsa/order-service/internal/logger"
	"github.com/chitsa/order-service/internal/metrics"
	"github.com/chitsa/order-service/internal/orders"
	"github.com/chitsa/order-service/internal/users"
)

func setupRouter(cfg handlers.HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.RegisterUsersRoutes(r, cfg)
	handlers.RegisterOrdersRoutes(r, cfg)

	return r
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.L().Fatal("failed to load config", zap.Error(err))
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	clients, err := awsclients.NewAWSClients(context.Background(), cfg.AWSRegion)
	if err != nil {
		logger.L().Fatal("failed to init aws clients", zap.Error(err))
	}

	// Everything is constructed here, once, and handed to the routes.
	emitter := metrics.NewEmitter(clients.CloudWatch, cfg.MetricsNamespace)
	orderStore := orders.NewStore(clients.DynamoDB, cfg.OrdersTable, cfg.CustomerIndex)
	orderService := orders.NewService(orderStore, orders.NewMapper(), emitter)
	userService := users.NewService(clients.Cognito, cfg.UserPoolID, cfg.ClientID, cfg.ClientSecret, emitter)
	verifier := auth.NewVerifier(cfg.TokenIssuer)

	r := setupRouter(handlers.HandlerConfig{
		Orders: orderService,
		Users:  userService,
		Auth:   verifier.Middleware(),
	})

	// if environment variable RUN_LOCAL is set to "true", run a local HTTP server for development.
	if os.Getenv("RUN_LOCAL") == "true" {
		addr := ":" + cfg.AppPort
		logger.L().Info("running local server", zap.String("addr", addr))
		if err := r.Run(addr); err != nil {
			logger.L().Fatal("failed to run local server", zap.Error(err))
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
