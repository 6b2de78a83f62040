package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/delivery/http/handlers"
	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/delivery/http/middleware"
	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/delivery/http/routers"
	infra_aws "github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/infrastructure/aws"
	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/infrastructure/db"
	infra_repo "github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/infrastructure/repositories"
	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/pkg/config"
	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/usecases"
	apperrors "github.com/HackathonFIAPX/hackathon-fiapx-admin/pkg/errors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := config.LoadConfig()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx := context.Background()

	awsCfg, err := infra_aws.LoadAWSConfig(ctx, cfg.AWS)
	if err != nil {
		zapLogger.Fatal("failed to load AWS config", zap.Error(err))
	}

	dynamo, err := db.NewDynamo(ctx, awsCfg, cfg.DynamoDB)
	if err != nil {
		zapLogger.Fatal("failed to connect to DynamoDB", zap.Error(err))
	}
	if os.Getenv("RUN_TABLE_BOOTSTRAP") == "true" {
		if err := dynamo.EnsureTable(ctx); err != nil {
			zapLogger.Fatal("failed to bootstrap table", zap.Error(err))
		}
	}

	verifier, err := infra_aws.NewCognitoVerifier(ctx, cfg.AWS.Region, cfg.Cognito.UserPoolID, cfg.Cognito.ClientID)
	if err != nil {
		zapLogger.Fatal("failed to initialize token verifier", zap.Error(err))
	}

	cognitoHandler := infra_aws.NewCognitoHandler(cognitoidentityprovider.NewFromConfig(awsCfg), cfg.Cognito.UserPoolID, cfg.Cognito.ClientID)
	s3Handler := infra_aws.NewS3Handler(s3.NewFromConfig(awsCfg), cfg.S3.BucketName, cfg.S3.ZipBucketName)
	publisher := infra_aws.NewSQSPublisher(sqs.NewFromConfig(awsCfg), cfg.SQS.QueueURL)

	// Repositories & Services
	userRepo := infra_repo.NewDynamoDBUserRepository(dynamo.Client, dynamo.Table)
	userService := usecases.NewUserService(userRepo)
	authService := usecases.NewAuthService(cognitoHandler, verifier)
	uploadService := usecases.NewUploadService(userRepo, s3Handler, cfg.Upload.MaxFileSize, cfg.Upload.URLExpiry)
	videoService := usecases.NewVideoService(userRepo, s3Handler, publisher, cfg.Upload.URLExpiry, zapLogger)

	app := fiber.New(fiber.Config{
		ErrorHandler: apperrors.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	authMiddleware := middleware.NewAuthMiddleware(verifier)

	// Routes
	routers.SetupUserRoutes(app, handlers.NewUserHandler(userService, authService))
	routers.SetupUploadRoutes(app, handlers.NewUploadHandler(uploadService), authMiddleware)
	routers.SetupVideoRoutes(app, handlers.NewVideoHandler(videoService), authMiddleware)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	zapLogger.Info("server starting", zap.String("addr", addr))

	// Graceful shutdown
	go func() {
		if err := app.Listen(addr); err != nil {
			zapLogger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutdown signal received, stopping server")

	ctxShut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctxShut); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}
	zapLogger.Info("server stopped cleanly")
}
