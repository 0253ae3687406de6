package router

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"brainbloom/internal/api/v1/handler"
	"brainbloom/internal/config"
	"brainbloom/internal/middleware"
	"brainbloom/internal/repository"
	"brainbloom/internal/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// New builds the HTTP handler and opens the shared Mongo client. The
// caller owns the client and must disconnect it on shutdown.
func New(cfg *config.Config, logger zerolog.Logger) (http.Handler, *mongo.Client, error) {
	logger.Info().Str("environment", cfg.Environment).Msg("Router initialized")

	// 1. Open Mongo connection (one client for the process lifetime)
	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(connectCtx, clientOpts)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to open Mongo connection")
		return nil, nil, err
	}

	// Ping the database to ensure connection is valid
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		logger.Error().Err(err).Msg("Failed to ping Mongo")
		return nil, nil, err
	}
	logger.Info().Msg("Database connection successful")

	db := client.Database(cfg.DBName)

	// 2. Initialize media storage (S3-compatible) client
	s3Config, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.MediaS3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.MediaS3AccessKey, cfg.MediaS3SecretKey, "")),
	)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load media storage config")
		return nil, nil, err
	}
	s3Client := s3.NewFromConfig(s3Config, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.MediaS3URL)
		o.UsePathStyle = true
	})

	// 3. Initialize validator
	validate := validator.New(validator.WithRequiredStructEnabled())

	// 4. Initialize repositories & services & handlers
	userRepo := repository.NewUserRepo(db)
	courseRepo := repository.NewCourseRepo(db, logger)

	tokenSvc := service.NewTokenService(cfg.JWTSecret)
	userSvc := service.NewUserService(userRepo)
	courseSvc := service.NewCourseService(courseRepo)
	mediaSvc := service.NewMediaService(s3Client, cfg.MediaS3Bucket, logger)

	authHandler := handler.NewAuthHandler(tokenSvc, logger)
	userHandler := handler.NewUserHandler(userSvc, validate, logger)
	courseHandler := handler.NewCourseHandler(courseSvc, validate, logger)
	mediaHandler := handler.NewMediaHandler(mediaSvc, validate, logger)

	// 5. Initialize middleware
	authMiddleware := middleware.AuthMiddleware(tokenSvc, logger)

	// 6. Create ServeMux router
	mux := http.NewServeMux()
	authHandler.RegisterRoutes(mux)
	userHandler.RegisterRoutes(mux, authMiddleware)
	courseHandler.RegisterRoutes(mux, authMiddleware)
	mediaHandler.RegisterRoutes(mux, authMiddleware)

	// Liveness probe
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "Brain Bloom is running at port %s", cfg.Port)
	})

	// 7. Apply CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return middleware.LoggerMiddleware(c.Handler(mux), logger), client, nil
}
