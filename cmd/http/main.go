package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthai-service/internal/app/config"
	"healthai-service/internal/app/delivery/http/controllers"
	"healthai-service/internal/app/delivery/http/middlewares"
	"healthai-service/internal/app/delivery/http/routers"
	"healthai-service/internal/app/drivers/database"
	"healthai-service/internal/app/drivers/logger"
	"healthai-service/internal/app/services/ai"
	"healthai-service/internal/app/services/patients"
	"healthai-service/internal/app/services/records"
	"healthai-service/internal/app/services/shared/cache"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()
	log.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error while closing application resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Summary cache
	var summaryCache = cache.NewNoopSummaryCache()
	if bootstrap.Redis != nil {
		summaryCache = cache.NewRedisSummaryCache(bootstrap.Redis, bootstrap.Logger)
	}

	// Middlewares
	httpMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	requestTimeout := time.Second * time.Duration(bootstrap.InternalConfig.App.RequestTimeoutInSeconds)

	// Patient
	patientMongoRepository := patients.NewPatientMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
		bootstrap.Logger,
	)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, summaryCache)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase, requestTimeout)

	// Records
	recordMongoRepository := records.NewRecordMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
		bootstrap.Logger,
	)
	recordUsecase := records.NewRecordUsecase(recordMongoRepository, summaryCache, bootstrap.Logger)
	recordController := controllers.NewRecordController(bootstrap.Logger, recordUsecase, requestTimeout)

	// AI
	geminiHTTPClient := &http.Client{
		Timeout: time.Second * time.Duration(bootstrap.InternalConfig.Gemini.RequestTimeoutInSeconds),
	}
	geminiClient := ai.NewGeminiClient(
		bootstrap.InternalConfig.Gemini.BaseUrl,
		bootstrap.InternalConfig.Gemini.Model,
		bootstrap.InternalConfig.Gemini.APIKey,
		geminiHTTPClient,
	)
	summaryCacheTTL := time.Minute * time.Duration(bootstrap.InternalConfig.Gemini.SummaryCacheTTLInMinutes)
	aiUsecase := ai.NewAIUsecase(patientUsecase, recordUsecase, geminiClient, summaryCache, summaryCacheTTL, bootstrap.Logger)
	aiController := controllers.NewAIController(bootstrap.Logger, aiUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		httpMiddlewares,
		patientController,
		recordController,
		aiController,
	)
}
