package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BloggingApp/story-service/internal/config"
	"github.com/BloggingApp/story-service/internal/handler"
	"github.com/BloggingApp/story-service/internal/metrics"
	"github.com/BloggingApp/story-service/internal/repository"
	"github.com/BloggingApp/story-service/internal/repository/postgres"
	"github.com/BloggingApp/story-service/internal/repository/redisrepo"
	"github.com/BloggingApp/story-service/internal/server"
	"github.com/BloggingApp/story-service/internal/service"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := loadEnv(); err != nil {
		logger.Sugar().Warnf("failed to load .env file: %s", err.Error())
	}

	if err := initConfig(); err != nil {
		logger.Sugar().Panicf("failed to initialize yaml config: %s", err.Error())
	}

	storageConfig := config.NewStorageConfig()
	storage, closeStorage := openStorage(ctx, logger, storageConfig)
	defer closeStorage()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	repos := repository.New(storage)
	services := service.New(logger, repos, storageConfig, metrics.New(reg))
	if err := services.Init(ctx); err != nil {
		logger.Sugar().Panicf("failed to initialize content stores: %s", err.Error())
	}

	authConfig := config.NewAuthConfig(os.Getenv("ACCESS_SECRET"))
	if len(authConfig.AccessSecret) == 0 {
		logger.Panic("ACCESS_SECRET is not set")
	}
	handlers := handler.New(services, authConfig, reg)

	srv := server.New()
	serverConfig := config.ServerConfig{
		Port:           viper.GetString("app.port"),
		Handler:        handlers.InitRoutes(),
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    time.Second * 10,
		WriteTimeout:   time.Second * 10,
	}
	go func(srv *server.Server, cfg config.ServerConfig) {
		if err := srv.Run(cfg); err != nil {
			logger.Sugar().Panicf("failed to run http server: %s", err.Error())
		}
	}(srv, serverConfig)

	logger.Sugar().Infof("Server started on port %s (storage: %s)", serverConfig.Port, storageConfig.Driver)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to shut down http server: %s", err.Error())
	}
}

func openStorage(ctx context.Context, logger *zap.Logger, cfg config.StorageConfig) (repository.Storage, func()) {
	switch cfg.Driver {
	case config.DriverPostgres:
		dbConfig := config.DBConfig{
			Username: os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			DBName:   os.Getenv("POSTGRES_DATABASE"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}
		db, err := postgres.DB(ctx, dbConfig)
		if err != nil {
			logger.Sugar().Panicf("failed to connect to postgres: %s", err.Error())
		}
		if err := db.Ping(ctx); err != nil {
			logger.Sugar().Panicf("failed to ping postgres: %s", err.Error())
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			logger.Sugar().Panicf("failed to migrate postgres: %s", err.Error())
		}
		logger.Info("Successfully connected to PostgreSQL")

		return postgres.New(db), db.Close
	case config.DriverRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr: os.Getenv("REDIS_ADDR"),
		})
		pong, err := rdb.Ping(ctx).Result()
		if err != nil {
			logger.Sugar().Panicf("failed to ping redis: %s", err.Error())
		}
		logger.Sugar().Infof("Successfully connected to Redis: %s", pong)

		return redisrepo.New(rdb), func() {
			if err := rdb.Close(); err != nil {
				logger.Sugar().Errorf("failed to close redis: %s", err.Error())
			}
		}
	default:
		logger.Sugar().Panicf("unknown storage driver: %s", cfg.Driver)
		return nil, nil
	}
}

func loadEnv() error {
	return godotenv.Load()
}

func initConfig() error {
	config.SetDefaults()
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	return viper.ReadInConfig()
}
