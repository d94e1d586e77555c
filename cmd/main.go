package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tonni59/TONNIShop-FullStack-Server-Side/internal/auth"
	"github.com/tonni59/TONNIShop-FullStack-Server-Side/internal/config"
	"github.com/tonni59/TONNIShop-FullStack-Server-Side/internal/db"
	"github.com/tonni59/TONNIShop-FullStack-Server-Side/internal/events"
	httpapi "github.com/tonni59/TONNIShop-FullStack-Server-Side/internal/http"
	"github.com/tonni59/TONNIShop-FullStack-Server-Side/internal/order"
	"github.com/tonni59/TONNIShop-FullStack-Server-Side/internal/product"
	"github.com/tonni59/TONNIShop-FullStack-Server-Side/internal/user"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET not set")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Mongo
	client, err := db.Open(ctx, cfg.MongoURI)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to mongo")
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	database := client.Database(cfg.MongoDB)
	orderRepo := order.NewRepository(database)
	userRepo := user.NewRepository(database)
	productRepo := product.NewRepository(database)

	// RabbitMQ is optional: without it the shop still takes orders, it
	// just emits no events.
	var publisher order.Publisher
	if cfg.RabbitURL != "" {
		conn, err := events.Dial(cfg.RabbitURL)
		if err != nil {
			logger.WithError(err).Fatal("failed to connect to rabbitmq")
		}
		defer conn.Close()

		pub, err := events.NewPublisher(conn)
		if err != nil {
			logger.WithError(err).Fatal("failed to set up publisher")
		}
		defer pub.Close()
		publisher = pub
	} else {
		logger.Warn("RABBITMQ_URL not set, OrderCreated events disabled")
	}

	orderService := order.NewService(orderRepo, publisher, logger)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)

	router := httpapi.NewRouter(httpapi.RouterConfig{
		Orders:           orderService,
		Users:            userRepo,
		Products:         productRepo,
		Tokens:           tokens,
		UploadDir:        cfg.UploadDir,
		Logger:           logger,
		CORSAllowOrigins: cfg.CORSAllowOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.WithField("port", cfg.Port).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("server error")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
