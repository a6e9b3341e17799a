package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/helaluddin100/greenbuild/internal/config"
	"github.com/helaluddin100/greenbuild/internal/es"
	"github.com/helaluddin100/greenbuild/internal/events"
	"github.com/helaluddin100/greenbuild/internal/handlers"
	"github.com/helaluddin100/greenbuild/internal/logging"
	authmw "github.com/helaluddin100/greenbuild/internal/middleware/auth"
	loggingmw "github.com/helaluddin100/greenbuild/internal/middleware/logging"
	"github.com/helaluddin100/greenbuild/internal/token"
	httpserver "github.com/helaluddin100/greenbuild/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	config.MustNonEmpty(configuration.JWT_SECRET, "JWT_SECRET")

	logger := logging.New(configuration.LogLevel)

	ctx := context.Background()
	db, err := config.InitDB(ctx, configuration)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}

	var producer *events.Producer
	if len(configuration.KafkaBrokers) > 0 {
		producer = events.NewProducer(configuration.KafkaBrokers)
	}

	tokens := &token.Service{DB: db, Secret: []byte(configuration.JWT_SECRET)}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		DB:                db,
		Auth:              &authmw.Middleware{Tokens: tokens},
		AuthHandler:       &handlers.AuthHandler{DB: db, Tokens: tokens, Producer: producer},
		DesignHandler:     &handlers.DesignHandler{DB: db, Producer: producer},
		CartHandler:       &handlers.CartHandler{DB: db, Producer: producer},
		OrderHandler:      &handlers.OrderHandler{DB: db, Producer: producer},
		ReviewHandler:     &handlers.ReviewHandler{DB: db},
		CommunityHandler:  &handlers.CommunityHandler{DB: db},
		MessageHandler:    &handlers.MessageHandler{DB: db},
		WithdrawalHandler: &handlers.WithdrawalHandler{DB: db},
	}

	if configuration.ES_URL != "" {
		esClient, err := es.NewClient(configuration)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		deps.SearchHandler = handlers.NewSearchHandler(esClient, configuration.ES_INDEX)
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", configuration.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Printf("kafka close error: %v", err)
		}
	}

	log.Println("shutdown complete")
}
