package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Rishab260/loan-app-poc/config"
	"github.com/Rishab260/loan-app-poc/internal/admin"
	"github.com/Rishab260/loan-app-poc/internal/broadcast"
	"github.com/Rishab260/loan-app-poc/internal/cache"
	"github.com/Rishab260/loan-app-poc/internal/consumer"
	"github.com/Rishab260/loan-app-poc/internal/correlation"
	"github.com/Rishab260/loan-app-poc/internal/eventbus"
	handler "github.com/Rishab260/loan-app-poc/internal/handler"
	handlers "github.com/Rishab260/loan-app-poc/internal/handlers"
	"github.com/Rishab260/loan-app-poc/internal/metrics"
	"github.com/Rishab260/loan-app-poc/internal/models"
	"github.com/Rishab260/loan-app-poc/internal/publisher"
	"github.com/Rishab260/loan-app-poc/internal/repository/posgrest"
	"github.com/Rishab260/loan-app-poc/internal/service"
	"github.com/Rishab260/loan-app-poc/internal/session"
	"github.com/Rishab260/loan-app-poc/internal/snapshot"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// GatewayApp is the public-facing process: it accepts submissions, streams
// decisions back over SSE and runs the notifier loop over the status topic.
type GatewayApp struct {
	config     *config.Config
	Router     *gin.Engine
	statusLoop *consumer.Loop
	eventLog   *eventbus.KafkaLog
}

func (a *GatewayApp) Initialize(cfg *config.Config) {
	a.config = cfg

	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	topics := []string{cfg.Kafka.RequestsTopic, cfg.Kafka.StatusTopic, cfg.Kafka.DLQTopic}
	eventLog := eventbus.NewKafkaLog(brokers, topics)
	a.eventLog = eventLog
	eventPublisher := publisher.NewEventPublisher(eventLog, cfg.Kafka.GetRetryConfig())

	snapshots := snapshot.NewStore(cache.NewRedisCache(redisClient), cfg.Redis.SnapshotTTL)
	sessions := session.NewStore(redisClient, cfg.Session.TTL)
	usersRepo := posgrest.New[models.User](db, "user_id")
	broadcaster := broadcast.NewRedisBroadcaster(redisClient)
	adminClient := admin.NewClient(cfg.Admin.URL, cfg.Admin.Timeout)

	submissionService := service.NewSubmissionService(correlation.Allocator{}, snapshots, eventPublisher, cfg.Kafka.RequestsTopic)
	authService := service.NewAuthService(usersRepo, sessions, correlation.Allocator{})
	notifierService := service.NewNotifierService(broadcaster, snapshots, adminClient)

	statusHandler := handler.Status(notifierService)
	a.statusLoop = consumer.New(eventLog, cfg.Kafka.StatusTopic, statusHandler.Handle, consumer.Options{
		BatchSize:     cfg.Consumer.BatchSize,
		PollInterval:  cfg.Consumer.PollInterval,
		EmptyInterval: cfg.Consumer.EmptyInterval,
		Retry:         cfg.Kafka.GetRetryConfig(),
		DLQ:           eventPublisher,
		DLQTopic:      cfg.Kafka.DLQTopic,
	})

	metrics.RegisterMetrics()

	loanHandler := handlers.NewLoanHandler(submissionService, snapshots, broadcaster)
	authHandler := handlers.NewAuthHandler(authService, cfg.Session.TTL)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterGatewayRoutes(loanHandler, authHandler, authService)
}

// Run serves HTTP until ctx is cancelled, then drains the status loop and
// shuts the server down within the configured timeout.
func (a *GatewayApp) Run(ctx context.Context) {
	a.statusLoop.Start(ctx)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", a.config.APP.PORT),
		Handler: a.Router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("shutting down gateway")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Consumer.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("server shutdown: %v", err)
	}

	select {
	case <-a.statusLoop.Done():
	case <-time.After(a.config.Consumer.ShutdownTimeout):
		logrus.Warn("status loop did not stop in time")
	}

	if err := a.eventLog.Close(); err != nil {
		logrus.Errorf("closing event log: %v", err)
	}
}
