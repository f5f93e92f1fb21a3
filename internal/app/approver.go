package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Rishab260/loan-app-poc/config"
	"github.com/Rishab260/loan-app-poc/internal/consumer"
	"github.com/Rishab260/loan-app-poc/internal/eventbus"
	handler "github.com/Rishab260/loan-app-poc/internal/handler"
	handlers "github.com/Rishab260/loan-app-poc/internal/handlers"
	"github.com/Rishab260/loan-app-poc/internal/metrics"
	"github.com/Rishab260/loan-app-poc/internal/publisher"
	"github.com/Rishab260/loan-app-poc/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ApproverApp is the decision process: it consumes the request topic,
// publishes decisions by policy and exposes manual approve/deny overrides.
type ApproverApp struct {
	config      *config.Config
	Router      *gin.Engine
	requestLoop *consumer.Loop
	eventLog    *eventbus.KafkaLog
}

func (a *ApproverApp) Initialize(cfg *config.Config) {
	a.config = cfg

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	topics := []string{cfg.Kafka.RequestsTopic, cfg.Kafka.StatusTopic, cfg.Kafka.DLQTopic}
	eventLog := eventbus.NewKafkaLog(brokers, topics)
	a.eventLog = eventLog
	eventPublisher := publisher.NewEventPublisher(eventLog, cfg.Kafka.GetRetryConfig())

	policy := service.ThresholdPolicy{MaxAmount: cfg.Decision.MaxAmount}
	decisionService := service.NewDecisionService(eventPublisher, policy, cfg.Kafka.StatusTopic)

	requestHandler := handler.Request(decisionService)
	a.requestLoop = consumer.New(eventLog, cfg.Kafka.RequestsTopic, requestHandler.Handle, consumer.Options{
		BatchSize:     cfg.Consumer.BatchSize,
		PollInterval:  cfg.Consumer.PollInterval,
		EmptyInterval: cfg.Consumer.EmptyInterval,
		Retry:         cfg.Kafka.GetRetryConfig(),
		DLQ:           eventPublisher,
		DLQTopic:      cfg.Kafka.DLQTopic,
	})

	metrics.RegisterMetrics()

	decisionHandler := handlers.NewDecisionHandler(decisionService)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterApproverRoutes(decisionHandler)
}

// Run serves HTTP until ctx is cancelled, then drains the request loop and
// shuts the server down within the configured timeout.
func (a *ApproverApp) Run(ctx context.Context) {
	a.requestLoop.Start(ctx)

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
	logrus.Info("shutting down approver")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Consumer.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("server shutdown: %v", err)
	}

	select {
	case <-a.requestLoop.Done():
	case <-time.After(a.config.Consumer.ShutdownTimeout):
		logrus.Warn("request loop did not stop in time")
	}

	if err := a.eventLog.Close(); err != nil {
		logrus.Errorf("closing event log: %v", err)
	}
}
