package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/holyweird/storefront/internal/config"
	"github.com/holyweird/storefront/internal/events"
	kafkax "github.com/holyweird/storefront/internal/kafka"
	"github.com/holyweird/storefront/internal/notifier"
	"github.com/holyweird/storefront/internal/redisx"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	svc := &notifier.Service{
		Redis:       rdb,
		ServiceName: cfg.ServiceName + "-notifier",
	}

	group := getenv("NOTIFIER_GROUP", "storefront-notifier")
	workers := mustAtoi(os.Getenv("NOTIFIER_WORKERS"), "4")

	topics := []string{events.TopicOrderPaid, events.TopicOrderCancelled, events.TopicLeadReceived}
	for _, topic := range topics {
		cons := kafkax.NewConsumer(cfg.KafkaBrokers, group, topic, workers)
		go func(topic string) {
			log.Printf("notifier consumer started: group=%s topic=%s workers=%d", group, topic, workers)
			if err := cons.Start(ctx, svc.HandleEvent); err != nil {
				log.Printf("consumer %s exit: %v", topic, err)
				cancel()
			}
		}(topic)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
		log.Println("shutting down consumers...")
		cancel()
	case <-ctx.Done():
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustAtoi(s, def string) int {
	if s == "" {
		s = def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return i
}
