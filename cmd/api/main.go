package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/holyweird/storefront/internal/cart"
	"github.com/holyweird/storefront/internal/catalog"
	"github.com/holyweird/storefront/internal/config"
	"github.com/holyweird/storefront/internal/dolly"
	"github.com/holyweird/storefront/internal/events"
	"github.com/holyweird/storefront/internal/httpx"
	kafkax "github.com/holyweird/storefront/internal/kafka"
	"github.com/holyweird/storefront/internal/leads"
	"github.com/holyweird/storefront/internal/orders"
	"github.com/holyweird/storefront/internal/payments"
	"github.com/holyweird/storefront/internal/postgres"
	"github.com/holyweird/storefront/internal/redisx"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Stores: Postgres when configured, in-memory otherwise.
	var (
		catalogStore catalog.Store
		orderRepo    orders.Repo
		leadRepo     leads.Repo
		shareStore   dolly.ShareStore
	)
	if cfg.PostgresDSN != "" {
		db, err := postgres.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("db connect: %v", err)
		}
		defer db.Close()
		catalogStore = &catalog.PGStore{DB: db}
		orderRepo = &orders.PGRepo{DB: db}
		leadRepo = &leads.PGRepo{DB: db}
		shareStore = &dolly.PGShareStore{DB: db}
	} else {
		log.Println("POSTGRES_DSN not set; using in-memory stores (data is lost on restart)")
		catalogStore = catalog.NewMemoryStore(catalog.Seed())
		orderRepo = orders.NewMemoryRepo()
		leadRepo = leads.NewMemoryRepo()
		shareStore = dolly.NewMemoryShareStore()
	}

	// Redis: carts, session status cache, webhook dedup fast path.
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()
	cartStore := &cart.RedisStore{RDB: rdb}

	// Kafka producers, one per topic.
	prodPaid := kafkax.NewProducer(cfg.KafkaBrokers, events.TopicOrderPaid, 1024)
	prodPaid.Start(ctx)
	prodCancelled := kafkax.NewProducer(cfg.KafkaBrokers, events.TopicOrderCancelled, 1024)
	prodCancelled.Start(ctx)
	prodLead := kafkax.NewProducer(cfg.KafkaBrokers, events.TopicLeadReceived, 1024)
	prodLead.Start(ctx)

	// Stripe is optional; without a key the checkout surface degrades to 503.
	var provider payments.Provider
	if cfg.StripeSecretKey != "" {
		provider = payments.NewStripeClient(cfg.StripeSecretKey, cfg.FrontendURL)
	} else {
		log.Println("STRIPE_SECRET_KEY not set; payment features are disabled")
	}
	if cfg.StripeWebhookSecret == "" && cfg.IsProduction() {
		log.Fatal("STRIPE_WEBHOOK_SECRET is required in production")
	}

	router := httpx.NewRouter(cfg.Environment)
	(&httpx.ProductsHandler{Store: catalogStore}).Register(router)
	(&httpx.CartHandler{Store: cartStore}).Register(router)
	(&httpx.DollyHandler{Shares: shareStore, FrontendURL: cfg.FrontendURL}).Register(router)
	(&httpx.CheckoutHandler{
		Payments: provider,
		Orders:   orderRepo,
		Redis:    rdb,
	}).Register(router)
	(&httpx.WebhookHandler{
		Verifier:          payments.Verifier{Secret: cfg.StripeWebhookSecret, Production: cfg.IsProduction()},
		Orders:            orderRepo,
		Redis:             rdb,
		PaidProducer:      prodPaid,
		CancelledProducer: prodCancelled,
		Service:           cfg.ServiceName,
	}).Register(router)
	(&httpx.LeadsHandler{
		Repo:     leadRepo,
		Producer: prodLead,
		Service:  cfg.ServiceName,
	}).Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)

	// flush producers, then stop their loops
	prodPaid.Close()
	prodCancelled.Close()
	prodLead.Close()
	cancel()
	prodPaid.WaitClosed()
	prodCancelled.WaitClosed()
	prodLead.WaitClosed()
}
