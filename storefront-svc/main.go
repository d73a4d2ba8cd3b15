package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"riko-storefront/config"
	httpapi "riko-storefront/storefront-svc/internal/api/http"
	"riko-storefront/storefront-svc/internal/hours"
	"riko-storefront/storefront-svc/internal/pricing"
	"riko-storefront/storefront-svc/internal/service"
	"riko-storefront/storefront-svc/internal/storage"
)

func newEvaluator(settings config.Settings) hours.Evaluator {
	e := hours.Default
	if settings.WeekdayLocale == "en" {
		e.Names = hours.EnglishWeekdays
	}
	if settings.TimeZone != "" {
		loc, err := time.LoadLocation(settings.TimeZone)
		if err != nil {
			log.Printf("unknown time zone %q, using local time: %v", settings.TimeZone, err)
		} else {
			e.Location = loc
		}
	}
	return e
}

func newBackend(settings config.Settings) *storage.BackendClient {
	return storage.NewBackendClient(storage.BackendConfig{
		BaseURL:           settings.BackendURL,
		RequestsPerSecond: settings.BackendRPS,
		Burst:             settings.BackendBurst,
	}, &http.Client{Timeout: settings.BackendTimeout})
}

func main() {
	settings := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres()
	defer db.Close()
	journal := storage.NewPostgresJournal(db)
	if err := journal.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	mongoClient := config.MustInitMongo(ctx)
	defer mongoClient.Disconnect(context.Background())
	chatStore := storage.NewMongoChatStore(mongoClient.Database(settings.MongoDatabase).Collection(settings.ChatCollection))

	proofs := storage.NewMinioProofStore(config.MustInitMinio(), settings.ProofBucket, settings.ProofPublicURL)
	if err := proofs.EnsureBucket(ctx); err != nil {
		log.Printf("ERROR: proof bucket %s: %v", settings.ProofBucket, err)
	}

	kafkaWriter := config.NewKafkaWriter(settings.OrdersTopic)
	defer kafkaWriter.Close()

	backend := newBackend(settings)
	broker := storage.NewRedisChatBroker(rdb)
	fees := pricing.FeeConfig(settings.Fees)

	sessions := service.NewSessionService(storage.NewRedisSessionStore(rdb, settings.SessionTTL))
	catalog := service.NewCatalogService(backend, newEvaluator(settings))
	carts := service.NewCartService(backend, catalog, fees)
	checkout := service.NewCheckoutService(service.CheckoutDeps{
		Carts:     carts,
		Catalog:   catalog,
		Orders:    backend,
		CartAPI:   backend,
		Chat:      chatStore,
		Broker:    broker,
		Pending:   storage.NewRedisCheckoutStore(rdb, settings.CheckoutTTL),
		Journal:   journal,
		Publisher: storage.NewKafkaPublisher(kafkaWriter),
		QR:        service.DefaultQRGenerator{Size: 256},
	})
	orders := service.NewOrderService(backend)
	chat := service.NewChatService(chatStore, broker, proofs, backend)

	poller := service.NewPoller(ctx)
	catalog.StartPolling(poller, settings.PollProducts, settings.PollRestaurants)

	handler := httpapi.NewHandler(sessions, catalog, carts, checkout, orders, chat)
	srv := httpapi.NewServer(":"+settings.Port, httpapi.NewRouter(handler))

	go func() {
		<-ctx.Done()
		poller.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("ERROR: shutdown: %v", err)
		}
	}()

	httpapi.StartServer(srv)
}
