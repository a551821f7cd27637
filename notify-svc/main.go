package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Gayatri-ch/UniPay/config"
	"github.com/Gayatri-ch/UniPay/infra/queue"
	"github.com/Gayatri-ch/UniPay/internal/api"
	"github.com/Gayatri-ch/UniPay/internal/repository"
	"github.com/Gayatri-ch/UniPay/notify-svc/internal/api/rest/handlers"
	"github.com/Gayatri-ch/UniPay/notify-svc/internal/services"
)

func main() {
	// ---------- Load Config ----------
	cfg := config.LoadConfig()

	log.Println("Notify Service starting...")
	log.Printf("KafkaBroker=%s Topic=%s GroupID=%s\n",
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaGroupID,
	)
	if cfg.KafkaBroker == "" {
		log.Fatal("KAFKA_BROKER is required")
	}

	// ---------- DB ----------
	db, err := api.OpenDatabase(cfg)
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	if err := api.Migrate(db); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	// ---------- Init Service ----------
	notifyService := services.NewNotifyService(repository.NewAuditRepository(db))

	// ---------- Init Handler ----------
	handler := handlers.NewNotifyHandler(notifyService)

	// ---------- Init Kafka Consumer ----------
	consumer := queue.NewKafkaConsumer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaGroupID,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
		handler,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ---------- Start Listening ----------
	log.Println("Notify Service listening for events...")
	consumer.Listen(ctx)
}
