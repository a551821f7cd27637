package api

import (
	"fmt"
	"log"

	"github.com/Gayatri-ch/UniPay/config"
	"github.com/Gayatri-ch/UniPay/infra/queue"
	"github.com/Gayatri-ch/UniPay/internal/api/rest/handlers"
	"github.com/Gayatri-ch/UniPay/internal/api/rest/middleware"
	"github.com/Gayatri-ch/UniPay/internal/domain"
	"github.com/Gayatri-ch/UniPay/internal/helper"
	"github.com/Gayatri-ch/UniPay/internal/interfaces"
	"github.com/Gayatri-ch/UniPay/internal/repository"
	"github.com/Gayatri-ch/UniPay/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// same id for every instance so only one runs migrations at a time
const migrateLockID int64 = 20260222

func OpenDatabase(cfg config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "postgres":
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.DatabaseDSN,
			PreferSimpleProtocol: true,
		}), &gorm.Config{TranslateError: true})
	case "sqlite", "":
		return gorm.Open(sqlite.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
			return fmt.Errorf("migration lock: %w", err)
		}
		defer func() {
			_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
		}()
	}

	return db.AutoMigrate(
		&domain.User{},
		&domain.KVEntry{},
		&domain.AuditLog{},
	)
}

// SetupApp wires repositories, services and routes onto a new fiber app.
// producer may be nil.
func SetupApp(cfg config.Config, db *gorm.DB, producer interfaces.ProducerHandler) *fiber.App {
	app := fiber.New()

	// ---------- Middleware ----------
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.BaseURL,
		AllowHeaders: "Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	authHelper := helper.SetupAuth(cfg.AccessSecret)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	kvRepo := repository.NewKVRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	// ---------- Service ----------
	sessions := services.NewSessionManager(kvRepo, cfg.InitialBalance)
	userSvc := services.NewUserService(userRepo, authHelper, sessions)
	linkSvc := services.NewLinkService(domain.DefaultCatalog(), producer)
	walletSvc := services.NewWalletService(producer)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Handler ----------
	protected := app.Group("/api",
		middleware.AuthMiddleware(authHelper),
		middleware.SessionRequired(sessions),
	)
	handlers.NewUserHandler(userSvc).SetupRoutes(app, protected)
	handlers.NewLinkHandler(linkSvc).SetupRoutes(protected)
	handlers.NewWalletHandler(walletSvc).SetupRoutes(protected)
	handlers.NewActivityHandler(auditRepo).SetupRoutes(protected)

	return app
}

func StartServer(cfg config.Config) {
	if cfg.AccessSecret == "" {
		log.Fatal("ACCESS_SECRET is required")
	}
	log.Printf("KafkaBroker=%q KafkaTopic=%q", cfg.KafkaBroker, cfg.KafkaTopic)

	// ---------- DB ----------
	db, err := OpenDatabase(cfg)
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Printf("database connected (%s)", db.Dialector.Name())

	if err := Migrate(db); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	// ---------- Infra ----------
	var producer interfaces.ProducerHandler
	if p := queue.NewProducer(cfg.KafkaBroker, cfg.KafkaTopic, cfg.KafkaUsername, cfg.KafkaPassword); p != nil {
		defer p.Close()
		producer = p
	} else {
		log.Println("KAFKA_BROKER not set - events disabled")
	}

	app := SetupApp(cfg, db, producer)

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	if err := app.Listen(addr); err != nil {
		log.Printf("server stopped: %v", err)
	}
}
