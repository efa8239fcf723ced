package main

import (
	"context"
	"fmt"
	"time"

	"github.com/cryptoexpertssss/gobeauty-mobile/catalog"
	"github.com/cryptoexpertssss/gobeauty-mobile/config"
	"github.com/cryptoexpertssss/gobeauty-mobile/models"
	"github.com/cryptoexpertssss/gobeauty-mobile/services/appointment"
	"github.com/cryptoexpertssss/gobeauty-mobile/services/session"
	"github.com/cryptoexpertssss/gobeauty-mobile/storage"
	"github.com/cryptoexpertssss/gobeauty-mobile/utils"

	"go.uber.org/zap"
)

// newStore builds the key-value engine selected by configuration and wraps
// it with the timeout/circuit-breaker decorator.
func newStore() (storage.Store, error) {
	cfg := config.AppConfig
	var (
		inner storage.Store
		err   error
	)
	switch cfg.StorageBackend {
	case "memory":
		inner = storage.NewMemoryStore()
	case "file":
		inner, err = storage.NewFileStore(cfg.StorageDir)
	case "redis":
		inner, err = storage.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case "mongo":
		inner, err = storage.NewMongoStore(cfg.DatabaseURL)
	default:
		err = fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
	if err != nil {
		return nil, err
	}
	timeout := time.Duration(cfg.StorageTimeout) * time.Millisecond
	return storage.NewBreakerStore(inner, timeout), nil
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	store, err := newStore()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage: %v", err)
	}

	sessions, err := session.NewProvider(store)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize session provider: %v", err)
	}
	appointments := appointment.NewService(store)
	cat := catalog.New()

	// The flow below stands in for the mobile screens: a client books a
	// treatment, then the admin reviews the queue.
	ctx := context.Background()

	auth, err := sessions.Login(ctx, "sarah.j@email.com", "password123", models.RoleClient)
	if err != nil {
		logger.Sugar().Fatalf("main: client login failed: %v", err)
	}
	client := auth.User
	logger.Info("logged in", zap.String("name", client.Name), zap.String("role", string(client.Role)))

	pro, ok := cat.ProfessionalByID("1")
	if !ok {
		logger.Fatal("main: professional not found in catalog")
	}

	apt, err := appointments.Book(ctx, appointment.BookingRequest{
		ClientID:          client.ID,
		ClientName:        client.Name,
		ClientEmail:       client.Email,
		ProfessionalID:    pro.ID,
		ProfessionalName:  pro.Name,
		ProfessionalImage: pro.Image,
		Service:           "Balayage",
		Date:              time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		Time:              "02:00 PM",
		Notes:             "First visit",
	})
	if err != nil {
		logger.Sugar().Fatalf("main: booking failed: %v", err)
	}

	upcoming, err := appointments.UpcomingAppointments(ctx, client.ID)
	if err != nil {
		logger.Sugar().Fatalf("main: upcoming query failed: %v", err)
	}
	logger.Info("client upcoming appointments", zap.Int("count", len(upcoming)))

	// Admin review.
	auth, err = sessions.Login(ctx, config.AppConfig.AdminEmail, config.AppConfig.AdminPassword, models.RoleAdmin)
	if err != nil {
		logger.Sugar().Fatalf("main: admin login failed: %v", err)
	}
	admin := auth.User.Identity()

	pending, err := appointments.PendingAppointments(ctx, admin)
	if err != nil {
		logger.Sugar().Fatalf("main: pending query failed: %v", err)
	}
	logger.Info("pending review queue", zap.Int("count", len(pending)))

	if err := appointments.UpdateStatus(ctx, admin, apt.ID, models.StatusConfirmed); err != nil {
		logger.Sugar().Fatalf("main: confirm failed: %v", err)
	}

	stats, err := appointments.Stats(ctx, admin)
	if err != nil {
		logger.Sugar().Fatalf("main: stats query failed: %v", err)
	}
	logger.Info("appointment statistics",
		zap.Int("total", stats.Total),
		zap.Int("pending", stats.Pending),
		zap.Int("confirmed", stats.Confirmed),
		zap.Int("completed", stats.Completed),
		zap.Int("cancelled", stats.Cancelled),
	)

	if err := sessions.Logout(ctx); err != nil {
		logger.Sugar().Fatalf("main: logout failed: %v", err)
	}
	logger.Info("demo flow complete")
}
