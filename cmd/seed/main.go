// Package main seeds the database with 30 days of demo data so the dashboard
// has something to show before a real storefront is connected.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/profitpulse/backend/config"
	"github.com/profitpulse/backend/internal/application/adapter"
	"github.com/profitpulse/backend/internal/domain/entity"
	domainerror "github.com/profitpulse/backend/internal/domain/error"
	"github.com/profitpulse/backend/internal/infra/db"
	"github.com/profitpulse/backend/internal/integration/adapters"
	"github.com/profitpulse/backend/internal/integration/persistence"
	"github.com/profitpulse/backend/internal/integration/persistence/model"
)

const (
	demoEmail    = "demo@profitpulse.dev"
	demoName     = "Demo User"
	demoPassword = "demo-password-123"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.StoreModel{},
		&model.OrderModel{},
		&model.SpendModel{},
		&model.IntegrationModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	userRepo := persistence.NewUserRepository(database.DB())
	storeRepo := persistence.NewStoreRepository(database.DB())
	orderRepo := persistence.NewOrderRepository(database.DB())
	spendRepo := persistence.NewSpendRepository(database.DB())
	integrationRepo := persistence.NewIntegrationRepository(database.DB())

	user, err := findOrCreateDemoUser(ctx, userRepo)
	if err != nil {
		slog.Error("Failed to set up demo user", "error", err)
		os.Exit(1)
	}
	slog.Info("Seeding data for user", "email", user.Email)

	store, err := findOrCreateDemoStore(ctx, storeRepo, user.ID)
	if err != nil {
		slog.Error("Failed to set up demo store", "error", err)
		os.Exit(1)
	}

	if err := ensureIntegrations(ctx, integrationRepo, store); err != nil {
		slog.Error("Failed to set up integrations", "error", err)
		os.Exit(1)
	}

	// Clear old demo data so reseeding stays idempotent.
	if err := orderRepo.DeleteByStore(ctx, store.ID); err != nil {
		slog.Error("Failed to clear orders", "error", err)
		os.Exit(1)
	}
	if err := spendRepo.DeleteByStore(ctx, store.ID); err != nil {
		slog.Error("Failed to clear ad spend", "error", err)
		os.Exit(1)
	}

	orders, spends := generateDemoData(store.ID)

	if err := orderRepo.CreateBatch(ctx, orders); err != nil {
		slog.Error("Failed to insert orders", "error", err)
		os.Exit(1)
	}
	if err := spendRepo.CreateBatch(ctx, spends); err != nil {
		slog.Error("Failed to insert ad spend", "error", err)
		os.Exit(1)
	}

	slog.Info("Seeding complete",
		"orders", len(orders),
		"spend_records", len(spends),
	)
}

func findOrCreateDemoUser(ctx context.Context, userRepo adapter.UserRepository) (*entity.User, error) {
	user, err := userRepo.FindByEmail(ctx, demoEmail)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domainerror.ErrUserNotFound) {
		return nil, err
	}

	hash, err := adapters.NewPasswordService().HashPassword(demoPassword)
	if err != nil {
		return nil, err
	}

	user = entity.NewUser(demoEmail, demoName, hash)
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func findOrCreateDemoStore(ctx context.Context, storeRepo adapter.StoreRepository, ownerID uuid.UUID) (*entity.Store, error) {
	store, err := storeRepo.FindByOwner(ctx, ownerID)
	if err == nil {
		return store, nil
	}
	if !errors.Is(err, domainerror.ErrStoreNotFound) {
		return nil, err
	}

	store = entity.NewStore(ownerID, "My Demo Brand", "demo-brand.myshopify.com", "mock-token")
	if err := storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

func ensureIntegrations(ctx context.Context, integrationRepo adapter.IntegrationRepository, store *entity.Store) error {
	providers := []entity.IntegrationProvider{
		entity.IntegrationProviderShopify,
		entity.IntegrationProviderMeta,
		entity.IntegrationProviderTikTok,
	}
	for _, provider := range providers {
		_, err := integrationRepo.FindByStoreAndProvider(ctx, store.ID, provider)
		if err == nil {
			continue
		}
		if !errors.Is(err, domainerror.ErrIntegrationNotFound) {
			return err
		}
		created := entity.NewIntegration(store.ID, provider, string(provider)+" Account", "mock-token")
		if err := integrationRepo.Create(ctx, created); err != nil {
			return err
		}
	}
	return nil
}

// generateDemoData builds 30 days of paid orders and correlated META/TIKTOK
// ad spend, with a weekend bump in order volume.
func generateDemoData(storeID uuid.UUID) ([]entity.OrderRecord, []entity.SpendRecord) {
	var orders []entity.OrderRecord
	var spends []entity.SpendRecord

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, time.UTC)

	for i := 29; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)

		volumeMultiplier := 1.0
		if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
			volumeMultiplier = 1.5
		}
		orderCount := int((rand.Float64()*20 + 10) * volumeMultiplier)

		for j := 0; j < orderCount; j++ {
			orderTotal := decimal.NewFromFloat(rand.Float64()*100 + 40).Round(2)
			shipping := decimal.NewFromFloat(9.99)
			cogs := orderTotal.Mul(decimal.NewFromFloat(0.3)).Round(2)
			gatewayFee := orderTotal.Mul(decimal.NewFromFloat(0.029)).Add(decimal.NewFromFloat(0.30)).Round(2)

			orders = append(orders, entity.OrderRecord{
				ID:                uuid.New(),
				StoreID:           storeID,
				ExternalID:        fmt.Sprintf("ORD-%d-%d", date.Unix(), j),
				OrderName:         fmt.Sprintf("#%d", 1000+i*100+j),
				TotalSales:        orderTotal,
				NetSales:          orderTotal.Sub(shipping),
				ShippingCost:      shipping,
				COGS:              cogs,
				PaymentGatewayFee: gatewayFee,
				Currency:          "USD",
				FinancialStatus:   entity.FinancialStatusPaid,
				ProcessedAt:       date,
				CreatedAt:         now,
				UpdatedAt:         now,
			})
		}

		// Ad spend tracks order volume at a $10-$25 cost per order,
		// split 70/30 between META and TIKTOK.
		dailyAdSpend := decimal.NewFromFloat(float64(orderCount) * (rand.Float64()*15 + 10))

		spends = append(spends,
			entity.SpendRecord{
				ID:        uuid.New(),
				StoreID:   storeID,
				Channel:   entity.SpendChannelMeta,
				Date:      date,
				Amount:    dailyAdSpend.Mul(decimal.NewFromFloat(0.7)).Round(2),
				Currency:  "USD",
				CreatedAt: now,
				UpdatedAt: now,
			},
			entity.SpendRecord{
				ID:        uuid.New(),
				StoreID:   storeID,
				Channel:   entity.SpendChannelTikTok,
				Date:      date,
				Amount:    dailyAdSpend.Mul(decimal.NewFromFloat(0.3)).Round(2),
				Currency:  "USD",
				CreatedAt: now,
				UpdatedAt: now,
			},
		)
	}

	return orders, spends
}
