package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/profitpulse/backend/internal/domain/entity"
)

func newSpend(storeID uuid.UUID, channel entity.SpendChannel, date time.Time, amount float64) entity.SpendRecord {
	now := time.Now().UTC()
	return entity.SpendRecord{
		ID:        uuid.New(),
		StoreID:   storeID,
		Channel:   channel,
		Date:      date,
		Amount:    decimal.NewFromFloat(amount),
		Currency:  "USD",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestSpendRepositorySpendInRange(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 5, 7, 0, 0, 0, 0, time.UTC)

	t.Run("should return spend inside the range sorted by date", func(t *testing.T) {
		repo := NewSpendRepository(newTestDB(t))
		err := repo.CreateBatch(ctx, []entity.SpendRecord{
			newSpend(storeID, entity.SpendChannelTikTok, start.AddDate(0, 0, 3), 45),
			newSpend(storeID, entity.SpendChannelMeta, start, 120),
			newSpend(storeID, entity.SpendChannelMeta, end.AddDate(0, 0, 1), 60),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		spends, err := repo.SpendInRange(ctx, storeID, start, end)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(spends) != 2 {
			t.Fatalf("expected 2 spend records, got %d", len(spends))
		}
		if spends[0].Channel != entity.SpendChannelMeta || spends[1].Channel != entity.SpendChannelTikTok {
			t.Errorf("expected chronological order, got %s then %s", spends[0].Channel, spends[1].Channel)
		}
		if !spends[0].Amount.Equal(decimal.NewFromInt(120)) {
			t.Errorf("expected amount 120, got %s", spends[0].Amount)
		}
	})

	t.Run("should not return spend of another store", func(t *testing.T) {
		repo := NewSpendRepository(newTestDB(t))
		err := repo.CreateBatch(ctx, []entity.SpendRecord{
			newSpend(uuid.New(), entity.SpendChannelMeta, start, 99),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		spends, err := repo.SpendInRange(ctx, storeID, start, end)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(spends) != 0 {
			t.Errorf("expected no spend records, got %d", len(spends))
		}
	})
}

func TestSpendRepositoryByStore(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should return the full history oldest first", func(t *testing.T) {
		repo := NewSpendRepository(newTestDB(t))
		err := repo.CreateBatch(ctx, []entity.SpendRecord{
			newSpend(storeID, entity.SpendChannelTikTok, base.AddDate(0, 0, 30), 10),
			newSpend(storeID, entity.SpendChannelMeta, base, 20),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		spends, err := repo.ByStore(ctx, storeID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(spends) != 2 {
			t.Fatalf("expected 2 spend records, got %d", len(spends))
		}
		if !spends[0].Date.Before(spends[1].Date) {
			t.Errorf("expected oldest record first, got %s then %s", spends[0].Date, spends[1].Date)
		}
	})
}

func TestSpendRepositoryDeleteByStore(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()
	otherStoreID := uuid.New()
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should delete only the spend of the given store", func(t *testing.T) {
		repo := NewSpendRepository(newTestDB(t))
		err := repo.CreateBatch(ctx, []entity.SpendRecord{
			newSpend(storeID, entity.SpendChannelMeta, base, 10),
			newSpend(otherStoreID, entity.SpendChannelMeta, base, 20),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if err := repo.DeleteByStore(ctx, storeID); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		spends, err := repo.ByStore(ctx, storeID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(spends) != 0 {
			t.Errorf("expected store spend gone, got %d", len(spends))
		}

		otherSpends, err := repo.ByStore(ctx, otherStoreID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(otherSpends) != 1 {
			t.Errorf("expected other store untouched, got %d", len(otherSpends))
		}
	})
}
