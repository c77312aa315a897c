package bookingmem

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osteosalud/booking-service/internal/domain"
	bookingRepo "github.com/osteosalud/booking-service/internal/infra/storage/booking"
	"github.com/osteosalud/booking-service/pkg/ptr"
)

func newBooking(date, timeLabel, userID string) *domain.Booking {
	return &domain.Booking{
		ServiceID:     1,
		ServiceName:   "Osteopatía General",
		Price:         60,
		Date:          date,
		Time:          timeLabel,
		ClientName:    "Ana",
		ClientPhone:   "600111222",
		ClientAddress: "Calle Sol 5",
		ClientCity:    "Madrid",
		UserID:        userID,
		Status:        domain.StatusConfirmed,
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo := NewRepository(nil)
	ctx := context.Background()

	created, err := repo.Create(ctx, newBooking("2025-06-10", "10:00", "user-1"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-10", got.Date)
	assert.Equal(t, "10:00", got.Time)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo := NewRepository(nil)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, bookingRepo.ErrBookingNotFound)
}

func TestRepository_Create_SlotTaken(t *testing.T) {
	repo := NewRepository(nil)
	ctx := context.Background()

	_, err := repo.Create(ctx, newBooking("2025-06-10", "10:00", "user-1"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newBooking("2025-06-10", "10:00", "user-2"))
	assert.ErrorIs(t, err, bookingRepo.ErrSlotTaken)

	// Другой час на ту же дату свободен
	_, err = repo.Create(ctx, newBooking("2025-06-10", "11:00", "user-2"))
	assert.NoError(t, err)
}

func TestRepository_Cancel_FreesSlotAndIsIdempotent(t *testing.T) {
	repo := NewRepository(nil)
	ctx := context.Background()

	created, err := repo.Create(ctx, newBooking("2025-06-10", "10:00", "user-1"))
	require.NoError(t, err)

	require.NoError(t, repo.Cancel(ctx, created.ID))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, got.Status)

	// Повторная отмена - no-op, состояние не меняется
	require.NoError(t, repo.Cancel(ctx, created.ID))
	got, err = repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, got.Status)

	// Слот освободился
	_, err = repo.Create(ctx, newBooking("2025-06-10", "10:00", "user-2"))
	assert.NoError(t, err)
}

func TestRepository_Reschedule(t *testing.T) {
	repo := NewRepository(nil)
	ctx := context.Background()

	first, err := repo.Create(ctx, newBooking("2025-06-10", "10:00", "user-1"))
	require.NoError(t, err)
	second, err := repo.Create(ctx, newBooking("2025-06-10", "11:00", "user-2"))
	require.NoError(t, err)

	// Перенос на занятый слот отклоняется
	err = repo.Reschedule(ctx, second.ID, "2025-06-10", "10:00")
	assert.ErrorIs(t, err, bookingRepo.ErrSlotTaken)

	// Перенос на свободный слот проходит
	require.NoError(t, repo.Reschedule(ctx, second.ID, "2025-06-11", "9:00"))
	got, err := repo.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-11", got.Date)
	assert.Equal(t, "9:00", got.Time)

	// Перенос на собственный прежний слот не конфликтует сам с собой
	require.NoError(t, repo.Reschedule(ctx, first.ID, "2025-06-10", "10:00"))
}

func TestRepository_List_Filters(t *testing.T) {
	repo := NewRepository(nil)
	ctx := context.Background()

	b1, err := repo.Create(ctx, newBooking("2025-06-10", "10:00", "user-1"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newBooking("2025-06-11", "9:00", "user-2"))
	require.NoError(t, err)
	b3, err := repo.Create(ctx, newBooking("2025-06-12", "12:00", "user-1"))
	require.NoError(t, err)

	require.NoError(t, repo.Cancel(ctx, b3.ID))

	t.Run("by user excludes cancelled by default", func(t *testing.T) {
		result, err := repo.List(ctx, domain.BookingsFilter{UserID: ptr.Ptr("user-1")})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, b1.ID, result[0].ID)
	})

	t.Run("include cancelled", func(t *testing.T) {
		result, err := repo.List(ctx, domain.BookingsFilter{UserID: ptr.Ptr("user-1"), IncludeCancelled: true})
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("by date", func(t *testing.T) {
		result, err := repo.List(ctx, domain.BookingsFilter{Date: ptr.Ptr("2025-06-11")})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "user-2", result[0].UserID)
	})

	t.Run("by period", func(t *testing.T) {
		result, err := repo.List(ctx, domain.BookingsFilter{
			FromDate:         ptr.Ptr("2025-06-11"),
			ToDate:           ptr.Ptr("2025-06-12"),
			IncludeCancelled: true,
		})
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("by status", func(t *testing.T) {
		status := domain.StatusCancelled
		result, err := repo.List(ctx, domain.BookingsFilter{Status: &status})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, b3.ID, result[0].ID)
	})
}

func TestDemoBookings(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	seed := DemoBookings(now)

	require.Len(t, seed, 1)
	assert.Equal(t, "2025-06-10", seed[0].Date)
	assert.Equal(t, "10:00", seed[0].Time)
	assert.True(t, seed[0].IsActive())

	repo := NewRepository(seed)
	got, err := repo.GetByID(context.Background(), "demo-1")
	require.NoError(t, err)
	assert.Equal(t, "Usuario Demo", got.ClientName)
}
