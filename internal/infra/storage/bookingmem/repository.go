// Package bookingmem хранит бронирования в памяти
// Используется в демо-режиме, когда база данных недоступна или
// отключена конфигурацией: сервис остается рабочим на неперсистентном
// наборе данных вместо аварийного завершения
package bookingmem

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osteosalud/booking-service/internal/domain"
	bookingRepo "github.com/osteosalud/booking-service/internal/infra/storage/booking"
)

// Repository in-memory репозиторий бронирований
// Контракт совпадает с booking.Repository, включая сигнальные ошибки
type Repository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking
	order    []string // порядок вставки, для стабильного результата List
	now      func() time.Time
}

// NewRepository создает репозиторий с начальным набором бронирований
func NewRepository(seed []*domain.Booking) *Repository {
	r := &Repository{
		bookings: make(map[string]*domain.Booking),
		order:    make([]string, 0, len(seed)),
		now:      time.Now,
	}
	for _, b := range seed {
		copied := *b
		if copied.ID == "" {
			copied.ID = uuid.NewString()
		}
		r.bookings[copied.ID] = &copied
		r.order = append(r.order, copied.ID)
	}
	return r
}

// Create создает новое бронирование
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	booking.CreatedAt = r.now()

	// Повторяем защиту уникального индекса Postgres:
	// один подтверждённый слот на пару (date, time)
	if booking.Status == domain.StatusConfirmed {
		for _, existing := range r.bookings {
			if existing.Status == domain.StatusConfirmed &&
				existing.Date == booking.Date && existing.Time == booking.Time {
				return nil, bookingRepo.ErrSlotTaken
			}
		}
	}

	copied := *booking
	r.bookings[copied.ID] = &copied
	r.order = append(r.order, copied.ID)

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}

	copied := *b
	return &copied, nil
}

// List получает бронирования с фильтрацией, семантика повторяет
// booking.Repository.List (сортировка по дате и времени создания)
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, id := range r.order {
		b := r.bookings[id]
		if !matches(b, filter) {
			continue
		}
		copied := *b
		result = append(result, &copied)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

// Cancel переводит бронирование в статус cancelled
// Повторная отмена - no-op
func (r *Repository) Cancel(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}

	b.Status = domain.StatusCancelled
	return nil
}

// Reschedule переносит бронирование на новые дату и время
func (r *Repository) Reschedule(ctx context.Context, id string, date, timeLabel string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}

	if b.Status == domain.StatusConfirmed {
		for otherID, other := range r.bookings {
			if otherID == id {
				continue
			}
			if other.Status == domain.StatusConfirmed &&
				other.Date == date && other.Time == timeLabel {
				return bookingRepo.ErrSlotTaken
			}
		}
	}

	b.Date = date
	b.Time = timeLabel
	return nil
}

func matches(b *domain.Booking, filter domain.BookingsFilter) bool {
	if filter.UserID != nil && b.UserID != *filter.UserID {
		return false
	}
	if filter.Date != nil && b.Date != *filter.Date {
		return false
	}
	if filter.FromDate != nil && b.Date < *filter.FromDate {
		return false
	}
	if filter.ToDate != nil && b.Date > *filter.ToDate {
		return false
	}
	if filter.Status != nil {
		return b.Status == *filter.Status
	}
	if !filter.IncludeCancelled && b.IsCancelled() {
		return false
	}
	return true
}
