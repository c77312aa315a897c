package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/osteosalud/booking-service/internal/domain"
	bookingRepo "github.com/osteosalud/booking-service/internal/infra/storage/booking"
	"github.com/osteosalud/booking-service/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	schedule    domain.ScheduleConfig
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	schedule domain.ScheduleConfig,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		schedule:    schedule,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только свое бронирование, администратор - любое
func (s *Service) GetByID(ctx context.Context, id string, userID string, isAdmin bool) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !isAdmin && booking.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает активные бронирования пользователя
// в хронологическом порядке визитов
func (s *Service) GetUserBookings(ctx context.Context, userID string) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s", userID)

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{
		UserID:           &userID,
		IncludeCancelled: false,
	})
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	sorted := sortChronological(bookings)

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%s", len(sorted), userID)
	return models.FromDomainBookingList(sorted), nil
}

// List получает бронирования с фильтрацией (административная выборка)
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(sortChronological(bookings)), nil
}

// Cancel отменяет бронирование (мягкое удаление - перевод статуса)
// Повторная отмена не является ошибкой
// Пользователь может отменить только свое бронирование, администратор - любое
func (s *Service) Cancel(ctx context.Context, id string, userID string, isAdmin bool) error {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !isAdmin && booking.UserID != userID {
		s.logger.Warn("Cancel: access denied for user=%s to booking id=%s", userID, id)
		return ErrAccessDenied
	}

	if booking.IsCancelled() {
		s.logger.Info("Cancel: booking id=%s already cancelled", id)
		return nil
	}

	if err := s.bookingRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", id)
	return nil
}

// Reschedule переносит бронирование на новые дату и время
// Проверка занятости целевого слота и перенос выполняются в одной
// serializable-транзакции; собственный слот бронирования не считается занятым
func (s *Service) Reschedule(ctx context.Context, id string, req *models.RescheduleBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Reschedule: moving booking id=%s to date=%s time=%s", id, req.Date, req.Time)

	if err := s.validateSlot(req.Date, req.Time); err != nil {
		s.logger.Warn("Reschedule: invalid target slot for booking id=%s: %v", id, err)
		return nil, err
	}

	var updated *domain.Booking

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Reschedule - repository error: %v", ErrInternal, err)
		}

		dayBookings, err := s.bookingRepo.List(txCtx, domain.BookingsFilter{
			Date:             &req.Date,
			IncludeCancelled: false,
		})
		if err != nil {
			return fmt.Errorf("%w: Reschedule - repository error: %v", ErrInternal, err)
		}

		for _, b := range dayBookings {
			if b.ID != booking.ID && b.Time == req.Time {
				return fmt.Errorf("%w: %s %s", ErrSlotNotAvailable, req.Date, req.Time)
			}
		}

		if err := s.bookingRepo.Reschedule(txCtx, id, req.Date, req.Time); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return fmt.Errorf("%w: %s %s", ErrSlotNotAvailable, req.Date, req.Time)
			}
			return fmt.Errorf("%w: Reschedule - repository error: %v", ErrInternal, err)
		}

		moved := *booking
		moved.Date = req.Date
		moved.Time = req.Time
		updated = &moved
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) || errors.Is(err, ErrBookingNotFound) {
			s.logger.Warn("Reschedule: booking id=%s: %v", id, err)
		} else {
			s.logger.Error("Reschedule: booking id=%s: %v", id, err)
		}
		return nil, err
	}

	s.logger.Info("Reschedule: booking id=%s moved to %s %s", id, updated.Date, updated.Time)
	return models.FromDomainBooking(updated), nil
}

// validateSlot проверяет, что дата читается и метка времени
// принадлежит рабочему расписанию
func (s *Service) validateSlot(date, timeLabel string) error {
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidBookingDate, date)
	}
	for h := s.schedule.Start; h < s.schedule.End; h++ {
		if s.schedule.IsBreakHour(h) {
			continue
		}
		if domain.FormatHour(h) == timeLabel {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidTimeSlot, timeLabel)
}

// sortChronological сортирует бронирования по моменту визита
// Записи с нечитаемой датой/временем уходят в конец списка
func sortChronological(bookings []*domain.Booking) []*domain.Booking {
	sorted := make([]*domain.Booking, len(bookings))
	copy(sorted, bookings)

	sort.SliceStable(sorted, func(i, j int) bool {
		ti, errI := sorted[i].StartInstant()
		tj, errJ := sorted[j].StartInstant()
		if errI != nil || errJ != nil {
			return errI == nil && errJ != nil
		}
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	return sorted
}
