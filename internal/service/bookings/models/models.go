package models

import (
	"errors"
	"time"

	"github.com/osteosalud/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// RescheduleBookingRequest запрос на перенос бронирования
type RescheduleBookingRequest struct {
	Date string `json:"date"` // Новая дата "YYYY-MM-DD"
	Time string `json:"time"` // Новая метка слота "H:00"
}

// ListBookingsRequest запрос на выборку бронирований с фильтрацией
type ListBookingsRequest struct {
	Date             *string `json:"date,omitempty"`             // Конкретная дата (опционально)
	FromDate         *string `json:"fromDate,omitempty"`         // Начало периода (опционально)
	ToDate           *string `json:"toDate,omitempty"`           // Конец периода (опционально)
	Status           *string `json:"status,omitempty"`           // Фильтр по статусу (опционально)
	IncludeCancelled bool    `json:"includeCancelled,omitempty"` // Включить отмененные
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Date:             r.Date,
		FromDate:         r.FromDate,
		ToDate:           r.ToDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
		// Явный фильтр по статусу имеет смысл только поверх полной выборки
		filter.IncludeCancelled = true
	}
	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID string `json:"id"`

	ServiceID   int64   `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	Price       float64 `json:"price"`

	Date string `json:"date"` // "2025-06-10"
	Time string `json:"time"` // "10:00"

	ClientName    string `json:"clientName"`
	ClientPhone   string `json:"clientPhone"`
	ClientAddress string `json:"clientAddress"`
	ClientCity    string `json:"clientCity"`

	UserID    string    `json:"userId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}
	return &BookingResponse{
		ID:            b.ID,
		ServiceID:     b.ServiceID,
		ServiceName:   b.ServiceName,
		Price:         b.Price,
		Date:          b.Date,
		Time:          b.Time,
		ClientName:    b.ClientName,
		ClientPhone:   b.ClientPhone,
		ClientAddress: b.ClientAddress,
		ClientCity:    b.ClientCity,
		UserID:        b.UserID,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{Bookings: make([]BookingResponse, 0, len(bookings))}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}

// ToDomainBookingStatus валидирует и конвертирует строковый статус
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(status) {
	case domain.StatusConfirmed:
		return domain.StatusConfirmed, nil
	case domain.StatusCancelled:
		return domain.StatusCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}
