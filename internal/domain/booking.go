package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a home-visit appointment in the system
// Бронирования никогда не удаляются физически - отмена выполняется
// переводом статуса в cancelled
type Booking struct {
	ID string // UUID, назначается хранилищем при создании

	// Denormalized snapshot of the chosen service at booking time
	// (каталог может измениться, история бронирований - нет)
	ServiceID   int64
	ServiceName string
	Price       float64

	Date string // Календарная дата "YYYY-MM-DD", сортируется как строка
	Time string // Метка часа "H:00" (без ведущего нуля), сравнивается как строка

	// Контактные данные клиента (визиты на дому)
	ClientName    string
	ClientPhone   string
	ClientAddress string
	ClientCity    string

	UserID    string // Идентификатор сессии клиента, "guest" если не установлен
	Status    BookingStatus
	CreatedAt time.Time
}

// IsActive returns true if the booking has not been cancelled
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// StartInstant комбинирует дату и метку времени бронирования в единый момент
// Используется как канонический ключ хронологической сортировки
// Записи с некорректной датой/временем исключаются из всех представлений
func (b *Booking) StartInstant() (time.Time, error) {
	return CombineDateTime(b.Date, b.Time)
}

// BookingsFilter фильтр для выборки бронирований из хранилища
type BookingsFilter struct {
	UserID           *string        // Фильтр по владельцу (опционально)
	Date             *string        // Конкретная дата "YYYY-MM-DD" (опционально)
	FromDate         *string        // Начало периода включительно (опционально)
	ToDate           *string        // Конец периода включительно (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отменённые бронирования
}

// CombineDateTime парсит дату "YYYY-MM-DD" и метку часа "H:00" или "HH:00"
// в момент времени. Метки времени в данных не дополняются нулями,
// поэтому разбор идет по компонентам, а не через фиксированный layout
func CombineDateTime(date, hourLabel string) (time.Time, error) {
	day, err := time.Parse(DateFormat, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}

	parts := strings.Split(hourLabel, ":")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("invalid time label %q", hourLabel)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("invalid hour in time label %q", hourLabel)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("invalid minute in time label %q", hourLabel)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC), nil
}

// FormatHour форматирует час в метку слота "H:00" без ведущего нуля
// Метки сравниваются строго как строки, "9:00" и "09:00" - разные метки
func FormatHour(hour int) string {
	return strconv.Itoa(hour) + ":00"
}
