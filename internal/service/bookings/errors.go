package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidBookingDate возвращается при некорректной дате бронирования
	ErrInvalidBookingDate = errors.New("invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда метка времени не входит в расписание
	ErrInvalidTimeSlot = errors.New("invalid time slot")

	// ErrSlotNotAvailable возвращается, когда целевой слот уже занят
	ErrSlotNotAvailable = errors.New("slot not available")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
