package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при незаполненных обязательных полях
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда метка времени не является
	// слотом рабочего расписания
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда слот уже занят
	ErrSlotNotAvailable = errors.New("create_booking: slot not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
