package get_day_bookings

import (
	"context"

	getAgenda "github.com/osteosalud/booking-service/internal/usecase/get_agenda"
)

// GetAgendaUseCase интерфейс use case получения агенды
type GetAgendaUseCase interface {
	Execute(ctx context.Context, req *getAgenda.Request) (*getAgenda.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
