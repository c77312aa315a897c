package get_revenue

import (
	"context"

	getRevenue "github.com/osteosalud/booking-service/internal/usecase/get_revenue"
)

// GetRevenueUseCase интерфейс use case отчета о выручке
type GetRevenueUseCase interface {
	Execute(ctx context.Context, req *getRevenue.Request) (*getRevenue.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
