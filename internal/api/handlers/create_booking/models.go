package create_booking

import (
	"time"

	createBooking "github.com/osteosalud/booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID     int64  `json:"serviceId"`
	Date          string `json:"date"` // "2025-06-10"
	Time          string `json:"time"` // "10:00"
	ClientName    string `json:"clientName"`
	ClientPhone   string `json:"clientPhone"`
	ClientAddress string `json:"clientAddress"`
	ClientCity    string `json:"clientCity"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            string  `json:"id"`
	ServiceID     int64   `json:"serviceId"`
	ServiceName   string  `json:"serviceName"`
	Price         float64 `json:"price"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	ClientName    string  `json:"clientName"`
	ClientPhone   string  `json:"clientPhone"`
	ClientAddress string  `json:"clientAddress"`
	ClientCity    string  `json:"clientCity"`
	UserID        string  `json:"userId"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"` // ISO 8601
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Идентификатор сессии приходит не из тела, а из контекста запроса
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) *createBooking.Request {
	return &createBooking.Request{
		ServiceID:     r.ServiceID,
		Date:          r.Date,
		Time:          r.Time,
		ClientName:    r.ClientName,
		ClientPhone:   r.ClientPhone,
		ClientAddress: r.ClientAddress,
		ClientCity:    r.ClientCity,
		UserID:        userID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		ServiceID:     resp.ServiceID,
		ServiceName:   resp.ServiceName,
		Price:         resp.Price,
		Date:          resp.Date,
		Time:          resp.Time,
		ClientName:    resp.ClientName,
		ClientPhone:   resp.ClientPhone,
		ClientAddress: resp.ClientAddress,
		ClientCity:    resp.ClientCity,
		UserID:        resp.UserID,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
