package cancel_booking

// CancelBookingResponse HTTP модель ответа на отмену
type CancelBookingResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
