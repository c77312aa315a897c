package get_available_slots

import (
	getAvailableSlots "github.com/osteosalud/booking-service/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	Time    string `json:"time"`
	IsTaken bool   `json:"isTaken"`
}

// AvailableSlotsResponse HTTP модель ответа со слотами дня
type AvailableSlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
	Free  []string       `json:"free"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		Date:  resp.Date,
		Slots: make([]SlotResponse, 0, len(resp.Slots)),
		Free:  resp.Free,
	}
	if out.Free == nil {
		out.Free = []string{}
	}
	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{Time: s.Time, IsTaken: s.IsTaken})
	}
	return out
}
