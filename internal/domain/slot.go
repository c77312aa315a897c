package domain

// Slot represents a single bookable hour of a business day
type Slot struct {
	Time    string // Метка часа "H:00"
	IsTaken bool   // Занят ли слот активным бронированием
}

// FreeSlots returns only the free subset of slots
// Используется клиентской формой бронирования
func FreeSlots(slots []Slot) []string {
	free := make([]string, 0, len(slots))
	for _, s := range slots {
		if !s.IsTaken {
			free = append(free, s.Time)
		}
	}
	return free
}
