package get_available_slots

import "github.com/osteosalud/booking-service/internal/domain"

// Request модель запроса на получение слотов дня
type Request struct {
	Date             string // Дата "YYYY-MM-DD"
	ExcludeBookingID string // ID бронирования, исключаемого из проверки занятости
	// (режим редактирования: своё текущее время не считается занятым)
}

// Response модель ответа со списком слотов
type Response struct {
	Date  string        // Дата, на которую запрашивались слоты
	Slots []domain.Slot // Все слоты дня с флагом занятости, по возрастанию часа
	Free  []string      // Только свободные метки (для клиентской формы)
}
