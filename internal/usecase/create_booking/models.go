package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	ServiceID     int64  // ID услуги из каталога
	Date          string // Дата бронирования "YYYY-MM-DD"
	Time          string // Метка слота "H:00"
	ClientName    string // Имя клиента
	ClientPhone   string // Телефон клиента
	ClientAddress string // Адрес визита (практика выездная)
	ClientCity    string // Город
	UserID        string // Идентификатор сессии, пустой -> guest
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID string // ID созданного бронирования

	// Снимок услуги на момент бронирования
	ServiceID   int64
	ServiceName string
	Price       float64

	Date string
	Time string

	ClientName    string
	ClientPhone   string
	ClientAddress string
	ClientCity    string

	UserID    string
	Status    string
	CreatedAt time.Time
}
