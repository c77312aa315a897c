package domain

// Service represents an entry of the static service catalog
// Каталог задается конфигурацией и не изменяется во время работы
type Service struct {
	ID              int64
	Title           string
	Description     string
	Price           float64
	DurationMinutes int
	DisplayHint     string // Подсказка оформления для клиента (цвет карточки)
}

// BusinessInfo контактные данные практики
type BusinessInfo struct {
	Name    string
	Phone   string
	Address string
}
