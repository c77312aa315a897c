package domain

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM, ключ месячной выручки
)

// GuestUserID используется, когда у сессии не установлена личность
// Это валидное постоянное состояние, а не ошибка
const GuestUserID = "guest"

// Default schedule values (рабочий день практики)
const (
	DefaultScheduleStart = 9  // 9:00
	DefaultScheduleEnd   = 20 // 20:00 (не включительно)
	DefaultBreakStart    = 14 // Начало обеденного перерыва
	DefaultBreakEnd      = 16 // Конец обеденного перерыва
)

// RecentCancelledLimit количество отменённых бронирований,
// показываемых в сводке агенды
const RecentCancelledLimit = 3
