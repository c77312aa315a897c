package domain

// ScheduleConfig represents the business day of the practice
// Рабочие часы - полуинтервал [Start, End), перерыв - полуинтервал
// [BreakStart, BreakEnd), исключаемый из набора слотов
type ScheduleConfig struct {
	Start      int  // Час открытия (включительно)
	End        int  // Час закрытия (не включительно)
	BreakStart *int // Начало перерыва (опционально)
	BreakEnd   *int // Конец перерыва (опционально)
}

// HasBreak returns true if a break interval is configured
func (s ScheduleConfig) HasBreak() bool {
	return s.BreakStart != nil && s.BreakEnd != nil
}

// IsBreakHour returns true if the hour falls inside the configured break
func (s ScheduleConfig) IsBreakHour(hour int) bool {
	if !s.HasBreak() {
		return false
	}
	return hour >= *s.BreakStart && hour < *s.BreakEnd
}

// IsValid проверяет базовый инвариант Start < End
// Некорректная конфигурация дает пустой список слотов, а не ошибку
func (s ScheduleConfig) IsValid() bool {
	return s.Start < s.End
}

// ContainsHour returns true if the hour is a bookable slot hour
// (внутри рабочего дня и вне перерыва)
func (s ScheduleConfig) ContainsHour(hour int) bool {
	if hour < s.Start || hour >= s.End {
		return false
	}
	return !s.IsBreakHour(hour)
}
