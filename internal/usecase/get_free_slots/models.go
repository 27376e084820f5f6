package get_free_slots

import "time"

// Request входные данные для получения свободных слотов
type Request struct {
	Slug string
}

// Slot свободный слот в ответе
type Slot struct {
	ID              int64     `json:"id"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
}

// MonthGroup слоты одного календарного месяца
type MonthGroup struct {
	Year  int    `json:"year"`
	Month string `json:"month"`
	Slots []Slot `json:"slots"`
}

// Response результат получения свободных слотов
type Response struct {
	BookingTypeID int64        `json:"bookingTypeId"`
	Slug          string       `json:"slug"`
	Title         string       `json:"title"`
	WindowStart   time.Time    `json:"windowStart"`
	WindowEnd     time.Time    `json:"windowEnd"`
	Months        []MonthGroup `json:"months"`
}
