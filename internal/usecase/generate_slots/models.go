package generate_slots

import "time"

// Request входные данные для генерации слотов
type Request struct {
	BookingTypeID int64
	UserID        int64
	StartDate     time.Time
	EndDate       time.Time
}

// Response результат генерации слотов
type Response struct {
	GenerationID  int64 `json:"generationId"`
	CreatedCount  int   `json:"createdCount"`
	SkippedCount  int   `json:"skippedCount"`
	ExistingCount int   `json:"existingCount"`
}
