package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// CreatePatternRequest запрос на создание паттерна
type CreatePatternRequest struct {
	BookingTypeID int64
	UserID        int64
	Weekday       int
	StartTime     types.TimeString
	EndTime       types.TimeString
}

// PatternResponse паттерн в ответе API
type PatternResponse struct {
	ID            int64     `json:"id"`
	BookingTypeID int64     `json:"bookingTypeId"`
	Weekday       int       `json:"weekday"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// PatternListResponse список паттернов типа бронирования
type PatternListResponse struct {
	Patterns []*PatternResponse `json:"patterns"`
	Total    int                `json:"total"`
}

// FromDomainPattern конвертирует domain-модель в ответ API
func FromDomainPattern(p *domain.SlotTimePattern) *PatternResponse {
	return &PatternResponse{
		ID:            p.ID,
		BookingTypeID: p.BookingTypeID,
		Weekday:       p.Weekday,
		StartTime:     p.StartTime.String(),
		EndTime:       p.EndTime.String(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// FromDomainPatternList конвертирует слайс domain-моделей в ответ API
func FromDomainPatternList(patterns []*domain.SlotTimePattern) *PatternListResponse {
	responses := make([]*PatternResponse, 0, len(patterns))
	for _, p := range patterns {
		responses = append(responses, FromDomainPattern(p))
	}
	return &PatternListResponse{
		Patterns: responses,
		Total:    len(responses),
	}
}
