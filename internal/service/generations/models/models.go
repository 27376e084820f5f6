package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

// GenerationResponse запись прогона генерации слотов
type GenerationResponse struct {
	ID            int64     `json:"id"`
	BookingTypeID int64     `json:"bookingTypeId"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	TriggeredBy   int64     `json:"triggeredBy,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// GenerationListResponse история прогонов генерации типа бронирования
type GenerationListResponse struct {
	Generations []*GenerationResponse `json:"generations"`
	Total       int                   `json:"total"`
}

// GenerationSlotResponse слот в составе прогона генерации
type GenerationSlotResponse struct {
	ID        int64     `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`
}

// GenerationDetailResponse прогон генерации вместе с порожденными слотами
type GenerationDetailResponse struct {
	GenerationResponse
	Slots []*GenerationSlotResponse `json:"slots"`
}

// FromDomainGeneration конвертирует domain-модель в ответ API
func FromDomainGeneration(gen *domain.SlotTimesGeneration) *GenerationResponse {
	return &GenerationResponse{
		ID:            gen.ID,
		BookingTypeID: gen.BookingTypeID,
		StartDate:     gen.StartDate.Format(domain.DateFormat),
		EndDate:       gen.EndDate.Format(domain.DateFormat),
		TriggeredBy:   ptr.Deref(gen.UserID),
		CreatedAt:     gen.CreatedAt,
	}
}

// FromDomainGenerationList конвертирует слайс domain-моделей в ответ API
func FromDomainGenerationList(generations []*domain.SlotTimesGeneration) *GenerationListResponse {
	responses := make([]*GenerationResponse, 0, len(generations))
	for _, gen := range generations {
		responses = append(responses, FromDomainGeneration(gen))
	}
	return &GenerationListResponse{
		Generations: responses,
		Total:       len(responses),
	}
}

// FromDomainGenerationDetail собирает прогон вместе с его слотами
func FromDomainGenerationDetail(gen *domain.SlotTimesGeneration, slots []*domain.SlotTime) *GenerationDetailResponse {
	slotResponses := make([]*GenerationSlotResponse, 0, len(slots))
	for _, slot := range slots {
		slotResponses = append(slotResponses, &GenerationSlotResponse{
			ID:        slot.ID,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Status:    string(slot.Status),
		})
	}
	return &GenerationDetailResponse{
		GenerationResponse: *FromDomainGeneration(gen),
		Slots:              slotResponses,
	}
}
