package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// BookingTypeResponse тип бронирования в ответе API.
// Адреса уведомлений наружу не отдаются.
type BookingTypeResponse struct {
	ID                int64     `json:"id"`
	Title             string    `json:"title"`
	Slug              string    `json:"slug"`
	SlotLengthMinutes int       `json:"slotLengthMinutes"`
	Intro             string    `json:"intro,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// BookingTypeListResponse список типов бронирования
type BookingTypeListResponse struct {
	BookingTypes []*BookingTypeResponse `json:"bookingTypes"`
	Total        int                    `json:"total"`
}

// FromDomainBookingType конвертирует domain-модель в ответ API
func FromDomainBookingType(bt *domain.BookingType) *BookingTypeResponse {
	return &BookingTypeResponse{
		ID:                bt.ID,
		Title:             bt.Title,
		Slug:              bt.Slug,
		SlotLengthMinutes: bt.SlotLengthMinutes,
		Intro:             bt.Intro,
		CreatedAt:         bt.CreatedAt,
		UpdatedAt:         bt.UpdatedAt,
	}
}

// FromDomainBookingTypeList конвертирует слайс domain-моделей в ответ API
func FromDomainBookingTypeList(bookingTypes []*domain.BookingType) *BookingTypeListResponse {
	responses := make([]*BookingTypeResponse, 0, len(bookingTypes))
	for _, bt := range bookingTypes {
		responses = append(responses, FromDomainBookingType(bt))
	}
	return &BookingTypeListResponse{
		BookingTypes: responses,
		Total:        len(responses),
	}
}
