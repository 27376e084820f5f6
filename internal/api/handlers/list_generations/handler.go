package list_generations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/service/generations"
)

const (
	msgInvalidBookingTypeID = "некорректный ID типа бронирования"
	msgBookingTypeNotFound  = "тип бронирования не найден"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "доступ запрещен"
)

type Handler struct {
	service GenerationService
	logger  Logger
}

func NewHandler(service GenerationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-types/{bookingTypeId}/generations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingTypeID, err := strconv.ParseInt(vars["bookingTypeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /booking-types/{id}/generations - Invalid booking type ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingTypeID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /booking-types/{id}/generations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.ListByBookingType(r.Context(), bookingTypeID, userID)
	if err != nil {
		switch {
		case errors.Is(err, generations.ErrBookingTypeNotFound):
			h.logger.Warn("GET /booking-types/{id}/generations - Booking type not found: booking_type_id=%d",
				bookingTypeID)
			handlers.RespondNotFound(w, msgBookingTypeNotFound)

		case errors.Is(err, generations.ErrAccessDenied):
			h.logger.Warn("GET /booking-types/{id}/generations - Access denied: booking_type_id=%d, user_id=%d",
				bookingTypeID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, generations.ErrInvalidInput):
			h.logger.Warn("GET /booking-types/{id}/generations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBookingTypeID)

		default:
			h.logger.Error("GET /booking-types/{id}/generations - Failed to list generations: booking_type_id=%d, error=%v",
				bookingTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /booking-types/{id}/generations - Generations retrieved: booking_type_id=%d, total=%d",
		bookingTypeID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
