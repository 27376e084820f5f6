package list_patterns

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/patterns"
)

const (
	msgInvalidBookingTypeID = "некорректный ID типа бронирования"
	msgBookingTypeNotFound  = "тип бронирования не найден"
)

type Handler struct {
	service PatternService
	logger  Logger
}

func NewHandler(service PatternService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-types/{bookingTypeId}/patterns
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingTypeID, err := strconv.ParseInt(vars["bookingTypeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /booking-types/{id}/patterns - Invalid booking type ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingTypeID)
		return
	}

	result, err := h.service.ListByBookingType(r.Context(), bookingTypeID)
	if err != nil {
		switch {
		case errors.Is(err, patterns.ErrBookingTypeNotFound):
			h.logger.Warn("GET /booking-types/{id}/patterns - Booking type not found: booking_type_id=%d", bookingTypeID)
			handlers.RespondNotFound(w, msgBookingTypeNotFound)

		default:
			h.logger.Error("GET /booking-types/{id}/patterns - Failed to list patterns: booking_type_id=%d, error=%v",
				bookingTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /booking-types/{id}/patterns - Patterns retrieved: booking_type_id=%d, total=%d",
		bookingTypeID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
