package list_booking_types

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

type Handler struct {
	service BookingTypeService
	logger  Logger
}

func NewHandler(service BookingTypeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /booking-types - Failed to list booking types: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /booking-types - Booking types retrieved: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
