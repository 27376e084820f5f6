package get_booking_type

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/bookingtypes"
)

const msgNotFound = "тип бронирования не найден"

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

// Handle GET /api/v1/booking-types/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	result, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, bookingtypes.ErrBookingTypeNotFound):
			h.logger.Warn("GET /booking-types/{slug} - Booking type not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /booking-types/{slug} - Failed to get booking type: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /booking-types/{slug} - Booking type retrieved: slug=%s", slug)
	handlers.RespondJSON(w, http.StatusOK, result)
}
