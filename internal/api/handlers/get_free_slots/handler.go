package get_free_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	getFreeSlots "github.com/m04kA/SMC-ReservationService/internal/usecase/get_free_slots"
)

const msgInvalidSlug = "некорректный slug типа бронирования"

type Handler struct {
	useCase GetFreeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-types/{slug}/free-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	result, err := h.useCase.Execute(r.Context(), &getFreeSlots.Request{Slug: slug})
	if err != nil {
		switch {
		case errors.Is(err, getFreeSlots.ErrBookingTypeNotFound):
			// Неизвестный slug редиректим на корневую страницу приложения
			fallbackURL := h.useCase.FallbackURL(r.Context())
			h.logger.Warn("GET /booking-types/{slug}/free-slots - Booking type not found, redirecting: slug=%s, url=%s",
				slug, fallbackURL)
			http.Redirect(w, r, fallbackURL, http.StatusSeeOther)

		case errors.Is(err, getFreeSlots.ErrInvalidInput):
			h.logger.Warn("GET /booking-types/{slug}/free-slots - Invalid slug: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlug)

		default:
			h.logger.Error("GET /booking-types/{slug}/free-slots - Failed to get free slots: slug=%s, error=%v",
				slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /booking-types/{slug}/free-slots - Free slots retrieved: slug=%s, months=%d",
		slug, len(result.Months))
	handlers.RespondJSON(w, http.StatusOK, result)
}
