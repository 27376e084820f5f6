package get_generation

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
	msgInvalidGenerationID = "некорректный ID прогона генерации"
	msgNotFound            = "прогон генерации не найден"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgForbidden           = "доступ запрещен"
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

// Handle GET /api/v1/generations/{generationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	generationID, err := strconv.ParseInt(vars["generationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /generations/{id} - Invalid generation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGenerationID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /generations/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	generation, err := h.service.GetByID(r.Context(), generationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, generations.ErrGenerationNotFound):
			h.logger.Warn("GET /generations/{id} - Generation not found: generation_id=%d", generationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, generations.ErrAccessDenied):
			h.logger.Warn("GET /generations/{id} - Access denied: generation_id=%d, user_id=%d",
				generationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, generations.ErrInvalidInput):
			h.logger.Warn("GET /generations/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidGenerationID)

		default:
			h.logger.Error("GET /generations/{id} - Failed to get generation: generation_id=%d, error=%v",
				generationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /generations/{id} - Generation retrieved: generation_id=%d, slots=%d",
		generationID, len(generation.Slots))
	handlers.RespondJSON(w, http.StatusOK, generation)
}
