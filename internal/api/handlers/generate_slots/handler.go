package generate_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	generateSlots "github.com/m04kA/SMC-ReservationService/internal/usecase/generate_slots"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidBookingTypeID = "некорректный ID типа бронирования"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgBookingTypeNotFound  = "тип бронирования не найден"
	msgNoPatterns           = "у типа бронирования нет шаблонов слотов"
	msgInvalidDateRange     = "некорректный диапазон дат"
	msgForbidden            = "доступ запрещен"
	msgUserNotFound         = "пользователь не найден"
	msgInvalidInput         = "некорректные входные данные"
)

type Handler struct {
	useCase GenerateSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GenerateSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking-types/{bookingTypeId}/generations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingTypeID, err := strconv.ParseInt(vars["bookingTypeId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /booking-types/{id}/generations - Invalid booking type ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingTypeID)
		return
	}

	var req GenerateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-types/{id}/generations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /booking-types/{id}/generations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingTypeID, userID)
	if err != nil {
		h.logger.Warn("POST /booking-types/{id}/generations - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, generateSlots.ErrBookingTypeNotFound):
			h.logger.Warn("POST /booking-types/{id}/generations - Booking type not found: booking_type_id=%d", bookingTypeID)
			handlers.RespondNotFound(w, msgBookingTypeNotFound)

		case errors.Is(err, generateSlots.ErrNoPatterns):
			h.logger.Warn("POST /booking-types/{id}/generations - No patterns: booking_type_id=%d", bookingTypeID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNoPatterns)

		case errors.Is(err, generateSlots.ErrInvalidDateRange):
			h.logger.Warn("POST /booking-types/{id}/generations - Invalid date range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, generateSlots.ErrInvalidSlotLength):
			h.logger.Warn("POST /booking-types/{id}/generations - Invalid slot length: booking_type_id=%d", bookingTypeID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidInput)

		case errors.Is(err, generateSlots.ErrAccessDenied):
			h.logger.Warn("POST /booking-types/{id}/generations - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, generateSlots.ErrUserNotFound):
			h.logger.Warn("POST /booking-types/{id}/generations - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, generateSlots.ErrInvalidInput):
			h.logger.Warn("POST /booking-types/{id}/generations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /booking-types/{id}/generations - Failed to generate slots: booking_type_id=%d, error=%v",
				bookingTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-types/{id}/generations - Slots generated: generation_id=%d, created=%d, existing=%d, skipped=%d",
		result.GenerationID, result.CreatedCount, result.ExistingCount, result.SkippedCount)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
