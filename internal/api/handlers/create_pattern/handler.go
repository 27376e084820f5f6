package create_pattern

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/service/patterns"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidBookingTypeID = "некорректный ID типа бронирования"
	msgInvalidTime          = "некорректный формат времени, ожидается HH:MM"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgBookingTypeNotFound  = "тип бронирования не найден"
	msgDuplicatePattern     = "шаблон с таким днем недели и временем начала уже существует"
	msgInvalidWindow        = "некорректное окно шаблона"
	msgForbidden            = "доступ запрещен"
	msgInvalidInput         = "некорректные входные данные"
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

// Handle POST /api/v1/booking-types/{bookingTypeId}/patterns
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingTypeID, err := strconv.ParseInt(vars["bookingTypeId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /booking-types/{id}/patterns - Invalid booking type ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingTypeID)
		return
	}

	var req CreatePatternRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-types/{id}/patterns - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /booking-types/{id}/patterns - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	serviceReq, err := req.ToServiceRequest(bookingTypeID, userID)
	if err != nil {
		h.logger.Warn("POST /booking-types/{id}/patterns - Failed to parse time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, patterns.ErrBookingTypeNotFound):
			h.logger.Warn("POST /booking-types/{id}/patterns - Booking type not found: booking_type_id=%d", bookingTypeID)
			handlers.RespondNotFound(w, msgBookingTypeNotFound)

		case errors.Is(err, patterns.ErrDuplicatePattern):
			h.logger.Warn("POST /booking-types/{id}/patterns - Duplicate pattern: booking_type_id=%d, weekday=%d",
				bookingTypeID, req.Weekday)
			handlers.RespondError(w, http.StatusConflict, msgDuplicatePattern)

		case errors.Is(err, patterns.ErrInvalidWindow):
			h.logger.Warn("POST /booking-types/{id}/patterns - Invalid window: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, patterns.ErrAccessDenied):
			h.logger.Warn("POST /booking-types/{id}/patterns - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, patterns.ErrInvalidInput):
			h.logger.Warn("POST /booking-types/{id}/patterns - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /booking-types/{id}/patterns - Failed to create pattern: booking_type_id=%d, error=%v",
				bookingTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-types/{id}/patterns - Pattern created: pattern_id=%d, booking_type_id=%d",
		result.ID, bookingTypeID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
