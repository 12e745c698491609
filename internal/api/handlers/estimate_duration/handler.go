package estimate_duration

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	estimateDuration "github.com/m04kA/SMC-SalonService/internal/usecase/estimate_duration"
)

const (
	msgInvalidSalonID     = "некорректный ID салона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSelection   = "некорректный выбор позиций"
	msgSalonNotFound      = "салон не найден"
)

type Handler struct {
	useCase EstimateDurationUseCase
	logger  Logger
}

func NewHandler(useCase EstimateDurationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/salons/{salonId}/duration-estimate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем salonId из URL
	vars := mux.Vars(r)
	salonIDStr := vars["salonId"]

	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /salons/{id}/duration-estimate - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	// Декодируем body
	var req EstimateDurationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /salons/{id}/duration-estimate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Публичный маршрут: ID пользователя опционален, нужен только для логов
	userID := middleware.OptionalUserID(r)

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, salonID))
	if err != nil {
		switch {
		case errors.Is(err, estimateDuration.ErrSalonNotFound):
			h.logger.Warn("POST /salons/{id}/duration-estimate - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, estimateDuration.ErrInvalidInput):
			h.logger.Warn("POST /salons/{id}/duration-estimate - Invalid selection: salon_id=%d, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidSelection)

		default:
			h.logger.Error("POST /salons/{id}/duration-estimate - Failed to estimate duration: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /salons/{id}/duration-estimate - Estimated successfully: salon_id=%d, reserved=%d, working=%d",
		salonID, result.ReservedMinutes, result.WorkingMinutes)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
