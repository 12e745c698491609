package check_capacity

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	checkCapacity "github.com/m04kA/SMC-SalonService/internal/usecase/check_capacity"
)

const (
	msgInvalidSalonID   = "некорректный ID салона"
	msgMissingStart     = "начало окна обязательно"
	msgMissingEnd       = "конец окна обязателен"
	msgInvalidTimestamp = "некорректная временная метка, ожидаются миллисекунды unix"
	msgInvalidTimeRange = "некорректное временное окно"
)

// CapacityResponse HTTP response model
type CapacityResponse struct {
	SalonID       int64 `json:"salonId"`
	IsAvailable   bool  `json:"isAvailable"`
	CurrentCount  int   `json:"currentCount"`
	MaxConcurrent int   `json:"maxConcurrent"`
}

type Handler struct {
	useCase CheckCapacityUseCase
	logger  Logger
}

func NewHandler(useCase CheckCapacityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/capacity
// Query params: start, end (required, миллисекунды unix, окно [start, end))
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем salonId из URL
	vars := mux.Vars(r)
	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/capacity - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	// Извлекаем start из query параметров
	startStr := r.URL.Query().Get("start")
	if startStr == "" {
		h.logger.Warn("GET /salons/{id}/capacity - Missing start")
		handlers.RespondBadRequest(w, msgMissingStart)
		return
	}

	start, err := strconv.ParseInt(startStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/capacity - Invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimestamp)
		return
	}

	// Извлекаем end из query параметров
	endStr := r.URL.Query().Get("end")
	if endStr == "" {
		h.logger.Warn("GET /salons/{id}/capacity - Missing end")
		handlers.RespondBadRequest(w, msgMissingEnd)
		return
	}

	end, err := strconv.ParseInt(endStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/capacity - Invalid end: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimestamp)
		return
	}

	// Публичный маршрут: ID пользователя опционален, нужен только для логов
	userID := middleware.OptionalUserID(r)

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &checkCapacity.Request{
		UserID:         userID,
		SalonID:        salonID,
		StartUnixMilli: start,
		EndUnixMilli:   end,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkCapacity.ErrInvalidTimeRange):
			h.logger.Warn("GET /salons/{id}/capacity - Invalid time range: salon_id=%d, start=%d, end=%d",
				salonID, start, end)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, checkCapacity.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/capacity - Invalid input: salon_id=%d, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		default:
			h.logger.Error("GET /salons/{id}/capacity - Failed to check capacity: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/capacity - Capacity checked successfully: salon_id=%d, current=%d/%d",
		salonID, result.CurrentCount, result.MaxConcurrent)
	handlers.RespondJSON(w, http.StatusOK, &CapacityResponse{
		SalonID:       result.SalonID,
		IsAvailable:   result.IsAvailable,
		CurrentCount:  result.CurrentCount,
		MaxConcurrent: result.MaxConcurrent,
	})
}
