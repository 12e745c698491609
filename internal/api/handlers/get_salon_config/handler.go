package get_salon_config

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
)

const (
	msgInvalidSalonID = "некорректный ID салона"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/config
// Публичный эндпоинт - клиенты видят параметры сетки бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/config - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	// Публичный эндпоинт: userID опционален, используется только для логов
	userID := middleware.OptionalUserID(r)

	resp, err := h.service.GetBySalon(r.Context(), salonID)
	if err != nil {
		h.logger.Error("GET /salons/{id}/config - Failed to fetch config: salon_id=%d, error=%v", salonID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /salons/{id}/config - Returned config for salon_id=%d (default=%t, user_id=%d)",
		salonID, resp.IsDefault, userID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
