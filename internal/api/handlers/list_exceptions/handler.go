package list_exceptions

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	configService "github.com/m04kA/SMC-SalonService/internal/service/config"
	"github.com/m04kA/SMC-SalonService/internal/service/config/models"
)

const (
	msgInvalidSalonID = "некорректный ID салона"
	msgInvalidFrom    = "некорректная дата начала периода (ожидается YYYY-MM-DD)"
	msgInvalidTo      = "некорректная дата конца периода (ожидается YYYY-MM-DD)"
	msgMissingPeriod  = "параметры from и to обязательны"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgSalonNotFound  = "салон не найден"
	msgForbidden      = "доступ запрещен"
	msgInvalidPeriod  = "некорректный период"
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

// Handle GET /api/v1/salons/{salonId}/exceptions?from=&to=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/exceptions - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /salons/{id}/exceptions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()
	fromStr := query.Get("from")
	toStr := query.Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /salons/{id}/exceptions - Missing period: salon_id=%d", salonID)
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/exceptions - Invalid from date: %s", fromStr)
		handlers.RespondBadRequest(w, msgInvalidFrom)
		return
	}

	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/exceptions - Invalid to date: %s", toStr)
		handlers.RespondBadRequest(w, msgInvalidTo)
		return
	}

	resp, err := h.service.ListExceptions(r.Context(), &models.ListExceptionsRequest{
		UserID:  userID,
		SalonID: salonID,
		From:    from,
		To:      to,
	})
	if err != nil {
		switch {
		case errors.Is(err, configService.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{id}/exceptions - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, configService.ErrAccessDenied):
			h.logger.Warn("GET /salons/{id}/exceptions - Access denied: salon_id=%d, user_id=%d",
				salonID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, configService.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/exceptions - Invalid period: salon_id=%d, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /salons/{id}/exceptions - Failed to fetch exceptions: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/exceptions - Returned %d exceptions for salon_id=%d",
		len(resp.Exceptions), salonID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
