package create_exception

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
	msgInvalidSalonID     = "некорректный ID салона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректная дата (ожидается YYYY-MM-DD)"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSalonNotFound      = "салон не найден"
	msgStaffNotFound      = "мастер не найден в салоне"
	msgForbidden          = "доступ запрещен"
	msgInvalidException   = "некорректные параметры блока-исключения"
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

// Handle POST /api/v1/salons/{salonId}/exceptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /salons/{id}/exceptions - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /salons/{id}/exceptions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateExceptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /salons/{id}/exceptions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /salons/{id}/exceptions - Invalid date: %s", req.Date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	resp, err := h.service.CreateException(r.Context(), &models.CreateExceptionRequest{
		UserID:    userID,
		SalonID:   salonID,
		StaffID:   req.StaffID,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		IsAllDay:  req.IsAllDay,
		Reason:    req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, configService.ErrSalonNotFound):
			h.logger.Warn("POST /salons/{id}/exceptions - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, configService.ErrStaffNotFound):
			h.logger.Warn("POST /salons/{id}/exceptions - Staff not found: salon_id=%d, staff_id=%v",
				salonID, req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, configService.ErrAccessDenied):
			h.logger.Warn("POST /salons/{id}/exceptions - Access denied: salon_id=%d, user_id=%d",
				salonID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, configService.ErrInvalidInput):
			h.logger.Warn("POST /salons/{id}/exceptions - Invalid exception: salon_id=%d, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidException)

		default:
			h.logger.Error("POST /salons/{id}/exceptions - Failed to create exception: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /salons/{id}/exceptions - Exception created successfully: id=%d, salon_id=%d, user_id=%d",
		resp.ID, salonID, userID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
