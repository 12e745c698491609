package get_salon_reservations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/reservations"
	"github.com/m04kA/SMC-SalonService/internal/service/reservations/models"
)

const (
	msgInvalidSalonID   = "некорректный ID салона"
	msgInvalidStaffID   = "некорректный ID мастера"
	msgInvalidStartDate = "некорректная дата начала периода (ожидается YYYY-MM-DD)"
	msgInvalidEndDate   = "некорректная дата конца периода (ожидается YYYY-MM-DD)"
	msgInvalidPeriod    = "дата начала периода позже даты конца"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgSalonNotFound    = "салон не найден"
	msgForbidden        = "доступ запрещен"
	msgInvalidFilter    = "некорректные параметры фильтрации"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/reservations?staffId=&startDate=&endDate=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем salonId из URL
	vars := mux.Vars(r)
	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/reservations - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /salons/{id}/reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.GetSalonReservationsRequest{
		UserID:  userID,
		SalonID: salonID,
	}

	query := r.URL.Query()

	// Опциональный фильтр по мастеру
	if staffIDStr := query.Get("staffId"); staffIDStr != "" {
		staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
		if err != nil || staffID <= 0 {
			h.logger.Warn("GET /salons/{id}/reservations - Invalid staff ID: %s", staffIDStr)
			handlers.RespondBadRequest(w, msgInvalidStaffID)
			return
		}
		req.StaffID = &staffID
	}

	// Опциональный период
	if startDateStr := query.Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			h.logger.Warn("GET /salons/{id}/reservations - Invalid start date: %s", startDateStr)
			handlers.RespondBadRequest(w, msgInvalidStartDate)
			return
		}
		req.StartDate = &startDate
	}
	if endDateStr := query.Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			h.logger.Warn("GET /salons/{id}/reservations - Invalid end date: %s", endDateStr)
			handlers.RespondBadRequest(w, msgInvalidEndDate)
			return
		}
		req.EndDate = &endDate
	}
	if req.StartDate != nil && req.EndDate != nil && req.StartDate.After(*req.EndDate) {
		h.logger.Warn("GET /salons/{id}/reservations - Start date after end date: salon_id=%d", salonID)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	// Опциональный фильтр по статусу
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	// Флаг включения отменённых бронирований
	if includeInactive := query.Get("includeInactive"); includeInactive == "true" {
		req.IncludeInactive = true
	}

	resp, err := h.service.GetSalonReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{id}/reservations - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /salons/{id}/reservations - Access denied: salon_id=%d, user_id=%d",
				salonID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/reservations - Invalid filter: salon_id=%d", salonID)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /salons/{id}/reservations - Failed to fetch reservations: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/reservations - Returned %d reservations for salon_id=%d",
		len(resp.Reservations), salonID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
