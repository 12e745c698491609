package delete_exception

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	configService "github.com/m04kA/SMC-SalonService/internal/service/config"
)

const (
	msgInvalidExceptionID = "некорректный ID блока-исключения"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgExceptionNotFound  = "блок-исключение не найден"
	msgSalonNotFound      = "салон не найден"
	msgForbidden          = "доступ запрещен"
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

// Handle DELETE /api/v1/exceptions/{exceptionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	exceptionID, err := strconv.ParseInt(vars["exceptionId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /exceptions/{id} - Invalid exception ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidExceptionID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /exceptions/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.DeleteException(r.Context(), exceptionID, userID); err != nil {
		switch {
		case errors.Is(err, configService.ErrExceptionNotFound):
			h.logger.Warn("DELETE /exceptions/{id} - Exception not found: exception_id=%d", exceptionID)
			handlers.RespondNotFound(w, msgExceptionNotFound)

		case errors.Is(err, configService.ErrSalonNotFound):
			h.logger.Warn("DELETE /exceptions/{id} - Salon not found: exception_id=%d", exceptionID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, configService.ErrAccessDenied):
			h.logger.Warn("DELETE /exceptions/{id} - Access denied: exception_id=%d, user_id=%d",
				exceptionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /exceptions/{id} - Failed to delete exception: exception_id=%d, error=%v",
				exceptionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /exceptions/{id} - Exception deleted successfully: exception_id=%d, user_id=%d",
		exceptionID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
