package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-SalonService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidDate            = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID          = "отсутствует ID пользователя"
	msgSalonNotFound          = "салон не найден"
	msgStaffNotFound          = "мастер не найден"
	msgStaffUnavailable       = "мастер недоступен в выбранную дату"
	msgMenuItemNotFound       = "позиция каталога не найдена"
	msgIncompatibleSelection  = "выбранные позиции несовместимы"
	msgEmptySelection         = "выбор не содержит позиций"
	msgCustomerNotFound       = "клиент не найден"
	msgInvalidReservationDate = "некорректная дата бронирования"
	msgDateTooFar             = "дата бронирования слишком далеко в будущем"
	msgOutsideWorkingHours    = "окно выходит за рабочие часы мастера"
	msgWindowNotAvailable     = "выбранное окно недоступно"
	msgCapacityExceeded       = "все места салона заняты в это время"
	msgTooLateToBook          = "слишком поздно для бронирования этого окна"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrWindowNotAvailable):
			h.logger.Warn("POST /reservations - Window not available: user_id=%d, salon_id=%d", userID, req.SalonID)
			handlers.RespondError(w, http.StatusConflict, msgWindowNotAvailable)

		case errors.Is(err, createReservation.ErrCapacityExceeded):
			h.logger.Warn("POST /reservations - Capacity exceeded: user_id=%d, salon_id=%d", userID, req.SalonID)
			handlers.RespondError(w, http.StatusConflict, msgCapacityExceeded)

		case errors.Is(err, createReservation.ErrSalonNotFound):
			h.logger.Warn("POST /reservations - Salon not found: salon_id=%d", req.SalonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, createReservation.ErrStaffNotFound):
			h.logger.Warn("POST /reservations - Staff not found: salon_id=%d, staff_id=%d", req.SalonID, req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createReservation.ErrMenuItemNotFound):
			h.logger.Warn("POST /reservations - Menu item not found: user_id=%d, salon_id=%d", userID, req.SalonID)
			handlers.RespondNotFound(w, msgMenuItemNotFound)

		case errors.Is(err, createReservation.ErrCustomerNotFound):
			h.logger.Warn("POST /reservations - Customer not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createReservation.ErrStaffUnavailable):
			h.logger.Warn("POST /reservations - Staff unavailable: salon_id=%d, staff_id=%d", req.SalonID, req.StaffID)
			handlers.RespondBadRequest(w, msgStaffUnavailable)

		case errors.Is(err, createReservation.ErrIncompatibleSelection):
			h.logger.Warn("POST /reservations - Incompatible selection: user_id=%d, salon_id=%d", userID, req.SalonID)
			handlers.RespondBadRequest(w, msgIncompatibleSelection)

		case errors.Is(err, createReservation.ErrEmptySelection):
			h.logger.Warn("POST /reservations - Empty selection: user_id=%d, salon_id=%d", userID, req.SalonID)
			handlers.RespondBadRequest(w, msgEmptySelection)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Invalid reservation date: user_id=%d, salon_id=%d", userID, req.SalonID)
			handlers.RespondBadRequest(w, msgInvalidReservationDate)

		case errors.Is(err, createReservation.ErrDateTooFarInFuture):
			h.logger.Warn("POST /reservations - Date too far in future: user_id=%d, salon_id=%d", userID, req.SalonID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createReservation.ErrOutsideWorkingHours):
			h.logger.Warn("POST /reservations - Outside working hours: user_id=%d, salon_id=%d", userID, req.SalonID)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createReservation.ErrTooLateToBook):
			h.logger.Warn("POST /reservations - Too late to book: user_id=%d, salon_id=%d", userID, req.SalonID)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, salon_id=%d, error=%v",
				userID, req.SalonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, user_id=%d, salon_id=%d",
		result.ID, userID, req.SalonID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
