package rest

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hms/internal/domain"
	"hms/pkg/timeslot"
)

// @Summary Создать запись на прием
// @Description Создает запись на прием и бронирует место в слоте врача
// @Tags Записи
// @Accept json
// @Produce json
// @Param input body domain.CreateAppointmentDTO true "Данные записи"
// @Success 201 {object} map[string]interface{} "ID созданной записи"
// @Failure 400 {object} errorResponseBody "Ошибка валидации данных"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 409 {object} errorResponseBody "Слот уже занят"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /appointments [post]
func (h *Handler) createAppointment(c *gin.Context) {
	var req domain.CreateAppointmentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Appointment.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSlotConflict):
			conflictResponse(c, "выбранное время уже занято, обновите расписание и выберите другое")
		case errors.Is(err, domain.ErrNoShiftFound):
			badRequestResponse(c, "врач не принимает в этот день")
		default:
			h.logger.Error("ошибка создания записи", zap.Error(err))
			badRequestResponse(c, err.Error())
		}
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Получить запись по ID
// @Description Возвращает запись на прием
// @Tags Записи
// @Produce json
// @Param id path int true "ID записи"
// @Success 200 {object} domain.Appointment "Запись"
// @Failure 400 {object} errorResponseBody "Ошибка валидации данных"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 404 {object} errorResponseBody "Запись не найдена"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /appointments/{id} [get]
func (h *Handler) getAppointmentByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	appointment, err := h.services.Appointment.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("ошибка получения записи", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка получения записи")
		return
	}

	if appointment == nil {
		notFoundResponse(c, "запись не найдена")
		return
	}

	successResponse(c, http.StatusOK, appointment)
}

// @Summary Перенести запись
// @Description Переносит запись на другое время вместе с привязкой к слоту
// @Tags Записи
// @Accept json
// @Produce json
// @Param id path int true "ID записи"
// @Param input body domain.RescheduleAppointmentDTO true "Новое время"
// @Success 200 {object} messageResponseType "Сообщение об успешном переносе"
// @Failure 400 {object} errorResponseBody "Ошибка валидации данных"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 404 {object} errorResponseBody "Запись не найдена"
// @Failure 409 {object} errorResponseBody "Новое время уже занято"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /appointments/{id}/reschedule [put]
func (h *Handler) rescheduleAppointment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	var req domain.RescheduleAppointmentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "неверный формат данных")
		return
	}

	err = h.services.Appointment.Reschedule(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			notFoundResponse(c, "запись не найдена")
		case errors.Is(err, domain.ErrSlotConflict):
			conflictResponse(c, "новое время уже занято, выберите другое")
		case errors.Is(err, domain.ErrNoShiftFound):
			badRequestResponse(c, "врач не принимает в этот день")
		default:
			h.logger.Error("ошибка переноса записи", zap.Error(err))
			badRequestResponse(c, err.Error())
		}
		return
	}

	messageResponse(c, http.StatusOK, "запись успешно перенесена")
}

// @Summary Отменить запись
// @Description Отменяет запись и освобождает место в слоте
// @Tags Записи
// @Produce json
// @Param id path int true "ID записи"
// @Success 200 {object} messageResponseType "Сообщение об успешной отмене"
// @Failure 400 {object} errorResponseBody "Ошибка валидации данных"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 404 {object} errorResponseBody "Запись не найдена"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /appointments/{id} [delete]
func (h *Handler) cancelAppointment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	err = h.services.Appointment.Cancel(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFoundResponse(c, "запись не найдена")
			return
		}
		h.logger.Error("ошибка отмены записи", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка отмены записи")
		return
	}

	messageResponse(c, http.StatusOK, "запись успешно отменена")
}

// @Summary Получить список записей
// @Description Возвращает список записей на прием с фильтрацией
// @Tags Записи
// @Produce json
// @Param doctor_id query int false "ID врача"
// @Param status query string false "Статус записи"
// @Param date_from query string false "Начальная дата (YYYY-MM-DD)"
// @Param date_to query string false "Конечная дата (YYYY-MM-DD)"
// @Param limit query int false "Лимит (по умолчанию 20)"
// @Param offset query int false "Смещение (по умолчанию 0)"
// @Success 200 {object} paginatedResponse "Список записей"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /appointments [get]
func (h *Handler) getAppointments(c *gin.Context) {
	var doctorID *int64
	if doctorIDStr := c.DefaultQuery("doctor_id", ""); doctorIDStr != "" {
		id, err := strconv.ParseInt(doctorIDStr, 10, 64)
		if err == nil {
			doctorID = &id
		}
	}

	var status *domain.AppointmentStatus
	if statusStr := c.DefaultQuery("status", ""); statusStr != "" {
		appStatus := domain.AppointmentStatus(statusStr)
		status = &appStatus
	}

	var startDate *time.Time
	if dateFrom := c.DefaultQuery("date_from", ""); dateFrom != "" {
		parsedDate, err := time.ParseInLocation(timeslot.DateLayout, dateFrom, timeslot.Zone)
		if err == nil {
			startDate = &parsedDate
		}
	}

	var endDate *time.Time
	if dateTo := c.DefaultQuery("date_to", ""); dateTo != "" {
		parsedDate, err := time.ParseInLocation(timeslot.DateLayout, dateTo, timeslot.Zone)
		if err == nil {
			parsedDate = parsedDate.Add(24 * time.Hour).Add(-time.Second)
			endDate = &parsedDate
		}
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	filter := domain.AppointmentFilter{
		DoctorID:  doctorID,
		Status:    status,
		StartDate: startDate,
		EndDate:   endDate,
		Limit:     limit,
		Offset:    offset,
	}

	appointments, total, err := h.services.Appointment.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("ошибка получения списка записей", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка получения списка записей")
		return
	}

	page := offset/limit + 1

	paginatedSuccessResponse(c, appointments, total, page, limit)
}
