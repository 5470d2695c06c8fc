package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hms/internal/domain"
)

// @Summary Создать еженедельную смену
// @Description Создает повторяющуюся смену врача на день недели
// @Tags Смены
// @Accept json
// @Produce json
// @Param input body domain.CreateWeeklyShiftDTO true "Данные смены"
// @Success 201 {object} map[string]interface{} "ID созданной смены"
// @Failure 400 {object} errorResponseBody "Ошибка валидации данных"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /shifts/weekly [post]
func (h *Handler) createWeeklyShift(c *gin.Context) {
	var req domain.CreateWeeklyShiftDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Shift.CreateWeekly(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("ошибка создания еженедельной смены", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Обновить еженедельную смену
// @Description Обновляет существующую еженедельную смену
// @Tags Смены
// @Accept json
// @Produce json
// @Param id path int true "ID смены"
// @Param input body domain.UpdateWeeklyShiftDTO true "Данные для обновления"
// @Success 200 {object} messageResponseType "Сообщение об успешном обновлении"
// @Failure 400 {object} errorResponseBody "Ошибка валидации данных"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 404 {object} errorResponseBody "Смена не найдена"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /shifts/weekly/{id} [put]
func (h *Handler) updateWeeklyShift(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	var req domain.UpdateWeeklyShiftDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "неверный формат данных")
		return
	}

	err = h.services.Shift.UpdateWeekly(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFoundResponse(c, "смена не найдена")
			return
		}
		h.logger.Error("ошибка обновления еженедельной смены", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "смена успешно обновлена")
}

// @Summary Удалить еженедельную смену
// @Description Удаляет еженедельную смену
// @Tags Смены
// @Produce json
// @Param id path int true "ID смены"
// @Success 200 {object} messageResponseType "Сообщение об успешном удалении"
// @Failure 400 {object} errorResponseBody "Ошибка валидации данных"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /shifts/weekly/{id} [delete]
func (h *Handler) deleteWeeklyShift(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	err = h.services.Shift.DeleteWeekly(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("ошибка удаления еженедельной смены", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка удаления смены")
		return
	}

	messageResponse(c, http.StatusOK, "смена успешно удалена")
}

// @Summary Получить еженедельные смены врача
// @Description Возвращает список еженедельных смен врача
// @Tags Смены
// @Produce json
// @Param doctor_id query int true "ID врача"
// @Success 200 {object} successResponseBody "Список смен"
// @Failure 400 {object} errorResponseBody "Ошибка валидации данных"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /shifts/weekly [get]
func (h *Handler) getWeeklyShifts(c *gin.Context) {
	doctorID, err := strconv.ParseInt(c.Query("doctor_id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID врача")
		return
	}

	shifts, err := h.services.Shift.ListWeeklyByDoctor(c.Request.Context(), doctorID)
	if err != nil {
		h.logger.Error("ошибка получения еженедельных смен", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка получения смен")
		return
	}

	successResponse(c, http.StatusOK, shifts)
}

// @Summary Создать временную смену
// @Description Создает разовую смену врача на конкретную дату, которая заменяет еженедельную
// @Tags Смены
// @Accept json
// @Produce json
// @Param input body domain.CreateTemporaryShiftDTO true "Данные смены"
// @Success 201 {object} map[string]interface{} "ID созданной смены"
// @Failure 400 {object} errorResponseBody "Ошибка валидации данных"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /shifts/temporary [post]
func (h *Handler) createTemporaryShift(c *gin.Context) {
	var req domain.CreateTemporaryShiftDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Shift.CreateTemporary(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTimeRange) {
			badRequestResponse(c, "окончание смены должно быть позже начала")
			return
		}
		h.logger.Error("ошибка создания временной смены", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Удалить временную смену
// @Description Удаляет временную смену
// @Tags Смены
// @Produce json
// @Param id path int true "ID смены"
// @Success 200 {object} messageResponseType "Сообщение об успешном удалении"
// @Failure 400 {object} errorResponseBody "Ошибка валидации данных"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /shifts/temporary/{id} [delete]
func (h *Handler) deleteTemporaryShift(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	err = h.services.Shift.DeleteTemporary(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("ошибка удаления временной смены", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка удаления смены")
		return
	}

	messageResponse(c, http.StatusOK, "смена успешно удалена")
}

// @Summary Получить временные смены врача
// @Description Возвращает список временных смен врача
// @Tags Смены
// @Produce json
// @Param doctor_id query int true "ID врача"
// @Success 200 {object} successResponseBody "Список смен"
// @Failure 400 {object} errorResponseBody "Ошибка валидации данных"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /shifts/temporary [get]
func (h *Handler) getTemporaryShifts(c *gin.Context) {
	doctorID, err := strconv.ParseInt(c.Query("doctor_id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID врача")
		return
	}

	shifts, err := h.services.Shift.ListTemporaryByDoctor(c.Request.Context(), doctorID)
	if err != nil {
		h.logger.Error("ошибка получения временных смен", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка получения смен")
		return
	}

	successResponse(c, http.StatusOK, shifts)
}
