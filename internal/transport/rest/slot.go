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

// @Summary Получить занятость врача на дату
// @Description Возвращает упорядоченный список 15-минутных слотов врача со статусами AVAILABLE, PARTIAL и FULL
// @Tags Расписание
// @Produce json
// @Param doctor_id query int true "ID врача"
// @Param date query string true "Дата (YYYY-MM-DD)"
// @Success 200 {object} domain.DaySchedule "Занятость на дату"
// @Failure 400 {object} errorResponseBody "Ошибка валидации данных"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /schedule/availability [get]
func (h *Handler) getAvailability(c *gin.Context) {
	doctorIDStr := c.Query("doctor_id")
	date := c.Query("date")

	if doctorIDStr == "" || date == "" {
		badRequestResponse(c, "необходимо указать ID врача и дату")
		return
	}

	doctorID, err := strconv.ParseInt(doctorIDStr, 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID врача")
		return
	}

	if _, err := time.Parse(timeslot.DateLayout, date); err != nil {
		badRequestResponse(c, "неверный формат даты, ожидается YYYY-MM-DD")
		return
	}

	schedule, err := h.services.Slot.GetDaySchedule(c.Request.Context(), doctorID, date)
	if err != nil {
		h.logger.Error("ошибка получения занятости", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка получения занятости")
		return
	}

	if !schedule.Found {
		// отсутствие смены — не ошибка, а пустое расписание
		c.JSON(http.StatusOK, successResponseBody{
			Status:  "success",
			Message: "врач не принимает в этот день",
			Data:    schedule,
		})
		return
	}

	successResponse(c, http.StatusOK, schedule)
}

// @Summary Изменить время слота
// @Description Переносит слот на другую границу времени (административная операция)
// @Tags Расписание
// @Accept json
// @Produce json
// @Param id path int true "ID слота"
// @Param input body domain.UpdateSlotTimeDTO true "Новое время слота"
// @Success 200 {object} domain.Slot "Обновленный слот"
// @Failure 400 {object} errorResponseBody "Ошибка валидации данных"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 404 {object} errorResponseBody "Слот не найден"
// @Failure 409 {object} errorResponseBody "Время уже занято другим слотом"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /slots/{id}/time [put]
func (h *Handler) updateSlotTime(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	var req domain.UpdateSlotTimeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "неверный формат данных")
		return
	}

	slot, err := h.services.Slot.UpdateTime(c.Request.Context(), id, req.SlotTime)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFoundResponse(c, "слот не найден")
			return
		}
		if errors.Is(err, domain.ErrSlotConflict) {
			conflictResponse(c, "на это время уже существует слот")
			return
		}
		h.logger.Error("ошибка обновления времени слота", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка обновления времени слота")
		return
	}

	successResponse(c, http.StatusOK, slot)
}
