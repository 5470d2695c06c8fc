package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hms/internal/domain"
)

// @Summary Создать врача
// @Description Создает нового врача
// @Tags Врачи
// @Accept json
// @Produce json
// @Param input body domain.CreateDoctorDTO true "Данные врача"
// @Success 201 {object} map[string]interface{} "ID созданного врача"
// @Failure 400 {object} errorResponseBody "Ошибка валидации данных"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /doctors [post]
func (h *Handler) createDoctor(c *gin.Context) {
	var req domain.CreateDoctorDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Doctor.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("ошибка создания врача", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Получить врача по ID
// @Description Возвращает данные врача
// @Tags Врачи
// @Produce json
// @Param id path int true "ID врача"
// @Success 200 {object} domain.Doctor "Врач"
// @Failure 400 {object} errorResponseBody "Ошибка валидации данных"
// @Failure 404 {object} errorResponseBody "Врач не найден"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /doctors/{id} [get]
func (h *Handler) getDoctorByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	doctor, err := h.services.Doctor.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("ошибка получения врача", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка получения врача")
		return
	}

	if doctor == nil {
		notFoundResponse(c, "врач не найден")
		return
	}

	successResponse(c, http.StatusOK, doctor)
}

// @Summary Обновить врача
// @Description Обновляет данные врача
// @Tags Врачи
// @Accept json
// @Produce json
// @Param id path int true "ID врача"
// @Param input body domain.UpdateDoctorDTO true "Данные для обновления"
// @Success 200 {object} messageResponseType "Сообщение об успешном обновлении"
// @Failure 400 {object} errorResponseBody "Ошибка валидации данных"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 404 {object} errorResponseBody "Врач не найден"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /doctors/{id} [put]
func (h *Handler) updateDoctor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	var req domain.UpdateDoctorDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "неверный формат данных")
		return
	}

	err = h.services.Doctor.Update(c.Request.Context(), id, req)
	if err != nil {
		if err == domain.ErrNotFound {
			notFoundResponse(c, "врач не найден")
			return
		}
		h.logger.Error("ошибка обновления врача", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка обновления врача")
		return
	}

	messageResponse(c, http.StatusOK, "данные врача успешно обновлены")
}

// @Summary Получить список врачей
// @Description Возвращает список врачей с пагинацией
// @Tags Врачи
// @Produce json
// @Param limit query int false "Лимит (по умолчанию 20)"
// @Param offset query int false "Смещение (по умолчанию 0)"
// @Success 200 {object} paginatedResponse "Список врачей"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /doctors [get]
func (h *Handler) getDoctors(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	doctors, total, err := h.services.Doctor.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.logger.Error("ошибка получения списка врачей", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка получения списка врачей")
		return
	}

	page := offset/limit + 1

	paginatedSuccessResponse(c, doctors, total, page, limit)
}
