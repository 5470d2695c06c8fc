package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hms/config"
	"hms/internal/service"
	"hms/pkg/auth"
)

type Handler struct {
	services     *service.Services
	logger       *zap.Logger
	config       *config.Config
	tokenManager *auth.TokenManager
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config, tokenManager *auth.TokenManager) *Handler {
	return &Handler{
		services:     services,
		logger:       logger,
		config:       config,
		tokenManager: tokenManager,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.requestIDMiddleware())

	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	api := router.Group("/api/v1")
	{
		doctors := api.Group("/doctors")
		{
			doctors.GET("/", h.getDoctors)
			doctors.GET("/:id", h.getDoctorByID)

			admin := doctors.Group("/", h.authMiddleware(), h.adminMiddleware())
			{
				admin.POST("/", h.createDoctor)
				admin.PUT("/:id", h.updateDoctor)
			}
		}

		h.initShiftRoutes(api)

		schedule := api.Group("/schedule")
		{
			schedule.GET("/availability", h.getAvailability)
		}

		slots := api.Group("/slots")
		slots.Use(h.authMiddleware(), h.adminMiddleware())
		{
			slots.PUT("/:id/time", h.updateSlotTime)
		}

		appointments := api.Group("/appointments")
		appointments.Use(h.authMiddleware(), h.staffMiddleware())
		{
			appointments.POST("/", h.createAppointment)
			appointments.GET("/", h.getAppointments)
			appointments.GET("/:id", h.getAppointmentByID)
			appointments.PUT("/:id/reschedule", h.rescheduleAppointment)
			appointments.DELETE("/:id", h.cancelAppointment)
		}
	}
}

func (h *Handler) initShiftRoutes(api *gin.RouterGroup) {
	shifts := api.Group("/shifts")
	shifts.Use(h.authMiddleware())
	{
		weekly := shifts.Group("/weekly")
		{
			weekly.GET("/", h.getWeeklyShifts)

			admin := weekly.Group("/", h.adminMiddleware())
			{
				admin.POST("/", h.createWeeklyShift)
				admin.PUT("/:id", h.updateWeeklyShift)
				admin.DELETE("/:id", h.deleteWeeklyShift)
			}
		}

		temporary := shifts.Group("/temporary")
		{
			temporary.GET("/", h.getTemporaryShifts)

			admin := temporary.Group("/", h.adminMiddleware())
			{
				admin.POST("/", h.createTemporaryShift)
				admin.DELETE("/:id", h.deleteTemporaryShift)
			}
		}
	}
}
