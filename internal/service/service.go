package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"hms/config"
	"hms/internal/domain"
	"hms/internal/repository"
)

type Deps struct {
	Repos  *repository.Repositories
	Logger *zap.Logger
	Config *config.Config
}

type Services struct {
	Doctor      DoctorService
	Shift       ShiftService
	Slot        SlotService
	Appointment AppointmentService
}

func NewServices(deps Deps) *Services {
	return &Services{
		Doctor:      NewDoctorService(deps.Repos.Doctor, deps.Logger),
		Shift:       NewShiftService(deps.Repos.Shift, deps.Repos.Doctor, deps.Logger),
		Slot:        NewSlotService(deps.Repos.Slot, deps.Repos.Shift, deps.Logger),
		Appointment: NewAppointmentService(deps.Repos.Appointment, deps.Repos.Slot, deps.Repos.Shift, deps.Repos.Doctor, deps.Logger),
	}
}

type DoctorService interface {
	Create(ctx context.Context, dto domain.CreateDoctorDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Doctor, error)
	Update(ctx context.Context, id int64, dto domain.UpdateDoctorDTO) error
	List(ctx context.Context, limit, offset int) ([]domain.Doctor, int, error)
}

type ShiftService interface {
	CreateWeekly(ctx context.Context, dto domain.CreateWeeklyShiftDTO) (int64, error)
	UpdateWeekly(ctx context.Context, id int64, dto domain.UpdateWeeklyShiftDTO) error
	DeleteWeekly(ctx context.Context, id int64) error
	ListWeeklyByDoctor(ctx context.Context, doctorID int64) ([]domain.WeeklyShift, error)

	CreateTemporary(ctx context.Context, dto domain.CreateTemporaryShiftDTO) (int64, error)
	DeleteTemporary(ctx context.Context, id int64) error
	ListTemporaryByDoctor(ctx context.Context, doctorID int64) ([]domain.TemporaryShift, error)

	ResolveEffectiveShift(ctx context.Context, doctorID int64, date time.Time) (*domain.EffectiveShift, error)
}

type SlotService interface {
	GetDaySchedule(ctx context.Context, doctorID int64, date string) (*domain.DaySchedule, error)
	Reserve(ctx context.Context, doctorID int64, slotTime time.Time, appointmentID int64) (*domain.Slot, error)
	AttachSecond(ctx context.Context, slotID, appointmentID int64) (*domain.Slot, error)
	UpdateTime(ctx context.Context, slotID int64, newTime time.Time) (*domain.Slot, error)
}

type AppointmentService interface {
	Create(ctx context.Context, dto domain.CreateAppointmentDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Cancel(ctx context.Context, id int64) error
	Reschedule(ctx context.Context, id int64, dto domain.RescheduleAppointmentDTO) error
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error)
}
