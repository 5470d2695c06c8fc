package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"hms/internal/domain"
)

type Repositories struct {
	Doctor      DoctorRepository
	Shift       ShiftRepository
	Slot        SlotRepository
	Appointment AppointmentRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Doctor:      NewDoctorRepository(db),
		Shift:       NewShiftRepository(db),
		Slot:        NewSlotRepository(db),
		Appointment: NewAppointmentRepository(db),
	}
}

type DoctorRepository interface {
	Create(ctx context.Context, dto domain.CreateDoctorDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Doctor, error)
	Update(ctx context.Context, id int64, dto domain.UpdateDoctorDTO) error
	List(ctx context.Context, limit, offset int) ([]domain.Doctor, int, error)
}

type ShiftRepository interface {
	CreateWeekly(ctx context.Context, dto domain.CreateWeeklyShiftDTO) (int64, error)
	GetWeeklyByID(ctx context.Context, id int64) (*domain.WeeklyShift, error)
	UpdateWeekly(ctx context.Context, shift domain.WeeklyShift) error
	DeleteWeekly(ctx context.Context, id int64) error
	ListWeeklyByDoctor(ctx context.Context, doctorID int64) ([]domain.WeeklyShift, error)

	CreateTemporary(ctx context.Context, dto domain.CreateTemporaryShiftDTO) (int64, error)
	GetTemporaryByID(ctx context.Context, id int64) (*domain.TemporaryShift, error)
	DeleteTemporary(ctx context.Context, id int64) error
	ListTemporaryByDoctor(ctx context.Context, doctorID int64) ([]domain.TemporaryShift, error)
}

type SlotRepository interface {
	Create(ctx context.Context, doctorID int64, slotTime time.Time, appointmentID int64) (*domain.Slot, error)
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	GetByDoctorAndTime(ctx context.Context, doctorID int64, slotTime time.Time) (*domain.Slot, error)
	GetByAppointment(ctx context.Context, appointmentID int64) (*domain.Slot, error)
	ListByDoctorAndRange(ctx context.Context, doctorID int64, from, to time.Time) ([]domain.Slot, error)
	SetFirstAppointment(ctx context.Context, slotID, appointmentID int64) (*domain.Slot, error)
	AttachSecondAppointment(ctx context.Context, slotID, appointmentID int64) (*domain.Slot, error)
	ReleaseAppointment(ctx context.Context, slotID, appointmentID int64) error
	UpdateTime(ctx context.Context, slotID int64, newTime time.Time) (*domain.Slot, error)
	MoveAppointment(ctx context.Context, appointmentID int64, newTime time.Time) error
}

type AppointmentRepository interface {
	Create(ctx context.Context, dto domain.CreateAppointmentDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error)
	CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error)
}
