package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"hms/internal/domain"
	"hms/internal/repository"
	"hms/pkg/timeslot"
)

type AppointmentServiceImpl struct {
	repo       repository.AppointmentRepository
	slotRepo   repository.SlotRepository
	shiftRepo  repository.ShiftRepository
	doctorRepo repository.DoctorRepository
	logger     *zap.Logger
}

func NewAppointmentService(
	repo repository.AppointmentRepository,
	slotRepo repository.SlotRepository,
	shiftRepo repository.ShiftRepository,
	doctorRepo repository.DoctorRepository,
	logger *zap.Logger,
) *AppointmentServiceImpl {
	return &AppointmentServiceImpl{
		repo:       repo,
		slotRepo:   slotRepo,
		shiftRepo:  shiftRepo,
		doctorRepo: doctorRepo,
		logger:     logger,
	}
}

// boundaryFor сверяет запрошенное время с границами фактической смены и
// возвращает каноническую границу. Дата записи и время слота всегда хранятся
// именно как граница, чтобы обе стороны сравнения совпадали. Время после
// полуночи дополнительно проверяется по ночной смене предыдущего дня.
func (s *AppointmentServiceImpl) boundaryFor(ctx context.Context, doctorID int64, requested time.Time) (time.Time, error) {
	date := requested.In(timeslot.Zone).Truncate(24 * time.Hour)

	boundary, err := s.matchBoundary(ctx, doctorID, date, requested)
	if err == nil {
		return boundary, nil
	}

	if prev, prevErr := s.matchBoundary(ctx, doctorID, date.Add(-24*time.Hour), requested); prevErr == nil {
		return prev, nil
	}

	return time.Time{}, err
}

func (s *AppointmentServiceImpl) matchBoundary(ctx context.Context, doctorID int64, date, requested time.Time) (time.Time, error) {
	shift, err := resolveEffectiveShift(ctx, s.shiftRepo, doctorID, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("ошибка определения смены: %w", err)
	}

	if !shift.Found {
		return time.Time{}, domain.ErrNoShiftFound
	}

	boundaries, err := timeslot.Boundaries(date, shift.StartTime, shift.EndTime, timeslot.DefaultInterval)
	if err != nil {
		return time.Time{}, domain.ErrInvalidTimeRange
	}

	requestedClock := timeslot.TimeOfDay(requested)
	for _, boundary := range boundaries {
		if timeslot.TimeOfDay(boundary) == requestedClock && timeslot.SameDay(boundary, requested) {
			return boundary, nil
		}
	}

	return time.Time{}, errors.New("выбранное время не попадает в смену врача")
}

func (s *AppointmentServiceImpl) Create(ctx context.Context, dto domain.CreateAppointmentDTO) (int64, error) {
	doctor, err := s.doctorRepo.GetByID(ctx, dto.DoctorID)
	if err != nil || doctor == nil {
		s.logger.Error("врач не найден при создании записи", zap.Int64("doctorID", dto.DoctorID), zap.Error(err))
		return 0, errors.New("врач не найден")
	}

	boundary, err := s.boundaryFor(ctx, dto.DoctorID, dto.ScheduledAt)
	if err != nil {
		return 0, err
	}
	dto.ScheduledAt = boundary

	slot, err := s.slotRepo.GetByDoctorAndTime(ctx, dto.DoctorID, boundary)
	if err != nil {
		s.logger.Error("ошибка получения слота", zap.Error(err))
		return 0, fmt.Errorf("ошибка получения слота: %w", err)
	}

	if slot != nil && slot.SeatsTaken() == 2 {
		return 0, domain.ErrSlotConflict
	}

	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("ошибка создания записи", zap.Error(err))
		return 0, fmt.Errorf("ошибка создания записи: %w", err)
	}

	if err := s.occupySeat(ctx, slot, dto.DoctorID, boundary, id); err != nil {
		// место ушло конкурирующему бронированию, запись откатывается
		if delErr := s.repo.Delete(ctx, id); delErr != nil {
			s.logger.Error("ошибка отката записи после конфликта слота",
				zap.Int64("appointmentID", id), zap.Error(delErr))
		}
		return 0, err
	}

	return id, nil
}

func (s *AppointmentServiceImpl) occupySeat(ctx context.Context, slot *domain.Slot, doctorID int64, boundary time.Time, appointmentID int64) error {
	var err error

	switch {
	case slot == nil:
		_, err = s.slotRepo.Create(ctx, doctorID, boundary, appointmentID)
	case slot.Appointment1ID == nil:
		_, err = s.slotRepo.SetFirstAppointment(ctx, slot.ID, appointmentID)
	default:
		_, err = s.slotRepo.AttachSecondAppointment(ctx, slot.ID, appointmentID)
	}

	if err != nil {
		if errors.Is(err, domain.ErrSlotConflict) {
			return domain.ErrSlotConflict
		}
		s.logger.Error("ошибка бронирования слота", zap.Int64("doctorID", doctorID), zap.Error(err))
		return fmt.Errorf("ошибка бронирования слота: %w", err)
	}

	return nil
}

func (s *AppointmentServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения записи", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения записи: %w", err)
	}
	return appointment, nil
}

func (s *AppointmentServiceImpl) Cancel(ctx context.Context, id int64) error {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения записи", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка получения записи: %w", err)
	}

	if appointment == nil {
		return domain.ErrNotFound
	}

	if err := s.repo.UpdateStatus(ctx, id, domain.AppointmentStatusCancelled); err != nil {
		s.logger.Error("ошибка отмены записи", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка отмены записи: %w", err)
	}

	slot, err := s.slotRepo.GetByAppointment(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения слота записи", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка получения слота записи: %w", err)
	}

	if slot != nil {
		if err := s.slotRepo.ReleaseAppointment(ctx, slot.ID, id); err != nil {
			s.logger.Error("ошибка освобождения слота", zap.Int64("slotID", slot.ID), zap.Error(err))
			return fmt.Errorf("ошибка освобождения слота: %w", err)
		}
	}

	return nil
}

func (s *AppointmentServiceImpl) Reschedule(ctx context.Context, id int64, dto domain.RescheduleAppointmentDTO) error {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения записи", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка получения записи: %w", err)
	}

	if appointment == nil {
		return domain.ErrNotFound
	}

	if appointment.Status == domain.AppointmentStatusCancelled {
		return errors.New("отмененную запись нельзя перенести")
	}

	boundary, err := s.boundaryFor(ctx, appointment.DoctorID, dto.ScheduledAt)
	if err != nil {
		return err
	}

	target, err := s.slotRepo.GetByDoctorAndTime(ctx, appointment.DoctorID, boundary)
	if err != nil {
		s.logger.Error("ошибка получения целевого слота", zap.Error(err))
		return fmt.Errorf("ошибка получения целевого слота: %w", err)
	}

	if target != nil && target.SeatsTaken() == 2 && !target.HoldsAppointment(id) {
		return domain.ErrSlotConflict
	}

	if err := s.slotRepo.MoveAppointment(ctx, id, boundary); err != nil {
		if errors.Is(err, domain.ErrSlotConflict) || errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.logger.Error("ошибка переноса записи", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка переноса записи: %w", err)
	}

	return nil
}

func (s *AppointmentServiceImpl) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error) {
	appointments, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка получения списка записей", zap.Error(err))
		return nil, 0, fmt.Errorf("ошибка получения списка записей: %w", err)
	}

	count, err := s.repo.CountByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка получения количества записей", zap.Error(err))
		return appointments, 0, nil
	}

	return appointments, count, nil
}
