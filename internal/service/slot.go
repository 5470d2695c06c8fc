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

type SlotServiceImpl struct {
	repo      repository.SlotRepository
	shiftRepo repository.ShiftRepository
	logger    *zap.Logger
}

func NewSlotService(
	repo repository.SlotRepository,
	shiftRepo repository.ShiftRepository,
	logger *zap.Logger,
) *SlotServiceImpl {
	return &SlotServiceImpl{
		repo:      repo,
		shiftRepo: shiftRepo,
		logger:    logger,
	}
}

// GetDaySchedule строит картину занятости врача на дату: границы слотов из
// фактической смены, сверенные с сохраненными слотами по настенному времени.
func (s *SlotServiceImpl) GetDaySchedule(ctx context.Context, doctorID int64, dateStr string) (*domain.DaySchedule, error) {
	date, err := time.ParseInLocation(timeslot.DateLayout, dateStr, timeslot.Zone)
	if err != nil {
		return nil, errors.New("неверный формат даты")
	}

	view := &domain.DaySchedule{
		DoctorID: doctorID,
		Date:     dateStr,
		Slots:    []domain.SlotView{},
	}

	shift, err := resolveEffectiveShift(ctx, s.shiftRepo, doctorID, date)
	if err != nil {
		s.logger.Error("ошибка определения смены", zap.Int64("doctorID", doctorID), zap.Error(err))
		return nil, fmt.Errorf("ошибка определения смены: %w", err)
	}

	if !shift.Found {
		return view, nil
	}

	view.Found = true

	boundaries, err := timeslot.Boundaries(date, shift.StartTime, shift.EndTime, timeslot.DefaultInterval)
	if err != nil {
		s.logger.Warn("некорректный интервал смены",
			zap.Int64("doctorID", doctorID),
			zap.String("start", shift.StartTime),
			zap.String("end", shift.EndTime))
		return view, nil
	}

	if len(boundaries) == 0 {
		return view, nil
	}

	// слоты выбираются по фактическому диапазону границ, а не по календарным
	// суткам: у ночной смены часть границ попадает на следующий день
	from := boundaries[0]
	to := boundaries[len(boundaries)-1].Add(timeslot.DefaultInterval)

	booked, err := s.repo.ListByDoctorAndRange(ctx, doctorID, from, to)
	if err != nil {
		s.logger.Error("ошибка получения слотов", zap.Int64("doctorID", doctorID), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения слотов: %w", err)
	}

	bookedByTime := make(map[string]*domain.Slot, len(booked))
	for i := range booked {
		bookedByTime[timeslot.TimeOfDay(booked[i].SlotTime)] = &booked[i]
	}

	for _, boundary := range boundaries {
		slotView := domain.SlotView{
			Time:   timeslot.TimeOfDay(boundary),
			Status: domain.SlotStatusAvailable,
		}

		if slot, ok := bookedByTime[slotView.Time]; ok {
			switch slot.SeatsTaken() {
			case 2:
				slotView.Status = domain.SlotStatusFull
				slotView.SlotID = &slot.ID
			case 1:
				slotView.Status = domain.SlotStatusPartial
				slotView.SlotID = &slot.ID
			}
			// слот без записей остается доступным
		}

		view.Slots = append(view.Slots, slotView)
	}

	return view, nil
}

func (s *SlotServiceImpl) Reserve(ctx context.Context, doctorID int64, slotTime time.Time, appointmentID int64) (*domain.Slot, error) {
	existing, err := s.repo.GetByDoctorAndTime(ctx, doctorID, slotTime)
	if err != nil {
		s.logger.Error("ошибка получения слота", zap.Int64("doctorID", doctorID), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения слота: %w", err)
	}

	// пустующий слот (обе записи сняты) переиспользуется вместо вставки
	if existing != nil {
		if existing.SeatsTaken() > 0 {
			return nil, domain.ErrSlotConflict
		}

		slot, err := s.repo.SetFirstAppointment(ctx, existing.ID, appointmentID)
		if err != nil {
			if errors.Is(err, domain.ErrSlotConflict) {
				return nil, domain.ErrSlotConflict
			}
			s.logger.Error("ошибка занятия слота", zap.Int64("slotID", existing.ID), zap.Error(err))
			return nil, fmt.Errorf("ошибка занятия слота: %w", err)
		}
		return slot, nil
	}

	slot, err := s.repo.Create(ctx, doctorID, slotTime, appointmentID)
	if err != nil {
		if errors.Is(err, domain.ErrSlotConflict) {
			return nil, domain.ErrSlotConflict
		}
		s.logger.Error("ошибка создания слота", zap.Int64("doctorID", doctorID), zap.Error(err))
		return nil, fmt.Errorf("ошибка создания слота: %w", err)
	}

	return slot, nil
}

func (s *SlotServiceImpl) AttachSecond(ctx context.Context, slotID, appointmentID int64) (*domain.Slot, error) {
	slot, err := s.repo.AttachSecondAppointment(ctx, slotID, appointmentID)
	if err != nil {
		if errors.Is(err, domain.ErrSlotConflict) {
			return nil, domain.ErrSlotConflict
		}
		s.logger.Error("ошибка занятия второго места", zap.Int64("slotID", slotID), zap.Error(err))
		return nil, fmt.Errorf("ошибка занятия второго места: %w", err)
	}

	return slot, nil
}

func (s *SlotServiceImpl) UpdateTime(ctx context.Context, slotID int64, newTime time.Time) (*domain.Slot, error) {
	slot, err := s.repo.UpdateTime(ctx, slotID, newTime)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrSlotConflict) {
			return nil, err
		}
		s.logger.Error("ошибка обновления времени слота", zap.Int64("slotID", slotID), zap.Error(err))
		return nil, fmt.Errorf("ошибка обновления времени слота: %w", err)
	}

	return slot, nil
}
