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

type ShiftServiceImpl struct {
	repo       repository.ShiftRepository
	doctorRepo repository.DoctorRepository
	logger     *zap.Logger
}

func NewShiftService(
	repo repository.ShiftRepository,
	doctorRepo repository.DoctorRepository,
	logger *zap.Logger,
) *ShiftServiceImpl {
	return &ShiftServiceImpl{
		repo:       repo,
		doctorRepo: doctorRepo,
		logger:     logger,
	}
}

func (s *ShiftServiceImpl) CreateWeekly(ctx context.Context, dto domain.CreateWeeklyShiftDTO) (int64, error) {
	doctor, err := s.doctorRepo.GetByID(ctx, dto.DoctorID)
	if err != nil || doctor == nil {
		s.logger.Error("врач не найден при создании смены", zap.Int64("doctorID", dto.DoctorID), zap.Error(err))
		return 0, errors.New("врач не найден")
	}

	if _, err := time.Parse(timeslot.ClockLayout, dto.StartTime); err != nil {
		return 0, errors.New("неверный формат времени начала")
	}

	if _, err := time.Parse(timeslot.ClockLayout, dto.EndTime); err != nil {
		return 0, errors.New("неверный формат времени окончания")
	}

	id, err := s.repo.CreateWeekly(ctx, dto)
	if err != nil {
		s.logger.Error("ошибка создания еженедельной смены", zap.Error(err))
		return 0, fmt.Errorf("ошибка создания еженедельной смены: %w", err)
	}

	return id, nil
}

func (s *ShiftServiceImpl) UpdateWeekly(ctx context.Context, id int64, dto domain.UpdateWeeklyShiftDTO) error {
	shift, err := s.repo.GetWeeklyByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения еженедельной смены", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка получения еженедельной смены: %w", err)
	}

	if shift == nil {
		return domain.ErrNotFound
	}

	if dto.DayOfWeek != nil {
		shift.DayOfWeek = *dto.DayOfWeek
	}
	if dto.StartTime != nil {
		if _, err := time.Parse(timeslot.ClockLayout, *dto.StartTime); err != nil {
			return errors.New("неверный формат времени начала")
		}
		shift.StartTime = *dto.StartTime
	}
	if dto.EndTime != nil {
		if _, err := time.Parse(timeslot.ClockLayout, *dto.EndTime); err != nil {
			return errors.New("неверный формат времени окончания")
		}
		shift.EndTime = *dto.EndTime
	}
	if dto.Status != nil {
		shift.Status = *dto.Status
	}

	err = s.repo.UpdateWeekly(ctx, *shift)
	if err != nil {
		s.logger.Error("ошибка обновления еженедельной смены", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка обновления еженедельной смены: %w", err)
	}

	return nil
}

func (s *ShiftServiceImpl) DeleteWeekly(ctx context.Context, id int64) error {
	err := s.repo.DeleteWeekly(ctx, id)
	if err != nil {
		s.logger.Error("ошибка удаления еженедельной смены", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка удаления еженедельной смены: %w", err)
	}
	return nil
}

func (s *ShiftServiceImpl) ListWeeklyByDoctor(ctx context.Context, doctorID int64) ([]domain.WeeklyShift, error) {
	shifts, err := s.repo.ListWeeklyByDoctor(ctx, doctorID)
	if err != nil {
		s.logger.Error("ошибка получения еженедельных смен", zap.Int64("doctorID", doctorID), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения еженедельных смен: %w", err)
	}
	return shifts, nil
}

func (s *ShiftServiceImpl) CreateTemporary(ctx context.Context, dto domain.CreateTemporaryShiftDTO) (int64, error) {
	doctor, err := s.doctorRepo.GetByID(ctx, dto.DoctorID)
	if err != nil || doctor == nil {
		s.logger.Error("врач не найден при создании временной смены", zap.Int64("doctorID", dto.DoctorID), zap.Error(err))
		return 0, errors.New("врач не найден")
	}

	if !dto.EndAt.After(dto.StartAt) {
		return 0, domain.ErrInvalidTimeRange
	}

	id, err := s.repo.CreateTemporary(ctx, dto)
	if err != nil {
		s.logger.Error("ошибка создания временной смены", zap.Error(err))
		return 0, fmt.Errorf("ошибка создания временной смены: %w", err)
	}

	return id, nil
}

func (s *ShiftServiceImpl) DeleteTemporary(ctx context.Context, id int64) error {
	err := s.repo.DeleteTemporary(ctx, id)
	if err != nil {
		s.logger.Error("ошибка удаления временной смены", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка удаления временной смены: %w", err)
	}
	return nil
}

func (s *ShiftServiceImpl) ListTemporaryByDoctor(ctx context.Context, doctorID int64) ([]domain.TemporaryShift, error) {
	shifts, err := s.repo.ListTemporaryByDoctor(ctx, doctorID)
	if err != nil {
		s.logger.Error("ошибка получения временных смен", zap.Int64("doctorID", doctorID), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения временных смен: %w", err)
	}
	return shifts, nil
}

func (s *ShiftServiceImpl) ResolveEffectiveShift(ctx context.Context, doctorID int64, date time.Time) (*domain.EffectiveShift, error) {
	return resolveEffectiveShift(ctx, s.repo, doctorID, date)
}

// resolveEffectiveShift определяет фактическую смену врача на дату: временная
// смена на тот же календарный день имеет приоритет над еженедельной. При
// нескольких подходящих сменах выигрывает созданная последней.
func resolveEffectiveShift(ctx context.Context, repo repository.ShiftRepository, doctorID int64, date time.Time) (*domain.EffectiveShift, error) {
	temporary, err := repo.ListTemporaryByDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения временных смен: %w", err)
	}

	var tempMatch *domain.TemporaryShift
	for i := range temporary {
		shift := &temporary[i]
		if shift.Status != domain.ShiftStatusActive {
			continue
		}
		if !timeslot.SameDay(shift.StartAt, date) {
			continue
		}
		if tempMatch == nil || shift.CreatedAt.After(tempMatch.CreatedAt) {
			tempMatch = shift
		}
	}

	if tempMatch != nil {
		return &domain.EffectiveShift{
			StartTime: timeslot.TimeOfDay(tempMatch.StartAt),
			EndTime:   timeslot.TimeOfDay(tempMatch.EndAt),
			Found:     true,
			Source:    domain.ShiftSourceTemporary,
		}, nil
	}

	weekly, err := repo.ListWeeklyByDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения еженедельных смен: %w", err)
	}

	weekday := domain.Weekday(timeslot.WeekdayName(date))

	var weeklyMatch *domain.WeeklyShift
	for i := range weekly {
		shift := &weekly[i]
		if shift.Status != domain.ShiftStatusActive {
			continue
		}
		if shift.DayOfWeek != weekday {
			continue
		}
		if weeklyMatch == nil || shift.CreatedAt.After(weeklyMatch.CreatedAt) {
			weeklyMatch = shift
		}
	}

	if weeklyMatch != nil {
		return &domain.EffectiveShift{
			StartTime: weeklyMatch.StartTime,
			EndTime:   weeklyMatch.EndTime,
			Found:     true,
			Source:    domain.ShiftSourceWeekly,
		}, nil
	}

	return &domain.EffectiveShift{Found: false}, nil
}
