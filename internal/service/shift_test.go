package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"hms/internal/domain"
)

func TestResolveEffectiveShift_Weekly(t *testing.T) {
	repo := newMockShiftRepo()
	repo.addWeekly(domain.WeeklyShift{
		DoctorID:  1,
		DayOfWeek: domain.WeekdayMonday,
		StartTime: "09:00",
		EndTime:   "12:00",
		Status:    domain.ShiftStatusActive,
		CreatedAt: time.Now(),
	})

	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	shift, err := resolveEffectiveShift(context.Background(), repo, 1, monday)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if !shift.Found {
		t.Fatal("ожидалась найденная смена")
	}
	if shift.Source != domain.ShiftSourceWeekly {
		t.Errorf("ожидался источник weekly, получен %s", shift.Source)
	}
	if shift.StartTime != "09:00" || shift.EndTime != "12:00" {
		t.Errorf("неверный интервал смены: %s - %s", shift.StartTime, shift.EndTime)
	}
}

func TestResolveEffectiveShift_TemporaryOverridesWeekly(t *testing.T) {
	repo := newMockShiftRepo()
	repo.addWeekly(domain.WeeklyShift{
		DoctorID:  1,
		DayOfWeek: domain.WeekdayMonday,
		StartTime: "09:00",
		EndTime:   "12:00",
		Status:    domain.ShiftStatusActive,
		CreatedAt: time.Now(),
	})
	repo.addTemporary(domain.TemporaryShift{
		DoctorID:  1,
		StartAt:   time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC),
		EndAt:     time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC),
		Status:    domain.ShiftStatusActive,
		CreatedAt: time.Now(),
	})

	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	shift, err := resolveEffectiveShift(context.Background(), repo, 1, monday)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if shift.Source != domain.ShiftSourceTemporary {
		t.Errorf("временная смена должна заменять еженедельную, получен источник %s", shift.Source)
	}
	if shift.StartTime != "14:00" || shift.EndTime != "18:00" {
		t.Errorf("неверный интервал смены: %s - %s", shift.StartTime, shift.EndTime)
	}
}

func TestResolveEffectiveShift_NoShift(t *testing.T) {
	repo := newMockShiftRepo()
	repo.addWeekly(domain.WeeklyShift{
		DoctorID:  1,
		DayOfWeek: domain.WeekdayMonday,
		StartTime: "09:00",
		EndTime:   "12:00",
		Status:    domain.ShiftStatusActive,
		CreatedAt: time.Now(),
	})

	tuesday := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	shift, err := resolveEffectiveShift(context.Background(), repo, 1, tuesday)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if shift.Found {
		t.Error("смена не должна быть найдена для дня без расписания")
	}
}

func TestResolveEffectiveShift_MostRecentWins(t *testing.T) {
	repo := newMockShiftRepo()
	repo.addWeekly(domain.WeeklyShift{
		DoctorID:  1,
		DayOfWeek: domain.WeekdayMonday,
		StartTime: "08:00",
		EndTime:   "11:00",
		Status:    domain.ShiftStatusActive,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	repo.addWeekly(domain.WeeklyShift{
		DoctorID:  1,
		DayOfWeek: domain.WeekdayMonday,
		StartTime: "10:00",
		EndTime:   "13:00",
		Status:    domain.ShiftStatusActive,
		CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	shift, err := resolveEffectiveShift(context.Background(), repo, 1, monday)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if shift.StartTime != "10:00" {
		t.Errorf("при дублировании смен должна выигрывать созданная последней, получено %s", shift.StartTime)
	}
}

func TestResolveEffectiveShift_IgnoresInactive(t *testing.T) {
	repo := newMockShiftRepo()
	repo.addWeekly(domain.WeeklyShift{
		DoctorID:  1,
		DayOfWeek: domain.WeekdayMonday,
		StartTime: "09:00",
		EndTime:   "12:00",
		Status:    domain.ShiftStatusActive,
		CreatedAt: time.Now(),
	})
	repo.addTemporary(domain.TemporaryShift{
		DoctorID:  1,
		StartAt:   time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC),
		EndAt:     time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC),
		Status:    domain.ShiftStatusCancelled,
		CreatedAt: time.Now(),
	})

	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	shift, err := resolveEffectiveShift(context.Background(), repo, 1, monday)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if shift.Source != domain.ShiftSourceWeekly {
		t.Errorf("отмененная временная смена не должна учитываться, получен источник %s", shift.Source)
	}
}

func TestCreateTemporary_InvalidRange(t *testing.T) {
	shiftRepo := newMockShiftRepo()
	doctorRepo := newMockDoctorRepo()
	doctorID, _ := doctorRepo.Create(context.Background(), domain.CreateDoctorDTO{
		FirstName: "Иван",
		LastName:  "Петров",
		Specialty: "терапевт",
		Phone:     "+79991234567",
	})

	svc := NewShiftService(shiftRepo, doctorRepo, zap.NewNop())

	_, err := svc.CreateTemporary(context.Background(), domain.CreateTemporaryShiftDTO{
		DoctorID: doctorID,
		StartAt:  time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC),
		EndAt:    time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, domain.ErrInvalidTimeRange) {
		t.Errorf("ожидалась ошибка ErrInvalidTimeRange, получено %v", err)
	}
}

func TestCreateWeekly_BadClockFormat(t *testing.T) {
	shiftRepo := newMockShiftRepo()
	doctorRepo := newMockDoctorRepo()
	doctorID, _ := doctorRepo.Create(context.Background(), domain.CreateDoctorDTO{
		FirstName: "Иван",
		LastName:  "Петров",
		Specialty: "терапевт",
		Phone:     "+79991234567",
	})

	svc := NewShiftService(shiftRepo, doctorRepo, zap.NewNop())

	_, err := svc.CreateWeekly(context.Background(), domain.CreateWeeklyShiftDTO{
		DoctorID:  doctorID,
		DayOfWeek: domain.WeekdayMonday,
		StartTime: "9 утра",
		EndTime:   "12:00",
	})
	if err == nil {
		t.Error("ожидалась ошибка при неверном формате времени")
	}
}
