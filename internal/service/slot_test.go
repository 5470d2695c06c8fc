package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"hms/internal/domain"
)

func newSlotServiceForTest() (*SlotServiceImpl, *mockSlotRepo, *mockShiftRepo) {
	slotRepo := newMockSlotRepo()
	shiftRepo := newMockShiftRepo()
	return NewSlotService(slotRepo, shiftRepo, zap.NewNop()), slotRepo, shiftRepo
}

func TestGetDaySchedule_Statuses(t *testing.T) {
	svc, slotRepo, shiftRepo := newSlotServiceForTest()
	ctx := context.Background()

	shiftRepo.addWeekly(domain.WeeklyShift{
		DoctorID:  1,
		DayOfWeek: domain.WeekdayMonday,
		StartTime: "09:00",
		EndTime:   "10:00",
		Status:    domain.ShiftStatusActive,
		CreatedAt: time.Now(),
	})

	// 09:15 — одна запись, 09:30 — две, 09:45 — слот с освобожденными местами
	partial, _ := slotRepo.Create(ctx, 1, time.Date(2025, 6, 2, 9, 15, 0, 0, time.UTC), 101)
	full, _ := slotRepo.Create(ctx, 1, time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC), 102)
	slotRepo.AttachSecondAppointment(ctx, full.ID, 103)
	empty, _ := slotRepo.Create(ctx, 1, time.Date(2025, 6, 2, 9, 45, 0, 0, time.UTC), 104)
	slotRepo.ReleaseAppointment(ctx, empty.ID, 104)

	schedule, err := svc.GetDaySchedule(ctx, 1, "2025-06-02")
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if !schedule.Found {
		t.Fatal("ожидалось найденное расписание")
	}
	if len(schedule.Slots) != 4 {
		t.Fatalf("ожидалось 4 слота, получено %d", len(schedule.Slots))
	}

	expected := []struct {
		time   string
		status domain.SlotStatus
	}{
		{"09:00", domain.SlotStatusAvailable},
		{"09:15", domain.SlotStatusPartial},
		{"09:30", domain.SlotStatusFull},
		{"09:45", domain.SlotStatusAvailable},
	}

	for i, want := range expected {
		got := schedule.Slots[i]
		if got.Time != want.time {
			t.Errorf("слот %d: ожидалось время %s, получено %s", i, want.time, got.Time)
		}
		if got.Status != want.status {
			t.Errorf("слот %d: ожидался статус %s, получен %s", i, want.status, got.Status)
		}
	}

	if schedule.Slots[1].SlotID == nil || *schedule.Slots[1].SlotID != partial.ID {
		t.Error("частично занятый слот должен возвращать свой ID")
	}
	if schedule.Slots[3].SlotID != nil {
		t.Error("пустующий слот не должен возвращать ID")
	}
}

func TestGetDaySchedule_NoShift(t *testing.T) {
	svc, _, _ := newSlotServiceForTest()

	schedule, err := svc.GetDaySchedule(context.Background(), 1, "2025-06-02")
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if schedule.Found {
		t.Error("расписание не должно быть найдено без смен")
	}
	if len(schedule.Slots) != 0 {
		t.Errorf("ожидался пустой список слотов, получено %d", len(schedule.Slots))
	}
}

func TestGetDaySchedule_OvernightShift(t *testing.T) {
	svc, slotRepo, shiftRepo := newSlotServiceForTest()
	ctx := context.Background()

	shiftRepo.addWeekly(domain.WeeklyShift{
		DoctorID:  1,
		DayOfWeek: domain.WeekdayMonday,
		StartTime: "22:00",
		EndTime:   "02:00",
		Status:    domain.ShiftStatusActive,
		CreatedAt: time.Now(),
	})

	// бронирование после полуночи хранится со временем следующего дня
	slotRepo.Create(ctx, 1, time.Date(2025, 6, 3, 1, 0, 0, 0, time.UTC), 201)

	schedule, err := svc.GetDaySchedule(ctx, 1, "2025-06-02")
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(schedule.Slots) != 16 {
		t.Fatalf("ночная смена 22:00-02:00 должна давать 16 слотов, получено %d", len(schedule.Slots))
	}
	if schedule.Slots[0].Time != "22:00" {
		t.Errorf("первый слот должен быть 22:00, получено %s", schedule.Slots[0].Time)
	}
	if schedule.Slots[15].Time != "01:45" {
		t.Errorf("последний слот должен быть 01:45, получено %s", schedule.Slots[15].Time)
	}

	for _, slot := range schedule.Slots {
		if slot.Time == "01:00" {
			if slot.Status != domain.SlotStatusPartial {
				t.Errorf("слот 01:00 должен быть PARTIAL, получен %s", slot.Status)
			}
			return
		}
	}
	t.Error("слот 01:00 не найден в расписании")
}

func TestReserve_ReusesEmptySlot(t *testing.T) {
	svc, slotRepo, _ := newSlotServiceForTest()
	ctx := context.Background()

	slotTime := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	existing, _ := slotRepo.Create(ctx, 1, slotTime, 301)
	slotRepo.ReleaseAppointment(ctx, existing.ID, 301)

	slot, err := svc.Reserve(ctx, 1, slotTime, 302)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if slot.ID != existing.ID {
		t.Errorf("пустующий слот должен переиспользоваться, ожидался ID %d, получен %d", existing.ID, slot.ID)
	}
	if slot.Appointment1ID == nil || *slot.Appointment1ID != 302 {
		t.Error("запись должна занять первое место слота")
	}
}

func TestReserve_ConflictWhenOccupied(t *testing.T) {
	svc, slotRepo, _ := newSlotServiceForTest()
	ctx := context.Background()

	slotTime := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	slotRepo.Create(ctx, 1, slotTime, 301)

	_, err := svc.Reserve(ctx, 1, slotTime, 302)
	if !errors.Is(err, domain.ErrSlotConflict) {
		t.Errorf("ожидалась ошибка ErrSlotConflict, получено %v", err)
	}
}

func TestAttachSecond_FullSlot(t *testing.T) {
	svc, slotRepo, _ := newSlotServiceForTest()
	ctx := context.Background()

	slot, _ := slotRepo.Create(ctx, 1, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), 301)
	slotRepo.AttachSecondAppointment(ctx, slot.ID, 302)

	_, err := svc.AttachSecond(ctx, slot.ID, 303)
	if !errors.Is(err, domain.ErrSlotConflict) {
		t.Errorf("ожидалась ошибка ErrSlotConflict, получено %v", err)
	}
}

func TestUpdateTime(t *testing.T) {
	svc, slotRepo, _ := newSlotServiceForTest()
	ctx := context.Background()

	slot, _ := slotRepo.Create(ctx, 1, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), 301)
	occupied, _ := slotRepo.Create(ctx, 1, time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC), 302)

	newTime := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	updated, err := svc.UpdateTime(ctx, slot.ID, newTime)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if !updated.SlotTime.Equal(newTime) {
		t.Errorf("ожидалось время %v, получено %v", newTime, updated.SlotTime)
	}

	_, err = svc.UpdateTime(ctx, slot.ID, occupied.SlotTime)
	if !errors.Is(err, domain.ErrSlotConflict) {
		t.Errorf("ожидалась ошибка ErrSlotConflict, получено %v", err)
	}

	_, err = svc.UpdateTime(ctx, 9999, newTime)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("ожидалась ошибка ErrNotFound, получено %v", err)
	}
}
