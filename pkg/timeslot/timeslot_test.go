package timeslot

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBoundaries_RegularShift(t *testing.T) {
	// понедельник 09:00–12:00 -> 12 границ по 15 минут
	boundaries, err := Boundaries(date(2024, time.June, 3), "09:00", "12:00", DefaultInterval)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(boundaries) != 12 {
		t.Fatalf("ожидалось 12 границ, получено %d", len(boundaries))
	}
	if got := TimeOfDay(boundaries[0]); got != "09:00" {
		t.Errorf("первая граница: ожидалось 09:00, получено %s", got)
	}
	if got := TimeOfDay(boundaries[11]); got != "11:45" {
		t.Errorf("последняя граница: ожидалось 11:45, получено %s", got)
	}
}

func TestBoundaries_OvernightShift(t *testing.T) {
	// вторник 22:00–02:00 -> 16 границ, переход через полночь в среду
	day := date(2024, time.June, 4)
	boundaries, err := Boundaries(day, "22:00", "02:00", DefaultInterval)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(boundaries) != 16 {
		t.Fatalf("ожидалось 16 границ, получено %d", len(boundaries))
	}
	if got := TimeOfDay(boundaries[7]); got != "23:45" {
		t.Errorf("граница 8: ожидалось 23:45, получено %s", got)
	}
	if got := TimeOfDay(boundaries[8]); got != "00:00" {
		t.Errorf("граница 9: ожидалось 00:00, получено %s", got)
	}
	if got := TimeOfDay(boundaries[15]); got != "01:45" {
		t.Errorf("последняя граница: ожидалось 01:45, получено %s", got)
	}
	if boundaries[8].Day() != day.Day()+1 {
		t.Error("границы после полуночи должны попадать на следующие сутки")
	}
	for i := 1; i < len(boundaries); i++ {
		if d := boundaries[i].Sub(boundaries[i-1]); d != DefaultInterval {
			t.Fatalf("шаг между границами %d и %d равен %v", i-1, i, d)
		}
	}
}

func TestBoundaries_EqualStartEnd(t *testing.T) {
	// end == start трактуется как полные сутки, а не как пустая смена
	boundaries, err := Boundaries(date(2024, time.June, 3), "08:00", "08:00", DefaultInterval)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(boundaries) != 96 {
		t.Errorf("ожидалось 96 границ за сутки, получено %d", len(boundaries))
	}
}

func TestBoundaries_SingleSlot(t *testing.T) {
	boundaries, err := Boundaries(date(2024, time.June, 3), "10:00", "10:15", DefaultInterval)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(boundaries) != 1 {
		t.Fatalf("смена длиной в один интервал должна давать ровно одну границу, получено %d", len(boundaries))
	}
	if got := TimeOfDay(boundaries[0]); got != "10:00" {
		t.Errorf("ожидалось 10:00, получено %s", got)
	}
}

func TestBoundaries_InvalidInput(t *testing.T) {
	if _, err := Boundaries(date(2024, time.June, 3), "9 утра", "12:00", DefaultInterval); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("ожидалась ErrInvalidRange для нечитаемого времени, получено %v", err)
	}
	if _, err := Boundaries(date(2024, time.June, 3), "09:00", "12:00", 0); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("ожидалась ErrInvalidRange для нулевого интервала, получено %v", err)
	}
}

func TestBoundaries_Deterministic(t *testing.T) {
	first, err := Boundaries(date(2024, time.June, 3), "09:00", "12:00", DefaultInterval)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	second, _ := Boundaries(date(2024, time.June, 3), "09:00", "12:00", DefaultInterval)
	if len(first) != len(second) {
		t.Fatal("повторный вызов вернул другое количество границ")
	}
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Fatalf("граница %d отличается между вызовами", i)
		}
	}
}

func TestTimeOfDay_RoundTrip(t *testing.T) {
	// время границы и время сохраненного слота форматируются одинаково
	boundaries, err := Boundaries(date(2024, time.June, 3), "09:00", "10:00", DefaultInterval)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	for _, b := range boundaries {
		stored := b // слот, созданный ровно на этой границе
		if TimeOfDay(b) != TimeOfDay(stored) {
			t.Fatalf("расхождение форматирования для %v", b)
		}
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, time.June, 3, 23, 59, 0, 0, time.UTC)
	b := time.Date(2024, time.June, 3, 0, 1, 0, 0, time.UTC)
	c := time.Date(2024, time.June, 4, 0, 1, 0, 0, time.UTC)

	if !SameDay(a, b) {
		t.Error("моменты одного дня не совпали")
	}
	if SameDay(a, c) {
		t.Error("моменты разных дней совпали")
	}
}

func TestWeekdayName(t *testing.T) {
	if got := WeekdayName(date(2024, time.June, 3)); got != "MONDAY" {
		t.Errorf("ожидалось MONDAY, получено %s", got)
	}
	if got := WeekdayName(date(2024, time.June, 9)); got != "SUNDAY" {
		t.Errorf("ожидалось SUNDAY, получено %s", got)
	}
}
