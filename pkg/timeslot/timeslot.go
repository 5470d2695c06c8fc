// Пакет timeslot — единая точка работы с настенным временем расписания.
// Все сравнения и форматирование выполняются в одной фиксированной зоне (UTC),
// чтобы резолвер смен, генератор слотов и классификатор не расходились
// в интерпретации времени.
package timeslot

import (
	"errors"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	DefaultInterval = 15 * time.Minute
)

var ErrInvalidRange = errors.New("некорректный интервал времени")

// Zone — фиксированная референсная зона расписания.
var Zone = time.UTC

// TimeOfDay возвращает настенное время HH:MM в референсной зоне.
// Используется и при генерации границ, и при сопоставлении сохраненных слотов.
func TimeOfDay(t time.Time) string {
	return t.In(Zone).Format(ClockLayout)
}

// SameDay сообщает, попадают ли два момента на один календарный день
// в референсной зоне.
func SameDay(a, b time.Time) bool {
	a = a.In(Zone)
	b = b.In(Zone)
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// WeekdayName возвращает символьное имя дня недели даты в референсной зоне.
func WeekdayName(date time.Time) string {
	return strings.ToUpper(date.In(Zone).Weekday().String())
}

// Combine собирает полный момент времени из календарной даты и настенного
// времени HH:MM в референсной зоне.
func Combine(date time.Time, clock string) (time.Time, error) {
	t, err := time.ParseInLocation(ClockLayout, clock, Zone)
	if err != nil {
		return time.Time{}, ErrInvalidRange
	}

	date = date.In(Zone)
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, Zone), nil
}

// Boundaries генерирует упорядоченные границы слотов смены на дату.
// Если конец смены не позже начала, смена считается ночной и конец
// переносится на следующие сутки. Чистая функция без побочных эффектов.
func Boundaries(date time.Time, startClock, endClock string, interval time.Duration) ([]time.Time, error) {
	if interval <= 0 {
		return nil, ErrInvalidRange
	}

	start, err := Combine(date, startClock)
	if err != nil {
		return nil, err
	}

	end, err := Combine(date, endClock)
	if err != nil {
		return nil, err
	}

	// ночная смена: 22:00–02:00 и вырожденный случай end == start
	if !end.After(start) {
		end = end.Add(24 * time.Hour)
	}

	var boundaries []time.Time
	for cur := start; cur.Before(end); cur = cur.Add(interval) {
		boundaries = append(boundaries, cur)
	}

	return boundaries, nil
}
