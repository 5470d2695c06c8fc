package domain

import "errors"

var (
	ErrNoShiftFound     = errors.New("смена врача на указанную дату не найдена")
	ErrSlotConflict     = errors.New("слот уже занят")
	ErrInvalidTimeRange = errors.New("некорректный интервал рабочего времени")
	ErrNotFound         = errors.New("запись не найдена")
)
