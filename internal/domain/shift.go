package domain

import (
	"time"
)

type Weekday string

const (
	WeekdayMonday    Weekday = "MONDAY"
	WeekdayTuesday   Weekday = "TUESDAY"
	WeekdayWednesday Weekday = "WEDNESDAY"
	WeekdayThursday  Weekday = "THURSDAY"
	WeekdayFriday    Weekday = "FRIDAY"
	WeekdaySaturday  Weekday = "SATURDAY"
	WeekdaySunday    Weekday = "SUNDAY"
)

type ShiftStatus string

const (
	ShiftStatusActive    ShiftStatus = "active"
	ShiftStatusCompleted ShiftStatus = "completed"
	ShiftStatusCancelled ShiftStatus = "cancelled"
)

type WeeklyShift struct {
	ID        int64       `json:"id"`
	DoctorID  int64       `json:"doctor_id"`
	DayOfWeek Weekday     `json:"day_of_week"`
	StartTime string      `json:"start_time"`
	EndTime   string      `json:"end_time"`
	Status    ShiftStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type TemporaryShift struct {
	ID        int64       `json:"id"`
	DoctorID  int64       `json:"doctor_id"`
	StartAt   time.Time   `json:"start_at"`
	EndAt     time.Time   `json:"end_at"`
	Status    ShiftStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type CreateWeeklyShiftDTO struct {
	DoctorID  int64   `json:"doctor_id" binding:"required"`
	DayOfWeek Weekday `json:"day_of_week" binding:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	StartTime string  `json:"start_time" binding:"required"`
	EndTime   string  `json:"end_time" binding:"required"`
}

type UpdateWeeklyShiftDTO struct {
	DayOfWeek *Weekday     `json:"day_of_week,omitempty" binding:"omitempty,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	StartTime *string      `json:"start_time,omitempty"`
	EndTime   *string      `json:"end_time,omitempty"`
	Status    *ShiftStatus `json:"status,omitempty" binding:"omitempty,oneof=active completed cancelled"`
}

type CreateTemporaryShiftDTO struct {
	DoctorID int64     `json:"doctor_id" binding:"required"`
	StartAt  time.Time `json:"start_at" binding:"required"`
	EndAt    time.Time `json:"end_at" binding:"required"`
}

type ShiftSource string

const (
	ShiftSourceWeekly    ShiftSource = "weekly"
	ShiftSourceTemporary ShiftSource = "temporary"
)

// EffectiveShift — фактическая смена врача на конкретную дату после применения
// приоритета временной смены над еженедельной.
type EffectiveShift struct {
	StartTime string      `json:"start_time"`
	EndTime   string      `json:"end_time"`
	Found     bool        `json:"found"`
	Source    ShiftSource `json:"source,omitempty"`
}
