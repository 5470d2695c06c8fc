package domain

import (
	"time"
)

type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "AVAILABLE"
	SlotStatusPartial   SlotStatus = "PARTIAL"
	SlotStatusFull      SlotStatus = "FULL"
)

// Slot — контейнер бронирований на одну 15-минутную границу времени врача.
// Держит не более двух записей на прием.
type Slot struct {
	ID             int64     `json:"id"`
	DoctorID       int64     `json:"doctor_id"`
	SlotTime       time.Time `json:"slot_time"`
	Appointment1ID *int64    `json:"appointment1_id"`
	Appointment2ID *int64    `json:"appointment2_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (s *Slot) SeatsTaken() int {
	taken := 0
	if s.Appointment1ID != nil {
		taken++
	}
	if s.Appointment2ID != nil {
		taken++
	}
	return taken
}

func (s *Slot) HoldsAppointment(appointmentID int64) bool {
	if s.Appointment1ID != nil && *s.Appointment1ID == appointmentID {
		return true
	}
	if s.Appointment2ID != nil && *s.Appointment2ID == appointmentID {
		return true
	}
	return false
}

type SlotView struct {
	Time   string     `json:"time"`
	Status SlotStatus `json:"status"`
	SlotID *int64     `json:"slot_id,omitempty"`
}

type DaySchedule struct {
	DoctorID int64      `json:"doctor_id"`
	Date     string     `json:"date"`
	Found    bool       `json:"found"`
	Slots    []SlotView `json:"slots"`
}

type UpdateSlotTimeDTO struct {
	SlotTime time.Time `json:"slot_time" binding:"required"`
}
