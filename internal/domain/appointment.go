package domain

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

type VisitType string

const (
	VisitTypePrimary   VisitType = "primary"
	VisitTypeSecondary VisitType = "secondary"
	VisitTypeCheckup   VisitType = "checkup"
)

type Appointment struct {
	ID           int64             `json:"id"`
	DoctorID     int64             `json:"doctor_id"`
	PatientName  string            `json:"patient_name"`
	PatientPhone string            `json:"patient_phone"`
	VisitType    VisitType         `json:"visit_type"`
	ScheduledAt  time.Time         `json:"scheduled_at"`
	Status       AppointmentStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type CreateAppointmentDTO struct {
	DoctorID     int64     `json:"doctor_id" binding:"required"`
	PatientName  string    `json:"patient_name" binding:"required"`
	PatientPhone string    `json:"patient_phone" binding:"required"`
	VisitType    VisitType `json:"visit_type" binding:"required,oneof=primary secondary checkup"`
	ScheduledAt  time.Time `json:"scheduled_at" binding:"required"`
}

type RescheduleAppointmentDTO struct {
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

type AppointmentFilter struct {
	DoctorID  *int64             `json:"doctor_id"`
	Status    *AppointmentStatus `json:"status"`
	StartDate *time.Time         `json:"start_date"`
	EndDate   *time.Time         `json:"end_date"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}
