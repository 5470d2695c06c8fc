package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hms/internal/domain"
)

type AppointmentRepo struct {
	db *pgxpool.Pool
}

func NewAppointmentRepository(db *pgxpool.Pool) AppointmentRepository {
	return &AppointmentRepo{db: db}
}

func (r *AppointmentRepo) Create(ctx context.Context, dto domain.CreateAppointmentDTO) (int64, error) {
	var id int64

	query := `
		INSERT INTO appointments (
			doctor_id, patient_name, patient_phone, visit_type, scheduled_at, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	now := time.Now()
	err := r.db.QueryRow(
		ctx,
		query,
		dto.DoctorID,
		dto.PatientName,
		dto.PatientPhone,
		dto.VisitType,
		dto.ScheduledAt,
		domain.AppointmentStatusScheduled,
		now,
		now,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания записи на прием: %w", err)
	}

	return id, nil
}

func (r *AppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	query := `
		SELECT id, doctor_id, patient_name, patient_phone, visit_type, scheduled_at, status, created_at, updated_at
		FROM appointments
		WHERE id = $1
	`

	var appointment domain.Appointment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&appointment.ID,
		&appointment.DoctorID,
		&appointment.PatientName,
		&appointment.PatientPhone,
		&appointment.VisitType,
		&appointment.ScheduledAt,
		&appointment.Status,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения записи на прием: %w", err)
	}

	return &appointment, nil
}

func (r *AppointmentRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	query := `UPDATE appointments SET status = $1, updated_at = $2 WHERE id = $3`

	_, err := r.db.Exec(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("ошибка обновления статуса записи: %w", err)
	}

	return nil
}

func (r *AppointmentRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления записи на прием: %w", err)
	}
	return nil
}

func buildAppointmentFilter(filter domain.AppointmentFilter) (string, []interface{}) {
	var conditions string
	var args []interface{}
	argPos := 1

	if filter.DoctorID != nil {
		conditions += fmt.Sprintf(" AND doctor_id = $%d", argPos)
		args = append(args, *filter.DoctorID)
		argPos++
	}

	if filter.Status != nil {
		conditions += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}

	if filter.StartDate != nil {
		conditions += fmt.Sprintf(" AND scheduled_at >= $%d", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}

	if filter.EndDate != nil {
		conditions += fmt.Sprintf(" AND scheduled_at <= $%d", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}

	return conditions, args
}

func (r *AppointmentRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	query := `
		SELECT id, doctor_id, patient_name, patient_phone, visit_type, scheduled_at, status, created_at, updated_at
		FROM appointments
		WHERE 1=1
	`

	conditions, args := buildAppointmentFilter(filter)
	query += conditions

	query += fmt.Sprintf(" ORDER BY scheduled_at LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка записей: %w", err)
	}
	defer rows.Close()

	var appointments []domain.Appointment
	for rows.Next() {
		var appointment domain.Appointment
		err := rows.Scan(
			&appointment.ID,
			&appointment.DoctorID,
			&appointment.PatientName,
			&appointment.PatientPhone,
			&appointment.VisitType,
			&appointment.ScheduledAt,
			&appointment.Status,
			&appointment.CreatedAt,
			&appointment.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки записи: %w", err)
		}
		appointments = append(appointments, appointment)
	}

	return appointments, nil
}

func (r *AppointmentRepo) CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error) {
	query := `SELECT COUNT(*) FROM appointments WHERE 1=1`

	conditions, args := buildAppointmentFilter(filter)
	query += conditions

	var total int
	err := r.db.QueryRow(ctx, query, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("ошибка получения количества записей: %w", err)
	}

	return total, nil
}
