package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hms/internal/domain"
)

type ShiftRepo struct {
	db *pgxpool.Pool
}

func NewShiftRepository(db *pgxpool.Pool) ShiftRepository {
	return &ShiftRepo{db: db}
}

func (r *ShiftRepo) CreateWeekly(ctx context.Context, dto domain.CreateWeeklyShiftDTO) (int64, error) {
	var id int64

	query := `
		INSERT INTO weekly_shifts (
			doctor_id, day_of_week, start_time, end_time, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	now := time.Now()
	err := r.db.QueryRow(
		ctx,
		query,
		dto.DoctorID,
		dto.DayOfWeek,
		dto.StartTime,
		dto.EndTime,
		domain.ShiftStatusActive,
		now,
		now,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания еженедельной смены: %w", err)
	}

	return id, nil
}

func (r *ShiftRepo) GetWeeklyByID(ctx context.Context, id int64) (*domain.WeeklyShift, error) {
	query := `
		SELECT id, doctor_id, day_of_week, start_time, end_time, status, created_at, updated_at
		FROM weekly_shifts
		WHERE id = $1
	`

	var shift domain.WeeklyShift
	err := r.db.QueryRow(ctx, query, id).Scan(
		&shift.ID,
		&shift.DoctorID,
		&shift.DayOfWeek,
		&shift.StartTime,
		&shift.EndTime,
		&shift.Status,
		&shift.CreatedAt,
		&shift.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения еженедельной смены: %w", err)
	}

	return &shift, nil
}

func (r *ShiftRepo) UpdateWeekly(ctx context.Context, shift domain.WeeklyShift) error {
	query := `
		UPDATE weekly_shifts
		SET day_of_week = $1, start_time = $2, end_time = $3, status = $4, updated_at = $5
		WHERE id = $6
	`

	_, err := r.db.Exec(
		ctx,
		query,
		shift.DayOfWeek,
		shift.StartTime,
		shift.EndTime,
		shift.Status,
		time.Now(),
		shift.ID,
	)

	if err != nil {
		return fmt.Errorf("ошибка обновления еженедельной смены: %w", err)
	}

	return nil
}

func (r *ShiftRepo) DeleteWeekly(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM weekly_shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления еженедельной смены: %w", err)
	}
	return nil
}

func (r *ShiftRepo) ListWeeklyByDoctor(ctx context.Context, doctorID int64) ([]domain.WeeklyShift, error) {
	query := `
		SELECT id, doctor_id, day_of_week, start_time, end_time, status, created_at, updated_at
		FROM weekly_shifts
		WHERE doctor_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, doctorID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения еженедельных смен: %w", err)
	}
	defer rows.Close()

	var shifts []domain.WeeklyShift
	for rows.Next() {
		var shift domain.WeeklyShift
		err := rows.Scan(
			&shift.ID,
			&shift.DoctorID,
			&shift.DayOfWeek,
			&shift.StartTime,
			&shift.EndTime,
			&shift.Status,
			&shift.CreatedAt,
			&shift.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки смены: %w", err)
		}
		shifts = append(shifts, shift)
	}

	return shifts, nil
}

func (r *ShiftRepo) CreateTemporary(ctx context.Context, dto domain.CreateTemporaryShiftDTO) (int64, error) {
	var id int64

	query := `
		INSERT INTO temporary_shifts (
			doctor_id, start_at, end_at, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	now := time.Now()
	err := r.db.QueryRow(
		ctx,
		query,
		dto.DoctorID,
		dto.StartAt,
		dto.EndAt,
		domain.ShiftStatusActive,
		now,
		now,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания временной смены: %w", err)
	}

	return id, nil
}

func (r *ShiftRepo) GetTemporaryByID(ctx context.Context, id int64) (*domain.TemporaryShift, error) {
	query := `
		SELECT id, doctor_id, start_at, end_at, status, created_at, updated_at
		FROM temporary_shifts
		WHERE id = $1
	`

	var shift domain.TemporaryShift
	err := r.db.QueryRow(ctx, query, id).Scan(
		&shift.ID,
		&shift.DoctorID,
		&shift.StartAt,
		&shift.EndAt,
		&shift.Status,
		&shift.CreatedAt,
		&shift.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения временной смены: %w", err)
	}

	return &shift, nil
}

func (r *ShiftRepo) DeleteTemporary(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM temporary_shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления временной смены: %w", err)
	}
	return nil
}

func (r *ShiftRepo) ListTemporaryByDoctor(ctx context.Context, doctorID int64) ([]domain.TemporaryShift, error) {
	query := `
		SELECT id, doctor_id, start_at, end_at, status, created_at, updated_at
		FROM temporary_shifts
		WHERE doctor_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, doctorID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения временных смен: %w", err)
	}
	defer rows.Close()

	var shifts []domain.TemporaryShift
	for rows.Next() {
		var shift domain.TemporaryShift
		err := rows.Scan(
			&shift.ID,
			&shift.DoctorID,
			&shift.StartAt,
			&shift.EndAt,
			&shift.Status,
			&shift.CreatedAt,
			&shift.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки смены: %w", err)
		}
		shifts = append(shifts, shift)
	}

	return shifts, nil
}
