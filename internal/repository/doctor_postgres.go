package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hms/internal/domain"
)

type DoctorRepo struct {
	db *pgxpool.Pool
}

func NewDoctorRepository(db *pgxpool.Pool) DoctorRepository {
	return &DoctorRepo{db: db}
}

func (r *DoctorRepo) Create(ctx context.Context, dto domain.CreateDoctorDTO) (int64, error) {
	var id int64

	query := `
		INSERT INTO doctors (
			first_name, last_name, middle_name, specialty, phone, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, true, $6, $7)
		RETURNING id
	`

	now := time.Now()
	err := r.db.QueryRow(
		ctx,
		query,
		dto.FirstName,
		dto.LastName,
		dto.MiddleName,
		dto.Specialty,
		dto.Phone,
		now,
		now,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания врача: %w", err)
	}

	return id, nil
}

func (r *DoctorRepo) GetByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	query := `
		SELECT id, first_name, last_name, middle_name, specialty, phone, is_active, created_at, updated_at
		FROM doctors
		WHERE id = $1
	`

	var doctor domain.Doctor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&doctor.ID,
		&doctor.FirstName,
		&doctor.LastName,
		&doctor.MiddleName,
		&doctor.Specialty,
		&doctor.Phone,
		&doctor.IsActive,
		&doctor.CreatedAt,
		&doctor.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения врача: %w", err)
	}

	return &doctor, nil
}

func (r *DoctorRepo) Update(ctx context.Context, id int64, dto domain.UpdateDoctorDTO) error {
	query := `
		UPDATE doctors
		SET first_name = COALESCE($1, first_name),
			last_name = COALESCE($2, last_name),
			middle_name = COALESCE($3, middle_name),
			specialty = COALESCE($4, specialty),
			phone = COALESCE($5, phone),
			is_active = COALESCE($6, is_active),
			updated_at = $7
		WHERE id = $8
	`

	_, err := r.db.Exec(
		ctx,
		query,
		dto.FirstName,
		dto.LastName,
		dto.MiddleName,
		dto.Specialty,
		dto.Phone,
		dto.IsActive,
		time.Now(),
		id,
	)

	if err != nil {
		return fmt.Errorf("ошибка обновления врача: %w", err)
	}

	return nil
}

func (r *DoctorRepo) List(ctx context.Context, limit, offset int) ([]domain.Doctor, int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM doctors`).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения количества врачей: %w", err)
	}

	query := `
		SELECT id, first_name, last_name, middle_name, specialty, phone, is_active, created_at, updated_at
		FROM doctors
		ORDER BY last_name, first_name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка врачей: %w", err)
	}
	defer rows.Close()

	var doctors []domain.Doctor
	for rows.Next() {
		var doctor domain.Doctor
		err := rows.Scan(
			&doctor.ID,
			&doctor.FirstName,
			&doctor.LastName,
			&doctor.MiddleName,
			&doctor.Specialty,
			&doctor.Phone,
			&doctor.IsActive,
			&doctor.CreatedAt,
			&doctor.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования строки врача: %w", err)
		}
		doctors = append(doctors, doctor)
	}

	return doctors, total, nil
}
