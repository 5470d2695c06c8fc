package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"hms/internal/domain"
)

const uniqueViolationCode = "23505"

type SlotRepo struct {
	db *pgxpool.Pool
}

func NewSlotRepository(db *pgxpool.Pool) SlotRepository {
	return &SlotRepo{db: db}
}

const slotColumns = `id, doctor_id, slot_time, appointment1_id, appointment2_id, created_at, updated_at`

func scanSlot(row pgx.Row) (*domain.Slot, error) {
	var slot domain.Slot
	err := row.Scan(
		&slot.ID,
		&slot.DoctorID,
		&slot.SlotTime,
		&slot.Appointment1ID,
		&slot.Appointment2ID,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *SlotRepo) Create(ctx context.Context, doctorID int64, slotTime time.Time, appointmentID int64) (*domain.Slot, error) {
	query := `
		INSERT INTO slots (
			doctor_id, slot_time, appointment1_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + slotColumns

	now := time.Now()
	slot, err := scanSlot(r.db.QueryRow(ctx, query, doctorID, slotTime, appointmentID, now, now))
	if err != nil {
		// страховка от гонки двух одновременных бронирований одной границы
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, domain.ErrSlotConflict
		}
		return nil, fmt.Errorf("ошибка создания слота: %w", err)
	}

	return slot, nil
}

func (r *SlotRepo) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	query := `SELECT ` + slotColumns + ` FROM slots WHERE id = $1`

	slot, err := scanSlot(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения слота: %w", err)
	}

	return slot, nil
}

func (r *SlotRepo) GetByDoctorAndTime(ctx context.Context, doctorID int64, slotTime time.Time) (*domain.Slot, error) {
	query := `SELECT ` + slotColumns + ` FROM slots WHERE doctor_id = $1 AND slot_time = $2`

	slot, err := scanSlot(r.db.QueryRow(ctx, query, doctorID, slotTime))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения слота: %w", err)
	}

	return slot, nil
}

func (r *SlotRepo) GetByAppointment(ctx context.Context, appointmentID int64) (*domain.Slot, error) {
	query := `SELECT ` + slotColumns + ` FROM slots WHERE appointment1_id = $1 OR appointment2_id = $1`

	slot, err := scanSlot(r.db.QueryRow(ctx, query, appointmentID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения слота записи: %w", err)
	}

	return slot, nil
}

func (r *SlotRepo) ListByDoctorAndRange(ctx context.Context, doctorID int64, from, to time.Time) ([]domain.Slot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM slots
		WHERE doctor_id = $1 AND slot_time >= $2 AND slot_time < $3
		ORDER BY slot_time
	`

	rows, err := r.db.Query(ctx, query, doctorID, from, to)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения слотов: %w", err)
	}
	defer rows.Close()

	var slots []domain.Slot
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки слота: %w", err)
		}
		slots = append(slots, *slot)
	}

	return slots, nil
}

func (r *SlotRepo) SetFirstAppointment(ctx context.Context, slotID, appointmentID int64) (*domain.Slot, error) {
	// compare-and-swap: место занимается, только если оно еще свободно
	query := `
		UPDATE slots
		SET appointment1_id = $1, updated_at = $2
		WHERE id = $3 AND appointment1_id IS NULL
		RETURNING ` + slotColumns

	slot, err := scanSlot(r.db.QueryRow(ctx, query, appointmentID, time.Now(), slotID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrSlotConflict
		}
		return nil, fmt.Errorf("ошибка занятия первого места слота: %w", err)
	}

	return slot, nil
}

func (r *SlotRepo) AttachSecondAppointment(ctx context.Context, slotID, appointmentID int64) (*domain.Slot, error) {
	query := `
		UPDATE slots
		SET appointment2_id = $1, updated_at = $2
		WHERE id = $3 AND appointment2_id IS NULL
		RETURNING ` + slotColumns

	slot, err := scanSlot(r.db.QueryRow(ctx, query, appointmentID, time.Now(), slotID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrSlotConflict
		}
		return nil, fmt.Errorf("ошибка занятия второго места слота: %w", err)
	}

	return slot, nil
}

func (r *SlotRepo) ReleaseAppointment(ctx context.Context, slotID, appointmentID int64) error {
	// пустой слот не удаляется: классификатор покажет его как свободный
	query := `
		UPDATE slots
		SET appointment1_id = CASE WHEN appointment1_id = $1 THEN NULL ELSE appointment1_id END,
			appointment2_id = CASE WHEN appointment2_id = $1 THEN NULL ELSE appointment2_id END,
			updated_at = $2
		WHERE id = $3
	`

	_, err := r.db.Exec(ctx, query, appointmentID, time.Now(), slotID)
	if err != nil {
		return fmt.Errorf("ошибка освобождения места слота: %w", err)
	}

	return nil
}

func (r *SlotRepo) UpdateTime(ctx context.Context, slotID int64, newTime time.Time) (*domain.Slot, error) {
	query := `
		UPDATE slots
		SET slot_time = $1, updated_at = $2
		WHERE id = $3
		RETURNING ` + slotColumns

	slot, err := scanSlot(r.db.QueryRow(ctx, query, newTime, time.Now(), slotID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, domain.ErrSlotConflict
		}
		return nil, fmt.Errorf("ошибка обновления времени слота: %w", err)
	}

	return slot, nil
}

// MoveAppointment переносит запись на новую границу времени одной транзакцией:
// дата записи и привязка слота меняются атомарно.
func (r *SlotRepo) MoveAppointment(ctx context.Context, appointmentID int64, newTime time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка при начале транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `SELECT ` + slotColumns + ` FROM slots WHERE appointment1_id = $1 OR appointment2_id = $1 FOR UPDATE`
	src, err := scanSlot(tx.QueryRow(ctx, query, appointmentID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.ErrNotFound
		}
		return fmt.Errorf("ошибка получения слота записи: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE appointments SET scheduled_at = $1, updated_at = $2 WHERE id = $3`,
		newTime, time.Now(), appointmentID,
	)
	if err != nil {
		return fmt.Errorf("ошибка обновления даты записи: %w", err)
	}

	query = `SELECT ` + slotColumns + ` FROM slots WHERE doctor_id = $1 AND slot_time = $2 FOR UPDATE`
	target, err := scanSlot(tx.QueryRow(ctx, query, src.DoctorID, newTime))
	if err != nil && err != pgx.ErrNoRows {
		return fmt.Errorf("ошибка получения целевого слота: %w", err)
	}

	switch {
	case target != nil && target.ID == src.ID:
		// перенос внутри той же границы, привязка не меняется

	case target != nil:
		if err := attachTx(ctx, tx, target, appointmentID); err != nil {
			return err
		}
		if err := releaseTx(ctx, tx, src.ID, appointmentID); err != nil {
			return err
		}

	case src.SeatsTaken() == 1:
		_, err = tx.Exec(ctx,
			`UPDATE slots SET slot_time = $1, updated_at = $2 WHERE id = $3`,
			newTime, time.Now(), src.ID,
		)
		if err != nil {
			return fmt.Errorf("ошибка переноса слота: %w", err)
		}

	default:
		// на исходном слоте две записи: место освобождается, создается новый слот
		if err := releaseTx(ctx, tx, src.ID, appointmentID); err != nil {
			return err
		}
		now := time.Now()
		_, err = tx.Exec(ctx,
			`INSERT INTO slots (doctor_id, slot_time, appointment1_id, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
			src.DoctorID, newTime, appointmentID, now, now,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
				return domain.ErrSlotConflict
			}
			return fmt.Errorf("ошибка создания слота: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("ошибка при коммите транзакции: %w", err)
	}

	return nil
}

func attachTx(ctx context.Context, tx pgx.Tx, target *domain.Slot, appointmentID int64) error {
	var query string
	switch {
	case target.Appointment1ID == nil:
		query = `UPDATE slots SET appointment1_id = $1, updated_at = $2 WHERE id = $3`
	case target.Appointment2ID == nil:
		query = `UPDATE slots SET appointment2_id = $1, updated_at = $2 WHERE id = $3`
	default:
		return domain.ErrSlotConflict
	}

	if _, err := tx.Exec(ctx, query, appointmentID, time.Now(), target.ID); err != nil {
		return fmt.Errorf("ошибка занятия места слота: %w", err)
	}

	return nil
}

func releaseTx(ctx context.Context, tx pgx.Tx, slotID, appointmentID int64) error {
	query := `
		UPDATE slots
		SET appointment1_id = CASE WHEN appointment1_id = $1 THEN NULL ELSE appointment1_id END,
			appointment2_id = CASE WHEN appointment2_id = $1 THEN NULL ELSE appointment2_id END,
			updated_at = $2
		WHERE id = $3
	`

	if _, err := tx.Exec(ctx, query, appointmentID, time.Now(), slotID); err != nil {
		return fmt.Errorf("ошибка освобождения места слота: %w", err)
	}

	return nil
}
