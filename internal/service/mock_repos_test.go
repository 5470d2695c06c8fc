package service

import (
	"context"
	"errors"
	"time"

	"hms/internal/domain"
)

type mockDoctorRepo struct {
	doctors map[int64]*domain.Doctor
	nextID  int64
}

func newMockDoctorRepo() *mockDoctorRepo {
	return &mockDoctorRepo{doctors: make(map[int64]*domain.Doctor), nextID: 1}
}

func (m *mockDoctorRepo) Create(_ context.Context, dto domain.CreateDoctorDTO) (int64, error) {
	id := m.nextID
	m.nextID++
	m.doctors[id] = &domain.Doctor{
		ID:        id,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Specialty: dto.Specialty,
		Phone:     dto.Phone,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	return id, nil
}

func (m *mockDoctorRepo) GetByID(_ context.Context, id int64) (*domain.Doctor, error) {
	doctor, ok := m.doctors[id]
	if !ok {
		return nil, nil
	}
	copied := *doctor
	return &copied, nil
}

func (m *mockDoctorRepo) Update(_ context.Context, id int64, dto domain.UpdateDoctorDTO) error {
	doctor, ok := m.doctors[id]
	if !ok {
		return domain.ErrNotFound
	}
	if dto.FirstName != nil {
		doctor.FirstName = *dto.FirstName
	}
	if dto.IsActive != nil {
		doctor.IsActive = *dto.IsActive
	}
	return nil
}

func (m *mockDoctorRepo) List(_ context.Context, limit, offset int) ([]domain.Doctor, int, error) {
	result := make([]domain.Doctor, 0, len(m.doctors))
	for _, doctor := range m.doctors {
		result = append(result, *doctor)
	}
	return result, len(result), nil
}

type mockShiftRepo struct {
	weekly    map[int64]*domain.WeeklyShift
	temporary map[int64]*domain.TemporaryShift
	nextID    int64
}

func newMockShiftRepo() *mockShiftRepo {
	return &mockShiftRepo{
		weekly:    make(map[int64]*domain.WeeklyShift),
		temporary: make(map[int64]*domain.TemporaryShift),
		nextID:    1,
	}
}

func (m *mockShiftRepo) addWeekly(shift domain.WeeklyShift) {
	if shift.ID == 0 {
		shift.ID = m.nextID
		m.nextID++
	}
	m.weekly[shift.ID] = &shift
}

func (m *mockShiftRepo) addTemporary(shift domain.TemporaryShift) {
	if shift.ID == 0 {
		shift.ID = m.nextID
		m.nextID++
	}
	m.temporary[shift.ID] = &shift
}

func (m *mockShiftRepo) CreateWeekly(_ context.Context, dto domain.CreateWeeklyShiftDTO) (int64, error) {
	id := m.nextID
	m.nextID++
	m.weekly[id] = &domain.WeeklyShift{
		ID:        id,
		DoctorID:  dto.DoctorID,
		DayOfWeek: dto.DayOfWeek,
		StartTime: dto.StartTime,
		EndTime:   dto.EndTime,
		Status:    domain.ShiftStatusActive,
		CreatedAt: time.Now(),
	}
	return id, nil
}

func (m *mockShiftRepo) GetWeeklyByID(_ context.Context, id int64) (*domain.WeeklyShift, error) {
	shift, ok := m.weekly[id]
	if !ok {
		return nil, nil
	}
	copied := *shift
	return &copied, nil
}

func (m *mockShiftRepo) UpdateWeekly(_ context.Context, shift domain.WeeklyShift) error {
	if _, ok := m.weekly[shift.ID]; !ok {
		return domain.ErrNotFound
	}
	m.weekly[shift.ID] = &shift
	return nil
}

func (m *mockShiftRepo) DeleteWeekly(_ context.Context, id int64) error {
	delete(m.weekly, id)
	return nil
}

func (m *mockShiftRepo) ListWeeklyByDoctor(_ context.Context, doctorID int64) ([]domain.WeeklyShift, error) {
	result := []domain.WeeklyShift{}
	for _, shift := range m.weekly {
		if shift.DoctorID == doctorID {
			result = append(result, *shift)
		}
	}
	return result, nil
}

func (m *mockShiftRepo) CreateTemporary(_ context.Context, dto domain.CreateTemporaryShiftDTO) (int64, error) {
	id := m.nextID
	m.nextID++
	m.temporary[id] = &domain.TemporaryShift{
		ID:        id,
		DoctorID:  dto.DoctorID,
		StartAt:   dto.StartAt,
		EndAt:     dto.EndAt,
		Status:    domain.ShiftStatusActive,
		CreatedAt: time.Now(),
	}
	return id, nil
}

func (m *mockShiftRepo) GetTemporaryByID(_ context.Context, id int64) (*domain.TemporaryShift, error) {
	shift, ok := m.temporary[id]
	if !ok {
		return nil, nil
	}
	copied := *shift
	return &copied, nil
}

func (m *mockShiftRepo) DeleteTemporary(_ context.Context, id int64) error {
	delete(m.temporary, id)
	return nil
}

func (m *mockShiftRepo) ListTemporaryByDoctor(_ context.Context, doctorID int64) ([]domain.TemporaryShift, error) {
	result := []domain.TemporaryShift{}
	for _, shift := range m.temporary {
		if shift.DoctorID == doctorID {
			result = append(result, *shift)
		}
	}
	return result, nil
}

type mockSlotRepo struct {
	slots  map[int64]*domain.Slot
	nextID int64

	appointments *mockAppointmentRepo

	// заставляет все операции бронирования завершаться конфликтом,
	// имитируя проигрыш гонки конкурирующей записи
	forceConflict bool
}

func newMockSlotRepo() *mockSlotRepo {
	return &mockSlotRepo{slots: make(map[int64]*domain.Slot), nextID: 1}
}

func (m *mockSlotRepo) findByDoctorAndTime(doctorID int64, slotTime time.Time) *domain.Slot {
	for _, slot := range m.slots {
		if slot.DoctorID == doctorID && slot.SlotTime.Equal(slotTime) {
			return slot
		}
	}
	return nil
}

func (m *mockSlotRepo) Create(_ context.Context, doctorID int64, slotTime time.Time, appointmentID int64) (*domain.Slot, error) {
	if m.forceConflict {
		return nil, domain.ErrSlotConflict
	}
	if m.findByDoctorAndTime(doctorID, slotTime) != nil {
		return nil, domain.ErrSlotConflict
	}
	id := m.nextID
	m.nextID++
	apptID := appointmentID
	slot := &domain.Slot{
		ID:             id,
		DoctorID:       doctorID,
		SlotTime:       slotTime,
		Appointment1ID: &apptID,
		CreatedAt:      time.Now(),
	}
	m.slots[id] = slot
	copied := *slot
	return &copied, nil
}

func (m *mockSlotRepo) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	slot, ok := m.slots[id]
	if !ok {
		return nil, nil
	}
	copied := *slot
	return &copied, nil
}

func (m *mockSlotRepo) GetByDoctorAndTime(_ context.Context, doctorID int64, slotTime time.Time) (*domain.Slot, error) {
	slot := m.findByDoctorAndTime(doctorID, slotTime)
	if slot == nil {
		return nil, nil
	}
	copied := *slot
	return &copied, nil
}

func (m *mockSlotRepo) GetByAppointment(_ context.Context, appointmentID int64) (*domain.Slot, error) {
	for _, slot := range m.slots {
		if slot.HoldsAppointment(appointmentID) {
			copied := *slot
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockSlotRepo) ListByDoctorAndRange(_ context.Context, doctorID int64, from, to time.Time) ([]domain.Slot, error) {
	result := []domain.Slot{}
	for _, slot := range m.slots {
		if slot.DoctorID != doctorID {
			continue
		}
		if slot.SlotTime.Before(from) || !slot.SlotTime.Before(to) {
			continue
		}
		result = append(result, *slot)
	}
	return result, nil
}

func (m *mockSlotRepo) SetFirstAppointment(_ context.Context, slotID, appointmentID int64) (*domain.Slot, error) {
	if m.forceConflict {
		return nil, domain.ErrSlotConflict
	}
	slot, ok := m.slots[slotID]
	if !ok || slot.Appointment1ID != nil {
		return nil, domain.ErrSlotConflict
	}
	apptID := appointmentID
	slot.Appointment1ID = &apptID
	copied := *slot
	return &copied, nil
}

func (m *mockSlotRepo) AttachSecondAppointment(_ context.Context, slotID, appointmentID int64) (*domain.Slot, error) {
	if m.forceConflict {
		return nil, domain.ErrSlotConflict
	}
	slot, ok := m.slots[slotID]
	if !ok || slot.Appointment2ID != nil {
		return nil, domain.ErrSlotConflict
	}
	apptID := appointmentID
	slot.Appointment2ID = &apptID
	copied := *slot
	return &copied, nil
}

func (m *mockSlotRepo) ReleaseAppointment(_ context.Context, slotID, appointmentID int64) error {
	slot, ok := m.slots[slotID]
	if !ok {
		return domain.ErrNotFound
	}
	if slot.Appointment1ID != nil && *slot.Appointment1ID == appointmentID {
		slot.Appointment1ID = nil
	}
	if slot.Appointment2ID != nil && *slot.Appointment2ID == appointmentID {
		slot.Appointment2ID = nil
	}
	return nil
}

func (m *mockSlotRepo) UpdateTime(_ context.Context, slotID int64, newTime time.Time) (*domain.Slot, error) {
	slot, ok := m.slots[slotID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if other := m.findByDoctorAndTime(slot.DoctorID, newTime); other != nil && other.ID != slotID {
		return nil, domain.ErrSlotConflict
	}
	slot.SlotTime = newTime
	copied := *slot
	return &copied, nil
}

func (m *mockSlotRepo) MoveAppointment(ctx context.Context, appointmentID int64, newTime time.Time) error {
	var src *domain.Slot
	for _, slot := range m.slots {
		if slot.HoldsAppointment(appointmentID) {
			src = slot
			break
		}
	}
	if src == nil {
		return domain.ErrNotFound
	}

	if m.appointments != nil {
		if appt, ok := m.appointments.appointments[appointmentID]; ok {
			appt.ScheduledAt = newTime
		}
	}

	target := m.findByDoctorAndTime(src.DoctorID, newTime)

	if target != nil && target.ID == src.ID {
		return nil
	}

	if target != nil {
		if _, err := m.AttachSecondAppointment(ctx, target.ID, appointmentID); err != nil {
			return err
		}
		return m.ReleaseAppointment(ctx, src.ID, appointmentID)
	}

	if src.SeatsTaken() == 1 {
		src.SlotTime = newTime
		return nil
	}

	if err := m.ReleaseAppointment(ctx, src.ID, appointmentID); err != nil {
		return err
	}
	_, err := m.Create(ctx, src.DoctorID, newTime, appointmentID)
	return err
}

type mockAppointmentRepo struct {
	appointments map[int64]*domain.Appointment
	nextID       int64
	deleted      []int64
}

func newMockAppointmentRepo() *mockAppointmentRepo {
	return &mockAppointmentRepo{appointments: make(map[int64]*domain.Appointment), nextID: 1}
}

func (m *mockAppointmentRepo) Create(_ context.Context, dto domain.CreateAppointmentDTO) (int64, error) {
	id := m.nextID
	m.nextID++
	m.appointments[id] = &domain.Appointment{
		ID:           id,
		DoctorID:     dto.DoctorID,
		PatientName:  dto.PatientName,
		PatientPhone: dto.PatientPhone,
		VisitType:    dto.VisitType,
		ScheduledAt:  dto.ScheduledAt,
		Status:       domain.AppointmentStatusScheduled,
		CreatedAt:    time.Now(),
	}
	return id, nil
}

func (m *mockAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appointment, ok := m.appointments[id]
	if !ok {
		return nil, nil
	}
	copied := *appointment
	return &copied, nil
}

func (m *mockAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	appointment, ok := m.appointments[id]
	if !ok {
		return errors.New("запись не найдена")
	}
	appointment.Status = status
	return nil
}

func (m *mockAppointmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.appointments[id]; !ok {
		return errors.New("запись не найдена")
	}
	delete(m.appointments, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockAppointmentRepo) List(_ context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	result := []domain.Appointment{}
	for _, appointment := range m.appointments {
		if filter.DoctorID != nil && appointment.DoctorID != *filter.DoctorID {
			continue
		}
		if filter.Status != nil && appointment.Status != *filter.Status {
			continue
		}
		if filter.StartDate != nil && appointment.ScheduledAt.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && appointment.ScheduledAt.After(*filter.EndDate) {
			continue
		}
		result = append(result, *appointment)
	}
	return result, nil
}

func (m *mockAppointmentRepo) CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error) {
	result, err := m.List(ctx, filter)
	if err != nil {
		return 0, err
	}
	return len(result), nil
}
