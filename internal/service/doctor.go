package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"hms/internal/domain"
	"hms/internal/repository"
	"hms/pkg/validator"
)

type DoctorServiceImpl struct {
	repo   repository.DoctorRepository
	logger *zap.Logger
}

func NewDoctorService(repo repository.DoctorRepository, logger *zap.Logger) *DoctorServiceImpl {
	return &DoctorServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *DoctorServiceImpl) Create(ctx context.Context, dto domain.CreateDoctorDTO) (int64, error) {
	if !validator.ValidateNamePart(dto.FirstName) || !validator.ValidateNamePart(dto.LastName) {
		return 0, errors.New("некорректное имя или фамилия врача")
	}

	if !validator.ValidatePhone(dto.Phone) {
		return 0, errors.New("некорректный номер телефона")
	}

	dto.FirstName = validator.FormatName(dto.FirstName)
	dto.LastName = validator.FormatName(dto.LastName)
	dto.MiddleName = validator.FormatName(dto.MiddleName)
	dto.Phone = validator.FormatPhone(dto.Phone)

	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("ошибка создания врача", zap.Error(err))
		return 0, fmt.Errorf("ошибка создания врача: %w", err)
	}

	return id, nil
}

func (s *DoctorServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	doctor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения врача", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения врача: %w", err)
	}
	return doctor, nil
}

func (s *DoctorServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateDoctorDTO) error {
	doctor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения врача", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка получения врача: %w", err)
	}

	if doctor == nil {
		return domain.ErrNotFound
	}

	if dto.Phone != nil {
		if !validator.ValidatePhone(*dto.Phone) {
			return errors.New("некорректный номер телефона")
		}
		formatted := validator.FormatPhone(*dto.Phone)
		dto.Phone = &formatted
	}

	err = s.repo.Update(ctx, id, dto)
	if err != nil {
		s.logger.Error("ошибка обновления врача", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка обновления врача: %w", err)
	}

	return nil
}

func (s *DoctorServiceImpl) List(ctx context.Context, limit, offset int) ([]domain.Doctor, int, error) {
	doctors, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error("ошибка получения списка врачей", zap.Error(err))
		return nil, 0, fmt.Errorf("ошибка получения списка врачей: %w", err)
	}
	return doctors, total, nil
}
