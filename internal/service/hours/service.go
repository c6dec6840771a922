package hours

import (
	"context"
	"errors"
	"fmt"

	hoursRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/businesshours"
	"github.com/m04kA/SMC-ReservationService/internal/service/hours/models"
)

// Service сервис для работы с рабочими часами салона
type Service struct {
	hoursRepo HoursRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса рабочих часов
func NewService(hoursRepo HoursRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		hoursRepo: hoursRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Get получает недельное расписание салона
func (s *Service) Get(ctx context.Context) (*models.HoursResponse, error) {
	s.logger.Info("Get: fetching business hours")

	hours, err := s.hoursRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, hoursRepo.ErrHoursNotFound) {
			s.logger.Warn("Get: business hours are not configured")
			return nil, ErrHoursNotFound
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHours(hours), nil
}

// Update полностью перезаписывает недельное расписание
// Валидация возвращает полный список ошибок по полям; запись отклоняется
// целиком при любом нарушении
func (s *Service) Update(ctx context.Context, req *models.UpdateHoursRequest) (*models.HoursResponse, error) {
	s.logger.Info("Update: replacing business hours")

	hours := req.ToDomainHours()

	if fieldErrs := hours.Validate(); len(fieldErrs) > 0 {
		s.logger.Warn("Update: validation failed with %d field error(s)", len(fieldErrs))
		return nil, &ValidationError{Fields: fieldErrs}
	}

	// Замена недели и перерывов атомарна
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.hoursRepo.Replace(txCtx, hours); err != nil {
			s.logger.Error("Update: repository error: %v", err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.hoursRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Update: failed to read back business hours: %v", err)
		return nil, fmt.Errorf("%w: Update - failed to read back: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully replaced business hours")
	return models.FromDomainHours(updated), nil
}
