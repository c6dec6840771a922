package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	hoursRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/businesshours"
	scheduleRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/staffschedule"
	"github.com/m04kA/SMC-ReservationService/internal/service/schedule/models"
)

// Service сервис для работы с расписаниями мастеров
type Service struct {
	scheduleRepo ScheduleRepository
	hoursRepo    HoursRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	hoursRepo HoursRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		hoursRepo:    hoursRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetWeek получает недельное расписание мастера
func (s *Service) GetWeek(ctx context.Context, staffID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetWeek: fetching schedule for staff=%d", staffID)

	if staffID <= 0 {
		return nil, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	schedules, err := s.scheduleRepo.GetByStaff(ctx, staffID)
	if err != nil {
		s.logger.Error("GetWeek: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	if len(schedules) == 0 {
		s.logger.Warn("GetWeek: schedule for staff=%d not found", staffID)
		return nil, ErrScheduleNotFound
	}

	s.logger.Info("GetWeek: successfully fetched %d days for staff=%d", len(schedules), staffID)
	return models.FromDomainSchedule(staffID, schedules), nil
}

// UpdateWeek перезаписывает недельное расписание мастера
// Каждый день валидируется; включение дня, когда салон закрыт,
// отклоняется как нарушение политики
func (s *Service) UpdateWeek(ctx context.Context, staffID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpdateWeek: replacing schedule for staff=%d, %d day(s)", staffID, len(req.Days))

	if staffID <= 0 {
		return nil, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}
	if len(req.Days) == 0 {
		return nil, fmt.Errorf("%w: days are required", ErrInvalidInput)
	}

	days := make([]*domain.StaffDaySchedule, 0, len(req.Days))
	seen := make(map[time.Weekday]bool, len(req.Days))

	var fieldErrs []domain.FieldError
	for _, dto := range req.Days {
		day, err := dto.ToDomainDay(staffID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if seen[day.Weekday] {
			return nil, fmt.Errorf("%w: duplicate weekday %q", ErrInvalidInput, dto.Weekday)
		}
		seen[day.Weekday] = true

		fieldErrs = append(fieldErrs, day.Validate()...)
		days = append(days, day)
	}

	if len(fieldErrs) > 0 {
		s.logger.Warn("UpdateWeek: validation failed for staff=%d with %d field error(s)", staffID, len(fieldErrs))
		return nil, &ValidationError{Fields: fieldErrs}
	}

	// Политика: рабочий день мастера не может быть включён в день,
	// когда салон закрыт
	hours, err := s.getHours(ctx)
	if err != nil {
		return nil, err
	}
	for _, day := range days {
		if day.Enabled && hours.Day(day.Weekday).Closed {
			s.logger.Warn("UpdateWeek: staff=%d day=%s enabled but salon is closed",
				staffID, domain.WeekdayName(day.Weekday))
			return nil, ErrPolicyViolation
		}
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, day := range days {
			if _, err := s.scheduleRepo.UpsertDay(txCtx, day); err != nil {
				s.logger.Error("UpdateWeek: repository error for staff=%d day=%s: %v",
					staffID, domain.WeekdayName(day.Weekday), err)
				return fmt.Errorf("%w: UpdateWeek - repository error: %v", ErrInternal, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateWeek: successfully replaced schedule for staff=%d", staffID)
	return s.GetWeek(ctx, staffID)
}

// SetDayEnabled включает или выключает один день недели мастера
// Включение дня, когда салон в этот день закрыт, отклоняется как
// нарушение политики
func (s *Service) SetDayEnabled(ctx context.Context, staffID int64, weekdayName string, enabled bool) error {
	s.logger.Info("SetDayEnabled: staff=%d, weekday=%s, enabled=%t", staffID, weekdayName, enabled)

	if staffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	weekday, err := domain.ParseWeekday(weekdayName)
	if err != nil {
		s.logger.Warn("SetDayEnabled: invalid weekday %q", weekdayName)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if enabled {
		hours, err := s.getHours(ctx)
		if err != nil {
			return err
		}
		if hours.Day(weekday).Closed {
			s.logger.Warn("SetDayEnabled: staff=%d day=%s enabled but salon is closed",
				staffID, weekdayName)
			return ErrPolicyViolation
		}
	}

	if err := s.scheduleRepo.SetDayEnabled(ctx, staffID, weekday, enabled); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("SetDayEnabled: schedule for staff=%d day=%s not found", staffID, weekdayName)
			return ErrScheduleNotFound
		}
		s.logger.Error("SetDayEnabled: repository error for staff=%d: %v", staffID, err)
		return fmt.Errorf("%w: SetDayEnabled - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetDayEnabled: successfully set staff=%d day=%s enabled=%t", staffID, weekdayName, enabled)
	return nil
}

// getHours загружает рабочие часы; не настроенные часы означают,
// что салон закрыт всю неделю
func (s *Service) getHours(ctx context.Context) (*domain.BusinessHours, error) {
	hours, err := s.hoursRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, hoursRepo.ErrHoursNotFound) {
			closed := &domain.BusinessHours{}
			for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
				closed.Days[weekday] = domain.DaySchedule{Closed: true}
			}
			return closed, nil
		}
		s.logger.Error("getHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}
	return hours, nil
}
