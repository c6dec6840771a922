package create_hold

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// UseCase use case для создания hold'а (soft-lock на слот)
//
// Проверка конфликтов и вставка выполняются в одной сериализуемой
// транзакции с FOR UPDATE - два конкурентных запроса на пересекающийся
// интервал одного мастера не могут пройти оба, один получит ErrSlotConflict
type UseCase struct {
	holdRepo     HoldRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	ttlMinutes   int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// ttlMinutes - TTL hold'а; 0 означает значение по умолчанию
func NewUseCase(
	holdRepo HoldRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	ttlMinutes int,
	logger Logger,
) *UseCase {
	if ttlMinutes <= 0 {
		ttlMinutes = domain.DefaultHoldTTLMinutes
	}
	return &UseCase{
		holdRepo:     holdRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		ttlMinutes:   ttlMinutes,
		logger:       logger,
	}
}

// Execute выполняет use case создания hold'а
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateHold: staff=%d, date=%s, time=%s, duration=%d",
		req.StaffID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateHold: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Дата не должна быть в прошлом
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateHold: date validation failed: %v", err)
		return nil, err
	}

	// 4. Токен владельца: генерируем для новой checkout-сессии
	ownerToken := req.OwnerToken
	if ownerToken == "" {
		ownerToken = uuid.NewString()
	}

	requested, err := requestedInterval(req)
	if err != nil {
		uc.logger.Error("CreateHold: failed to build requested interval: %v", err)
		return nil, fmt.Errorf("%w: failed to build requested interval: %v", ErrInternal, err)
	}

	var result *domain.Hold

	// 5. Проверка конфликтов и вставка атомарны: сериализуемая транзакция,
	// чтения с блокировкой FOR UPDATE
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Живые hold'ы мастера на дату (FOR UPDATE внутри транзакции)
		holds, err := uc.holdRepo.GetLiveByStaffAndDate(txCtx, req.StaffID, req.Date, now)
		if err != nil {
			uc.logger.Error("CreateHold: failed to get holds: %v", err)
			return fmt.Errorf("%w: failed to get holds: %v", ErrInternal, err)
		}

		// 5.2. Активные бронирования мастера на дату (FOR UPDATE внутри транзакции)
		filter := domain.StaffBookingsFilter{
			StaffID:   req.StaffID,
			StartDate: &req.Date,
			EndDate:   &req.Date,
		}

		bookings, err := uc.bookingRepo.GetByStaffWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateHold: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.3. Проверяем пересечения
		conflict, err := hasConflict(requested, bookings, holds)
		if err != nil {
			uc.logger.Error("CreateHold: failed to check conflicts: %v", err)
			return fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
		}
		if conflict {
			uc.logger.Warn("CreateHold: slot conflict for staff=%d, date=%s, time=%s",
				req.StaffID, req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrSlotConflict
		}

		// 5.4. Вставляем hold с expires_at = now + TTL
		hold := &domain.Hold{
			StaffID:         req.StaffID,
			HoldDate:        req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: req.DurationMinutes,
			OwnerToken:      ownerToken,
			ExpiresAt:       now.Add(time.Duration(uc.ttlMinutes) * time.Minute),
			State:           domain.HoldActive,
		}

		created, err := uc.holdRepo.Create(txCtx, hold)
		if err != nil {
			uc.logger.Error("CreateHold: failed to create hold: %v", err)
			return fmt.Errorf("%w: failed to create hold: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateHold: successfully created hold id=%d, expires_at=%s",
		result.ID, result.ExpiresAt.Format(time.RFC3339))

	return &Response{
		HoldID:           result.ID,
		StaffID:          result.StaffID,
		Date:             result.HoldDate,
		StartTime:        result.StartTime,
		DurationMinutes:  result.DurationMinutes,
		OwnerToken:       result.OwnerToken,
		ExpiresAt:        result.ExpiresAt,
		ExpiresInSeconds: result.RemainingSeconds(now),
	}, nil
}

// requestedInterval строит интервал запрошенного слота
func requestedInterval(req *Request) (domain.MinuteRange, error) {
	start, err := req.StartTime.Minutes()
	if err != nil {
		return domain.MinuteRange{}, err
	}
	return domain.MinuteRange{Start: start, End: start + req.DurationMinutes}, nil
}

// hasConflict проверяет пересечение запрошенного интервала с активными
// бронированиями и живыми hold'ами мастера
func hasConflict(requested domain.MinuteRange, bookings []*domain.Booking, holds []*domain.Hold) (bool, error) {
	for _, b := range bookings {
		if !b.OccupiesSlot() {
			continue
		}
		interval, err := b.Interval()
		if err != nil {
			return false, err
		}
		if requested.Overlaps(interval) {
			return true, nil
		}
	}

	for _, h := range holds {
		interval, err := h.Interval()
		if err != nil {
			return false, err
		}
		if requested.Overlaps(interval) {
			return true, nil
		}
	}

	return false, nil
}
