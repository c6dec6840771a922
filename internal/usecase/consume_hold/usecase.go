package consume_hold

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	storageHold "github.com/m04kA/SMC-ReservationService/internal/infra/storage/hold"
	storageService "github.com/m04kA/SMC-ReservationService/internal/infra/storage/service"
)

// UseCase use case для атомарного превращения hold'а в бронирование
//
// Переход hold -> consumed и вставка бронирования выполняются в одной
// сериализуемой транзакции: слот никогда не бывает свободен между
// снятием hold'а и появлением бронирования
type UseCase struct {
	holdRepo     HoldRepository
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	holdRepo HoldRepository,
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		holdRepo:     holdRepo,
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case превращения hold'а в бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConsumeHold: hold=%d, client=%d, service=%d", req.HoldID, req.ClientID, req.ServiceID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConsumeHold: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var result *domain.Booking

	// 3. Проверки и переход hold -> booking атомарны
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем hold с блокировкой FOR UPDATE
		hold, err := uc.holdRepo.GetByID(txCtx, req.HoldID)
		if err != nil {
			if errors.Is(err, storageHold.ErrHoldNotFound) {
				uc.logger.Warn("ConsumeHold: hold id=%d not found", req.HoldID)
				return ErrHoldNotFound
			}
			uc.logger.Error("ConsumeHold: failed to get hold id=%d: %v", req.HoldID, err)
			return fmt.Errorf("%w: failed to get hold: %v", ErrInternal, err)
		}

		// 3.2. Проверяем владельца
		if !hold.IsOwnedBy(req.OwnerToken) {
			uc.logger.Warn("ConsumeHold: hold id=%d belongs to another owner", req.HoldID)
			return ErrNotOwner
		}

		// 3.3. Hold должен быть живым: active и не истекший
		// Истечение ленивое - хранимый state может всё ещё читаться active
		if !hold.IsLiveAt(now) {
			uc.logger.Warn("ConsumeHold: hold id=%d is not live (state=%s, expires_at=%s)",
				req.HoldID, hold.State, hold.ExpiresAt)
			return ErrHoldExpired
		}

		// 3.4. Получаем услугу для денормализации данных
		service, err := uc.serviceRepo.GetByID(txCtx, req.ServiceID)
		if err != nil {
			if errors.Is(err, storageService.ErrServiceNotFound) {
				uc.logger.Warn("ConsumeHold: service id=%d not found", req.ServiceID)
				return ErrServiceNotFound
			}
			uc.logger.Error("ConsumeHold: failed to get service id=%d: %v", req.ServiceID, err)
			return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}

		// 3.5. Повторная проверка конфликтов: чужие hold'ы и бронирования
		// могли появиться, пока клиент заполнял детали
		if err := uc.checkConflicts(txCtx, hold, now); err != nil {
			return err
		}

		// 3.6. Переводим hold в consumed условным UPDATE'ом
		if err := uc.holdRepo.Transition(txCtx, hold.ID, req.OwnerToken, domain.HoldConsumed); err != nil {
			if errors.Is(err, storageHold.ErrStaleHold) {
				uc.logger.Warn("ConsumeHold: hold id=%d went stale during transition", req.HoldID)
				return ErrHoldExpired
			}
			uc.logger.Error("ConsumeHold: failed to transition hold id=%d: %v", req.HoldID, err)
			return fmt.Errorf("%w: failed to transition hold: %v", ErrInternal, err)
		}

		// 3.7. Создаем бронирование: время начала и длительность копируются
		// из hold'а без округления и сдвигов
		booking := &domain.Booking{
			ClientID:        req.ClientID,
			StaffID:         hold.StaffID,
			ServiceID:       req.ServiceID,
			BookingDate:     hold.HoldDate,
			StartTime:       hold.StartTime,
			DurationMinutes: hold.DurationMinutes,
			Status:          domain.StatusConfirmed,
			ServiceName:     service.Name,
			ServicePrice:    service.Price,
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("ConsumeHold: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ConsumeHold: successfully created booking id=%d from hold id=%d", result.ID, req.HoldID)

	return &Response{
		BookingID:       result.ID,
		ClientID:        result.ClientID,
		StaffID:         result.StaffID,
		ServiceID:       result.ServiceID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// checkConflicts проверяет, что интервал hold'а не пересекается с активными
// бронированиями и чужими живыми hold'ами того же мастера
func (uc *UseCase) checkConflicts(ctx context.Context, hold *domain.Hold, now time.Time) error {
	requested, err := hold.Interval()
	if err != nil {
		uc.logger.Error("ConsumeHold: failed to build hold interval: %v", err)
		return fmt.Errorf("%w: failed to build hold interval: %v", ErrInternal, err)
	}

	filter := domain.StaffBookingsFilter{
		StaffID:   hold.StaffID,
		StartDate: &hold.HoldDate,
		EndDate:   &hold.HoldDate,
	}

	bookings, err := uc.bookingRepo.GetByStaffWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("ConsumeHold: failed to get bookings: %v", err)
		return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	for _, b := range bookings {
		if !b.OccupiesSlot() {
			continue
		}
		interval, err := b.Interval()
		if err != nil {
			return fmt.Errorf("%w: failed to build booking interval: %v", ErrInternal, err)
		}
		if requested.Overlaps(interval) {
			uc.logger.Warn("ConsumeHold: hold id=%d conflicts with booking id=%d", hold.ID, b.ID)
			return ErrSlotConflict
		}
	}

	holds, err := uc.holdRepo.GetLiveByStaffAndDate(ctx, hold.StaffID, hold.HoldDate, now)
	if err != nil {
		uc.logger.Error("ConsumeHold: failed to get holds: %v", err)
		return fmt.Errorf("%w: failed to get holds: %v", ErrInternal, err)
	}

	for _, h := range holds {
		if h.ID == hold.ID {
			continue
		}
		interval, err := h.Interval()
		if err != nil {
			return fmt.Errorf("%w: failed to build hold interval: %v", ErrInternal, err)
		}
		if requested.Overlaps(interval) {
			uc.logger.Warn("ConsumeHold: hold id=%d conflicts with hold id=%d", hold.ID, h.ID)
			return ErrSlotConflict
		}
	}

	return nil
}
