package holds

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	holdRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/hold"
	"github.com/m04kA/SMC-ReservationService/internal/service/holds/models"
)

// Service сервис для работы с hold'ами: продление, освобождение, reaper
// Создание и consume живут в usecase'ах - они требуют сериализуемых
// транзакций с проверкой конфликтов, здесь только одиночные условные UPDATE'ы
type Service struct {
	holdRepo     HoldRepository
	timeProvider TimeProvider
	ttlMinutes   int
	logger       Logger
}

// NewService создает новый экземпляр сервиса hold'ов
// ttlMinutes - TTL hold'а; 0 означает значение по умолчанию
func NewService(holdRepo HoldRepository, ttlMinutes int, logger Logger) *Service {
	if ttlMinutes <= 0 {
		ttlMinutes = domain.DefaultHoldTTLMinutes
	}
	return &Service{
		holdRepo:     holdRepo,
		timeProvider: &RealTimeProvider{},
		ttlMinutes:   ttlMinutes,
		logger:       logger,
	}
}

// Renew продлевает hold: expires_at = now + TTL
// Продление валидно только пока hold active и не истёк; условие проверяет
// одиночный условный UPDATE, различение причин отказа делается отдельным чтением
func (s *Service) Renew(ctx context.Context, holdID int64, ownerToken string) (*models.RenewHoldResponse, error) {
	s.logger.Info("Renew: renewing hold id=%d", holdID)

	if err := validateHoldArgs(holdID, ownerToken); err != nil {
		s.logger.Warn("Renew: validation failed: %v", err)
		return nil, err
	}

	now := s.timeProvider.Now()
	expiresAt := now.Add(time.Duration(s.ttlMinutes) * time.Minute)

	err := s.holdRepo.Renew(ctx, holdID, ownerToken, now, expiresAt)
	if err != nil {
		if errors.Is(err, holdRepo.ErrStaleHold) {
			return nil, s.classifyStale(ctx, holdID, ownerToken, "Renew")
		}
		s.logger.Error("Renew: repository error for hold id=%d: %v", holdID, err)
		return nil, fmt.Errorf("%w: Renew - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Renew: successfully renewed hold id=%d until %s", holdID, expiresAt.Format(time.RFC3339))

	return &models.RenewHoldResponse{
		HoldID:           holdID,
		ExpiresAt:        expiresAt,
		ExpiresInSeconds: int64(expiresAt.Sub(now).Seconds()),
	}, nil
}

// Release переводит hold из active в released, немедленно освобождая слот
// Дожидаться истечения TTL не нужно
func (s *Service) Release(ctx context.Context, holdID int64, ownerToken string) error {
	s.logger.Info("Release: releasing hold id=%d", holdID)

	if err := validateHoldArgs(holdID, ownerToken); err != nil {
		s.logger.Warn("Release: validation failed: %v", err)
		return err
	}

	err := s.holdRepo.Transition(ctx, holdID, ownerToken, domain.HoldReleased)
	if err != nil {
		if errors.Is(err, holdRepo.ErrStaleHold) {
			return s.classifyStale(ctx, holdID, ownerToken, "Release")
		}
		s.logger.Error("Release: repository error for hold id=%d: %v", holdID, err)
		return fmt.Errorf("%w: Release - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Release: successfully released hold id=%d", holdID)
	return nil
}

// Reap физически помечает истекшие active-строки как expired
// Чистая гигиена хранилища: корректность движка от reaper'а не зависит,
// все читатели и так фильтруют по expires_at
func (s *Service) Reap(ctx context.Context) (int64, error) {
	now := s.timeProvider.Now()

	count, err := s.holdRepo.ExpireStale(ctx, now)
	if err != nil {
		s.logger.Error("Reap: repository error: %v", err)
		return 0, fmt.Errorf("%w: Reap - repository error: %v", ErrInternal, err)
	}

	if count > 0 {
		s.logger.Info("Reap: marked %d stale holds as expired", count)
	}
	return count, nil
}

// classifyStale различает причину отказа условного UPDATE'а отдельным чтением:
// hold отсутствует, чужой владелец или просто больше не живой
func (s *Service) classifyStale(ctx context.Context, holdID int64, ownerToken string, op string) error {
	hold, err := s.holdRepo.GetByID(ctx, holdID)
	if err != nil {
		if errors.Is(err, holdRepo.ErrHoldNotFound) {
			s.logger.Warn("%s: hold id=%d not found", op, holdID)
			return ErrHoldNotFound
		}
		s.logger.Error("%s: failed to classify stale hold id=%d: %v", op, holdID, err)
		return fmt.Errorf("%w: %s - failed to classify stale hold: %v", ErrInternal, op, err)
	}

	if !hold.IsOwnedBy(ownerToken) {
		s.logger.Warn("%s: hold id=%d belongs to another owner", op, holdID)
		return ErrNotOwner
	}

	s.logger.Warn("%s: hold id=%d is not live (state=%s, expires_at=%s)",
		op, holdID, hold.State, hold.ExpiresAt.Format(time.RFC3339))
	return ErrHoldExpired
}

// validateHoldArgs валидирует идентификатор hold'а и токен владельца
func validateHoldArgs(holdID int64, ownerToken string) error {
	if holdID <= 0 {
		return fmt.Errorf("%w: holdID must be positive", ErrInvalidInput)
	}
	if ownerToken == "" {
		return fmt.Errorf("%w: ownerToken is required", ErrInvalidInput)
	}
	return nil
}
