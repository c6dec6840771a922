package hold

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с hold'ами (soft-lock на слот)
//
// Истечение hold'ов ленивое: все выборки "живых" hold'ов фильтруют по
// expires_at > now, а не по хранимому state. Строка может физически
// оставаться active после истечения TTL - для читателей её не существует
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория hold'ов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create вставляет новый hold
// Проверка конфликтов выполняется usecase'ом create_hold в той же
// сериализуемой транзакции - сама вставка условий не содержит
func (r *Repository) Create(ctx context.Context, h *domain.Hold) (*domain.Hold, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("holds").
		Columns(
			"staff_id",
			"hold_date",
			"start_time",
			"duration_minutes",
			"owner_token",
			"expires_at",
			"state",
		).
		Values(
			h.StaffID,
			h.HoldDate,
			h.StartTime,
			h.DurationMinutes,
			h.OwnerToken,
			h.ExpiresAt,
			h.State,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&h.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	h.CreatedAt = createdAt.Time
	h.UpdatedAt = updatedAt.Time

	return h, nil
}

// GetByID получает hold по ID
// Внутри транзакции добавляет FOR UPDATE - consume_hold блокирует строку
// hold'а на время атомарного перехода hold -> booking
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Hold, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectHolds().
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var h domain.Hold
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&h.ID,
		&h.StaffID,
		&h.HoldDate,
		&h.StartTime,
		&h.DurationMinutes,
		&h.OwnerToken,
		&h.ExpiresAt,
		&h.State,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrHoldNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan hold: %v", ErrScanRow, err)
	}

	h.CreatedAt = createdAt.Time
	h.UpdatedAt = updatedAt.Time

	return &h, nil
}

// GetLiveByStaffAndDate получает все живые hold'ы мастера на дату:
// state = active И expires_at > now. Истекшие строки не возвращаются
// независимо от хранимого state (ленивое истечение)
//
// Внутри транзакции добавляет FOR UPDATE для блокировки конкурирующих
// create_hold / consume_hold по тому же мастеру
func (r *Repository) GetLiveByStaffAndDate(ctx context.Context, staffID int64, date time.Time, now time.Time) ([]*domain.Hold, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectHolds().
		Where(squirrel.Eq{"staff_id": staffID, "hold_date": date, "state": domain.HoldActive}).
		Where(squirrel.Gt{"expires_at": now}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetLiveByStaffAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetLiveByStaffAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanHolds(rows)
}

// Renew продлевает hold условным UPDATE'ом: строка должна быть active,
// не истекшей и принадлежать владельцу. Возвращает ErrStaleHold, если
// условие не выполнено - различение причин делает usecase по GetByID
func (r *Repository) Renew(ctx context.Context, id int64, ownerToken string, now time.Time, expiresAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("holds").
		Set("expires_at", expiresAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "owner_token": ownerToken, "state": domain.HoldActive}).
		Where(squirrel.Gt{"expires_at": now}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Renew - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Renew - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Renew - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStaleHold
	}

	return nil
}

// Transition переводит hold из active в терминальное состояние условным
// UPDATE'ом с проверкой владельца. Терминальные состояния финальны:
// условие state = active гарантирует отсутствие переходов из них
func (r *Repository) Transition(ctx context.Context, id int64, ownerToken string, to domain.HoldState) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("holds").
		Set("state", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "owner_token": ownerToken, "state": domain.HoldActive}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Transition - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Transition - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Transition - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStaleHold
	}

	return nil
}

// ExpireStale физически переводит истёкшие active-строки в expired
// Чистая гигиена хранилища для reaper'а: корректность движка от этого
// вызова не зависит
func (r *Repository) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("holds").
		Set("state", domain.HoldExpired).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"state": domain.HoldActive}).
		Where(squirrel.LtOrEq{"expires_at": now}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: ExpireStale - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ExpireStale - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: ExpireStale - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

func (r *Repository) selectHolds() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"staff_id",
		"hold_date",
		"start_time",
		"duration_minutes",
		"owner_token",
		"expires_at",
		"state",
		"created_at",
		"updated_at",
	).From("holds")
}

// scanHolds сканирует результаты запроса в слайс hold'ов
func (r *Repository) scanHolds(rows *sql.Rows) ([]*domain.Hold, error) {
	holds := make([]*domain.Hold, 0)

	for rows.Next() {
		var h domain.Hold
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&h.ID,
			&h.StaffID,
			&h.HoldDate,
			&h.StartTime,
			&h.DurationMinutes,
			&h.OwnerToken,
			&h.ExpiresAt,
			&h.State,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanHolds - scan row: %v", ErrScanRow, err)
		}

		h.CreatedAt = createdAt.Time
		h.UpdatedAt = updatedAt.Time

		holds = append(holds, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanHolds - rows error: %v", ErrScanRow, err)
	}

	return holds, nil
}
