package businesshours

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Repository репозиторий для работы с рабочими часами салона
// Расписание хранится построчно: одна строка на день недели плюс
// отдельная таблица перерывов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает рабочие часы салона на неделю
// Если расписание не настроено ни для одного дня, возвращает ErrHoursNotFound
func (r *Repository) Get(ctx context.Context) (*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"weekday",
		"closed",
		"open_time",
		"close_time",
		"updated_at",
	).
		From("business_hours").
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := &domain.BusinessHours{}
	found := false

	for rows.Next() {
		var (
			weekday   int
			day       domain.DaySchedule
			openTime  sql.NullString
			closeTime sql.NullString
			updatedAt sql.NullTime
		)

		if err := rows.Scan(&weekday, &day.Closed, &openTime, &closeTime, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: Get - scan row: %v", ErrScanRow, err)
		}

		if openTime.Valid {
			day.Open = truncateTime(openTime.String)
		}
		if closeTime.Valid {
			day.Close = truncateTime(closeTime.String)
		}

		hours.Days[time.Weekday(weekday)] = day
		if updatedAt.Valid && updatedAt.Time.After(hours.UpdatedAt) {
			hours.UpdatedAt = updatedAt.Time
		}
		found = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Get - rows error: %v", ErrScanRow, err)
	}

	if !found {
		return nil, ErrHoursNotFound
	}

	if err := r.loadBreaks(ctx, hours); err != nil {
		return nil, err
	}

	return hours, nil
}

// Replace полностью заменяет недельное расписание
// Вызывается внутри транзакции (write path сервиса hours), чтобы
// запись была атомарной
func (r *Repository) Replace(ctx context.Context, hours *domain.BusinessHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		day := hours.Days[weekday]

		var open, closeAt interface{}
		if !day.Closed {
			open = day.Open
			closeAt = day.Close
		}

		query, args, err := psqlbuilder.Insert("business_hours").
			Columns("weekday", "closed", "open_time", "close_time").
			Values(int(weekday), day.Closed, open, closeAt).
			Suffix("ON CONFLICT (weekday) DO UPDATE SET closed = EXCLUDED.closed, open_time = EXCLUDED.open_time, close_time = EXCLUDED.close_time, updated_at = NOW()").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: Replace - build upsert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: Replace - execute upsert: %v", ErrExecQuery, err)
		}
	}

	return r.replaceBreaks(ctx, hours)
}

// loadBreaks загружает перерывы всех дней недели
func (r *Repository) loadBreaks(ctx context.Context, hours *domain.BusinessHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"weekday",
		"start_time",
		"end_time",
	).
		From("business_hours_breaks").
		OrderBy("weekday ASC, start_time ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: loadBreaks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadBreaks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			weekday    int
			start, end string
		)

		if err := rows.Scan(&weekday, &start, &end); err != nil {
			return fmt.Errorf("%w: loadBreaks - scan row: %v", ErrScanRow, err)
		}

		day := hours.Days[time.Weekday(weekday)]
		day.Breaks = append(day.Breaks, domain.TimeRange{
			Start: truncateTime(start),
			End:   truncateTime(end),
		})
		hours.Days[time.Weekday(weekday)] = day
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadBreaks - rows error: %v", ErrScanRow, err)
	}

	return nil
}

// replaceBreaks заменяет все перерывы новым набором
func (r *Repository) replaceBreaks(ctx context.Context, hours *domain.BusinessHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("business_hours_breaks").
		Where(squirrel.GtOrEq{"weekday": int(time.Sunday)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceBreaks - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceBreaks - execute delete: %v", ErrExecQuery, err)
	}

	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		for _, br := range hours.Days[weekday].Breaks {
			query, args, err := psqlbuilder.Insert("business_hours_breaks").
				Columns("weekday", "start_time", "end_time").
				Values(int(weekday), br.Start, br.End).
				ToSql()
			if err != nil {
				return fmt.Errorf("%w: replaceBreaks - build insert query: %v", ErrBuildQuery, err)
			}
			if _, err := executor.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: replaceBreaks - execute insert: %v", ErrExecQuery, err)
			}
		}
	}

	return nil
}

// truncateTime обрезает "HH:MM:SS" из Postgres до "HH:MM"
func truncateTime(s string) types.TimeString {
	if len(s) > 5 {
		s = s[:5]
	}
	return types.TimeString(s)
}
