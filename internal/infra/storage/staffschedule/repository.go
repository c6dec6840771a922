package staffschedule

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

// Repository репозиторий для работы с расписаниями мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByStaff получает расписание мастера на всю неделю
// Отсутствующие дни недели означают "мастер не работает" и не являются ошибкой
func (r *Repository) GetByStaff(ctx context.Context, staffID int64) ([]*domain.StaffDaySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectSchedules().
		Where(squirrel.Eq{"staff_id": staffID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSchedules(rows)
}

// GetDay получает расписание мастера на конкретный день недели
func (r *Repository) GetDay(ctx context.Context, staffID int64, weekday time.Weekday) (*domain.StaffDaySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectSchedules().
		Where(squirrel.Eq{"staff_id": staffID, "weekday": int(weekday)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDay - build select query: %v", ErrBuildQuery, err)
	}

	var schedule domain.StaffDaySchedule
	var weekdayInt int
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&schedule.StaffID,
		&weekdayInt,
		&schedule.Enabled,
		&schedule.Start,
		&schedule.End,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDay - scan schedule: %v", ErrScanRow, err)
	}

	schedule.Weekday = time.Weekday(weekdayInt)
	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return &schedule, nil
}

// GetEnabledByWeekday получает всех мастеров, работающих в указанный день недели
// Используется AvailabilityCalculator'ом при запросе "любой мастер"
func (r *Repository) GetEnabledByWeekday(ctx context.Context, weekday time.Weekday) ([]*domain.StaffDaySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectSchedules().
		Where(squirrel.Eq{"weekday": int(weekday), "enabled": true}).
		OrderBy("staff_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetEnabledByWeekday - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetEnabledByWeekday - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSchedules(rows)
}

// UpsertDay создает или обновляет расписание мастера на день недели
func (r *Repository) UpsertDay(ctx context.Context, schedule *domain.StaffDaySchedule) (*domain.StaffDaySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var start, end interface{}
	if schedule.Enabled {
		start = schedule.Start
		end = schedule.End
	}

	query, args, err := psqlbuilder.Insert("staff_schedules").
		Columns("staff_id", "weekday", "enabled", "start_time", "end_time").
		Values(schedule.StaffID, int(schedule.Weekday), schedule.Enabled, start, end).
		Suffix("ON CONFLICT (staff_id, weekday) DO UPDATE SET enabled = EXCLUDED.enabled, start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time, updated_at = NOW()").
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertDay - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertDay - execute upsert: %v", ErrExecQuery, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return schedule, nil
}

// SetDayEnabled переключает флаг enabled для дня недели мастера
// Возвращает ErrScheduleNotFound, если записи на этот день нет
func (r *Repository) SetDayEnabled(ctx context.Context, staffID int64, weekday time.Weekday, enabled bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("staff_schedules").
		Set("enabled", enabled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"staff_id": staffID, "weekday": int(weekday)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetDayEnabled - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetDayEnabled - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetDayEnabled - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

func (r *Repository) selectSchedules() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"staff_id",
		"weekday",
		"enabled",
		"start_time",
		"end_time",
		"created_at",
		"updated_at",
	).From("staff_schedules")
}

// scanSchedules сканирует результаты запроса в слайс расписаний
func (r *Repository) scanSchedules(rows *sql.Rows) ([]*domain.StaffDaySchedule, error) {
	schedules := make([]*domain.StaffDaySchedule, 0)

	for rows.Next() {
		var schedule domain.StaffDaySchedule
		var weekdayInt int
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&schedule.ID,
			&schedule.StaffID,
			&weekdayInt,
			&schedule.Enabled,
			&schedule.Start,
			&schedule.End,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSchedules - scan row: %v", ErrScanRow, err)
		}

		schedule.Weekday = time.Weekday(weekdayInt)
		schedule.CreatedAt = createdAt.Time
		schedule.UpdatedAt = updatedAt.Time

		schedules = append(schedules, &schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSchedules - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}
