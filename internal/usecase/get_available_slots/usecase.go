package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	storageHours "github.com/m04kA/SMC-ReservationService/internal/infra/storage/businesshours"
	storageService "github.com/m04kA/SMC-ReservationService/internal/infra/storage/service"
	storageSchedule "github.com/m04kA/SMC-ReservationService/internal/infra/storage/staffschedule"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	bookingRepo        BookingRepository
	holdRepo           HoldRepository
	hoursRepo          HoursRepository
	scheduleRepo       ScheduleRepository
	serviceRepo        ServiceRepository
	timeProvider       TimeProvider
	granularityMinutes int
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
// granularityMinutes - шаг перебора времён начала слота;
// 0 означает шаг, равный длительности услуги
func NewUseCase(
	bookingRepo BookingRepository,
	holdRepo HoldRepository,
	hoursRepo HoursRepository,
	scheduleRepo ScheduleRepository,
	serviceRepo ServiceRepository,
	granularityMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:        bookingRepo,
		holdRepo:           holdRepo,
		hoursRepo:          hoursRepo,
		scheduleRepo:       scheduleRepo,
		serviceRepo:        serviceRepo,
		timeProvider:       &RealTimeProvider{},
		granularityMinutes: granularityMinutes,
		logger:             logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, service=%d, staff=%s",
		req.Date.Format(domain.DateFormat), req.ServiceID, formatStaffID(req.StaffID))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Дата не должна быть в прошлом
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем услугу (длительность + политика бронирования)
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, storageService.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. Получаем рабочие часы салона
	hours, err := uc.hoursRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, storageHours.ErrHoursNotFound) {
			uc.logger.Info("GetAvailableSlots: business hours are not configured")
			return uc.emptyResponse(req), nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	weekday := req.Date.Weekday()
	day := hours.Day(weekday)
	if day.Closed {
		uc.logger.Info("GetAvailableSlots: salon is closed on %s", req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req), nil
	}

	// 6. Собираем мастеров-кандидатов на этот день недели
	schedules, err := uc.candidateSchedules(ctx, req.StaffID, weekday)
	if err != nil {
		return nil, err
	}

	step := uc.granularityMinutes
	if step <= 0 {
		step = service.DurationMinutes
	}

	// 7. Для каждого мастера: эффективные окна минус занятость
	candidates := make(map[int64][]int, len(schedules))
	for _, schedule := range schedules {
		starts, err := uc.staffCandidates(ctx, schedule, day, req.Date, now, service, step)
		if err != nil {
			return nil, err
		}
		if len(starts) > 0 {
			candidates[schedule.StaffID] = starts
		}
	}

	// 8. Дедупликация по времени начала и сортировка
	slots, err := mergeCandidates(candidates, service.DurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to merge candidates: %v", err)
		return nil, fmt.Errorf("%w: failed to merge candidates: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for service=%d, date=%s",
		len(slots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		Slots:     slots,
	}, nil
}

// candidateSchedules возвращает расписания мастеров, работающих в этот день
// Для явного StaffID отсутствие расписания или выключенный день - это
// пустой результат, а не ошибка
func (uc *UseCase) candidateSchedules(ctx context.Context, staffID *int64, weekday time.Weekday) ([]*domain.StaffDaySchedule, error) {
	if staffID == nil {
		schedules, err := uc.scheduleRepo.GetEnabledByWeekday(ctx, weekday)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get schedules for weekday=%d: %v", weekday, err)
			return nil, fmt.Errorf("%w: failed to get schedules: %v", ErrInternal, err)
		}
		return schedules, nil
	}

	schedule, err := uc.scheduleRepo.GetDay(ctx, *staffID, weekday)
	if err != nil {
		if errors.Is(err, storageSchedule.ErrScheduleNotFound) {
			uc.logger.Info("GetAvailableSlots: staff id=%d has no schedule for weekday=%d", *staffID, weekday)
			return nil, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get schedule for staff id=%d: %v", *staffID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	if !schedule.Enabled {
		return nil, nil
	}

	return []*domain.StaffDaySchedule{schedule}, nil
}

// staffCandidates вычисляет допустимые времена начала слота для одного мастера:
// эффективные окна минус бронирования и живые hold'ы, перебор с шагом step,
// фильтрация по политике min/max advance услуги
func (uc *UseCase) staffCandidates(
	ctx context.Context,
	schedule *domain.StaffDaySchedule,
	day domain.DaySchedule,
	date time.Time,
	now time.Time,
	service *domain.Service,
	step int,
) ([]int, error) {
	effective, err := schedule.EffectiveWindow(day)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to compute effective window for staff id=%d: %v", schedule.StaffID, err)
		return nil, fmt.Errorf("%w: failed to compute effective window: %v", ErrInternal, err)
	}
	if len(effective) == 0 {
		return nil, nil
	}

	filter := domain.StaffBookingsFilter{
		StaffID:   schedule.StaffID,
		StartDate: &date,
		EndDate:   &date,
	}

	bookings, err := uc.bookingRepo.GetByStaffWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for staff id=%d: %v", schedule.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	holds, err := uc.holdRepo.GetLiveByStaffAndDate(ctx, schedule.StaffID, date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get holds for staff id=%d: %v", schedule.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get holds: %v", ErrInternal, err)
	}

	occupied, err := occupiedRanges(bookings, holds)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to build occupied ranges for staff id=%d: %v", schedule.StaffID, err)
		return nil, fmt.Errorf("%w: failed to build occupied ranges: %v", ErrInternal, err)
	}

	free := freeRanges(effective, occupied)
	starts := enumerateStarts(free, service.DurationMinutes, step)

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	filtered := make([]int, 0, len(starts))
	for _, start := range starts {
		instant := dayStart.Add(time.Duration(start) * time.Minute)
		if withinAdvanceWindow(instant, now, service.MinAdvanceHours, service.MaxAdvanceDays) {
			filtered = append(filtered, start)
		}
	}

	return filtered, nil
}

func (uc *UseCase) emptyResponse(req *Request) *Response {
	return &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		Slots:     []Slot{},
	}
}

func formatStaffID(staffID *int64) string {
	if staffID == nil {
		return "any"
	}
	return fmt.Sprintf("%d", *staffID)
}
