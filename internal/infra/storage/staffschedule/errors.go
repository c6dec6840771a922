package staffschedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание мастера не найдено
	ErrScheduleNotFound = errors.New("staffschedule.repository: schedule not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("staffschedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("staffschedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("staffschedule.repository: failed to scan row")
)
