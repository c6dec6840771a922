package resolve_overlaps

import (
	resolveOverlaps "github.com/m04kA/SMC-ReservationService/internal/usecase/resolve_overlaps"
)

type ResolveOverlapsUseCase interface {
	Execute(req *resolveOverlaps.Request) (*resolveOverlaps.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
